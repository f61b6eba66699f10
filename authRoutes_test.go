package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLoginAdmin(t *testing.T) {
	admin := QuanLy{Taikhoan: "admin", Matkhau: "123456"}

	session, errMsg := resolveLogin(&admin, nil, "123456", time.Now())
	require.Empty(t, errMsg)
	require.NotNil(t, session)
	assert.Equal(t, "admin", session.Type)
	assert.Equal(t, "admin", session.AdminData.Taikhoan)
	assert.Nil(t, session.EmployeeData)
}

func TestResolveLoginAdminWrongPassword(t *testing.T) {
	admin := QuanLy{Taikhoan: "admin", Matkhau: "123456"}

	session, errMsg := resolveLogin(&admin, nil, "sai-mat-khau", time.Now())
	assert.Nil(t, session)
	assert.Equal(t, ErrMatKhauKhongDung, errMsg)
}

// Tài khoản có ở bảng QuanLy thì ThongTin không được xét tới,
// kể cả khi mật khẩu bên ThongTin khớp.
func TestResolveLoginAdminShadowsEmployee(t *testing.T) {
	admin := QuanLy{Taikhoan: "nva", Matkhau: "admin-pass"}

	session, errMsg := resolveLogin(&admin, nil, "employee-pass", time.Now())
	assert.Nil(t, session)
	assert.Equal(t, ErrMatKhauKhongDung, errMsg)
}

func TestResolveLoginEmployee(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	emp := ThongTin{Taikhoan: "nva", Matkhau: "abc123", ThoiHan: "2025-12-31"}

	session, errMsg := resolveLogin(nil, &emp, "abc123", now)
	require.Empty(t, errMsg)
	require.NotNil(t, session)
	assert.Equal(t, "employee", session.Type)
	assert.Equal(t, "nva", session.EmployeeData.Taikhoan)
	assert.Nil(t, session.AdminData)
}

func TestResolveLoginEmployeeWrongPassword(t *testing.T) {
	emp := ThongTin{Taikhoan: "nva", Matkhau: "abc123", ThoiHan: "2099-01-01"}

	session, errMsg := resolveLogin(nil, &emp, "xyz", time.Now())
	assert.Nil(t, session)
	assert.Equal(t, ErrMatKhauKhongDung, errMsg)
}

// Mật khẩu sai được báo trước khi xét thời hạn
func TestResolveLoginWrongPasswordBeforeExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	emp := ThongTin{Taikhoan: "nva", Matkhau: "abc123", ThoiHan: "2020-01-01"}

	session, errMsg := resolveLogin(nil, &emp, "xyz", now)
	assert.Nil(t, session)
	assert.Equal(t, ErrMatKhauKhongDung, errMsg)
}

func TestResolveLoginEmployeeExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	emp := ThongTin{Taikhoan: "nva", Matkhau: "abc123", ThoiHan: "2025-05-31"}

	session, errMsg := resolveLogin(nil, &emp, "abc123", now)
	assert.Nil(t, session)
	assert.Equal(t, ErrTaiKhoanHetHan, errMsg)
}

func TestResolveLoginUnknownAccount(t *testing.T) {
	session, errMsg := resolveLogin(nil, nil, "bat-ky", time.Now())
	assert.Nil(t, session)
	assert.Equal(t, ErrTaiKhoanKhongHopLe, errMsg)
}

func TestAccountExpired(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)

	// Đúng ngày hết hạn vẫn còn hiệu lực
	assert.False(t, accountExpired("2025-06-15", now))
	// Qua một ngày là hết hạn, bất kể giờ trong ngày
	assert.True(t, accountExpired("2025-06-14", now))
	assert.False(t, accountExpired("2025-06-16", now))
	// Chuỗi không phải ngày thì coi như chưa hết hạn
	assert.False(t, accountExpired("", now))
	assert.False(t, accountExpired("khong-phai-ngay", now))
}
