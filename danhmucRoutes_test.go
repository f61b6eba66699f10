package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextCode(t *testing.T) {
	// Lấy hậu tố lớn nhất + 1, không lấp chỗ trống
	assert.Equal(t, "CV004", NextCode("CV", []string{"CV001", "CV003"}))
	// Danh sách rỗng bắt đầu từ 001
	assert.Equal(t, "CV001", NextCode("CV", nil))
	// Mã sai tiền tố hoặc hậu tố không phải số bị bỏ qua
	assert.Equal(t, "PB002", NextCode("PB", []string{"PB001", "CV009", "PBx"}))
	// Qua 999 thì không đệm nữa
	assert.Equal(t, "CD1000", NextCode("CD", []string{"CD999"}))
}

func TestNextNamHocCode(t *testing.T) {
	assert.Equal(t, "1", NextNamHocCode(nil))
	assert.Equal(t, "4", NextNamHocCode([]string{"1", "2", "3"}))
	assert.Equal(t, "11", NextNamHocCode([]string{"10", "2"}))
	// Mã không phải số dương bị bỏ qua
	assert.Equal(t, "3", NextNamHocCode([]string{"2", "abc", "-5"}))
}

func TestSameValue(t *testing.T) {
	assert.True(t, sameValue("Trưởng khoa", "trưởng khoa"))
	assert.True(t, sameValue("  Trưởng khoa  ", "Trưởng khoa"))
	assert.False(t, sameValue("Trưởng khoa", "Phó khoa"))
}

func TestCheckChucVuDuplicate(t *testing.T) {
	list := []ChucVu{
		{ID: 1, MaChucVu: "CV001", GiaTri: "Trưởng khoa"},
		{ID: 2, MaChucVu: "CV002", GiaTri: "Phó khoa"},
	}

	// Mã trùng nguyên văn
	msg := checkChucVuDuplicate(list, ChucVu{MaChucVu: "CV001", GiaTri: "Giảng viên"}, false)
	assert.Equal(t, "Mã chức vụ đã tồn tại. Vui lòng chọn mã khác.", msg)

	// Giá trị trùng không phân biệt hoa thường, khoảng trắng
	msg = checkChucVuDuplicate(list, ChucVu{MaChucVu: "CV003", GiaTri: " phó khoa "}, false)
	assert.Equal(t, "Giá trị chức vụ đã tồn tại. Vui lòng nhập giá trị khác.", msg)

	// Sửa chính dòng đó, giữ nguyên giá trị thì không tính là trùng
	msg = checkChucVuDuplicate(list, ChucVu{ID: 2, MaChucVu: "CV002", GiaTri: "Phó khoa"}, true)
	assert.Empty(t, msg)

	// Sửa sang giá trị của dòng khác vẫn bị chặn
	msg = checkChucVuDuplicate(list, ChucVu{ID: 2, MaChucVu: "CV002", GiaTri: "Trưởng khoa"}, true)
	assert.Equal(t, "Giá trị chức vụ đã tồn tại. Vui lòng nhập giá trị khác.", msg)

	msg = checkChucVuDuplicate(list, ChucVu{MaChucVu: "CV003", GiaTri: "Giảng viên"}, false)
	assert.Empty(t, msg)
}

// Mã năm học so khớp mềm (khác chức vụ/phòng ban so nguyên văn)
func TestCheckNamHocDuplicate(t *testing.T) {
	list := []NamHoc{
		{ID: 1, MaNamHoc: "1", GiaTri: "2023-2024"},
		{ID: 2, MaNamHoc: "2", GiaTri: "2024-2025"},
	}

	msg := checkNamHocDuplicate(list, NamHoc{MaNamHoc: " 1 ", GiaTri: "2025-2026"}, false)
	assert.Equal(t, "Mã năm học đã tồn tại. Vui lòng chọn mã khác.", msg)

	msg = checkNamHocDuplicate(list, NamHoc{MaNamHoc: "3", GiaTri: "2024-2025 "}, false)
	assert.Equal(t, "Giá trị năm học đã tồn tại. Vui lòng nhập giá trị khác.", msg)

	msg = checkNamHocDuplicate(list, NamHoc{ID: 2, MaNamHoc: "2", GiaTri: "2024-2025"}, true)
	assert.Empty(t, msg)
}

func TestFilterChucVu(t *testing.T) {
	list := []ChucVu{
		{ID: 1, MaChucVu: "CV001", GiaTri: "Trưởng khoa"},
		{ID: 2, MaChucVu: "CV002", GiaTri: "Phó khoa"},
		{ID: 3, MaChucVu: "CV003", GiaTri: "Giảng viên"},
	}

	// Không có từ khóa trả nguyên danh sách
	assert.Len(t, filterChucVu(list, ""), 3)

	// Khớp trên giá trị, không phân biệt hoa thường
	out := filterChucVu(list, "khoa")
	assert.Len(t, out, 2)

	// Khớp trên mã
	out = filterChucVu(list, "cv003")
	assert.Len(t, out, 1)
	assert.Equal(t, "Giảng viên", out[0].GiaTri)

	assert.Empty(t, filterChucVu(list, "hieu truong"))
}
