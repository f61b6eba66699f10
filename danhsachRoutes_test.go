package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rosterFixture() []NhanVien {
	return []NhanVien{
		{Id: 1, Holot: "Nguyễn Văn", Ten: "An", GioiTinh: true, GiangVien: true,
			TenTrinhDo: "Tiến sĩ", TenPhongBan: "Khoa CNTT", TenChucVu: "Trưởng khoa", TenChucDanh: "Giảng viên chính"},
		{Id: 2, Holot: "Trần Thị", Ten: "Bình", GioiTinh: false, GiangVien: true,
			TenTrinhDo: "Thạc sĩ", TenPhongBan: "Khoa CNTT", TenChucVu: "Giảng viên", TenChucDanh: "Giảng viên"},
		{Id: 3, Holot: "Lê Văn", Ten: "Cường", GioiTinh: true, GiangVien: false,
			TenTrinhDo: "Đại học", TenPhongBan: "Phòng Đào tạo", TenChucVu: "Chuyên viên", TenChucDanh: "Chuyên viên"},
	}
}

func TestFilterNhanVienSearch(t *testing.T) {
	list := rosterFixture()

	// Khớp trên tên, không phân biệt hoa thường
	out := FilterNhanVien(list, RosterFilter{Search: "bình"})
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].Id)

	// Khớp trên họ lót
	out = FilterNhanVien(list, RosterFilter{Search: "văn"})
	assert.Len(t, out, 2)

	assert.Empty(t, FilterNhanVien(list, RosterFilter{Search: "không có ai"}))
}

func TestFilterNhanVienAndConditions(t *testing.T) {
	list := rosterFixture()

	// Các điều kiện AND với nhau
	out := FilterNhanVien(list, RosterFilter{GioiTinh: "Nam", PhongBan: "Khoa CNTT"})
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].Id)

	out = FilterNhanVien(list, RosterFilter{GioiTinh: "Nữ"})
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].Id)

	out = FilterNhanVien(list, RosterFilter{GiangVien: "false"})
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].Id)

	out = FilterNhanVien(list, RosterFilter{TrinhDo: "Tiến sĩ", ChucVu: "Giảng viên"})
	assert.Empty(t, out)

	// Không có điều kiện nào thì giữ nguyên
	assert.Len(t, FilterNhanVien(list, RosterFilter{}), 3)
}

func TestFormatNgay(t *testing.T) {
	assert.Equal(t, "15-06-2025", FormatNgay("2025-06-15"))
	assert.Equal(t, "", FormatNgay(""))
	// Chuỗi khác dạng giữ nguyên
	assert.Equal(t, "15/06/2025", FormatNgay("15/06/2025"))
}

func TestJoinCatalogNames(t *testing.T) {
	list := []NhanVien{
		{TrinhDo: "TD001", PhongBan: "PB001", ChucVu: "CV001", ChucDanh: "CD001"},
		// Mã không có trong danh mục giữ nguyên mã thô
		{TrinhDo: "TD999", PhongBan: "PB999", ChucVu: "CV999", ChucDanh: "CD999"},
	}
	JoinCatalogNames(list,
		[]TrinhDo{{MaTrinhDo: "TD001", GiaTri: "Tiến sĩ"}},
		[]PhongBan{{MaPhongBan: "PB001", GiaTri: "Khoa CNTT"}},
		[]ChucVu{{MaChucVu: "CV001", GiaTri: "Trưởng khoa"}},
		[]ChucDanh{{MaChucDanh: "CD001", GiaTri: "Giảng viên chính"}})

	assert.Equal(t, "Tiến sĩ", list[0].TenTrinhDo)
	assert.Equal(t, "Khoa CNTT", list[0].TenPhongBan)
	assert.Equal(t, "Trưởng khoa", list[0].TenChucVu)
	assert.Equal(t, "Giảng viên chính", list[0].TenChucDanh)

	assert.Equal(t, "TD999", list[1].TenTrinhDo)
	assert.Equal(t, "PB999", list[1].TenPhongBan)
	assert.Equal(t, "CV999", list[1].TenChucVu)
	assert.Equal(t, "CD999", list[1].TenChucDanh)
}
