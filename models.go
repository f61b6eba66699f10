package main

// Danh mục Chức vụ
type ChucVu struct {
	ID       int    `json:"id"`
	MaChucVu string `json:"machucvu"`
	GiaTri   string `json:"giatri"`
}

// Danh mục Trình độ
type TrinhDo struct {
	ID        int    `json:"id"`
	MaTrinhDo string `json:"matrinhdo"`
	GiaTri    string `json:"giatri"`
	GhiChu    string `json:"ghichu"`
}

// Danh mục Khoa/Phòng
type PhongBan struct {
	ID         int    `json:"id"`
	MaPhongBan string `json:"maphongban"`
	GiaTri     string `json:"giatri"`
	SapXep     int    `json:"sapxep"`
}

// Danh mục Chức danh
type ChucDanh struct {
	ID         int    `json:"id"`
	MaChucDanh string `json:"machucdanh"`
	GiaTri     string `json:"giatri"`
	GhiChu     string `json:"ghichu"`
}

// Danh mục Năm học (mã dạng số, không có tiền tố)
type NamHoc struct {
	ID       int    `json:"id"`
	MaNamHoc string `json:"manamhoc"`
	GiaTri   string `json:"giatri"`
	MacDinh  bool   `json:"macdinh"`
}

// NhanVien là một dòng trong bảng DanhSachNhanVien (danh sách nhân sự đầy đủ).
// Các trường mã (trinhdo, chucdanh, phongban, chucvu) tham chiếu danh mục
// theo kiểu chuỗi, được resolve khi hiển thị/xuất — thiếu dòng danh mục thì
// hiển thị mã thô.
type NhanVien struct {
	Id               int    `json:"Id"`
	MaNV             string `json:"manv"`
	Holot            string `json:"holot"`
	Ten              string `json:"ten"`
	GioiTinh         bool   `json:"gioitinh"` // true = Nam
	NgaySinh         string `json:"ngaysinh"`
	NoiSinh          string `json:"noisinh"`
	NguyenQuan       string `json:"nguyenquan"`
	NoiOHienNay      string `json:"noiohiennay"`
	SoDTDD           string `json:"sodtdd"`
	TrinhDo          string `json:"trinhdo"`  // Mã trình độ
	ChucDanh         string `json:"chucdanh"` // Mã chức danh
	NgayChinhThuc    string `json:"ngaychinhthuc"`
	PhongBan         string `json:"phongban"` // Mã phòng ban
	ChucVu           string `json:"chucvu"`   // Mã chức vụ
	SoCCCD           string `json:"socccd"`
	NgayCap          string `json:"ngaycap"`
	NoiCap           string `json:"noicap"`
	DaNghiViec       bool   `json:"danghiviec"` // soft delete, không xóa vật lý
	Email            string `json:"email"`
	GiangVien        bool   `json:"giangvien"`
	ViThu            int    `json:"vithu"`
	NgayThuViec      string `json:"ngaythuviec"`
	NgayQDTroGiang   string `json:"ngayqdtrogiang"`
	NgayQDGiangVien  string `json:"ngayqdgiangvien"`
	ThoiGianNghiViec string `json:"thoigiannghiviec"`
	HinhAnh          string `json:"hinhanh"`
	Matkhau          string `json:"matkhau"`
	HieuLuc          string `json:"hieuluc"`

	// Tên hiển thị sau khi resolve từ danh mục
	TenTrinhDo  string `json:"ten_trinhdo,omitempty"`
	TenPhongBan string `json:"ten_phongban,omitempty"`
	TenChucVu   string `json:"ten_chucvu,omitempty"`
	TenChucDanh string `json:"ten_chucdanh,omitempty"`
}
