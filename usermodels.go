package main

// QuanLy là tài khoản quản trị, được quản lý ngoài hệ thống (không có đăng ký)
type QuanLy struct {
	Taikhoan string `json:"taikhoan"`
	Matkhau  string `json:"matkhau"` // mật khẩu lưu dạng plaintext (điểm yếu đã biết, giữ nguyên hành vi)
}

// ThongTin là tài khoản/hồ sơ nhân viên dùng để đăng nhập và hiển thị thẻ.
// Đây là bảng riêng, đơn giản hơn DanhSachNhanVien — hai tập dữ liệu độc lập.
type ThongTin struct {
	ID           int    `json:"id"`
	Taikhoan     string `json:"taikhoan"`
	Matkhau      string `json:"matkhau"`
	Holot        string `json:"holot"`
	Ten          string `json:"ten"`
	NgaySinh     string `json:"ngaysinh"` // YYYY-MM-DD
	TrinhDo      string `json:"trinhdo"`
	ChucVu       string `json:"chucvu"`
	DonViCongTac string `json:"donvicongtac"`
	SoDienThoai  string `json:"sodienthoai"`
	Email        string `json:"email"`
	DuongDan     string `json:"duongdan"` // URL ảnh
	ThoiHan      string `json:"thoihan"`  // YYYY-MM-DD, hạn sử dụng tài khoản
}
