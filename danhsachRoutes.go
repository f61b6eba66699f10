// Danh sách nhân sự (bảng DanhSachNhanVien) — màn hình chỉ đọc: liệt kê,
// lọc, tìm kiếm và xuất Excel. Dòng danghiviec = true không bao giờ xuất
// hiện (soft delete).
package main

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

func DanhSachNhanVienRoutes(r *gin.Engine, db *sql.DB) {
	api := r.Group("/api/v1/danhsachnhanvien")

	// 🔐 Khu vực admin
	api.Use(AuthMiddleware(), RoleMiddleware("admin"))
	{
		api.GET("", func(c *gin.Context) {
			GetDanhSachNhanVien(c, db)
		})
		api.GET("/export", func(c *gin.Context) {
			ExportDanhSachNhanVien(c, db)
		})
		api.GET("/:id/giangvien", func(c *gin.Context) {
			GetHoSoGiangVien(c, db)
		})
	}
}

// RosterFilter gom các điều kiện lọc; tất cả điều kiện AND với nhau.
// Các trường danh mục lọc theo tên hiển thị đã resolve, không theo mã.
type RosterFilter struct {
	Search    string
	GioiTinh  string // "Nam" | "Nữ" | ""
	TrinhDo   string
	PhongBan  string
	ChucVu    string
	ChucDanh  string
	GiangVien string // "true" | "false" | ""
}

func rosterFilterFromQuery(c *gin.Context) RosterFilter {
	return RosterFilter{
		Search:    c.Query("search"),
		GioiTinh:  c.Query("gioitinh"),
		TrinhDo:   c.Query("trinhdo"),
		PhongBan:  c.Query("phongban"),
		ChucVu:    c.Query("chucvu"),
		ChucDanh:  c.Query("chucdanh"),
		GiangVien: c.Query("giangvien"),
	}
}

func fetchDanhSachNhanVien(db *sql.DB) ([]NhanVien, error) {
	rows, err := db.Query(`SELECT Id, manv, holot, ten, gioitinh, ngaysinh, noisinh, nguyenquan,
		noiohiennay, sodtdd, trinhdo, chucdanh, ngaychinhthuc, phongban, chucvu, socccd,
		ngaycap, noicap, danghiviec, email, giangvien, vithu, ngaythuviec, ngayqdtrogiang,
		ngayqdgiangvien, thoigiannghiviec, hinhanh, matkhau, hieuluc
		FROM DanhSachNhanVien WHERE danghiviec = false ORDER BY vithu ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []NhanVien
	for rows.Next() {
		var nv NhanVien
		if err := rows.Scan(&nv.Id, &nv.MaNV, &nv.Holot, &nv.Ten, &nv.GioiTinh, &nv.NgaySinh,
			&nv.NoiSinh, &nv.NguyenQuan, &nv.NoiOHienNay, &nv.SoDTDD, &nv.TrinhDo, &nv.ChucDanh,
			&nv.NgayChinhThuc, &nv.PhongBan, &nv.ChucVu, &nv.SoCCCD, &nv.NgayCap, &nv.NoiCap,
			&nv.DaNghiViec, &nv.Email, &nv.GiangVien, &nv.ViThu, &nv.NgayThuViec,
			&nv.NgayQDTroGiang, &nv.NgayQDGiangVien, &nv.ThoiGianNghiViec, &nv.HinhAnh,
			&nv.Matkhau, &nv.HieuLuc); err != nil {
			return nil, err
		}
		list = append(list, nv)
	}
	return list, rows.Err()
}

// JoinCatalogNames resolve các mã danh mục sang tên hiển thị bằng tìm tuyến
// tính. Mã không có trong danh mục thì giữ nguyên mã thô.
func JoinCatalogNames(list []NhanVien, tds []TrinhDo, pbs []PhongBan, cvs []ChucVu, cds []ChucDanh) {
	tdMap := make(map[string]string, len(tds))
	for _, td := range tds {
		tdMap[td.MaTrinhDo] = td.GiaTri
	}
	pbMap := make(map[string]string, len(pbs))
	for _, pb := range pbs {
		pbMap[pb.MaPhongBan] = pb.GiaTri
	}
	cvMap := make(map[string]string, len(cvs))
	for _, cv := range cvs {
		cvMap[cv.MaChucVu] = cv.GiaTri
	}
	cdMap := make(map[string]string, len(cds))
	for _, cd := range cds {
		cdMap[cd.MaChucDanh] = cd.GiaTri
	}

	for i := range list {
		nv := &list[i]
		if ten, ok := tdMap[nv.TrinhDo]; ok {
			nv.TenTrinhDo = ten
		} else {
			nv.TenTrinhDo = nv.TrinhDo
		}
		if ten, ok := pbMap[nv.PhongBan]; ok {
			nv.TenPhongBan = ten
		} else {
			nv.TenPhongBan = nv.PhongBan
		}
		if ten, ok := cvMap[nv.ChucVu]; ok {
			nv.TenChucVu = ten
		} else {
			nv.TenChucVu = nv.ChucVu
		}
		if ten, ok := cdMap[nv.ChucDanh]; ok {
			nv.TenChucDanh = ten
		} else {
			nv.TenChucDanh = nv.ChucDanh
		}
	}
}

// FilterNhanVien áp dụng AND của tìm kiếm tự do (tên, họ lót) và các bộ lọc
// phân loại. Gọi sau khi JoinCatalogNames vì lọc theo tên hiển thị.
func FilterNhanVien(list []NhanVien, f RosterFilter) []NhanVien {
	term := strings.ToLower(f.Search)
	var out []NhanVien
	for _, nv := range list {
		if term != "" &&
			!strings.Contains(strings.ToLower(nv.Ten), term) &&
			!strings.Contains(strings.ToLower(nv.Holot), term) {
			continue
		}
		if f.GioiTinh == "Nam" && !nv.GioiTinh {
			continue
		}
		if f.GioiTinh == "Nữ" && nv.GioiTinh {
			continue
		}
		if f.TrinhDo != "" && nv.TenTrinhDo != f.TrinhDo {
			continue
		}
		if f.PhongBan != "" && nv.TenPhongBan != f.PhongBan {
			continue
		}
		if f.ChucVu != "" && nv.TenChucVu != f.ChucVu {
			continue
		}
		if f.ChucDanh != "" && nv.TenChucDanh != f.ChucDanh {
			continue
		}
		if f.GiangVien == "true" && !nv.GiangVien {
			continue
		}
		if f.GiangVien == "false" && nv.GiangVien {
			continue
		}
		out = append(out, nv)
	}
	return out
}

// FormatNgay đổi YYYY-MM-DD sang DD-MM-YYYY; chuỗi khác dạng giữ nguyên.
func FormatNgay(s string) string {
	if s == "" {
		return ""
	}
	parts := strings.Split(s, "-")
	if len(parts) == 3 {
		return parts[2] + "-" + parts[1] + "-" + parts[0]
	}
	return s
}

// loadRoster nạp danh sách đang làm việc kèm bốn danh mục rồi resolve tên.
func loadRoster(db *sql.DB) ([]NhanVien, error) {
	tds, err := fetchTrinhDoList(db)
	if err != nil {
		return nil, err
	}
	pbs, err := fetchPhongBanList(db)
	if err != nil {
		return nil, err
	}
	cvs, err := fetchChucVuList(db)
	if err != nil {
		return nil, err
	}
	cds, err := fetchChucDanhList(db)
	if err != nil {
		return nil, err
	}
	list, err := fetchDanhSachNhanVien(db)
	if err != nil {
		return nil, err
	}
	JoinCatalogNames(list, tds, pbs, cvs, cds)
	return list, nil
}

func GetDanhSachNhanVien(c *gin.Context, db *sql.DB) {
	list, err := loadRoster(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi tải danh sách nhân viên: " + err.Error()})
		return
	}
	filtered := FilterNhanVien(list, rosterFilterFromQuery(c))
	c.JSON(http.StatusOK, gin.H{
		"total": len(filtered),
		"data":  filtered,
	})
}

func ExportDanhSachNhanVien(c *gin.Context, db *sql.DB) {
	list, err := loadRoster(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi tải danh sách nhân viên: " + err.Error()})
		return
	}
	filtered := FilterNhanVien(list, rosterFilterFromQuery(c))

	headers := []string{
		"STT", "ID", "Mã NV", "Họ lót", "Tên", "Ngày sinh", "Giới tính", "Trình độ",
		"Khoa / Phòng", "Chức vụ", "Chức danh", "Giảng viên", "Nơi sinh", "Nơi ở hiện nay",
		"SĐT", "Email", "Số CCCD", "Ngày cấp", "Nơi cấp", "Ngày thử việc", "Ngày chính thức",
		"Ngày QĐ Trợ giảng", "Ngày QĐ Giảng viên",
	}
	rows := make([][]interface{}, 0, len(filtered))
	for _, nv := range filtered {
		gioitinh := "Nữ"
		if nv.GioiTinh {
			gioitinh = "Nam"
		}
		giangvien := "Không"
		if nv.GiangVien {
			giangvien = "Có"
		}
		rows = append(rows, []interface{}{
			nv.ViThu, nv.Id, nv.MaNV, nv.Holot, nv.Ten, FormatNgay(nv.NgaySinh), gioitinh,
			nv.TenTrinhDo, nv.TenPhongBan, nv.TenChucVu, nv.TenChucDanh, giangvien,
			nv.NoiSinh, nv.NoiOHienNay, nv.SoDTDD, nv.Email, nv.SoCCCD, FormatNgay(nv.NgayCap),
			nv.NoiCap, FormatNgay(nv.NgayThuViec), FormatNgay(nv.NgayChinhThuc),
			FormatNgay(nv.NgayQDTroGiang), FormatNgay(nv.NgayQDGiangVien),
		})
	}

	f, err := BuildWorkbook("DanhSachNhanSu", headers, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Không tạo được file Excel: " + err.Error()})
		return
	}
	// Độ rộng cột ước lượng như bản gốc
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetColWidth("DanhSachNhanSu", "A", lastCol, 20); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Không tạo được file Excel: " + err.Error()})
		return
	}
	SendWorkbook(c, f, "DanhSachNhanSu_DAU.xlsx")
}

// Hồ sơ giảng viên: chỉ mở được với nhân sự có cờ giangvien.
func GetHoSoGiangVien(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}

	list, err := loadRoster(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi tải danh sách nhân viên: " + err.Error()})
		return
	}

	for _, nv := range list {
		if nv.Id != id {
			continue
		}
		if !nv.GiangVien {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nhân sự này không phải là giảng viên"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"hoten":           nv.Holot + " " + nv.Ten,
			"manv":            nv.MaNV,
			"chucvu":          nv.TenChucVu,
			"phongban":        nv.TenPhongBan,
			"hinhanh":         RewriteDriveURL(nv.HinhAnh),
			"ngayqdtrogiang":  FormatNgay(nv.NgayQDTroGiang),
			"ngayqdgiangvien": FormatNgay(nv.NgayQDGiangVien),
		})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "❌ Không tìm thấy nhân sự"})
}
