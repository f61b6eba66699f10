// CRUD tài khoản nhân viên (bảng ThongTin). Bảng này tách biệt với
// DanhSachNhanVien: xóa ở đây là xóa vật lý, không có cờ nghỉ việc.
package main

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func ThongTinRoutes(r *gin.Engine, db *sql.DB) {
	api := r.Group("/api/v1/thongtin")

	// 🔐 Khu vực admin
	api.Use(AuthMiddleware(), RoleMiddleware("admin"))
	{
		api.GET("", func(c *gin.Context) {
			GetAllThongTin(c, db)
		})
		api.POST("", func(c *gin.Context) {
			CreateThongTin(c, db)
		})
		api.PATCH("/:id", func(c *gin.Context) {
			UpdateThongTin(c, db)
		})
		api.DELETE("/:id", func(c *gin.Context) {
			DeleteThongTin(c, db)
		})
	}
}

type ThongTinInput struct {
	Taikhoan     string `json:"taikhoan" binding:"required"`
	Matkhau      string `json:"matkhau" binding:"required"`
	Holot        string `json:"holot"`
	Ten          string `json:"ten" binding:"required"`
	NgaySinh     string `json:"ngaysinh"`
	TrinhDo      string `json:"trinhdo"`
	ChucVu       string `json:"chucvu"`
	DonViCongTac string `json:"donvicongtac"`
	SoDienThoai  string `json:"sodienthoai"`
	Email        string `json:"email"`
	DuongDan     string `json:"duongdan"`
	ThoiHan      string `json:"thoihan" binding:"required"` // YYYY-MM-DD
}

func fetchThongTinList(db *sql.DB) ([]ThongTin, error) {
	rows, err := db.Query(`SELECT id, taikhoan, matkhau, holot, ten, ngaysinh, trinhdo, chucvu,
		donvicongtac, sodienthoai, email, duongdan, thoihan
		FROM ThongTin ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []ThongTin
	for rows.Next() {
		var t ThongTin
		if err := rows.Scan(&t.ID, &t.Taikhoan, &t.Matkhau, &t.Holot, &t.Ten, &t.NgaySinh,
			&t.TrinhDo, &t.ChucVu, &t.DonViCongTac, &t.SoDienThoai, &t.Email, &t.DuongDan,
			&t.ThoiHan); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func filterThongTin(list []ThongTin, search string) []ThongTin {
	if search == "" {
		return list
	}
	term := strings.ToLower(search)
	var out []ThongTin
	for _, t := range list {
		if strings.Contains(strings.ToLower(t.Taikhoan), term) ||
			strings.Contains(strings.ToLower(t.Holot), term) ||
			strings.Contains(strings.ToLower(t.Ten), term) {
			out = append(out, t)
		}
	}
	return out
}

func GetAllThongTin(c *gin.Context, db *sql.DB) {
	list, err := fetchThongTinList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh sách tài khoản: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, filterThongTin(list, c.Query("search")))
}

func CreateThongTin(c *gin.Context, db *sql.DB) {
	var input ThongTinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Tài khoản, mật khẩu, tên và thời hạn là bắt buộc"})
		return
	}

	// Tài khoản đăng nhập phải duy nhất
	if _, found := findThongTinByTaikhoan(db, input.Taikhoan); found {
		c.JSON(http.StatusConflict, gin.H{"error": "❌ Tài khoản đã tồn tại"})
		return
	}

	if _, err := db.Exec(`INSERT INTO ThongTin (taikhoan, matkhau, holot, ten, ngaysinh, trinhdo,
		chucvu, donvicongtac, sodienthoai, email, duongdan, thoihan)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		input.Taikhoan, input.Matkhau, input.Holot, input.Ten, input.NgaySinh, input.TrinhDo,
		input.ChucVu, input.DonViCongTac, input.SoDienThoai, input.Email, input.DuongDan,
		input.ThoiHan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Thêm mới thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "✅ Đã thêm tài khoản " + input.Taikhoan})
}

func UpdateThongTin(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}

	var input ThongTinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Tài khoản, mật khẩu, tên và thời hạn là bắt buộc"})
		return
	}

	var exists bool
	if err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM ThongTin WHERE id = ?)", id).Scan(&exists); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi kiểm tra tài khoản: " + err.Error()})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "❌ Không tìm thấy tài khoản"})
		return
	}

	// Tài khoản trùng với một dòng khác thì từ chối
	if existing, found := findThongTinByTaikhoan(db, input.Taikhoan); found && existing.ID != id {
		c.JSON(http.StatusConflict, gin.H{"error": "❌ Tài khoản đã tồn tại"})
		return
	}

	if _, err := db.Exec(`UPDATE ThongTin SET taikhoan = ?, matkhau = ?, holot = ?, ten = ?,
		ngaysinh = ?, trinhdo = ?, chucvu = ?, donvicongtac = ?, sodienthoai = ?, email = ?,
		duongdan = ?, thoihan = ? WHERE id = ?`,
		input.Taikhoan, input.Matkhau, input.Holot, input.Ten, input.NgaySinh, input.TrinhDo,
		input.ChucVu, input.DonViCongTac, input.SoDienThoai, input.Email, input.DuongDan,
		input.ThoiHan, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cập nhật thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Đã cập nhật tài khoản"})
}

// Xóa vật lý — bảng ThongTin không dùng soft delete
func DeleteThongTin(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}
	if _, err := db.Exec("DELETE FROM ThongTin WHERE id = ?", id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Xóa thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Đã xóa tài khoản"})
}
