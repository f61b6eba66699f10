package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Route setup
func AuthRoutes(r *gin.Engine, db *sql.DB) {
	r.POST("/api/v1/login", func(c *gin.Context) {
		handleLogin(c, db)
	})
	r.GET("/api/v1/session", handleSession)

	auth := r.Group("/api/v1", AuthMiddleware())
	{
		auth.POST("/logout", handleLogout)
		auth.POST("/change-password", RoleMiddleware("admin"), func(c *gin.Context) {
			handleChangePassword(c, db)
		})
	}
}

// =================== LOGIN ===================

// Thông báo lỗi đăng nhập, phân biệt ba trường hợp cho UI
const (
	ErrTaiKhoanKhongHopLe = "a. Tài khoản không hợp lệ"
	ErrMatKhauKhongDung   = "b. Mật khẩu không đúng"
	ErrTaiKhoanHetHan     = "c. Tài khoản hết hạn sử dụng"
)

type LoginInput struct {
	Taikhoan string `json:"taikhoan" binding:"required"`
	Matkhau  string `json:"matkhau" binding:"required"`
}

func handleLogin(c *gin.Context, db *sql.DB) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Tài khoản và mật khẩu là bắt buộc"})
		return
	}

	// 1. Tìm trong bảng QuanLy trước. Nếu có thì không đụng tới ThongTin nữa,
	// kể cả khi tài khoản trùng tên ở cả hai bảng.
	if admin, found := findQuanLyByTaikhoan(db, input.Taikhoan); found {
		session, errMsg := resolveLogin(&admin, nil, input.Matkhau, time.Now())
		finishLogin(c, session, errMsg)
		return
	}

	// 2. Không phải admin thì tìm trong ThongTin
	if emp, found := findThongTinByTaikhoan(db, input.Taikhoan); found {
		session, errMsg := resolveLogin(nil, &emp, input.Matkhau, time.Now())
		finishLogin(c, session, errMsg)
		return
	}

	// 3. Không có ở cả hai bảng
	session, errMsg := resolveLogin(nil, nil, input.Matkhau, time.Now())
	finishLogin(c, session, errMsg)
}

// resolveLogin quyết định danh tính phiên từ kết quả tra cứu hai bảng.
// So sánh mật khẩu nguyên văn (plaintext) — giữ nguyên hành vi gốc, đây là
// điểm yếu bảo mật đã được ghi nhận, không "sửa ngầm".
func resolveLogin(admin *QuanLy, emp *ThongTin, matkhau string, now time.Time) (*UserSession, string) {
	if admin != nil {
		if admin.Matkhau == matkhau {
			return &UserSession{Type: "admin", AdminData: admin}, ""
		}
		return nil, ErrMatKhauKhongDung
	}

	if emp != nil {
		if emp.Matkhau != matkhau {
			return nil, ErrMatKhauKhongDung
		}
		if accountExpired(emp.ThoiHan, now) {
			return nil, ErrTaiKhoanHetHan
		}
		return &UserSession{Type: "employee", EmployeeData: emp}, ""
	}

	return nil, ErrTaiKhoanKhongHopLe
}

// accountExpired so sánh ngày hiện tại (cắt về đầu ngày) với thoihan.
// Đúng hạn (bằng ngày) vẫn đăng nhập được, quá một ngày mới hết hạn.
func accountExpired(thoihan string, now time.Time) bool {
	expiry, err := time.Parse("2006-01-02", thoihan)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.After(expiry)
}

func finishLogin(c *gin.Context, session *UserSession, errMsg string) {
	if errMsg != "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errMsg})
		return
	}

	var taikhoan string
	if session.Type == "admin" {
		taikhoan = session.AdminData.Taikhoan
	} else {
		taikhoan = session.EmployeeData.Taikhoan
	}

	token, err := GenerateToken(taikhoan, session.Type)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Không tạo được token"})
		return
	}

	// Đăng nhập mới ghi đè phiên cũ
	SetCurrentSession(session)

	c.JSON(http.StatusOK, gin.H{
		"message": "✅ Đăng nhập thành công",
		"token":   token,
		"role":    session.Type,
		"session": session,
	})
}

// =================== SESSION / LOGOUT ===================

func handleSession(c *gin.Context) {
	s := GetCurrentSession()
	c.JSON(http.StatusOK, gin.H{
		"view":    ViewForSession(s),
		"session": s,
	})
}

func handleLogout(c *gin.Context) {
	ClearCurrentSession()
	c.JSON(http.StatusOK, gin.H{"message": "✅ Đã đăng xuất"})
}

// =================== CHANGE PASSWORD ===================

type ChangePasswordInput struct {
	MatkhauCu      string `json:"matkhaucu" binding:"required"`
	MatkhauMoi     string `json:"matkhaumoi" binding:"required"`
	XacNhanMatkhau string `json:"xacnhanmatkhau" binding:"required"`
}

// Đổi mật khẩu admin hiện vẫn là placeholder như bản gốc: có độ trễ mô phỏng,
// kiểm tra mật khẩu cũ, nhưng không ghi gì xuống cơ sở dữ liệu.
func handleChangePassword(c *gin.Context, db *sql.DB) {
	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Thiếu thông tin đổi mật khẩu"})
		return
	}

	if input.MatkhauMoi != input.XacNhanMatkhau {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mật khẩu mới và xác nhận mật khẩu không khớp."})
		return
	}

	// Độ trễ mô phỏng xử lý
	time.Sleep(1500 * time.Millisecond)

	admin, found := findQuanLyByTaikhoan(db, GetTaikhoan(c))
	if !found || admin.Matkhau != input.MatkhauCu {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mật khẩu cũ không đúng."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mật khẩu đã được thay đổi thành công!"})
}

// =================== DATABASE HELPER ===================

func findQuanLyByTaikhoan(db *sql.DB, taikhoan string) (QuanLy, bool) {
	var q QuanLy
	err := db.QueryRow("SELECT taikhoan, matkhau FROM QuanLy WHERE taikhoan = ?", taikhoan).
		Scan(&q.Taikhoan, &q.Matkhau)
	return q, err == nil
}

func findThongTinByTaikhoan(db *sql.DB, taikhoan string) (ThongTin, bool) {
	var t ThongTin
	err := db.QueryRow(`SELECT id, taikhoan, matkhau, holot, ten, ngaysinh, trinhdo, chucvu,
		donvicongtac, sodienthoai, email, duongdan, thoihan
		FROM ThongTin WHERE taikhoan = ?`, taikhoan).
		Scan(&t.ID, &t.Taikhoan, &t.Matkhau, &t.Holot, &t.Ten, &t.NgaySinh, &t.TrinhDo,
			&t.ChucVu, &t.DonViCongTac, &t.SoDienThoai, &t.Email, &t.DuongDan, &t.ThoiHan)
	return t, err == nil
}
