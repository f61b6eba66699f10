// Thẻ nhân viên điện tử cho tài khoản employee đã đăng nhập.
package main

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

func CardRoutes(r *gin.Engine, db *sql.DB) {
	api := r.Group("/api/v1/card")

	api.Use(AuthMiddleware(), RoleMiddleware("employee"))
	{
		api.GET("", func(c *gin.Context) {
			GetEmployeeCard(c, db)
		})
		api.GET("/qr", func(c *gin.Context) {
			GetEmployeeCardQR(c, db)
		})
	}
}

// QRPayload là khối văn bản nhiều dòng được mã hóa vào QR trên thẻ.
func QRPayload(emp ThongTin) string {
	return fmt.Sprintf("Họ tên: %s %s\nTrình độ: %s\nChức vụ: %s\nĐơn vị: %s\nSĐT: %s\nEmail: %s",
		emp.Holot, emp.Ten, emp.TrinhDo, emp.ChucVu, emp.DonViCongTac, emp.SoDienThoai, emp.Email)
}

func GetEmployeeCard(c *gin.Context, db *sql.DB) {
	emp, found := findThongTinByTaikhoan(db, GetTaikhoan(c))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "❌ Không tìm thấy hồ sơ nhân viên"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hoten":        emp.Holot + " " + emp.Ten,
		"email":        emp.Email,
		"trinhdo":      emp.TrinhDo,
		"chucvu":       emp.ChucVu,
		"donvicongtac": emp.DonViCongTac,
		"sodienthoai":  emp.SoDienThoai,
		"hinhanh":      RewriteDriveURL(emp.DuongDan),
		// Ảnh thay thế khi ảnh gốc lỗi — client dùng, không bao giờ là lỗi
		"anhthaythe": FallbackAvatarURL(emp.Holot + " " + emp.Ten),
		"qr":         QRPayload(emp),
	})
}

func GetEmployeeCardQR(c *gin.Context, db *sql.DB) {
	emp, found := findThongTinByTaikhoan(db, GetTaikhoan(c))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "❌ Không tìm thấy hồ sơ nhân viên"})
		return
	}

	png, err := qrcode.Encode(QRPayload(emp), qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Không tạo được mã QR: " + err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
