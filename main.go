package main

import (
	"log"

	"github.com/gin-gonic/gin"
)

func main() {
	// Kết nối cơ sở dữ liệu
	db, err := InitDB()
	if err != nil {
		log.Fatalf("❌ Không thể kết nối cơ sở dữ liệu: %v", err)
		return
	}

	r := gin.Default()
	r.Use(RequestIDMiddleware())

	// Đăng ký routes
	AuthRoutes(r, db)
	DanhMucChucVuRoutes(r, db)
	DanhMucTrinhDoRoutes(r, db)
	DanhMucPhongBanRoutes(r, db)
	DanhMucChucDanhRoutes(r, db)
	DanhMucNamHocRoutes(r, db)
	ThongTinRoutes(r, db)
	DanhSachNhanVienRoutes(r, db)
	DashboardRoutes(r, db)
	CardRoutes(r, db)

	// Khởi động server
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("❌ Không thể khởi động server: %v", err)
	}
}
