// Thống kê tổng quan cho trang chủ admin.
package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func DashboardRoutes(r *gin.Engine, db *sql.DB) {
	api := r.Group("/api/v1/dashboard")

	api.Use(AuthMiddleware(), RoleMiddleware("admin"))
	{
		api.GET("/stats", func(c *gin.Context) {
			GetDashboardStats(c, db)
		})
	}
}

type EducationStats struct {
	TienSi  int `json:"tienSi"`
	ThacSi  int `json:"thacSi"`
	DaiHoc  int `json:"daiHoc"`
	CaoDang int `json:"caoDang"`
	Khac    int `json:"khac"`
}

type DashboardStats struct {
	Total         int            `json:"total"`
	Male          int            `json:"male"`
	Female        int            `json:"female"`
	Lecturers     int            `json:"lecturers"`
	LecturerRatio string         `json:"lecturerRatio"` // phần trăm, một chữ số thập phân
	Education     EducationStats `json:"education"`
}

// ClassifyTrinhDo xếp tên trình độ vào một trong năm nhóm.
// Thứ tự kiểm tra có ý nghĩa và phải giữ nguyên: tiến sĩ → thạc sĩ →
// đại học → cao đẳng → khác; nhóm khớp đầu tiên thắng (nên
// "Tiến sĩ khoa học" vẫn vào nhóm tiến sĩ).
func ClassifyTrinhDo(tenTrinhDo string) string {
	name := strings.ToLower(tenTrinhDo)
	switch {
	case strings.Contains(name, "tiến sĩ") || strings.Contains(name, "ts"):
		return "tienSi"
	case strings.Contains(name, "thạc sĩ") || strings.Contains(name, "ths"):
		return "thacSi"
	case strings.Contains(name, "đại học") || strings.Contains(name, "đh") ||
		strings.Contains(name, "cử nhân") || strings.Contains(name, "kỹ sư") ||
		strings.Contains(name, "kiến trúc sư"):
		return "daiHoc"
	case strings.Contains(name, "cao đẳng") || strings.Contains(name, "cđ"):
		return "caoDang"
	default:
		// Trung cấp, THPT, THCS và các trường hợp còn lại
		return "khac"
	}
}

// BuildDashboardStats tính thống kê trên danh sách đang làm việc.
func BuildDashboardStats(list []NhanVien, tds []TrinhDo) DashboardStats {
	var stats DashboardStats
	stats.Total = len(list)

	for _, nv := range list {
		if nv.GioiTinh {
			stats.Male++
		} else {
			stats.Female++
		}
		if nv.GiangVien {
			stats.Lecturers++
		}

		// Tìm tên trình độ theo mã lưu trên nhân sự
		tenTrinhDo := ""
		for _, td := range tds {
			if td.MaTrinhDo == nv.TrinhDo {
				tenTrinhDo = td.GiaTri
				break
			}
		}
		switch ClassifyTrinhDo(tenTrinhDo) {
		case "tienSi":
			stats.Education.TienSi++
		case "thacSi":
			stats.Education.ThacSi++
		case "daiHoc":
			stats.Education.DaiHoc++
		case "caoDang":
			stats.Education.CaoDang++
		default:
			stats.Education.Khac++
		}
	}

	if stats.Total > 0 {
		stats.LecturerRatio = fmt.Sprintf("%.1f", float64(stats.Lecturers)/float64(stats.Total)*100)
	} else {
		stats.LecturerRatio = "0"
	}
	return stats
}

func GetDashboardStats(c *gin.Context, db *sql.DB) {
	list, err := fetchDanhSachNhanVien(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi tải dữ liệu thống kê: " + err.Error()})
		return
	}
	tds, err := fetchTrinhDoList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi tải dữ liệu thống kê: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, BuildDashboardStats(list, tds))
}
