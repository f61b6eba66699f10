package main

import "sync"

// UserSession phân biệt phiên admin hay nhân viên, giữ đúng một trong hai
// tham chiếu QuanLy/ThongTin. Không lưu bền, mất khi tiến trình khởi động lại.
type UserSession struct {
	Type         string    `json:"type"` // "admin" hoặc "employee"
	AdminData    *QuanLy   `json:"adminData,omitempty"`
	EmployeeData *ThongTin `json:"employeeData,omitempty"`
}

// Khe phiên duy nhất của tiến trình: đăng nhập ghi đè, đăng xuất xóa.
var (
	sessionMu      sync.Mutex
	currentSession *UserSession
)

func SetCurrentSession(s *UserSession) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	currentSession = s
}

func ClearCurrentSession() {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	currentSession = nil
}

func GetCurrentSession() *UserSession {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	return currentSession
}

// ViewForSession ánh xạ trạng thái phiên sang màn hình cần hiển thị.
// Nhánh "loading" chỉ là phòng hờ, bình thường không đi tới.
func ViewForSession(s *UserSession) string {
	if s == nil {
		return "login"
	}
	if s.Type == "admin" {
		return "admin"
	}
	if s.Type == "employee" && s.EmployeeData != nil {
		return "employee"
	}
	return "loading"
}
