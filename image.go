package main

import (
	"net/url"
	"regexp"
	"strings"
)

// File ID của Google Drive: chuỗi chữ/số/gạch dài từ 25 ký tự
var driveIDPattern = regexp.MustCompile(`[-\w]{25,}`)

// RewriteDriveURL đổi link Google Drive/Docs sang dạng phục vụ ảnh trực tiếp
// (lh3.googleusercontent.com). URL khác giữ nguyên, chỉ trim khoảng trắng.
func RewriteDriveURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}
	if strings.Contains(u, "drive.google.com") || strings.Contains(u, "docs.google.com") {
		if id := driveIDPattern.FindString(u); id != "" {
			return "https://lh3.googleusercontent.com/d/" + id
		}
	}
	return u
}

// FallbackAvatarURL sinh ảnh đại diện thay thế theo tên khi ảnh gốc lỗi.
func FallbackAvatarURL(fullName string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(fullName) + "&background=0D8ABC&color=fff&size=128"
}
