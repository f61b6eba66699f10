package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteDriveURL(t *testing.T) {
	// Link chia sẻ Google Drive được đổi sang dạng phục vụ ảnh trực tiếp
	assert.Equal(t,
		"https://lh3.googleusercontent.com/d/1A2b3C4d5E6f7G8h9I0jKlMnOpQrStUvW",
		RewriteDriveURL("https://drive.google.com/file/d/1A2b3C4d5E6f7G8h9I0jKlMnOpQrStUvW/view?usp=sharing"))

	// Google Docs cũng được nhận
	assert.Equal(t,
		"https://lh3.googleusercontent.com/d/1A2b3C4d5E6f7G8h9I0jKlMnOpQrStUvW",
		RewriteDriveURL("https://docs.google.com/document/d/1A2b3C4d5E6f7G8h9I0jKlMnOpQrStUvW/edit"))

	// URL thường giữ nguyên, chỉ trim khoảng trắng
	assert.Equal(t, "https://example.com/anh.jpg", RewriteDriveURL("  https://example.com/anh.jpg  "))

	// Link Drive không trích được ID thì giữ nguyên
	assert.Equal(t, "https://drive.google.com/", RewriteDriveURL("https://drive.google.com/"))

	assert.Equal(t, "", RewriteDriveURL("   "))
}

func TestFallbackAvatarURL(t *testing.T) {
	assert.Equal(t,
		"https://ui-avatars.com/api/?name=Nguy%E1%BB%85n+V%C4%83n+An&background=0D8ABC&color=fff&size=128",
		FallbackAvatarURL("Nguyễn Văn An"))
}
