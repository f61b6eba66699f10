package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQRPayload(t *testing.T) {
	emp := ThongTin{
		Holot:        "Nguyễn Văn",
		Ten:          "An",
		TrinhDo:      "Thạc sĩ",
		ChucVu:       "Giảng viên",
		DonViCongTac: "Khoa CNTT",
		SoDienThoai:  "0901234567",
		Email:        "an.nv@example.edu.vn",
	}

	want := "Họ tên: Nguyễn Văn An\n" +
		"Trình độ: Thạc sĩ\n" +
		"Chức vụ: Giảng viên\n" +
		"Đơn vị: Khoa CNTT\n" +
		"SĐT: 0901234567\n" +
		"Email: an.nv@example.edu.vn"
	assert.Equal(t, want, QRPayload(emp))
}
