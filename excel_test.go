package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildWorkbook(t *testing.T) {
	headers := []string{"ID", "Mã Chức vụ", "Giá Trị"}
	rows := [][]interface{}{
		{1, "CV001", "Trưởng khoa"},
		{2, "CV002", "Phó khoa"},
	}

	f, err := BuildWorkbook("Danh mục Chức vụ", headers, rows)
	require.NoError(t, err)
	defer f.Close()

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	// Đọc lại file vừa ghi để kiểm tra nội dung
	read, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer read.Close()

	assert.Equal(t, []string{"Danh mục Chức vụ"}, read.GetSheetList())

	cell, err := read.GetCellValue("Danh mục Chức vụ", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Mã Chức vụ", cell)

	cell, err = read.GetCellValue("Danh mục Chức vụ", "C3")
	require.NoError(t, err)
	assert.Equal(t, "Phó khoa", cell)

	cell, err = read.GetCellValue("Danh mục Chức vụ", "A2")
	require.NoError(t, err)
	assert.Equal(t, "1", cell)
}

func TestBuildWorkbookEmpty(t *testing.T) {
	f, err := BuildWorkbook("DanhMucNamHoc", []string{"ID", "Mã Năm học"}, nil)
	require.NoError(t, err)
	defer f.Close()

	cell, err := f.GetCellValue("DanhMucNamHoc", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", cell)

	cell, err = f.GetCellValue("DanhMucNamHoc", "A2")
	require.NoError(t, err)
	assert.Empty(t, cell)
}
