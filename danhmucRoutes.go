// CRUD cho năm danh mục: Chức vụ, Trình độ, Khoa/Phòng, Chức danh, Năm học.
package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// =======================
// 🧩 Helper Functions
// =======================

// GetIDParam đọc tham số :id trên URL và đổi sang số nguyên.
func GetIDParam(c *gin.Context) (int, bool) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ ID phải là số"})
		return 0, false
	}
	return id, true
}

// sameValue so sánh hai giá trị hiển thị: bỏ khoảng trắng đầu/cuối,
// không phân biệt hoa thường.
func sameValue(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// NextCode sinh mã kế tiếp theo tiền tố: lọc các mã dạng tiền tố + số,
// lấy hậu tố lớn nhất rồi cộng một, đệm không thành 3 chữ số.
// Không atomic — hai lần thêm đồng thời có thể sinh trùng mã (hạn chế
// được giữ nguyên từ bản gốc).
func NextCode(prefix string, codes []string) string {
	maxNum := 0
	for _, code := range codes {
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		n, err := strconv.Atoi(code[len(prefix):])
		if err != nil {
			continue
		}
		if n > maxNum {
			maxNum = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, maxNum+1)
}

// NextNamHocCode sinh mã năm học dạng số thuần: max + 1, mặc định "1".
func NextNamHocCode(codes []string) string {
	maxNum := 0
	for _, code := range codes {
		n, err := strconv.Atoi(strings.TrimSpace(code))
		if err != nil || n <= 0 {
			continue
		}
		if n > maxNum {
			maxNum = n
		}
	}
	return strconv.Itoa(maxNum + 1)
}

// =========================
// 🗂️ Danh mục Chức vụ
// =========================

func DanhMucChucVuRoutes(r *gin.Engine, db *sql.DB) {
	api := r.Group("/api/v1/danhmuc/chucvu")

	// 🔐 Khu vực admin
	api.Use(AuthMiddleware(), RoleMiddleware("admin"))
	{
		api.GET("", func(c *gin.Context) {
			GetAllChucVu(c, db)
		})
		api.GET("/export", func(c *gin.Context) {
			ExportChucVu(c, db)
		})
		api.POST("", func(c *gin.Context) {
			CreateChucVu(c, db)
		})
		api.PATCH("/:id", func(c *gin.Context) {
			UpdateChucVu(c, db)
		})
		api.DELETE("/:id", func(c *gin.Context) {
			DeleteChucVu(c, db)
		})
	}
}

func fetchChucVuList(db *sql.DB) ([]ChucVu, error) {
	rows, err := db.Query("SELECT id, machucvu, giatri FROM DanhMucChucVu ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []ChucVu
	for rows.Next() {
		var cv ChucVu
		if err := rows.Scan(&cv.ID, &cv.MaChucVu, &cv.GiaTri); err != nil {
			return nil, err
		}
		list = append(list, cv)
	}
	return list, rows.Err()
}

// filterChucVu tìm theo chuỗi con, không phân biệt hoa thường,
// trên mã và giá trị.
func filterChucVu(list []ChucVu, search string) []ChucVu {
	if search == "" {
		return list
	}
	term := strings.ToLower(search)
	var out []ChucVu
	for _, cv := range list {
		if strings.Contains(strings.ToLower(cv.MaChucVu), term) ||
			strings.Contains(strings.ToLower(cv.GiaTri), term) {
			out = append(out, cv)
		}
	}
	return out
}

// checkChucVuDuplicate quét trùng trên danh sách đã nạp trong bộ nhớ
// (không query lại server — có thể sai dưới sửa đổi đồng thời, giữ nguyên).
func checkChucVuDuplicate(list []ChucVu, cur ChucVu, editing bool) string {
	for _, cv := range list {
		if editing && cv.ID == cur.ID {
			continue
		}
		if cv.MaChucVu == cur.MaChucVu {
			return "Mã chức vụ đã tồn tại. Vui lòng chọn mã khác."
		}
	}
	for _, cv := range list {
		if editing && cv.ID == cur.ID {
			continue
		}
		if sameValue(cv.GiaTri, cur.GiaTri) {
			return "Giá trị chức vụ đã tồn tại. Vui lòng nhập giá trị khác."
		}
	}
	return ""
}

func chucVuCodes(list []ChucVu) []string {
	codes := make([]string, 0, len(list))
	for _, cv := range list {
		codes = append(codes, cv.MaChucVu)
	}
	return codes
}

func GetAllChucVu(c *gin.Context, db *sql.DB) {
	list, err := fetchChucVuList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Chức vụ: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, filterChucVu(list, c.Query("search")))
}

func CreateChucVu(c *gin.Context, db *sql.DB) {
	var input ChucVu
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Dữ liệu không hợp lệ"})
		return
	}
	if strings.TrimSpace(input.GiaTri) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Giá trị không được để trống."})
		return
	}

	list, err := fetchChucVuList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Chức vụ: " + err.Error()})
		return
	}

	if input.MaChucVu == "" {
		input.MaChucVu = NextCode("CV", chucVuCodes(list))
	}
	if msg := checkChucVuDuplicate(list, input, false); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if _, err := db.Exec("INSERT INTO DanhMucChucVu (machucvu, giatri) VALUES (?, ?)",
		input.MaChucVu, input.GiaTri); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Thêm mới thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "✅ Đã thêm chức vụ " + input.MaChucVu})
}

func UpdateChucVu(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}

	var input ChucVu
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Dữ liệu không hợp lệ"})
		return
	}
	if strings.TrimSpace(input.GiaTri) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Giá trị không được để trống."})
		return
	}

	list, err := fetchChucVuList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Chức vụ: " + err.Error()})
		return
	}

	var existing *ChucVu
	for i := range list {
		if list[i].ID == id {
			existing = &list[i]
			break
		}
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "❌ Không tìm thấy chức vụ"})
		return
	}

	// Mã không đổi khi hiệu chỉnh
	input.ID = id
	input.MaChucVu = existing.MaChucVu
	if msg := checkChucVuDuplicate(list, input, true); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if _, err := db.Exec("UPDATE DanhMucChucVu SET giatri = ? WHERE id = ?",
		input.GiaTri, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cập nhật thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Đã cập nhật chức vụ"})
}

func DeleteChucVu(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}
	if _, err := db.Exec("DELETE FROM DanhMucChucVu WHERE id = ?", id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Xóa thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Đã xóa chức vụ"})
}

func ExportChucVu(c *gin.Context, db *sql.DB) {
	list, err := fetchChucVuList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Chức vụ: " + err.Error()})
		return
	}
	filtered := filterChucVu(list, c.Query("search"))

	rows := make([][]interface{}, 0, len(filtered))
	for _, cv := range filtered {
		rows = append(rows, []interface{}{cv.ID, cv.MaChucVu, cv.GiaTri})
	}
	f, err := BuildWorkbook("Danh mục Chức vụ", []string{"ID", "Mã Chức vụ", "Giá Trị"}, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Không tạo được file Excel: " + err.Error()})
		return
	}
	SendWorkbook(c, f, "DanhMucChucVu.xlsx")
}

// =========================
// 🎓 Danh mục Trình độ
// =========================
// Danh mục này không có thao tác thêm mới — chỉ hiệu chỉnh, xóa và xuất,
// đúng như màn hình gốc.

func DanhMucTrinhDoRoutes(r *gin.Engine, db *sql.DB) {
	api := r.Group("/api/v1/danhmuc/trinhdo")

	api.Use(AuthMiddleware(), RoleMiddleware("admin"))
	{
		api.GET("", func(c *gin.Context) {
			GetAllTrinhDo(c, db)
		})
		api.GET("/export", func(c *gin.Context) {
			ExportTrinhDo(c, db)
		})
		api.PATCH("/:id", func(c *gin.Context) {
			UpdateTrinhDo(c, db)
		})
		api.DELETE("/:id", func(c *gin.Context) {
			DeleteTrinhDo(c, db)
		})
	}
}

func fetchTrinhDoList(db *sql.DB) ([]TrinhDo, error) {
	rows, err := db.Query("SELECT id, matrinhdo, giatri, ghichu FROM DanhMucTrinhDo ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []TrinhDo
	for rows.Next() {
		var td TrinhDo
		if err := rows.Scan(&td.ID, &td.MaTrinhDo, &td.GiaTri, &td.GhiChu); err != nil {
			return nil, err
		}
		list = append(list, td)
	}
	return list, rows.Err()
}

func filterTrinhDo(list []TrinhDo, search string) []TrinhDo {
	if search == "" {
		return list
	}
	term := strings.ToLower(search)
	var out []TrinhDo
	for _, td := range list {
		if strings.Contains(strings.ToLower(td.MaTrinhDo), term) ||
			strings.Contains(strings.ToLower(td.GiaTri), term) ||
			strings.Contains(strings.ToLower(td.GhiChu), term) {
			out = append(out, td)
		}
	}
	return out
}

func checkTrinhDoDuplicate(list []TrinhDo, cur TrinhDo) string {
	for _, td := range list {
		if td.ID == cur.ID {
			continue
		}
		if sameValue(td.GiaTri, cur.GiaTri) {
			return "Giá trị trình độ đã tồn tại. Vui lòng nhập giá trị khác."
		}
	}
	return ""
}

func GetAllTrinhDo(c *gin.Context, db *sql.DB) {
	list, err := fetchTrinhDoList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Trình độ: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, filterTrinhDo(list, c.Query("search")))
}

func UpdateTrinhDo(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}

	var input TrinhDo
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Dữ liệu không hợp lệ"})
		return
	}
	if strings.TrimSpace(input.GiaTri) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Giá trị không được để trống."})
		return
	}

	list, err := fetchTrinhDoList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Trình độ: " + err.Error()})
		return
	}

	var existing *TrinhDo
	for i := range list {
		if list[i].ID == id {
			existing = &list[i]
			break
		}
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "❌ Không tìm thấy trình độ"})
		return
	}

	input.ID = id
	input.MaTrinhDo = existing.MaTrinhDo
	if msg := checkTrinhDoDuplicate(list, input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if _, err := db.Exec("UPDATE DanhMucTrinhDo SET giatri = ?, ghichu = ? WHERE id = ?",
		input.GiaTri, input.GhiChu, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cập nhật thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Đã cập nhật trình độ"})
}

func DeleteTrinhDo(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}
	if _, err := db.Exec("DELETE FROM DanhMucTrinhDo WHERE id = ?", id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Xóa thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Đã xóa trình độ"})
}

func ExportTrinhDo(c *gin.Context, db *sql.DB) {
	list, err := fetchTrinhDoList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Trình độ: " + err.Error()})
		return
	}
	filtered := filterTrinhDo(list, c.Query("search"))

	rows := make([][]interface{}, 0, len(filtered))
	for _, td := range filtered {
		rows = append(rows, []interface{}{td.ID, td.MaTrinhDo, td.GiaTri, td.GhiChu})
	}
	f, err := BuildWorkbook("DanhMucTrinhDo", []string{"ID", "Mã Trình độ", "Giá Trị", "Ghi Chú"}, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Không tạo được file Excel: " + err.Error()})
		return
	}
	SendWorkbook(c, f, "DanhMucTrinhDo.xlsx")
}

// =========================
// 🏢 Danh mục Khoa/Phòng
// =========================

func DanhMucPhongBanRoutes(r *gin.Engine, db *sql.DB) {
	api := r.Group("/api/v1/danhmuc/phongban")

	api.Use(AuthMiddleware(), RoleMiddleware("admin"))
	{
		api.GET("", func(c *gin.Context) {
			GetAllPhongBan(c, db)
		})
		api.GET("/export", func(c *gin.Context) {
			ExportPhongBan(c, db)
		})
		api.POST("", func(c *gin.Context) {
			CreatePhongBan(c, db)
		})
		api.PATCH("/:id", func(c *gin.Context) {
			UpdatePhongBan(c, db)
		})
		api.DELETE("/:id", func(c *gin.Context) {
			DeletePhongBan(c, db)
		})
	}
}

func fetchPhongBanList(db *sql.DB) ([]PhongBan, error) {
	rows, err := db.Query("SELECT id, maphongban, giatri, sapxep FROM DanhMucPhongBan ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []PhongBan
	for rows.Next() {
		var pb PhongBan
		if err := rows.Scan(&pb.ID, &pb.MaPhongBan, &pb.GiaTri, &pb.SapXep); err != nil {
			return nil, err
		}
		list = append(list, pb)
	}
	return list, rows.Err()
}

func filterPhongBan(list []PhongBan, search string) []PhongBan {
	if search == "" {
		return list
	}
	term := strings.ToLower(search)
	var out []PhongBan
	for _, pb := range list {
		if strings.Contains(strings.ToLower(pb.MaPhongBan), term) ||
			strings.Contains(strings.ToLower(pb.GiaTri), term) ||
			strings.Contains(strconv.Itoa(pb.SapXep), term) {
			out = append(out, pb)
		}
	}
	return out
}

func checkPhongBanDuplicate(list []PhongBan, cur PhongBan, editing bool) string {
	for _, pb := range list {
		if editing && pb.ID == cur.ID {
			continue
		}
		if pb.MaPhongBan == cur.MaPhongBan {
			return "Mã phòng ban đã tồn tại. Vui lòng chọn mã khác."
		}
	}
	for _, pb := range list {
		if editing && pb.ID == cur.ID {
			continue
		}
		if sameValue(pb.GiaTri, cur.GiaTri) {
			return "Giá trị phòng ban đã tồn tại. Vui lòng nhập giá trị khác."
		}
	}
	return ""
}

func phongBanCodes(list []PhongBan) []string {
	codes := make([]string, 0, len(list))
	for _, pb := range list {
		codes = append(codes, pb.MaPhongBan)
	}
	return codes
}

func GetAllPhongBan(c *gin.Context, db *sql.DB) {
	list, err := fetchPhongBanList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Phòng ban: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, filterPhongBan(list, c.Query("search")))
}

func CreatePhongBan(c *gin.Context, db *sql.DB) {
	var input PhongBan
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Dữ liệu không hợp lệ"})
		return
	}
	if strings.TrimSpace(input.GiaTri) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Giá trị không được để trống."})
		return
	}

	list, err := fetchPhongBanList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Phòng ban: " + err.Error()})
		return
	}

	if input.MaPhongBan == "" {
		input.MaPhongBan = NextCode("PB", phongBanCodes(list))
	}
	if msg := checkPhongBanDuplicate(list, input, false); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if _, err := db.Exec("INSERT INTO DanhMucPhongBan (maphongban, giatri, sapxep) VALUES (?, ?, ?)",
		input.MaPhongBan, input.GiaTri, input.SapXep); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Thêm mới thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "✅ Đã thêm phòng ban " + input.MaPhongBan})
}

func UpdatePhongBan(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}

	var input PhongBan
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Dữ liệu không hợp lệ"})
		return
	}
	if strings.TrimSpace(input.GiaTri) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Giá trị không được để trống."})
		return
	}

	list, err := fetchPhongBanList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Phòng ban: " + err.Error()})
		return
	}

	var existing *PhongBan
	for i := range list {
		if list[i].ID == id {
			existing = &list[i]
			break
		}
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "❌ Không tìm thấy phòng ban"})
		return
	}

	input.ID = id
	input.MaPhongBan = existing.MaPhongBan
	if msg := checkPhongBanDuplicate(list, input, true); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if _, err := db.Exec("UPDATE DanhMucPhongBan SET giatri = ?, sapxep = ? WHERE id = ?",
		input.GiaTri, input.SapXep, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cập nhật thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Đã cập nhật phòng ban"})
}

func DeletePhongBan(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}
	if _, err := db.Exec("DELETE FROM DanhMucPhongBan WHERE id = ?", id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Xóa thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Đã xóa phòng ban"})
}

func ExportPhongBan(c *gin.Context, db *sql.DB) {
	list, err := fetchPhongBanList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Phòng ban: " + err.Error()})
		return
	}
	filtered := filterPhongBan(list, c.Query("search"))

	rows := make([][]interface{}, 0, len(filtered))
	for _, pb := range filtered {
		rows = append(rows, []interface{}{pb.ID, pb.MaPhongBan, pb.GiaTri, pb.SapXep})
	}
	f, err := BuildWorkbook("DanhMucPhongBan", []string{"ID", "Mã Phòng ban", "Giá Trị", "Sắp Xếp"}, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Không tạo được file Excel: " + err.Error()})
		return
	}
	SendWorkbook(c, f, "DanhMucPhongBan.xlsx")
}

// =========================
// 💼 Danh mục Chức danh
// =========================

func DanhMucChucDanhRoutes(r *gin.Engine, db *sql.DB) {
	api := r.Group("/api/v1/danhmuc/chucdanh")

	api.Use(AuthMiddleware(), RoleMiddleware("admin"))
	{
		api.GET("", func(c *gin.Context) {
			GetAllChucDanh(c, db)
		})
		api.GET("/export", func(c *gin.Context) {
			ExportChucDanh(c, db)
		})
		api.POST("", func(c *gin.Context) {
			CreateChucDanh(c, db)
		})
		api.PATCH("/:id", func(c *gin.Context) {
			UpdateChucDanh(c, db)
		})
		api.DELETE("/:id", func(c *gin.Context) {
			DeleteChucDanh(c, db)
		})
	}
}

func fetchChucDanhList(db *sql.DB) ([]ChucDanh, error) {
	rows, err := db.Query("SELECT id, machucdanh, giatri, ghichu FROM DanhMucChucDanh ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []ChucDanh
	for rows.Next() {
		var cd ChucDanh
		if err := rows.Scan(&cd.ID, &cd.MaChucDanh, &cd.GiaTri, &cd.GhiChu); err != nil {
			return nil, err
		}
		list = append(list, cd)
	}
	return list, rows.Err()
}

func filterChucDanh(list []ChucDanh, search string) []ChucDanh {
	if search == "" {
		return list
	}
	term := strings.ToLower(search)
	var out []ChucDanh
	for _, cd := range list {
		if strings.Contains(strings.ToLower(cd.MaChucDanh), term) ||
			strings.Contains(strings.ToLower(cd.GiaTri), term) ||
			strings.Contains(strings.ToLower(cd.GhiChu), term) {
			out = append(out, cd)
		}
	}
	return out
}

func checkChucDanhDuplicate(list []ChucDanh, cur ChucDanh, editing bool) string {
	for _, cd := range list {
		if editing && cd.ID == cur.ID {
			continue
		}
		if cd.MaChucDanh == cur.MaChucDanh {
			return "Mã chức danh đã tồn tại. Vui lòng chọn mã khác."
		}
	}
	for _, cd := range list {
		if editing && cd.ID == cur.ID {
			continue
		}
		if sameValue(cd.GiaTri, cur.GiaTri) {
			return "Giá trị chức danh đã tồn tại. Vui lòng nhập giá trị khác."
		}
	}
	return ""
}

func chucDanhCodes(list []ChucDanh) []string {
	codes := make([]string, 0, len(list))
	for _, cd := range list {
		codes = append(codes, cd.MaChucDanh)
	}
	return codes
}

func GetAllChucDanh(c *gin.Context, db *sql.DB) {
	list, err := fetchChucDanhList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Chức danh: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, filterChucDanh(list, c.Query("search")))
}

func CreateChucDanh(c *gin.Context, db *sql.DB) {
	var input ChucDanh
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Dữ liệu không hợp lệ"})
		return
	}
	if strings.TrimSpace(input.GiaTri) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Giá trị không được để trống."})
		return
	}

	list, err := fetchChucDanhList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Chức danh: " + err.Error()})
		return
	}

	if input.MaChucDanh == "" {
		input.MaChucDanh = NextCode("CD", chucDanhCodes(list))
	}
	if msg := checkChucDanhDuplicate(list, input, false); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if _, err := db.Exec("INSERT INTO DanhMucChucDanh (machucdanh, giatri, ghichu) VALUES (?, ?, ?)",
		input.MaChucDanh, input.GiaTri, input.GhiChu); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Thêm mới thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "✅ Đã thêm chức danh " + input.MaChucDanh})
}

func UpdateChucDanh(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}

	var input ChucDanh
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Dữ liệu không hợp lệ"})
		return
	}
	if strings.TrimSpace(input.GiaTri) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Giá trị không được để trống."})
		return
	}

	list, err := fetchChucDanhList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Chức danh: " + err.Error()})
		return
	}

	var existing *ChucDanh
	for i := range list {
		if list[i].ID == id {
			existing = &list[i]
			break
		}
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "❌ Không tìm thấy chức danh"})
		return
	}

	input.ID = id
	input.MaChucDanh = existing.MaChucDanh
	if msg := checkChucDanhDuplicate(list, input, true); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if _, err := db.Exec("UPDATE DanhMucChucDanh SET giatri = ?, ghichu = ? WHERE id = ?",
		input.GiaTri, input.GhiChu, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cập nhật thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Đã cập nhật chức danh"})
}

func DeleteChucDanh(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}
	if _, err := db.Exec("DELETE FROM DanhMucChucDanh WHERE id = ?", id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Xóa thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Đã xóa chức danh"})
}

func ExportChucDanh(c *gin.Context, db *sql.DB) {
	list, err := fetchChucDanhList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Chức danh: " + err.Error()})
		return
	}
	filtered := filterChucDanh(list, c.Query("search"))

	rows := make([][]interface{}, 0, len(filtered))
	for _, cd := range filtered {
		rows = append(rows, []interface{}{cd.ID, cd.MaChucDanh, cd.GiaTri, cd.GhiChu})
	}
	f, err := BuildWorkbook("DanhMucChucDanh", []string{"ID", "Mã Chức danh", "Giá Trị", "Ghi Chú"}, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Không tạo được file Excel: " + err.Error()})
		return
	}
	SendWorkbook(c, f, "DanhMucChucDanh.xlsx")
}

// =========================
// 📅 Danh mục Năm học
// =========================
// Khác các danh mục còn lại: mã dạng số thuần và bảng được sắp theo
// manamhoc phía server.

func DanhMucNamHocRoutes(r *gin.Engine, db *sql.DB) {
	api := r.Group("/api/v1/danhmuc/namhoc")

	api.Use(AuthMiddleware(), RoleMiddleware("admin"))
	{
		api.GET("", func(c *gin.Context) {
			GetAllNamHoc(c, db)
		})
		api.GET("/export", func(c *gin.Context) {
			ExportNamHoc(c, db)
		})
		api.POST("", func(c *gin.Context) {
			CreateNamHoc(c, db)
		})
		api.PATCH("/:id", func(c *gin.Context) {
			UpdateNamHoc(c, db)
		})
		api.DELETE("/:id", func(c *gin.Context) {
			DeleteNamHoc(c, db)
		})
	}
}

func fetchNamHocList(db *sql.DB) ([]NamHoc, error) {
	rows, err := db.Query("SELECT id, manamhoc, giatri, macdinh FROM DanhMucNamHoc ORDER BY manamhoc ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []NamHoc
	for rows.Next() {
		var nh NamHoc
		if err := rows.Scan(&nh.ID, &nh.MaNamHoc, &nh.GiaTri, &nh.MacDinh); err != nil {
			return nil, err
		}
		list = append(list, nh)
	}
	return list, rows.Err()
}

func filterNamHoc(list []NamHoc, search string) []NamHoc {
	if search == "" {
		return list
	}
	term := strings.ToLower(search)
	var out []NamHoc
	for _, nh := range list {
		if strings.Contains(strings.ToLower(nh.MaNamHoc), term) ||
			strings.Contains(strings.ToLower(nh.GiaTri), term) {
			out = append(out, nh)
		}
	}
	return out
}

// Năm học so mã theo kiểu không phân biệt hoa thường/khoảng trắng,
// giống giá trị (khác các danh mục dùng tiền tố).
func checkNamHocDuplicate(list []NamHoc, cur NamHoc, editing bool) string {
	for _, nh := range list {
		if editing && nh.ID == cur.ID {
			continue
		}
		if sameValue(nh.MaNamHoc, cur.MaNamHoc) {
			return "Mã năm học đã tồn tại. Vui lòng chọn mã khác."
		}
	}
	for _, nh := range list {
		if editing && nh.ID == cur.ID {
			continue
		}
		if sameValue(nh.GiaTri, cur.GiaTri) {
			return "Giá trị năm học đã tồn tại. Vui lòng nhập giá trị khác."
		}
	}
	return ""
}

func namHocCodes(list []NamHoc) []string {
	codes := make([]string, 0, len(list))
	for _, nh := range list {
		codes = append(codes, nh.MaNamHoc)
	}
	return codes
}

func GetAllNamHoc(c *gin.Context, db *sql.DB) {
	list, err := fetchNamHocList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Năm học: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, filterNamHoc(list, c.Query("search")))
}

func CreateNamHoc(c *gin.Context, db *sql.DB) {
	var input NamHoc
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Dữ liệu không hợp lệ"})
		return
	}
	if strings.TrimSpace(input.GiaTri) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Giá trị không được để trống."})
		return
	}

	list, err := fetchNamHocList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Năm học: " + err.Error()})
		return
	}

	if input.MaNamHoc == "" {
		input.MaNamHoc = NextNamHocCode(namHocCodes(list))
	}
	if msg := checkNamHocDuplicate(list, input, false); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if _, err := db.Exec("INSERT INTO DanhMucNamHoc (manamhoc, giatri, macdinh) VALUES (?, ?, ?)",
		input.MaNamHoc, input.GiaTri, input.MacDinh); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Thêm mới thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "✅ Đã thêm năm học " + input.MaNamHoc})
}

func UpdateNamHoc(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}

	var input NamHoc
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Dữ liệu không hợp lệ"})
		return
	}
	if strings.TrimSpace(input.GiaTri) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Giá trị không được để trống."})
		return
	}

	list, err := fetchNamHocList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Năm học: " + err.Error()})
		return
	}

	var existing *NamHoc
	for i := range list {
		if list[i].ID == id {
			existing = &list[i]
			break
		}
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "❌ Không tìm thấy năm học"})
		return
	}

	input.ID = id
	input.MaNamHoc = existing.MaNamHoc
	if msg := checkNamHocDuplicate(list, input, true); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if _, err := db.Exec("UPDATE DanhMucNamHoc SET giatri = ?, macdinh = ? WHERE id = ?",
		input.GiaTri, input.MacDinh, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cập nhật thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Đã cập nhật năm học"})
}

func DeleteNamHoc(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}
	if _, err := db.Exec("DELETE FROM DanhMucNamHoc WHERE id = ?", id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Xóa thất bại: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Đã xóa năm học"})
}

func ExportNamHoc(c *gin.Context, db *sql.DB) {
	list, err := fetchNamHocList(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tải danh mục Năm học: " + err.Error()})
		return
	}
	filtered := filterNamHoc(list, c.Query("search"))

	rows := make([][]interface{}, 0, len(filtered))
	for _, nh := range filtered {
		macdinh := "Không"
		if nh.MacDinh {
			macdinh = "Có"
		}
		rows = append(rows, []interface{}{nh.ID, nh.MaNamHoc, nh.GiaTri, macdinh})
	}
	f, err := BuildWorkbook("DanhMucNamHoc", []string{"ID", "Mã Năm học", "Giá Trị", "Mặc định"}, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Không tạo được file Excel: " + err.Error()})
		return
	}
	SendWorkbook(c, f, "DanhMucNamHoc.xlsx")
}
