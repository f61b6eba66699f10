package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Secret key được nạp từ .env
var jwtSecret []byte

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ File .env không tìm thấy, dùng environment hiện có")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("⚠️ JWT_SECRET chưa được cấu hình, dùng khóa mặc định (chỉ cho môi trường dev)")
		secret = "quanlynhansu-dev-secret"
	}
	jwtSecret = []byte(secret)
}

// Claims theo payload token
type Claims struct {
	Taikhoan string `json:"taikhoan"`
	Role     string `json:"role"` // admin, employee
	jwt.RegisteredClaims
}

// GenerateToken tạo JWT token cho tài khoản đã đăng nhập
func GenerateToken(taikhoan string, role string) (string, error) {
	claims := Claims{
		Taikhoan: taikhoan,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)), // Expired trong 24 giờ
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// Middleware kiểm tra token và set dữ liệu user vào context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "❌ Token không tìm thấy"})
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return jwtSecret, nil
		})

		if err != nil || !token.Valid {
			log.Printf("Token error: %v\n", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "❌ Token không hợp lệ hoặc đã hết hạn"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "❌ Không đọc được token"})
			c.Abort()
			return
		}

		// Lưu vào context
		c.Set("taikhoan", claims.Taikhoan)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// Middleware kiểm tra role (admin, employee)
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "❌ Role không tìm thấy"})
			c.Abort()
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "❌ Truy cập bị từ chối (role không phù hợp)"})
		c.Abort()
	}
}

// RequestIDMiddleware gắn X-Request-ID cho mỗi request để trace log
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// Helper lấy dữ liệu từ context
func GetTaikhoan(c *gin.Context) string {
	return c.GetString("taikhoan")
}

func GetRole(c *gin.Context) string {
	return c.GetString("role")
}
