// Package authsvc - nghiệp vụ xác thực và quản lý nhân viên.
package authsvc

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	models "warranty_hub/internal/api/auth/models"
)

// PasswordCheck là kết quả kiểm tra mật khẩu.
// NeedsMigration = true khi user còn mật khẩu plaintext của dữ liệu cũ
// và vừa đăng nhập thành công, cần chuyển sang bcrypt hash.
type PasswordCheck struct {
	Matched        bool
	NeedsMigration bool
}

// VerifyPassword kiểm tra mật khẩu theo hai định dạng:
// bcrypt hash (ưu tiên) và plaintext equality cho dữ liệu cũ.
// Hàm thuần túy, không chạm database.
func VerifyPassword(user *models.User, password string) PasswordCheck {
	if user.PasswordHash != "" {
		err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
		return PasswordCheck{Matched: err == nil}
	}
	if user.Password != "" {
		matched := subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) == 1
		return PasswordCheck{Matched: matched, NeedsMigration: matched}
	}
	return PasswordCheck{}
}

// HashPassword băm mật khẩu bằng bcrypt với cost mặc định.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
