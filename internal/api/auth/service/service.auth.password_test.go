// Package authsvc - Test kiểm tra mật khẩu và di trú plaintext sang bcrypt.
package authsvc

import (
	"testing"

	models "warranty_hub/internal/api/auth/models"
)

func TestVerifyPassword_BcryptHash(t *testing.T) {
	hash, err := HashPassword("Secret@123")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	user := &models.User{PasswordHash: hash}

	check := VerifyPassword(user, "Secret@123")
	if !check.Matched {
		t.Error("mật khẩu đúng với bcrypt hash phải Matched")
	}
	if check.NeedsMigration {
		t.Error("user đã có bcrypt hash không cần di trú")
	}

	check = VerifyPassword(user, "sai-mat-khau")
	if check.Matched {
		t.Error("mật khẩu sai không được Matched")
	}
}

func TestVerifyPassword_PlaintextMigration(t *testing.T) {
	// Dữ liệu cũ: mật khẩu lưu plaintext, chưa có hash
	user := &models.User{Password: "old-plain-password"}

	check := VerifyPassword(user, "old-plain-password")
	if !check.Matched {
		t.Error("mật khẩu plaintext đúng phải Matched")
	}
	if !check.NeedsMigration {
		t.Error("đăng nhập thành công với plaintext phải đánh dấu NeedsMigration")
	}

	check = VerifyPassword(user, "sai-mat-khau")
	if check.Matched || check.NeedsMigration {
		t.Error("mật khẩu plaintext sai không được Matched và không di trú")
	}
}

func TestVerifyPassword_HashThangPlaintext(t *testing.T) {
	// Khi có cả hai định dạng, bcrypt hash được ưu tiên
	hash, err := HashPassword("new-password")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	user := &models.User{PasswordHash: hash, Password: "old-plain-password"}

	if check := VerifyPassword(user, "old-plain-password"); check.Matched {
		t.Error("mật khẩu plaintext cũ không được Matched khi đã có hash")
	}
	if check := VerifyPassword(user, "new-password"); !check.Matched || check.NeedsMigration {
		t.Errorf("mật khẩu theo hash phải Matched và không di trú, got %+v", check)
	}
}

func TestVerifyPassword_KhongCoMatKhau(t *testing.T) {
	user := &models.User{}
	if check := VerifyPassword(user, "anything"); check.Matched || check.NeedsMigration {
		t.Error("user không có mật khẩu không bao giờ Matched")
	}
}

func TestHashPassword_KhacNhauMoiLan(t *testing.T) {
	h1, err := HashPassword("Secret@123")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	h2, err := HashPassword("Secret@123")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if h1 == h2 {
		t.Error("bcrypt phải sinh salt ngẫu nhiên, hai hash không được trùng")
	}
}
