// Package authsvc - Test vòng ký/xác minh JWT phiên và cookie.
package authsvc

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"warranty_hub/config"
	models "warranty_hub/internal/api/auth/models"
	"warranty_hub/internal/common"
	"warranty_hub/internal/global"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	old := global.ServerConfig
	global.ServerConfig = &config.Configuration{
		JwtSecret:  "test-secret",
		AppDomain:  "aoowarranty.com",
		Production: false,
	}
	t.Cleanup(func() { global.ServerConfig = old })
}

func TestSessionToken_RoundTrip(t *testing.T) {
	setTestConfig(t)

	user := &models.User{
		ID:        primitive.NewObjectID(),
		CompanyID: primitive.NewObjectID(),
		Email:     "owner@abc-shop.example",
		Role:      models.RoleOwner,
	}
	token, err := CreateSessionToken(user, "abc-shop")
	if err != nil {
		t.Fatalf("CreateSessionToken lỗi: %v", err)
	}

	claims, err := ParseSessionToken(token)
	if err != nil {
		t.Fatalf("ParseSessionToken lỗi: %v", err)
	}
	if claims.UserID != user.ID.Hex() {
		t.Errorf("UserID = %q, muốn %q", claims.UserID, user.ID.Hex())
	}
	if claims.CompanyID != user.CompanyID.Hex() {
		t.Errorf("CompanyID = %q, muốn %q", claims.CompanyID, user.CompanyID.Hex())
	}
	if claims.Role != models.RoleOwner {
		t.Errorf("Role = %q, muốn %q", claims.Role, models.RoleOwner)
	}
	if claims.Tenant != "abc-shop" {
		t.Errorf("Tenant = %q, muốn abc-shop", claims.Tenant)
	}
}

func TestParseSessionToken_TokenRac(t *testing.T) {
	setTestConfig(t)
	if _, err := ParseSessionToken("khong-phai-jwt"); !errors.Is(err, common.ErrSessionInvalid) {
		t.Errorf("token rác phải trả về ErrSessionInvalid, got %v", err)
	}
}

func TestParseSessionToken_SaiSecret(t *testing.T) {
	setTestConfig(t)
	user := &models.User{ID: primitive.NewObjectID(), CompanyID: primitive.NewObjectID()}
	token, err := CreateSessionToken(user, "abc-shop")
	if err != nil {
		t.Fatalf("CreateSessionToken lỗi: %v", err)
	}

	global.ServerConfig.JwtSecret = "secret-khac"
	if _, err := ParseSessionToken(token); !errors.Is(err, common.ErrSessionInvalid) {
		t.Errorf("token ký bằng secret khác phải trả về ErrSessionInvalid, got %v", err)
	}
}

func TestCustomerToken_RoundTrip(t *testing.T) {
	setTestConfig(t)

	in := &models.CustomerClaims{
		LineUserID:  "U1234567890abcdef",
		DisplayName: "Somchai",
		CompanyID:   primitive.NewObjectID().Hex(),
		Tenant:      "abc-shop",
		Email:       "somchai@example.com",
	}
	token, err := CreateCustomerToken(in)
	if err != nil {
		t.Fatalf("CreateCustomerToken lỗi: %v", err)
	}

	claims, err := ParseCustomerToken(token)
	if err != nil {
		t.Fatalf("ParseCustomerToken lỗi: %v", err)
	}
	if claims.LineUserID != in.LineUserID {
		t.Errorf("LineUserID = %q, muốn %q", claims.LineUserID, in.LineUserID)
	}
	if claims.CompanyID != in.CompanyID {
		t.Errorf("CompanyID = %q, muốn %q", claims.CompanyID, in.CompanyID)
	}
	if claims.Tenant != in.Tenant {
		t.Errorf("Tenant = %q, muốn %q", claims.Tenant, in.Tenant)
	}
}

func TestBuildSessionCookie(t *testing.T) {
	setTestConfig(t)

	cookie := BuildSessionCookie(models.AdminSessionCookie, "token-value", AdminSessionTTL)
	if cookie.Name != models.AdminSessionCookie {
		t.Errorf("Name = %q, muốn %q", cookie.Name, models.AdminSessionCookie)
	}
	if !cookie.HTTPOnly {
		t.Error("cookie phiên phải HTTPOnly")
	}
	if cookie.SameSite != fiber.CookieSameSiteLaxMode {
		t.Errorf("SameSite = %q, muốn %q", cookie.SameSite, fiber.CookieSameSiteLaxMode)
	}
	// Development: không scope về parent domain, không bắt buộc Secure
	if cookie.Domain != "" {
		t.Errorf("development không set Domain, got %q", cookie.Domain)
	}

	// Production: cookie scope về .{AppDomain} và Secure
	global.ServerConfig.Production = true
	cookie = BuildSessionCookie(models.AdminSessionCookie, "token-value", AdminSessionTTL)
	if cookie.Domain != ".aoowarranty.com" {
		t.Errorf("production Domain = %q, muốn .aoowarranty.com", cookie.Domain)
	}
	if !cookie.Secure {
		t.Error("production cookie phải Secure")
	}
}

func TestBuildExpiredCookie(t *testing.T) {
	setTestConfig(t)
	cookie := BuildExpiredCookie(models.AdminSessionCookie)
	if cookie.Value != "" {
		t.Errorf("cookie hết hạn phải rỗng, got %q", cookie.Value)
	}
	if cookie.MaxAge != -1 {
		t.Errorf("MaxAge = %d, muốn -1", cookie.MaxAge)
	}
	if cookie.Expires.After(time.Now()) {
		t.Error("Expires của cookie hết hạn phải ở quá khứ")
	}
}
