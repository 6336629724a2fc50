package authsvc

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"

	models "warranty_hub/internal/api/auth/models"
	"warranty_hub/internal/common"
	"warranty_hub/internal/global"
)

// Thời hạn phiên đăng nhập.
const (
	AdminSessionTTL    = 7 * 24 * time.Hour
	CustomerSessionTTL = 30 * 24 * time.Hour
)

var signingMethods = []string{jwt.SigningMethodHS256.Alg()}

// CreateSessionToken ký JWT phiên quản trị cho user thuộc tenant.
func CreateSessionToken(user *models.User, tenant string) (string, error) {
	now := time.Now()
	claims := models.SessionClaims{
		UserID:    user.ID.Hex(),
		CompanyID: user.CompanyID.Hex(),
		Role:      user.Role,
		Tenant:    tenant,
		Email:     user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AdminSessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(global.ServerConfig.JwtSecret))
}

// ParseSessionToken xác minh chữ ký và hạn của JWT phiên quản trị.
func ParseSessionToken(tokenString string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(global.ServerConfig.JwtSecret), nil
	}, jwt.WithValidMethods(signingMethods))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrSessionExpired
		}
		return nil, common.ErrSessionInvalid
	}
	return claims, nil
}

// CreateCustomerToken ký JWT phiên khách hàng sau khi LINE Login hoàn tất.
func CreateCustomerToken(claims *models.CustomerClaims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(CustomerSessionTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(global.ServerConfig.JwtSecret))
}

// ParseCustomerToken xác minh JWT phiên khách hàng.
func ParseCustomerToken(tokenString string) (*models.CustomerClaims, error) {
	claims := &models.CustomerClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(global.ServerConfig.JwtSecret), nil
	}, jwt.WithValidMethods(signingMethods))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrSessionExpired
		}
		return nil, common.ErrSessionInvalid
	}
	return claims, nil
}

// BuildSessionCookie tạo cookie phiên HTTP-only.
// Production scope cookie về parent domain ".{AppDomain}" để phiên
// hợp lệ trên mọi subdomain tenant; development để host-scoped.
func BuildSessionCookie(name, value string, ttl time.Duration) *fiber.Cookie {
	cookie := &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(ttl),
	}
	if global.ServerConfig.Production {
		cookie.Domain = "." + global.ServerConfig.AppDomain
		cookie.Secure = true
	}
	return cookie
}

// BuildExpiredCookie tạo cookie hết hạn để xóa phiên (logout).
func BuildExpiredCookie(name string) *fiber.Cookie {
	cookie := BuildSessionCookie(name, "", 0)
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	return cookie
}
