package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Tên cookie phiên đăng nhập.
const (
	AdminSessionCookie    = "auth-session" // Phiên nhân viên quản trị
	CustomerSessionCookie = "line-session" // Phiên khách hàng (LINE Login)
)

// SessionClaims là payload JWT của phiên đăng nhập quản trị,
// lưu trong cookie HTTP-only, không có session store phía server.
type SessionClaims struct {
	UserID    string `json:"userId"`
	CompanyID string `json:"companyId"`
	Role      string `json:"role"`
	Tenant    string `json:"tenant"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// CustomerClaims là payload JWT của phiên khách hàng sau khi LINE Login
// hoàn tất. Hệ thống chỉ tiêu thụ danh tính LINE đã xác minh, không lưu
// tài khoản khách riêng.
type CustomerClaims struct {
	LineUserID  string `json:"lineUserId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl,omitempty"`
	Email       string `json:"email,omitempty"`
	CompanyID   string `json:"companyId"`
	Tenant      string `json:"tenant"`
	jwt.RegisteredClaims
}
