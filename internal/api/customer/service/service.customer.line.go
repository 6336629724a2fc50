// Package customersvc - LINE Login phía khách hàng.
//
// Hệ thống chỉ tiêu thụ danh tính LINE đã xác minh (user id, tên hiển thị,
// hình, email) sau khi hoàn tất authorization-code exchange; không lưu
// tài khoản khách hàng riêng.
package customersvc

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"warranty_hub/internal/common"
	"warranty_hub/internal/global"
	"warranty_hub/internal/logger"
)

const lineAPIBaseURL = "https://api.line.me"

// LineTokenResponse là kết quả đổi authorization code lấy token.
type LineTokenResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// LineProfile là hồ sơ công khai của người dùng LINE.
type LineProfile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl"`
}

// lineIDTokenClaims là payload của id_token (ký HS256 bằng channel secret).
type lineIDTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// LineClient gọi LINE Login API qua resty.
type LineClient struct {
	httpClient    *resty.Client
	channelID     string
	channelSecret string
	redirectURI   string
}

// NewLineClient tạo LineClient từ cấu hình server.
func NewLineClient() *LineClient {
	client := resty.New().
		SetBaseURL(lineAPIBaseURL).
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Accept", "application/json")
	return &LineClient{
		httpClient:    client,
		channelID:     global.ServerConfig.LineChannelID,
		channelSecret: global.ServerConfig.LineChannelSecret,
		redirectURI:   global.ServerConfig.LineRedirectURI,
	}
}

// AuthorizeURL dựng URL chuyển hướng khách sang trang đăng nhập LINE.
// State mang slug tenant kèm nonce để callback resolve lại đúng tenant.
func (c *LineClient) AuthorizeURL(tenant string) string {
	state := fmt.Sprintf("%s:%s", tenant, uuid.NewString())
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", c.channelID)
	params.Set("redirect_uri", c.redirectURI)
	params.Set("state", state)
	params.Set("scope", "profile openid email")
	return "https://access.line.me/oauth2/v2.1/authorize?" + params.Encode()
}

// ExchangeCode đổi authorization code lấy access token + id_token.
func (c *LineClient) ExchangeCode(ctx context.Context, code string) (*LineTokenResponse, error) {
	var tokenResp LineTokenResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "authorization_code",
			"code":          code,
			"redirect_uri":  c.redirectURI,
			"client_id":     c.channelID,
			"client_secret": c.channelSecret,
		}).
		SetResult(&tokenResp).
		Post("/oauth2/v2.1/token")
	if err != nil {
		logger.GetErrorLogger().WithError(err).Error("Gọi LINE token endpoint thất bại")
		return nil, common.NewError(common.ErrCodeAuth, "เข้าสู่ระบบด้วย LINE ไม่สำเร็จ กรุณาลองใหม่อีกครั้ง", common.StatusBadGateway, nil)
	}
	if resp.IsError() || tokenResp.AccessToken == "" {
		logger.GetErrorLogger().WithField("status", resp.StatusCode()).Error("LINE token endpoint trả về lỗi")
		return nil, common.NewError(common.ErrCodeAuth, "เข้าสู่ระบบด้วย LINE ไม่สำเร็จ กรุณาลองใหม่อีกครั้ง", common.StatusUnauthorized, nil)
	}
	return &tokenResp, nil
}

// GetProfile lấy hồ sơ công khai của người dùng bằng access token.
func (c *LineClient) GetProfile(ctx context.Context, accessToken string) (*LineProfile, error) {
	var profile LineProfile
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&profile).
		Get("/v2/profile")
	if err != nil {
		logger.GetErrorLogger().WithError(err).Error("Gọi LINE profile endpoint thất bại")
		return nil, common.NewError(common.ErrCodeAuth, "ไม่สามารถดึงข้อมูลบัญชี LINE ได้", common.StatusBadGateway, nil)
	}
	if resp.IsError() || profile.UserID == "" {
		return nil, common.NewError(common.ErrCodeAuth, "ไม่สามารถดึงข้อมูลบัญชี LINE ได้", common.StatusUnauthorized, nil)
	}
	return &profile, nil
}

// EmailFromIDToken đọc email từ id_token (nếu người dùng cấp scope email).
// id_token của LINE Login ký HS256 bằng channel secret; xác minh thất bại
// thì bỏ qua email chứ không fail cả luồng đăng nhập.
func (c *LineClient) EmailFromIDToken(idToken string) string {
	if idToken == "" {
		return ""
	}
	claims := &lineIDTokenClaims{}
	_, err := jwt.ParseWithClaims(idToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(c.channelSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if !errors.Is(err, jwt.ErrTokenExpired) {
			logger.GetAppLogger().WithError(err).Debug("Không xác minh được id_token của LINE")
		}
		return ""
	}
	return claims.Email
}

// TenantFromState tách slug tenant khỏi tham số state của callback.
func TenantFromState(state string) string {
	for i := 0; i < len(state); i++ {
		if state[i] == ':' {
			return state[:i]
		}
	}
	return ""
}
