// Package router đăng ký các route thuộc domain tenant: đăng ký công ty, cài đặt.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"warranty_hub/internal/api/middleware"
	apirouter "warranty_hub/internal/api/router"
	tenanthdl "warranty_hub/internal/api/tenant/handler"
)

// Register đăng ký tất cả route tenant lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	companyHandler, err := tenanthdl.NewCompanyHandler()
	if err != nil {
		return fmt.Errorf("tạo CompanyHandler: %w", err)
	}

	// Route công khai (trang đăng ký của hệ thống, không thuộc tenant nào)
	v1.Post("/companies/register", companyHandler.HandleRegister)
	v1.Get("/companies/check-subdomain", companyHandler.HandleCheckSubdomain)

	// Route theo tenant đã resolve, không cần session quản trị
	tenantMw := []fiber.Handler{middleware.RequireTenant()}
	apirouter.RegisterRouteWithMiddleware(v1, "/companies", "GET", "/current", tenantMw, companyHandler.HandleGetCurrent)

	// Route quản trị: đọc cho mọi vai trò, ghi cho owner/admin
	sessionMw := middleware.RequireSession()
	readMw := []fiber.Handler{sessionMw}
	adminMw := []fiber.Handler{sessionMw, middleware.RequireRole("owner", "admin")}
	apirouter.RegisterRouteWithMiddleware(v1, "/companies", "GET", "/settings", readMw, companyHandler.HandleGetSettings)
	apirouter.RegisterRouteWithMiddleware(v1, "/companies", "PUT", "/settings", adminMw, companyHandler.HandleUpdateSettings)
	apirouter.RegisterRouteWithMiddleware(v1, "/companies", "POST", "/logo", adminMw, companyHandler.HandleUploadLogo)

	return nil
}
