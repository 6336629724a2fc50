// Package router đăng ký các route phía khách hàng: LINE Login và bảo hành của tôi.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	customerhdl "warranty_hub/internal/api/customer/handler"
	"warranty_hub/internal/api/middleware"
	apirouter "warranty_hub/internal/api/router"
)

// Register đăng ký tất cả route khách hàng lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	customerHandler, err := customerhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("tạo CustomerHandler: %w", err)
	}

	// Luồng đăng nhập LINE. Login cần tenant đã resolve để nhúng vào state;
	// callback là redirect URI cố định của LINE nên không qua RequireTenant.
	tenantMw := []fiber.Handler{middleware.RequireTenant()}
	apirouter.RegisterRouteWithMiddleware(v1, "/line", "GET", "/login", tenantMw, customerHandler.HandleLineLogin)
	v1.Get("/line/callback", customerHandler.HandleLineCallback)

	// Route sau đăng nhập, xác thực bằng cookie phiên khách hàng
	customerMw := []fiber.Handler{middleware.RequireCustomerSession()}
	apirouter.RegisterRouteWithMiddleware(v1, "/customer", "GET", "/me", customerMw, customerHandler.HandleMe)
	// Logout không cần phiên còn hợp lệ, chỉ xóa cookie
	v1.Post("/customer/logout", customerHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(v1, "/customer", "GET", "/warranties", customerMw, customerHandler.HandleMyWarranties)
	apirouter.RegisterRouteWithMiddleware(v1, "/customer", "POST", "/warranties", customerMw, customerHandler.HandleRegisterWarranty)

	return nil
}
