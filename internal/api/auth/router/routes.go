// Package router đăng ký các route thuộc domain auth: đăng nhập, quản lý nhân viên.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "warranty_hub/internal/api/auth/handler"
	"warranty_hub/internal/api/middleware"
	apirouter "warranty_hub/internal/api/router"
)

// Register đăng ký tất cả route auth lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("tạo UserHandler: %w", err)
	}

	// Đăng nhập cần tenant đã resolve, chưa cần session
	tenantMw := []fiber.Handler{middleware.RequireTenant()}
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/login", tenantMw, userHandler.HandleLogin)

	v1.Post("/auth/logout", userHandler.HandleLogout)

	sessionMw := middleware.RequireSession()
	readMw := []fiber.Handler{sessionMw}
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/me", readMw, userHandler.HandleMe)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/change-password", readMw, userHandler.HandleChangePassword)

	// Quản lý nhân viên: đọc cho mọi vai trò đã đăng nhập,
	// thêm/sửa/xóa chỉ owner và admin (không mở cho manager).
	r.RegisterCRUDRoutes(v1, "/users", userHandler, apirouter.ReadOnlyConfig)
	adminMw := []fiber.Handler{sessionMw, middleware.RequireRole("owner", "admin")}
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "POST", "/insert-one", adminMw, userHandler.HandleCreateUser)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "PUT", "/update-by-id/:id", adminMw, userHandler.HandleUpdateUser)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "DELETE", "/delete-by-id/:id", adminMw, userHandler.DeleteById)

	return nil
}
