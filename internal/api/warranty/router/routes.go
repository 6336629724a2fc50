// Package router đăng ký các route thuộc domain warranty.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"warranty_hub/internal/api/middleware"
	apirouter "warranty_hub/internal/api/router"
	warrantyhdl "warranty_hub/internal/api/warranty/handler"
)

// Register đăng ký tất cả route warranty lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	warrantyHandler, err := warrantyhdl.NewWarrantyHandler()
	if err != nil {
		return fmt.Errorf("tạo WarrantyHandler: %w", err)
	}

	// Upsert/find-one-and-update tắt: snapshot bảo hành bất biến sau khi tạo,
	// status chỉ đổi qua claim, update chung chỉ sửa được notes.
	warrantyConfig := apirouter.CRUDConfig{
		InsOne: true, InsMany: false,
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: true, UpdMany: false, UpdById: true,
		FindUpd: false,
		DelOne:  false, DelMany: false, DelById: true,
		FindDel: false,
		Count:   true, Distinct: true,
		Upsert: false, Exists: true,
	}
	r.RegisterCRUDRoutes(v1, "/warranties", warrantyHandler, warrantyConfig)

	sessionMw := middleware.RequireSession()
	readMw := []fiber.Handler{sessionMw}
	writeMw := []fiber.Handler{sessionMw, middleware.RequireRole("owner", "admin", "manager")}

	apirouter.RegisterRouteWithMiddleware(v1, "/warranties", "POST", "/:id/claim", writeMw, warrantyHandler.HandleClaim)
	apirouter.RegisterRouteWithMiddleware(v1, "/warranties", "GET", "/:id/transitions", readMw, warrantyHandler.HandleTransitions)
	apirouter.RegisterRouteWithMiddleware(v1, "/warranties", "GET", "/:id/view", readMw, warrantyHandler.HandleView)
	apirouter.RegisterRouteWithMiddleware(v1, "/warranties", "GET", "/export", readMw, warrantyHandler.HandleExport)

	return nil
}
