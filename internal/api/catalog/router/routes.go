// Package router đăng ký các route thuộc domain catalog: brands, products.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "warranty_hub/internal/api/catalog/handler"
	"warranty_hub/internal/api/middleware"
	apirouter "warranty_hub/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	brandHandler, err := cataloghdl.NewBrandHandler()
	if err != nil {
		return fmt.Errorf("tạo BrandHandler: %w", err)
	}
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("tạo ProductHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/brands", brandHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/products", productHandler, apirouter.ReadWriteConfig)

	sessionMw := middleware.RequireSession()
	writeMw := []fiber.Handler{sessionMw, middleware.RequireRole("owner", "admin", "manager")}
	apirouter.RegisterRouteWithMiddleware(v1, "/brands", "POST", "/:id/logo", writeMw, brandHandler.HandleUploadLogo)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "POST", "/:id/image", writeMw, productHandler.HandleUploadImage)

	return nil
}
