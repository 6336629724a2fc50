// Package cataloghdl - Handler thương hiệu và sản phẩm.
package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "warranty_hub/internal/api/base/handler"
	catalogdto "warranty_hub/internal/api/catalog/dto"
	models "warranty_hub/internal/api/catalog/models"
	catalogsvc "warranty_hub/internal/api/catalog/service"
	"warranty_hub/internal/common"
	"warranty_hub/internal/global"
)

// BrandHandler xử lý các request CRUD thương hiệu
type BrandHandler struct {
	*basehdl.BaseHandler[models.Brand, catalogdto.BrandCreateInput, catalogdto.BrandUpdateInput]
	brandService *catalogsvc.BrandService
}

// NewBrandHandler tạo instance mới của BrandHandler
func NewBrandHandler() (*BrandHandler, error) {
	brandService, err := catalogsvc.NewBrandService()
	if err != nil {
		return nil, fmt.Errorf("tạo BrandService: %w", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Brand, catalogdto.BrandCreateInput, catalogdto.BrandUpdateInput](brandService)
	return &BrandHandler{
		BaseHandler:  baseHandler,
		brandService: brandService,
	}, nil
}

// InsertOne xử lý POST /brands/insert-one.
// Ghi đè bản generic để pre-check tên trùng trong công ty với thông báo thân thiện.
func (h *BrandHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrTenantNotFound)
			return nil
		}
		var input catalogdto.BrandCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		brand, err := h.brandService.CreateBrand(c.Context(), *companyID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Logo đính kèm (nếu có) upload best-effort, không làm fail việc tạo brand
		logoURL, warning := basehdl.UploadFormImage(c, "logo", "brands", companyID.Hex())
		if logoURL != "" {
			brand, err = h.brandService.UpdateLogo(c.Context(), brand.ID, logoURL)
		}
		var warnings []string
		if warning != "" {
			warnings = append(warnings, warning)
		}
		basehdl.HandleResponseWithWarnings(c, brand, warnings, err)
		return nil
	})
}

// UpdateById xử lý PUT /brands/update-by-id/:id.
func (h *BrandHandler) UpdateById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id := c.Params("id")
		if err := h.ValidateCompanyAccess(c, id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		brandID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrTenantNotFound)
			return nil
		}
		var input catalogdto.BrandUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		brand, err := h.brandService.UpdateBrand(c.Context(), brandID, *companyID, &input)
		h.HandleResponse(c, brand, err)
		return nil
	})
}

// DeleteById xử lý DELETE /brands/delete-by-id/:id.
// Ghi đè bản generic để xóa logo đã lưu sau khi xóa brand thành công.
// Brand còn sản phẩm tham chiếu bị chặn bởi relationship check trong service.
func (h *BrandHandler) DeleteById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id := c.Params("id")
		if err := h.ValidateCompanyAccess(c, id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		brandID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		brand, err := h.brandService.FindOneById(c.Context(), brandID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.brandService.DeleteById(c.Context(), brandID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.DeleteStoredImage(c, brand.LogoURL, global.ServerConfig.MinioBucket)
		h.HandleResponse(c, fiber.Map{"deleted": true}, nil)
		return nil
	})
}

// HandleUploadLogo xử lý POST /brands/:id/logo - upload logo thương hiệu.
func (h *BrandHandler) HandleUploadLogo(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id := c.Params("id")
		if err := h.ValidateCompanyAccess(c, id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		brandID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		companyID := h.GetActiveCompanyID(c)
		logoURL, warning := basehdl.UploadFormImage(c, "logo", "brands", companyID.Hex())
		if logoURL == "" {
			if warning != "" {
				basehdl.HandleResponseWithWarnings(c, nil, []string{warning}, nil)
				return nil
			}
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "กรุณาแนบไฟล์รูปภาพ", common.StatusBadRequest, nil))
			return nil
		}
		brand, err := h.brandService.UpdateLogo(c.Context(), brandID, logoURL)
		basehdl.HandleResponseWithWarnings(c, brand, nil, err)
		return nil
	})
}
