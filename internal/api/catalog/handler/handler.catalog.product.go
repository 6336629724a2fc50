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

// ProductHandler xử lý các request CRUD sản phẩm
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	productService *catalogsvc.ProductService
}

// NewProductHandler tạo instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProductService: %w", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService)
	return &ProductHandler{
		BaseHandler:    baseHandler,
		productService: productService,
	}, nil
}

// InsertOne xử lý POST /products/insert-one.
// Ghi đè bản generic vì brand của sản phẩm phải thuộc cùng công ty,
// validator exists=brands chỉ kiểm tra tồn tại chứ không kiểm tra tenant.
func (h *ProductHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrTenantNotFound)
			return nil
		}
		var input catalogdto.ProductCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		product, err := h.productService.CreateProduct(c.Context(), *companyID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		imageURL, warning := basehdl.UploadFormImage(c, "image", "products", companyID.Hex())
		if imageURL != "" {
			product, err = h.productService.UpdateImage(c.Context(), product.ID, imageURL)
		}
		var warnings []string
		if warning != "" {
			warnings = append(warnings, warning)
		}
		basehdl.HandleResponseWithWarnings(c, product, warnings, err)
		return nil
	})
}

// UpdateById xử lý PUT /products/update-by-id/:id.
func (h *ProductHandler) UpdateById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id := c.Params("id")
		if err := h.ValidateCompanyAccess(c, id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		productID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrTenantNotFound)
			return nil
		}
		var input catalogdto.ProductUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		product, err := h.productService.UpdateProduct(c.Context(), productID, *companyID, &input)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// DeleteById xử lý DELETE /products/delete-by-id/:id.
// Sản phẩm còn đăng ký bảo hành bị chặn bởi relationship check trong service;
// xóa thành công thì gỡ luôn hình đã lưu (best-effort).
func (h *ProductHandler) DeleteById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id := c.Params("id")
		if err := h.ValidateCompanyAccess(c, id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		productID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		product, err := h.productService.FindOneById(c.Context(), productID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.productService.DeleteById(c.Context(), productID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.DeleteStoredImage(c, product.ImageURL, global.ServerConfig.MinioBucket)
		h.HandleResponse(c, fiber.Map{"deleted": true}, nil)
		return nil
	})
}

// HandleUploadImage xử lý POST /products/:id/image - upload hình sản phẩm.
func (h *ProductHandler) HandleUploadImage(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id := c.Params("id")
		if err := h.ValidateCompanyAccess(c, id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		productID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		companyID := h.GetActiveCompanyID(c)
		imageURL, warning := basehdl.UploadFormImage(c, "image", "products", companyID.Hex())
		if imageURL == "" {
			if warning != "" {
				basehdl.HandleResponseWithWarnings(c, nil, []string{warning}, nil)
				return nil
			}
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "กรุณาแนบไฟล์รูปภาพ", common.StatusBadRequest, nil))
			return nil
		}
		product, err := h.productService.UpdateImage(c.Context(), productID, imageURL)
		basehdl.HandleResponseWithWarnings(c, product, nil, err)
		return nil
	})
}
