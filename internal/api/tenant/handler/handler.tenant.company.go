// Package tenanthdl - Handler đăng ký và quản lý công ty (tenant).
package tenanthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "warranty_hub/internal/api/base/handler"
	tenantdto "warranty_hub/internal/api/tenant/dto"
	models "warranty_hub/internal/api/tenant/models"
	tenantsvc "warranty_hub/internal/api/tenant/service"
	"warranty_hub/internal/common"
	"warranty_hub/internal/global"
)

// CompanyHandler xử lý các request đăng ký công ty, kiểm tra subdomain và cài đặt.
type CompanyHandler struct {
	*basehdl.BaseHandler[models.Company, tenantdto.CompanyCreateInput, tenantdto.CompanyUpdateInput]
	companyService *tenantsvc.CompanyService
}

// NewCompanyHandler tạo instance mới của CompanyHandler
func NewCompanyHandler() (*CompanyHandler, error) {
	companyService, err := tenantsvc.NewCompanyService()
	if err != nil {
		return nil, fmt.Errorf("tạo CompanyService: %w", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Company, tenantdto.CompanyCreateInput, tenantdto.CompanyUpdateInput](companyService)
	return &CompanyHandler{
		BaseHandler:    baseHandler,
		companyService: companyService,
	}, nil
}

// HandleRegister xử lý POST /companies/register - đăng ký công ty mới kèm owner.
// Route công khai, không cần tenant hay session.
func (h *CompanyHandler) HandleRegister(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input tenantdto.CompanyRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		company, err := h.companyService.Register(c.Context(), &input)
		h.HandleResponse(c, company, err)
		return nil
	})
}

// HandleCheckSubdomain xử lý GET /companies/check-subdomain?slug=...
// Kết quả chỉ mang tính tham khảo: unique index mới là nguồn sự thật,
// slug còn trống lúc kiểm tra vẫn có thể bị lấy trước khi đăng ký xong.
func (h *CompanyHandler) HandleCheckSubdomain(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input := tenantdto.SubdomainCheckInput{Slug: c.Query("slug")}
		if err := global.Validate.Struct(&input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidSlug)
			return nil
		}
		result, err := h.companyService.CheckSubdomain(c.Context(), input.Slug)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetCurrent xử lý GET /companies/current - thông tin tenant đã resolve.
// Dùng cho trang khách hàng, không cần session quản trị.
func (h *CompanyHandler) HandleGetCurrent(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrTenantNotFound)
			return nil
		}
		company, err := h.companyService.FindOneById(c.Context(), *companyID)
		h.HandleResponse(c, company, err)
		return nil
	})
}

// HandleGetSettings xử lý GET /companies/settings - cài đặt công ty của session hiện tại.
func (h *CompanyHandler) HandleGetSettings(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrTenantNotFound)
			return nil
		}
		company, err := h.companyService.FindOneById(c.Context(), *companyID)
		h.HandleResponse(c, company, err)
		return nil
	})
}

// HandleUpdateSettings xử lý PUT /companies/settings - cập nhật thông tin công ty.
// Kèm file "logo" trong multipart form thì upload logo best-effort.
func (h *CompanyHandler) HandleUpdateSettings(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrTenantNotFound)
			return nil
		}
		var input tenantdto.CompanyUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		company, err := h.companyService.UpdateSettings(c.Context(), *companyID, &input)
		h.HandleResponse(c, company, err)
		return nil
	})
}

// HandleUploadLogo xử lý POST /companies/logo - upload logo công ty.
func (h *CompanyHandler) HandleUploadLogo(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrTenantNotFound)
			return nil
		}
		logoURL, warning := basehdl.UploadFormImage(c, "logo", "logos", companyID.Hex())
		if logoURL == "" {
			if warning != "" {
				basehdl.HandleResponseWithWarnings(c, nil, []string{warning}, nil)
				return nil
			}
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "กรุณาแนบไฟล์รูปภาพ", common.StatusBadRequest, nil))
			return nil
		}
		company, err := h.companyService.UpdateLogo(c.Context(), *companyID, logoURL)
		basehdl.HandleResponseWithWarnings(c, company, nil, err)
		return nil
	})
}
