// Package warrantyhdl - Handler đăng ký bảo hành phía quản trị.
package warrantyhdl

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "warranty_hub/internal/api/base/handler"
	warrantydto "warranty_hub/internal/api/warranty/dto"
	models "warranty_hub/internal/api/warranty/models"
	warrantysvc "warranty_hub/internal/api/warranty/service"
	"warranty_hub/internal/common"
)

// WarrantyHandler xử lý các request CRUD và vòng đời bảo hành
type WarrantyHandler struct {
	*basehdl.BaseHandler[models.Warranty, warrantydto.WarrantyCreateInput, warrantydto.WarrantyUpdateInput]
	warrantyService *warrantysvc.WarrantyService
}

// NewWarrantyHandler tạo instance mới của WarrantyHandler
func NewWarrantyHandler() (*WarrantyHandler, error) {
	warrantyService, err := warrantysvc.NewWarrantyService()
	if err != nil {
		return nil, fmt.Errorf("tạo WarrantyService: %w", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Warranty, warrantydto.WarrantyCreateInput, warrantydto.WarrantyUpdateInput](warrantyService)
	return &WarrantyHandler{
		BaseHandler:     baseHandler,
		warrantyService: warrantyService,
	}, nil
}

// InsertOne xử lý POST /warranties/insert-one - tạo bảo hành từ trang quản trị.
// Ghi đè bản generic vì ngày hết hạn và snapshot sản phẩm do server dựng,
// không nhận từ client.
func (h *WarrantyHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrTenantNotFound)
			return nil
		}
		var input warrantydto.WarrantyCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		receiptProvided := false
		if fileHeader, err := c.FormFile("receipt"); err == nil && fileHeader != nil {
			receiptProvided = true
		}
		receiptURL, warning := basehdl.UploadFormImage(c, "receipt", "receipts", companyID.Hex())

		warranty, err := h.warrantyService.RegisterFromInput(c.Context(), *companyID, &input, receiptURL, receiptProvided)
		var warnings []string
		if warning != "" {
			warnings = append(warnings, warning)
		}
		basehdl.HandleResponseWithWarnings(c, warranty, warnings, err)
		return nil
	})
}

// HandleClaim xử lý POST /warranties/:id/claim - chuyển sang trạng thái claimed.
// Đây là đường duy nhất đổi được status; endpoint update chung chỉ sửa notes.
func (h *WarrantyHandler) HandleClaim(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrTenantNotFound)
			return nil
		}
		warrantyID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		var input warrantydto.WarrantyClaimInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		changedBy, _ := c.Locals("user_id").(string)
		warranty, err := h.warrantyService.Claim(c.Context(), warrantyID, *companyID, changedBy, input.Reason)
		h.HandleResponse(c, warranty, err)
		return nil
	})
}

// HandleTransitions xử lý GET /warranties/:id/transitions - lịch sử chuyển trạng thái.
func (h *WarrantyHandler) HandleTransitions(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrTenantNotFound)
			return nil
		}
		warrantyID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		transitions, err := h.warrantyService.Transitions(c.Context(), warrantyID, *companyID)
		h.HandleResponse(c, transitions, err)
		return nil
	})
}

// HandleView xử lý GET /warranties/:id/view - bản ghi kèm trạng thái hiển thị
// (active/expiring/expired/claimed) đã phân loại tại thời điểm đọc.
func (h *WarrantyHandler) HandleView(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id := c.Params("id")
		if err := h.ValidateCompanyAccess(c, id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		warrantyID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		warranty, err := h.warrantyService.FindOneById(c.Context(), warrantyID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, warrantysvc.NewWarrantyView(warranty, time.Now()), nil)
		return nil
	})
}

// HandleExport xử lý GET /warranties/export - xuất Excel toàn bộ bảo hành của công ty.
func (h *WarrantyHandler) HandleExport(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrTenantNotFound)
			return nil
		}
		data, err := h.warrantyService.ExportExcel(c.Context(), *companyID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		filename := fmt.Sprintf("warranties-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(data)
	})
}
