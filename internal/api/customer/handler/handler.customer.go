// Package customerhdl - Handler luồng khách hàng: LINE Login và đăng ký bảo hành.
package customerhdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "warranty_hub/internal/api/auth/models"
	authsvc "warranty_hub/internal/api/auth/service"
	basehdl "warranty_hub/internal/api/base/handler"
	customerdto "warranty_hub/internal/api/customer/dto"
	customersvc "warranty_hub/internal/api/customer/service"
	tenantsvc "warranty_hub/internal/api/tenant/service"
	warrantydto "warranty_hub/internal/api/warranty/dto"
	warrantymodels "warranty_hub/internal/api/warranty/models"
	warrantysvc "warranty_hub/internal/api/warranty/service"
	"warranty_hub/internal/common"
	"warranty_hub/internal/global"
)

// CustomerHandler xử lý các request phía khách hàng (LINE Login, bảo hành của tôi)
type CustomerHandler struct {
	lineClient      *customersvc.LineClient
	companyService  *tenantsvc.CompanyService
	warrantyService *warrantysvc.WarrantyService
}

// NewCustomerHandler tạo instance mới của CustomerHandler
func NewCustomerHandler() (*CustomerHandler, error) {
	companyService, err := tenantsvc.NewCompanyService()
	if err != nil {
		return nil, fmt.Errorf("tạo CompanyService: %w", err)
	}
	warrantyService, err := warrantysvc.NewWarrantyService()
	if err != nil {
		return nil, fmt.Errorf("tạo WarrantyService: %w", err)
	}
	return &CustomerHandler{
		lineClient:      customersvc.NewLineClient(),
		companyService:  companyService,
		warrantyService: warrantyService,
	}, nil
}

// portalURL dựng URL trang khách hàng của tenant để redirect sau đăng nhập.
func portalURL(tenant string) string {
	if global.ServerConfig.Production {
		return fmt.Sprintf("https://%s.%s/", tenant, global.ServerConfig.AppDomain)
	}
	return strings.TrimRight(global.ServerConfig.FrontendURL, "/") + "/" + tenant
}

// HandleLineLogin xử lý GET /line/login - chuyển khách sang trang đăng nhập LINE.
// Tenant hiện tại được nhúng vào tham số state để callback biết quay về đâu.
func (h *CustomerHandler) HandleLineLogin(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		tenant, _ := c.Locals("tenant").(string)
		if tenant == "" {
			basehdl.HandleResponse(c, nil, common.ErrTenantNotFound)
			return nil
		}
		return c.Redirect().To(h.lineClient.AuthorizeURL(tenant))
	})
}

// HandleLineCallback xử lý GET /line/callback.
//
// Redirect URI của LINE là cố định cho cả hệ thống nên tenant không đến
// từ hostname mà được tách từ state. Luồng: đổi code lấy token, lấy hồ sơ,
// ký JWT phiên khách, set cookie rồi đưa khách về trang tenant.
func (h *CustomerHandler) HandleLineCallback(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input := customerdto.LineCallbackInput{
			Code:  c.Query("code"),
			State: c.Query("state"),
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}
		tenant := customersvc.TenantFromState(input.State)
		company, err := h.companyService.FindBySlug(c.Context(), tenant)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		tokenResp, err := h.lineClient.ExchangeCode(c.Context(), input.Code)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		profile, err := h.lineClient.GetProfile(c.Context(), tokenResp.AccessToken)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		claims := &authmodels.CustomerClaims{
			LineUserID:  profile.UserID,
			DisplayName: profile.DisplayName,
			PictureURL:  profile.PictureURL,
			Email:       h.lineClient.EmailFromIDToken(tokenResp.IDToken),
			CompanyID:   company.ID.Hex(),
			Tenant:      tenant,
		}
		token, err := authsvc.CreateCustomerToken(claims)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.ErrSessionInvalid)
			return nil
		}
		c.Cookie(authsvc.BuildSessionCookie(authmodels.CustomerSessionCookie, token, authsvc.CustomerSessionTTL))
		return c.Redirect().To(portalURL(tenant))
	})
}

// HandleMe xử lý GET /customer/me - thông tin phiên khách hàng hiện tại.
func (h *CustomerHandler) HandleMe(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		claims, ok := c.Locals("customer").(*authmodels.CustomerClaims)
		if !ok {
			basehdl.HandleResponse(c, nil, common.ErrSessionMissing)
			return nil
		}
		basehdl.HandleResponse(c, customerdto.CustomerProfileResult{
			LineUserID:  claims.LineUserID,
			DisplayName: claims.DisplayName,
			PictureURL:  claims.PictureURL,
			Email:       claims.Email,
			Tenant:      claims.Tenant,
		}, nil)
		return nil
	})
}

// HandleLogout xử lý POST /customer/logout - xóa cookie phiên khách hàng.
func (h *CustomerHandler) HandleLogout(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		c.Cookie(authsvc.BuildExpiredCookie(authmodels.CustomerSessionCookie))
		basehdl.HandleResponse(c, fiber.Map{"loggedOut": true}, nil)
		return nil
	})
}

// HandleMyWarranties xử lý GET /customer/warranties - các bảo hành khách đã đăng ký
// trong tenant hiện tại, kèm trạng thái hiển thị.
func (h *CustomerHandler) HandleMyWarranties(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		claims, ok := c.Locals("customer").(*authmodels.CustomerClaims)
		if !ok {
			basehdl.HandleResponse(c, nil, common.ErrSessionMissing)
			return nil
		}
		companyID, err := primitive.ObjectIDFromHex(claims.CompanyID)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.ErrSessionInvalid)
			return nil
		}
		warranties, err := h.warrantyService.ListByCustomer(c.Context(), companyID, claims.LineUserID)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, warrantysvc.NewWarrantyViews(warranties, time.Now()), nil)
		return nil
	})
}

// parseRegisterInput đọc WarrantyRegisterInput từ multipart form (khi đính kèm
// hóa đơn) hoặc JSON body.
func parseRegisterInput(c fiber.Ctx) (*warrantydto.WarrantyRegisterInput, error) {
	input := &warrantydto.WarrantyRegisterInput{}
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		input.ProductID = c.FormValue("productId")
		input.PurchaseDate = c.FormValue("purchaseDate")
		input.SerialNumber = c.FormValue("serialNumber")
		input.PurchaseLocation = c.FormValue("purchaseLocation")
		input.Phone = c.FormValue("phone")
		return input, nil
	}
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return input, nil
}

// HandleRegisterWarranty xử lý POST /customer/warranties - khách đăng ký bảo hành.
// Thông tin khách lấy từ phiên LINE; hóa đơn upload best-effort, thất bại chỉ
// sinh cảnh báo (trừ khi sản phẩm bắt buộc đính kèm mà client không gửi file).
func (h *CustomerHandler) HandleRegisterWarranty(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		claims, ok := c.Locals("customer").(*authmodels.CustomerClaims)
		if !ok {
			basehdl.HandleResponse(c, nil, common.ErrSessionMissing)
			return nil
		}
		companyID, err := primitive.ObjectIDFromHex(claims.CompanyID)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.ErrSessionInvalid)
			return nil
		}

		input, err := parseRegisterInput(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := global.Validate.Struct(input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err))
			return nil
		}
		productID, err := primitive.ObjectIDFromHex(input.ProductID)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		purchaseDate, err := warrantysvc.ParsePurchaseDate(input.PurchaseDate)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		receiptProvided := false
		if fileHeader, err := c.FormFile("receipt"); err == nil && fileHeader != nil {
			receiptProvided = true
		}
		receiptURL, warning := basehdl.UploadFormImage(c, "receipt", "receipts", claims.CompanyID)

		customer := warrantymodels.CustomerInfo{
			LineUserID:  claims.LineUserID,
			DisplayName: claims.DisplayName,
			Email:       claims.Email,
			Phone:       input.Phone,
			PictureURL:  claims.PictureURL,
		}
		warranty, err := h.warrantyService.Register(c.Context(), companyID, productID, customer,
			purchaseDate, input.SerialNumber, input.PurchaseLocation, receiptURL, receiptProvided, "")
		var warnings []string
		if warning != "" {
			warnings = append(warnings, warning)
		}
		basehdl.HandleResponseWithWarnings(c, warranty, warnings, err)
		return nil
	})
}
