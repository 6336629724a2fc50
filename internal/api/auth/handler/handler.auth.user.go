// Package authhdl - Handler đăng nhập và quản lý nhân viên.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "warranty_hub/internal/api/auth/dto"
	models "warranty_hub/internal/api/auth/models"
	authsvc "warranty_hub/internal/api/auth/service"
	basehdl "warranty_hub/internal/api/base/handler"
	"warranty_hub/internal/common"
	"warranty_hub/internal/logger"
)

// UserHandler xử lý các request xác thực và quản lý nhân viên
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("tạo UserService: %w", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// HandleLogin xử lý POST /auth/login - đăng nhập quản trị.
// Tenant phải được resolve trước (middleware RequireTenant); slug trong body
// chỉ là fallback của chuỗi resolve, không phải tham số bắt buộc.
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrTenantNotFound)
			return nil
		}
		var input authdto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.Login(c.Context(), *companyID, input.Email, input.Password)
		if err != nil {
			logger.GetAuditLogger().WithFields(logrus.Fields{
				"email":     input.Email,
				"companyId": companyID.Hex(),
				"ip":        c.IP(),
			}).Warn("Đăng nhập thất bại")
			h.HandleResponse(c, nil, err)
			return nil
		}

		tenant, _ := c.Locals("tenant").(string)
		token, err := authsvc.CreateSessionToken(&user, tenant)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeInternalServer, common.MsgSessionInvalid, common.StatusInternalServerError, err))
			return nil
		}
		c.Cookie(authsvc.BuildSessionCookie(models.AdminSessionCookie, token, authsvc.AdminSessionTTL))

		logger.GetAuditLogger().WithFields(logrus.Fields{
			"userId":    user.ID.Hex(),
			"companyId": companyID.Hex(),
			"role":      user.Role,
			"ip":        c.IP(),
		}).Info("Đăng nhập thành công")
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleLogout xử lý POST /auth/logout - xóa cookie phiên.
// Không có revocation list phía server, logout chỉ là xóa cookie.
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		c.Cookie(authsvc.BuildExpiredCookie(models.AdminSessionCookie))
		h.HandleResponse(c, fiber.Map{"loggedOut": true}, nil)
		return nil
	})
}

// HandleMe xử lý GET /auth/me - thông tin user của phiên hiện tại.
func (h *UserHandler) HandleMe(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrSessionMissing)
			return nil
		}
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleChangePassword xử lý POST /auth/change-password - đổi mật khẩu chính mình.
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		userIDHex, ok := c.Locals("user_id").(string)
		if !ok || userIDHex == "" {
			h.HandleResponse(c, nil, common.ErrSessionMissing)
			return nil
		}
		userID, err := primitive.ObjectIDFromHex(userIDHex)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrSessionInvalid)
			return nil
		}
		var input authdto.ChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.userService.ChangePassword(c.Context(), userID, &input)
		h.HandleResponse(c, fiber.Map{"changed": err == nil}, err)
		return nil
	})
}

// HandleCreateUser xử lý POST /users/insert-one - tạo nhân viên mới.
// Không dùng insert-one generic vì mật khẩu phải được băm trước khi lưu.
func (h *UserHandler) HandleCreateUser(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		companyID := h.GetActiveCompanyID(c)
		if companyID == nil {
			h.HandleResponse(c, nil, common.ErrTenantNotFound)
			return nil
		}
		var input authdto.UserCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.CreateUser(c.Context(), *companyID, &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateUser xử lý PUT /users/update-by-id/:id - cập nhật nhân viên.
// Quyền sở hữu công ty được kiểm tra lại trước khi ghi; user thuộc công ty
// khác trả về 404 như không tồn tại.
func (h *UserHandler) HandleUpdateUser(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id := c.Params("id")
		if err := h.ValidateCompanyAccess(c, id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		userID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		var input authdto.UserUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.UpdateUser(c.Context(), userID, &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}
