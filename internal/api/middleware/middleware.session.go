package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "warranty_hub/internal/api/auth/models"
	authsvc "warranty_hub/internal/api/auth/service"
	"warranty_hub/internal/common"
	"warranty_hub/internal/logger"
	"warranty_hub/internal/utility"
)

// SessionManager xác thực phiên quản trị từ cookie JWT với cache user.
type SessionManager struct {
	userService *authsvc.UserService
	userCache   *utility.Cache
}

var (
	sessionManagerInstance *SessionManager
	sessionManagerOnce     sync.Once
)

// GetSessionManager lấy instance singleton của SessionManager
func GetSessionManager() (*SessionManager, error) {
	var initErr error
	sessionManagerOnce.Do(func() {
		userService, err := authsvc.NewUserService()
		if err != nil {
			initErr = err
			return
		}
		sessionManagerInstance = &SessionManager{
			userService: userService,
			userCache:   utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return sessionManagerInstance, nil
}

// loadUser lấy user theo id, ưu tiên cache.
func (m *SessionManager) loadUser(c fiber.Ctx, userID primitive.ObjectID) (authmodels.User, error) {
	key := userID.Hex()
	if cached, ok := m.userCache.Get(key); ok {
		if user, ok := cached.(authmodels.User); ok {
			return user, nil
		}
	}
	user, err := m.userService.FindOneById(c.Context(), userID)
	if err != nil {
		return authmodels.User{}, err
	}
	m.userCache.Set(key, user)
	return user, nil
}

// RequireSession xác thực phiên quản trị.
//
// Luồng kiểm tra: cookie auth-session → parse/verify JWT → load user →
// user còn active → companyId của phiên khớp với tenant đã resolve.
// Phiên thuộc công ty khác trả về 404 thay vì 403 để không rò rỉ
// sự tồn tại của dữ liệu tenant khác.
//
// Locals được set: "user_id", "user_role", "user", "company_id", "tenant".
func RequireSession() fiber.Handler {
	return func(c fiber.Ctx) error {
		cookie := c.Cookies(authmodels.AdminSessionCookie)
		if cookie == "" {
			HandleErrorResponse(c, common.ErrSessionMissing)
			return nil
		}
		claims, err := authsvc.ParseSessionToken(cookie)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			HandleErrorResponse(c, common.ErrSessionInvalid)
			return nil
		}
		manager, err := GetSessionManager()
		if err != nil {
			logger.GetErrorLogger().WithError(err).Error("Khởi tạo SessionManager thất bại")
			HandleErrorResponse(c, common.NewError(common.ErrCodeInternalServer, common.MsgDatabaseError, common.StatusInternalServerError, nil))
			return nil
		}
		user, err := manager.loadUser(c, userID)
		if err != nil {
			// User của phiên không còn tồn tại
			HandleErrorResponse(c, common.ErrSessionInvalid)
			return nil
		}
		if !user.IsActive {
			HandleErrorResponse(c, common.ErrUserInactive)
			return nil
		}
		if user.CompanyID.Hex() != claims.CompanyID {
			// Claims không khớp dữ liệu hiện tại, coi như phiên không hợp lệ
			HandleErrorResponse(c, common.ErrSessionInvalid)
			return nil
		}

		// Phiên phải thuộc đúng tenant của request (nếu request có tenant)
		if tenantCompanyID, ok := c.Locals("company_id").(string); ok && tenantCompanyID != "" {
			if tenantCompanyID != claims.CompanyID {
				HandleErrorResponse(c, common.ErrNotFound)
				return nil
			}
		} else {
			c.Locals("company_id", claims.CompanyID)
		}
		if tenant, ok := c.Locals("tenant").(string); !ok || tenant == "" {
			c.Locals("tenant", claims.Tenant)
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("user_role", user.Role)
		c.Locals("user", user)
		return c.Next()
	}
}

// RequireRole chặn request nếu vai trò của phiên không nằm trong danh sách.
// Phải đứng sau RequireSession trong chuỗi middleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok || role == "" {
			HandleErrorResponse(c, common.ErrSessionMissing)
			return nil
		}
		if !utility.Contains(roles, role) {
			HandleErrorResponse(c, common.ErrForbidden)
			return nil
		}
		return c.Next()
	}
}
