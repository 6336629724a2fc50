package middleware

import (
	"github.com/gofiber/fiber/v3"

	authmodels "warranty_hub/internal/api/auth/models"
	authsvc "warranty_hub/internal/api/auth/service"
	"warranty_hub/internal/common"
)

// RequireCustomerSession xác thực phiên khách hàng LINE.
//
// Khách hàng không có bản ghi user trong hệ thống; danh tính nằm trọn
// trong JWT của cookie line-session. Phiên thuộc tenant khác trả về 404
// giống RequireSession.
//
// Locals được set: "customer" (*authmodels.CustomerClaims), "company_id",
// "tenant".
func RequireCustomerSession() fiber.Handler {
	return func(c fiber.Ctx) error {
		cookie := c.Cookies(authmodels.CustomerSessionCookie)
		if cookie == "" {
			HandleErrorResponse(c, common.ErrSessionMissing)
			return nil
		}
		claims, err := authsvc.ParseCustomerToken(cookie)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}
		if claims.LineUserID == "" || claims.CompanyID == "" {
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

		c.Locals("customer", claims)
		return c.Next()
	}
}
