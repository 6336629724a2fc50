package middleware

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"

	tenantmodels "warranty_hub/internal/api/tenant/models"
	tenantsvc "warranty_hub/internal/api/tenant/service"
	"warranty_hub/internal/common"
	"warranty_hub/internal/global"
	"warranty_hub/internal/logger"
	"warranty_hub/internal/utility"
)

// TenantManager quản lý việc resolve tenant với cache công ty theo slug.
// Mẫu singleton + TTL cache để tránh query companies trên mỗi request.
type TenantManager struct {
	companyService *tenantsvc.CompanyService
	companyCache   *utility.Cache
}

var (
	tenantManagerInstance *TenantManager
	tenantManagerOnce     sync.Once
)

// GetTenantManager lấy instance singleton của TenantManager
func GetTenantManager() (*TenantManager, error) {
	var initErr error
	tenantManagerOnce.Do(func() {
		companyService, err := tenantsvc.NewCompanyService()
		if err != nil {
			initErr = err
			return
		}
		tenantManagerInstance = &TenantManager{
			companyService: companyService,
			companyCache:   utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return tenantManagerInstance, nil
}

// findCompany tra cứu công ty active theo slug, ưu tiên cache.
func (m *TenantManager) findCompany(c fiber.Ctx, slug string) (tenantmodels.Company, error) {
	if cached, ok := m.companyCache.Get(slug); ok {
		if company, ok := cached.(tenantmodels.Company); ok {
			return company, nil
		}
	}
	company, err := m.companyService.FindBySlug(c.Context(), slug)
	if err != nil {
		return tenantmodels.Company{}, err
	}
	m.companyCache.Set(slug, company)
	return company, nil
}

// bodyTenantValue đọc field "tenant" từ JSON body (nếu là request JSON).
// Fiber giữ body trong buffer nên đọc ở middleware không ảnh hưởng handler.
func bodyTenantValue(c fiber.Ctx) string {
	contentType := c.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return ""
	}
	body := c.Body()
	if len(body) == 0 {
		return ""
	}
	var probe struct {
		Tenant string `json:"tenant"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return ""
	}
	return probe.Tenant
}

// TenantContext resolve tenant từ request và đặt vào request locals.
//
// Middleware luôn cho request đi tiếp kể cả khi không resolve được tenant
// (trang chính, route đăng ký công ty); route nào bắt buộc có tenant thì
// thêm RequireTenant phía sau.
//
// Locals được set khi resolve thành công:
//   - "tenant":     slug của tenant
//   - "company_id": hex ObjectID của công ty
func TenantContext() fiber.Handler {
	return func(c fiber.Ctx) error {
		info := &tenantsvc.RequestInfo{
			Host:         c.Hostname(),
			Path:         c.Path(),
			HeaderTenant: c.Get("X-Tenant"),
			BodyTenant:   bodyTenantValue(c),
			Referer:      c.Get("Referer"),
			AppDomain:    global.ServerConfig.AppDomain,
			IsProduction: global.ServerConfig.Production,
		}
		slug := tenantsvc.ResolveSlug(info)
		if slug == "" {
			return c.Next()
		}

		manager, err := GetTenantManager()
		if err != nil {
			logger.GetErrorLogger().WithError(err).Error("Khởi tạo TenantManager thất bại")
			return c.Next()
		}
		company, err := manager.findCompany(c, slug)
		if err != nil {
			// Slug resolve được nhưng không có công ty active: để RequireTenant
			// quyết định, các route công khai vẫn đi tiếp bình thường
			return c.Next()
		}

		c.Locals("tenant", company.Slug)
		c.Locals("company_id", company.ID.Hex())
		return c.Next()
	}
}

// RequireTenant đảm bảo request thuộc một tenant đã resolve.
// Không có tenant trả về 404 (không phân biệt "sai slug" với "không tồn tại").
func RequireTenant() fiber.Handler {
	return func(c fiber.Ctx) error {
		companyID, ok := c.Locals("company_id").(string)
		if !ok || companyID == "" {
			HandleErrorResponse(c, common.ErrTenantNotFound)
			return nil
		}
		return c.Next()
	}
}
