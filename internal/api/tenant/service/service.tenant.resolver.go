// Package tenantsvc - resolve tenant slug từ request và tra cứu công ty.
package tenantsvc

import (
	"net/url"
	"regexp"
	"strings"
)

// RequestInfo chứa các thành phần của request dùng để resolve tenant.
// Các hàm resolve là hàm thuần túy trên struct này, không đọc biến toàn cục,
// để có thể kiểm thử bằng table test mà không cần fiber context.
type RequestInfo struct {
	Host         string // Host header (có thể kèm port)
	Path         string // Đường dẫn request
	HeaderTenant string // Giá trị header X-Tenant (reverse proxy inject)
	BodyTenant   string // Giá trị tenant trong body (client gửi trực tiếp)
	Referer      string // Referer header
	AppDomain    string // Domain gốc của hệ thống (vd: aoowarranty.com)
	IsProduction bool   // Production resolve bằng subdomain, development bằng path
}

// ExtractStrategy là một chiến lược trích xuất slug từ request.
// Chuỗi chiến lược là dữ liệu tường minh, thử theo thứ tự ưu tiên,
// chiến lược đầu tiên thành công sẽ thắng.
type ExtractStrategy struct {
	Name    string
	Extract func(info *RequestInfo) (slug string, ok bool)
}

// reservedSlugs là các path segment/subdomain không bao giờ là tenant.
var reservedSlugs = map[string]bool{
	"api":         true,
	"_next":       true,
	"register":    true,
	"admin":       true,
	"assets":      true,
	"static":      true,
	"favicon.ico": true,
	"www":         true,
}

// slugPattern giống validator tenant_slug: DNS label chữ thường.
var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// IsReservedSlug cho biết slug có nằm trong danh sách dành riêng không.
func IsReservedSlug(slug string) bool {
	return reservedSlugs[strings.ToLower(slug)]
}

// isValidSlug kiểm tra slug hợp lệ và không bị dành riêng.
func isValidSlug(slug string) bool {
	if len(slug) < 3 || len(slug) > 63 {
		return false
	}
	if IsReservedSlug(slug) {
		return false
	}
	return slugPattern.MatchString(slug)
}

// SlugFromHost trích slug từ hostname theo luật production:
// label đầu tiên của host là slug, trừ khi host chính là appDomain
// hoặc label đầu là www. Port (nếu có) bị bỏ qua.
func SlugFromHost(host, appDomain string) (string, bool) {
	host = strings.ToLower(strings.TrimSpace(host))
	if idx := strings.Index(host, ":"); idx >= 0 {
		host = host[:idx]
	}
	appDomain = strings.ToLower(strings.TrimSpace(appDomain))
	if host == "" || appDomain == "" {
		return "", false
	}
	if host == appDomain || host == "www."+appDomain {
		return "", false
	}
	if !strings.HasSuffix(host, "."+appDomain) {
		return "", false
	}
	sub := strings.TrimSuffix(host, "."+appDomain)
	// Chỉ nhận đúng một cấp subdomain (a.b.appDomain không phải tenant)
	if strings.Contains(sub, ".") {
		return "", false
	}
	if !isValidSlug(sub) {
		return "", false
	}
	return sub, true
}

// SlugFromPath trích slug từ path segment đầu tiên theo luật development.
// Segment nằm trong danh sách dành riêng (api, _next, register, admin, ...)
// không phải tenant.
func SlugFromPath(path string) (string, bool) {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return "", false
	}
	segment := path
	if idx := strings.Index(path, "/"); idx >= 0 {
		segment = path[:idx]
	}
	segment = strings.ToLower(segment)
	if !isValidSlug(segment) {
		return "", false
	}
	return segment, true
}

// SlugFromReferer parse Referer URL rồi áp dụng luật host (production)
// hoặc luật path (development) lên URL đó.
func SlugFromReferer(referer, appDomain string, isProduction bool) (string, bool) {
	if referer == "" {
		return "", false
	}
	u, err := url.Parse(referer)
	if err != nil {
		return "", false
	}
	if isProduction {
		return SlugFromHost(u.Host, appDomain)
	}
	return SlugFromPath(u.Path)
}

// Strategies trả về chuỗi chiến lược trích xuất theo thứ tự ưu tiên:
// header X-Tenant → giá trị trong body → hostname subdomain (production)
// hoặc path segment (development) → Referer.
func Strategies() []ExtractStrategy {
	return []ExtractStrategy{
		{
			Name: "header",
			Extract: func(info *RequestInfo) (string, bool) {
				slug := strings.ToLower(strings.TrimSpace(info.HeaderTenant))
				if !isValidSlug(slug) {
					return "", false
				}
				return slug, true
			},
		},
		{
			Name: "body",
			Extract: func(info *RequestInfo) (string, bool) {
				slug := strings.ToLower(strings.TrimSpace(info.BodyTenant))
				if !isValidSlug(slug) {
					return "", false
				}
				return slug, true
			},
		},
		{
			Name: "host",
			Extract: func(info *RequestInfo) (string, bool) {
				if info.IsProduction {
					return SlugFromHost(info.Host, info.AppDomain)
				}
				return SlugFromPath(info.Path)
			},
		},
		{
			Name: "referer",
			Extract: func(info *RequestInfo) (string, bool) {
				return SlugFromReferer(info.Referer, info.AppDomain, info.IsProduction)
			},
		},
	}
}

// ResolveSlug chạy chuỗi chiến lược và trả về slug đầu tiên tìm được.
// Hàm là toàn phần: luôn trả về slug hoặc chuỗi rỗng (không có tenant,
// tức request thuộc trang chính), không bao giờ panic.
func ResolveSlug(info *RequestInfo) string {
	if info == nil {
		return ""
	}
	for _, strategy := range Strategies() {
		if slug, ok := strategy.Extract(info); ok {
			return slug
		}
	}
	return ""
}
