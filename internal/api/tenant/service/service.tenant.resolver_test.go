// Package tenantsvc - Test resolve tenant slug từ các thành phần request.
package tenantsvc

import (
	"testing"
)

func TestSlugFromHost(t *testing.T) {
	cases := []struct {
		name     string
		host     string
		wantSlug string
		wantOK   bool
	}{
		{"subdomain tenant", "abc-shop.aoowarranty.com", "abc-shop", true},
		{"subdomain kèm port", "abc-shop.aoowarranty.com:8080", "abc-shop", true},
		{"domain gốc không phải tenant", "aoowarranty.com", "", false},
		{"www không phải tenant", "www.aoowarranty.com", "", false},
		{"subdomain hai cấp không phải tenant", "a.b.aoowarranty.com", "", false},
		{"domain khác hệ thống", "abc-shop.example.com", "", false},
		{"subdomain dành riêng", "admin.aoowarranty.com", "", false},
		{"subdomain quá ngắn", "ab.aoowarranty.com", "", false},
		{"host rỗng", "", "", false},
		{"chữ hoa được chuẩn hóa", "ABC-Shop.Aoowarranty.com", "abc-shop", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slug, ok := SlugFromHost(tc.host, "aoowarranty.com")
			if ok != tc.wantOK || slug != tc.wantSlug {
				t.Errorf("SlugFromHost(%q) = (%q, %v), muốn (%q, %v)", tc.host, slug, ok, tc.wantSlug, tc.wantOK)
			}
		})
	}
}

func TestSlugFromPath(t *testing.T) {
	cases := []struct {
		name     string
		path     string
		wantSlug string
		wantOK   bool
	}{
		{"segment đầu là tenant", "/abc-shop/admin", "abc-shop", true},
		{"chỉ một segment", "/abc-shop", "abc-shop", true},
		{"segment api dành riêng", "/api/v1/companies", "", false},
		{"segment _next dành riêng", "/_next/static/chunk.js", "", false},
		{"segment register dành riêng", "/register", "", false},
		{"path gốc", "/", "", false},
		{"path rỗng", "", "", false},
		{"segment quá ngắn", "/ab/admin", "", false},
		{"segment chứa ký tự cấm", "/Abc_Shop/admin", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slug, ok := SlugFromPath(tc.path)
			if ok != tc.wantOK || slug != tc.wantSlug {
				t.Errorf("SlugFromPath(%q) = (%q, %v), muốn (%q, %v)", tc.path, slug, ok, tc.wantSlug, tc.wantOK)
			}
		})
	}
}

func TestSlugFromReferer(t *testing.T) {
	cases := []struct {
		name         string
		referer      string
		isProduction bool
		wantSlug     string
		wantOK       bool
	}{
		{"production: host của referer", "https://abc-shop.aoowarranty.com/warranty", true, "abc-shop", true},
		{"production: referer domain gốc", "https://aoowarranty.com/", true, "", false},
		{"development: path của referer", "http://localhost:3000/abc-shop/products", false, "abc-shop", true},
		{"development: path dành riêng", "http://localhost:3000/register", false, "", false},
		{"referer rỗng", "", true, "", false},
		{"referer không phải URL", "://xx", true, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slug, ok := SlugFromReferer(tc.referer, "aoowarranty.com", tc.isProduction)
			if ok != tc.wantOK || slug != tc.wantSlug {
				t.Errorf("SlugFromReferer(%q) = (%q, %v), muốn (%q, %v)", tc.referer, slug, ok, tc.wantSlug, tc.wantOK)
			}
		})
	}
}

func TestResolveSlug_ThuTuUuTien(t *testing.T) {
	cases := []struct {
		name string
		info RequestInfo
		want string
	}{
		{
			name: "header thắng mọi nguồn khác",
			info: RequestInfo{
				HeaderTenant: "header-shop",
				BodyTenant:   "body-shop",
				Host:         "host-shop.aoowarranty.com",
				AppDomain:    "aoowarranty.com",
				IsProduction: true,
			},
			want: "header-shop",
		},
		{
			name: "body thắng host khi không có header",
			info: RequestInfo{
				BodyTenant:   "body-shop",
				Host:         "host-shop.aoowarranty.com",
				AppDomain:    "aoowarranty.com",
				IsProduction: true,
			},
			want: "body-shop",
		},
		{
			name: "production lấy từ subdomain",
			info: RequestInfo{
				Host:         "abc-shop.aoowarranty.com",
				Path:         "/warranty",
				AppDomain:    "aoowarranty.com",
				IsProduction: true,
			},
			want: "abc-shop",
		},
		{
			name: "development lấy từ path segment",
			info: RequestInfo{
				Host:         "localhost:8080",
				Path:         "/abc-shop/admin",
				AppDomain:    "localhost",
				IsProduction: false,
			},
			want: "abc-shop",
		},
		{
			name: "referer là nguồn cuối cùng",
			info: RequestInfo{
				Host:         "aoowarranty.com",
				Path:         "/",
				Referer:      "https://abc-shop.aoowarranty.com/warranty",
				AppDomain:    "aoowarranty.com",
				IsProduction: true,
			},
			want: "abc-shop",
		},
		{
			name: "không nguồn nào có tenant trả về chuỗi rỗng",
			info: RequestInfo{
				Host:         "www.aoowarranty.com",
				Path:         "/register",
				AppDomain:    "aoowarranty.com",
				IsProduction: true,
			},
			want: "",
		},
		{
			name: "header không hợp lệ bị bỏ qua, rơi xuống host",
			info: RequestInfo{
				HeaderTenant: "ADMIN",
				Host:         "abc-shop.aoowarranty.com",
				AppDomain:    "aoowarranty.com",
				IsProduction: true,
			},
			want: "abc-shop",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveSlug(&tc.info)
			if got != tc.want {
				t.Errorf("ResolveSlug() = %q, muốn %q", got, tc.want)
			}
		})
	}
}

func TestResolveSlug_NilInfo(t *testing.T) {
	if got := ResolveSlug(nil); got != "" {
		t.Errorf("ResolveSlug(nil) = %q, muốn chuỗi rỗng", got)
	}
}

func TestIsReservedSlug(t *testing.T) {
	for _, slug := range []string{"api", "admin", "register", "www", "_next", "assets", "static", "favicon.ico"} {
		if !IsReservedSlug(slug) {
			t.Errorf("IsReservedSlug(%q) = false, slug này phải dành riêng", slug)
		}
	}
	if IsReservedSlug("abc-shop") {
		t.Error("IsReservedSlug(\"abc-shop\") = true, slug thường không được dành riêng")
	}
}
