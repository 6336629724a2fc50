// Package catalogdto - DTO cho domain catalog (thương hiệu, sản phẩm).
package catalogdto

// BrandCreateInput đầu vào tạo thương hiệu.
type BrandCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss" maxLength:"200"`
	Description string `json:"description" validate:"omitempty,no_xss" maxLength:"1000"`
}

// BrandUpdateInput đầu vào cập nhật thương hiệu.
type BrandUpdateInput struct {
	Name        string `json:"name" validate:"omitempty,no_xss" maxLength:"200"`
	Description string `json:"description" validate:"omitempty,no_xss" maxLength:"1000"`
	IsActive    *bool  `json:"isActive" validate:"omitempty"`
}
