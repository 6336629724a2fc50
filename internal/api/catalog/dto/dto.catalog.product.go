package catalogdto

import (
	models "warranty_hub/internal/api/catalog/models"
)

// ProductCreateInput đầu vào tạo sản phẩm.
// BrandID là hex string và phải là brand tồn tại thuộc cùng công ty
// (quyền sở hữu brand được kiểm tra thêm ở handler).
type ProductCreateInput struct {
	BrandID        string                `json:"brandId" validate:"required,exists=brands" transform:"str_objectid"`
	Name           string                `json:"name" validate:"required,no_xss" maxLength:"200"`
	Model          string                `json:"model" validate:"omitempty,no_xss" maxLength:"200"`
	WarrantyYears  int                   `json:"warrantyYears" validate:"min=0,max=50"`
	WarrantyMonths int                   `json:"warrantyMonths" validate:"min=0,max=11"`
	RequiredFields models.RequiredFields `json:"requiredFields"`
}

// ProductUpdateInput đầu vào cập nhật sản phẩm.
type ProductUpdateInput struct {
	BrandID        string                 `json:"brandId" validate:"omitempty,exists=brands" transform:"str_objectid,optional"`
	Name           string                 `json:"name" validate:"omitempty,no_xss" maxLength:"200"`
	Model          string                 `json:"model" validate:"omitempty,no_xss" maxLength:"200"`
	WarrantyYears  *int                   `json:"warrantyYears" validate:"omitempty,min=0,max=50"`
	WarrantyMonths *int                   `json:"warrantyMonths" validate:"omitempty,min=0,max=11"`
	RequiredFields *models.RequiredFields `json:"requiredFields"`
	IsActive       *bool                  `json:"isActive" validate:"omitempty"`
}
