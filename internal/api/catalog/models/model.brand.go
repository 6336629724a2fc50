// Package models - model thương hiệu và sản phẩm thuộc domain catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand định nghĩa mô hình thương hiệu của một công ty.
// Tên thương hiệu là duy nhất trong phạm vi công ty (unique index companyId+name).
// Không xóa được khi còn sản phẩm tham chiếu.
type Brand struct {
	_Relationships struct{}           `relationship:"collection:products,field:brandId,message:ไม่สามารถลบแบรนด์ได้ เนื่องจากยังมีสินค้าอยู่ในแบรนด์นี้ (%d รายการ)"`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyID      primitive.ObjectID `json:"companyId" bson:"companyId"`
	Name           string             `json:"name" bson:"name"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	LogoURL        string             `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	IsActive       bool               `json:"isActive" bson:"isActive" default:"true"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// BrandPaginateResult đại diện cho kết quả phân trang Brand
type BrandPaginateResult struct {
	Page      int64   `json:"page" bson:"page"`
	Limit     int64   `json:"limit" bson:"limit"`
	ItemCount int64   `json:"itemCount" bson:"itemCount"`
	Items     []Brand `json:"items" bson:"items"`
}
