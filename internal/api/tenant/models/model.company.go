// Package models - model công ty (Company, tenant) thuộc domain tenant.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company định nghĩa mô hình công ty (tenant).
// Slug là định danh duy nhất dùng để resolve tenant từ subdomain (production)
// hoặc path segment đầu tiên (development). Công ty không bị xóa cứng trong
// các luồng bình thường mà chỉ bị vô hiệu hóa qua IsActive.
type Company struct {
	_Relationships struct{}           `relationship:"collection:users,field:companyId|collection:brands,field:companyId|collection:products,field:companyId|collection:warranties,field:companyId"`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Slug           string             `json:"slug" bson:"slug" index:"unique"`
	Name           string             `json:"name" bson:"name"`
	Email          string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone          string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Address        string             `json:"address,omitempty" bson:"address,omitempty"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	LogoURL        string             `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	LineChannelID  string             `json:"lineChannelId,omitempty" bson:"lineChannelId,omitempty"`
	IsActive       bool               `json:"isActive" bson:"isActive" default:"true"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// CompanyPaginateResult đại diện cho kết quả phân trang Company
type CompanyPaginateResult struct {
	Page      int64     `json:"page" bson:"page"`
	Limit     int64     `json:"limit" bson:"limit"`
	ItemCount int64     `json:"itemCount" bson:"itemCount"`
	Items     []Company `json:"items" bson:"items"`
}
