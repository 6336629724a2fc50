package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequiredFields cấu hình những dữ liệu khách hàng bắt buộc phải cung cấp
// khi đăng ký bảo hành cho sản phẩm này.
type RequiredFields struct {
	SerialNumber     bool `json:"serialNumber" bson:"serialNumber"`
	ReceiptImage     bool `json:"receiptImage" bson:"receiptImage"`
	PurchaseLocation bool `json:"purchaseLocation" bson:"purchaseLocation"`
}

// Product định nghĩa mô hình sản phẩm của một công ty.
// (brandId, name, model) là duy nhất trong phạm vi công ty; brand phải
// thuộc cùng công ty. Không xóa được khi còn đăng ký bảo hành tham chiếu.
type Product struct {
	_Relationships struct{}           `relationship:"collection:warranties,field:productId,message:ไม่สามารถลบสินค้าได้ เนื่องจากมีการลงทะเบียนรับประกันอยู่ (%d รายการ)"`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyID      primitive.ObjectID `json:"companyId" bson:"companyId"`
	BrandID        primitive.ObjectID `json:"brandId" bson:"brandId"`
	Name           string             `json:"name" bson:"name"`
	Model          string             `json:"model,omitempty" bson:"model,omitempty"`
	WarrantyYears  int                `json:"warrantyYears" bson:"warrantyYears"`
	WarrantyMonths int                `json:"warrantyMonths" bson:"warrantyMonths"`
	RequiredFields RequiredFields     `json:"requiredFields" bson:"requiredFields"`
	ImageURL       string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	IsActive       bool               `json:"isActive" bson:"isActive" default:"true"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// ProductPaginateResult đại diện cho kết quả phân trang Product
type ProductPaginateResult struct {
	Page      int64     `json:"page" bson:"page"`
	Limit     int64     `json:"limit" bson:"limit"`
	ItemCount int64     `json:"itemCount" bson:"itemCount"`
	Items     []Product `json:"items" bson:"items"`
}
