// Package models - model đăng ký bảo hành thuộc domain warranty.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái bảo hành.
// Active/Expired suy ra từ ngày hết hạn so với hiện tại; Claimed là trạng thái
// cuối do thao tác claim đặt thủ công. Expiring chỉ dùng để hiển thị
// (còn hạn nhưng sắp hết trong 30 ngày), không bao giờ được lưu.
const (
	StatusActive   = "active"
	StatusExpired  = "expired"
	StatusClaimed  = "claimed"
	StatusExpiring = "expiring"
)

// CustomerInfo là snapshot thông tin khách hàng tại thời điểm đăng ký.
// Snapshot bất biến sau khi tạo.
type CustomerInfo struct {
	LineUserID  string `json:"lineUserId" bson:"lineUserId"`
	DisplayName string `json:"displayName" bson:"displayName"`
	Email       string `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string `json:"phone,omitempty" bson:"phone,omitempty"`
	PictureURL  string `json:"pictureUrl,omitempty" bson:"pictureUrl,omitempty"`
}

// ProductInfo là snapshot thông tin sản phẩm tại thời điểm đăng ký.
// Sản phẩm gốc đổi tên hay đổi thời hạn bảo hành không ảnh hưởng
// bảo hành đã đăng ký.
type ProductInfo struct {
	BrandName      string `json:"brandName" bson:"brandName"`
	ProductName    string `json:"productName" bson:"productName"`
	Model          string `json:"model,omitempty" bson:"model,omitempty"`
	WarrantyYears  int    `json:"warrantyYears" bson:"warrantyYears"`
	WarrantyMonths int    `json:"warrantyMonths" bson:"warrantyMonths"`
}

// Warranty định nghĩa mô hình đăng ký bảo hành.
// Sau khi tạo chỉ status (qua thao tác claim) và notes được phép thay đổi.
type Warranty struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyID        primitive.ObjectID `json:"companyId" bson:"companyId"`
	ProductID        primitive.ObjectID `json:"productId" bson:"productId"`
	CustomerID       string             `json:"customerId" bson:"customerId"` // LINE user id
	CustomerInfo     CustomerInfo       `json:"customerInfo" bson:"customerInfo"`
	ProductInfo      ProductInfo        `json:"productInfo" bson:"productInfo"`
	SerialNumber     string             `json:"serialNumber,omitempty" bson:"serialNumber,omitempty"`
	PurchaseLocation string             `json:"purchaseLocation,omitempty" bson:"purchaseLocation,omitempty"`
	ReceiptImageURL  string             `json:"receiptImageUrl,omitempty" bson:"receiptImageUrl,omitempty"`
	PurchaseDate     int64              `json:"purchaseDate" bson:"purchaseDate"`             // UnixMilli
	WarrantyStart    int64              `json:"warrantyStartDate" bson:"warrantyStartDate"`   // Ngày sau ngày mua
	WarrantyExpiry   int64              `json:"warrantyExpiry" bson:"warrantyExpiry"`         // Ngày cuối còn bảo hành (inclusive)
	Status           string             `json:"status" bson:"status" default:"active"`        // active/expired/claimed
	RegistrationDate int64              `json:"registrationDate" bson:"registrationDate"`
	Notes            string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}

// WarrantyPaginateResult đại diện cho kết quả phân trang Warranty
type WarrantyPaginateResult struct {
	Page      int64      `json:"page" bson:"page"`
	Limit     int64      `json:"limit" bson:"limit"`
	ItemCount int64      `json:"itemCount" bson:"itemCount"`
	Items     []Warranty `json:"items" bson:"items"`
}
