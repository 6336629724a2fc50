package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WarrantyTransition ghi lại một lần chuyển trạng thái bảo hành:
// ai chuyển, khi nào, vì sao. Trạng thái claimed chỉ được đặt qua thao tác
// claim chuyên biệt kèm bản ghi transition, endpoint update chung không
// đổi được status.
type WarrantyTransition struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyID  primitive.ObjectID `json:"companyId" bson:"companyId"`
	WarrantyID primitive.ObjectID `json:"warrantyId" bson:"warrantyId"`
	FromStatus string             `json:"fromStatus" bson:"fromStatus"`
	ToStatus   string             `json:"toStatus" bson:"toStatus"`
	Reason     string             `json:"reason,omitempty" bson:"reason,omitempty"`
	ChangedBy  string             `json:"changedBy" bson:"changedBy"` // hex ObjectID của user quản trị
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
