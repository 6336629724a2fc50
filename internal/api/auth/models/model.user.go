// Package models - model người dùng quản trị (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các vai trò của nhân viên trong một công ty.
// Owner và admin có quyền như nhau trong toàn hệ thống (admin tồn tại
// để tương thích dữ liệu cũ). Manager được ghi, viewer chỉ được đọc.
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

// User định nghĩa mô hình nhân viên quản trị của một công ty.
// Password chứa mật khẩu plaintext của dữ liệu cũ; lần đăng nhập thành công
// đầu tiên sẽ chuyển sang PasswordHash (bcrypt) và xóa Password.
type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyID    primitive.ObjectID `json:"companyId" bson:"companyId"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email" index:"unique:companyId"`
	Password     string             `json:"-" bson:"password,omitempty"`
	PasswordHash string             `json:"-" bson:"passwordHash,omitempty"`
	Role         string             `json:"role" bson:"role" default:"viewer"`
	IsActive     bool               `json:"isActive" bson:"isActive" default:"true"`
	LastLogin    int64              `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// CanWrite cho biết vai trò có quyền ghi dữ liệu không.
func (u *User) CanWrite() bool {
	return u.Role == RoleOwner || u.Role == RoleAdmin || u.Role == RoleManager
}

// CanManage cho biết vai trò có quyền quản lý (xóa dữ liệu, quản lý user) không.
func (u *User) CanManage() bool {
	return u.Role == RoleOwner || u.Role == RoleAdmin
}

// IsValidRole kiểm tra chuỗi vai trò hợp lệ.
func IsValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleManager, RoleViewer:
		return true
	}
	return false
}

// UserPaginateResult đại diện cho kết quả phân trang User
type UserPaginateResult struct {
	Page      int64  `json:"page" bson:"page"`
	Limit     int64  `json:"limit" bson:"limit"`
	ItemCount int64  `json:"itemCount" bson:"itemCount"`
	Items     []User `json:"items" bson:"items"`
}
