package authdto

// LoginInput đầu vào đăng nhập quản trị.
// Tenant là slug dự phòng khi request không đi qua reverse proxy
// (chiến lược body trong chuỗi resolve tenant).
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Tenant   string `json:"tenant" validate:"omitempty,tenant_slug"`
}

// UserCreateInput đầu vào tạo nhân viên (CRUD).
type UserCreateInput struct {
	Name     string `json:"name" validate:"required" maxLength:"200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
	Role     string `json:"role" validate:"required,oneof=owner admin manager viewer"`
}

// UserUpdateInput đầu vào cập nhật nhân viên.
// Email không đổi được sau khi tạo (dùng làm khóa đăng nhập).
type UserUpdateInput struct {
	Name     string `json:"name" validate:"omitempty" maxLength:"200"`
	Role     string `json:"role" validate:"omitempty,oneof=owner admin manager viewer"`
	IsActive *bool  `json:"isActive" validate:"omitempty"`
}

// ChangePasswordInput đầu vào đổi mật khẩu của chính mình.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,strong_password"`
}
