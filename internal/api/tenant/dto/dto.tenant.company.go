package tenantdto

// CompanyRegisterInput đầu vào đăng ký công ty mới.
// Đăng ký luôn tạo kèm tài khoản owner đầu tiên để đăng nhập quản trị.
type CompanyRegisterInput struct {
	Slug          string `json:"slug" validate:"required,tenant_slug"`
	Name          string `json:"name" validate:"required" maxLength:"200"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone" validate:"omitempty" maxLength:"30"`
	Address       string `json:"address" validate:"omitempty" maxLength:"500"`
	Description   string `json:"description" validate:"omitempty" maxLength:"1000"`
	OwnerName     string `json:"ownerName" validate:"required" maxLength:"200"`
	OwnerEmail    string `json:"ownerEmail" validate:"required,email"`
	OwnerPassword string `json:"ownerPassword" validate:"required,strong_password"`
}

// CompanyCreateInput đầu vào tạo công ty (CRUD nội bộ, không tạo owner).
type CompanyCreateInput struct {
	Slug        string `json:"slug" validate:"required,tenant_slug"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// CompanyUpdateInput đầu vào cập nhật thông tin/cài đặt công ty.
// Slug không được phép đổi sau khi đăng ký.
type CompanyUpdateInput struct {
	Name          string `json:"name" validate:"omitempty" maxLength:"200"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone" validate:"omitempty" maxLength:"30"`
	Address       string `json:"address" validate:"omitempty" maxLength:"500"`
	Description   string `json:"description" validate:"omitempty" maxLength:"1000"`
	LineChannelID string `json:"lineChannelId" validate:"omitempty" maxLength:"100"`
}

// SubdomainCheckInput đầu vào kiểm tra slug còn trống hay không.
type SubdomainCheckInput struct {
	Slug string `json:"slug" validate:"required,tenant_slug"`
}

// SubdomainCheckResult kết quả kiểm tra slug.
type SubdomainCheckResult struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
