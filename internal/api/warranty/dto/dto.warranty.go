// Package warrantydto - DTO cho domain warranty.
package warrantydto

// WarrantyCreateInput đầu vào tạo bảo hành từ trang quản trị.
// Ngày mua dạng "2006-01-02"; ngày hết hạn do server tính từ thời hạn
// bảo hành của sản phẩm, client không gửi được.
type WarrantyCreateInput struct {
	ProductID        string `json:"productId" validate:"required,exists=products"`
	CustomerID       string `json:"customerId" validate:"required" maxLength:"100"`
	CustomerName     string `json:"customerName" validate:"required,no_xss" maxLength:"200"`
	CustomerEmail    string `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone    string `json:"customerPhone" validate:"omitempty" maxLength:"30"`
	PurchaseDate     string `json:"purchaseDate" validate:"required,datetime=2006-01-02"`
	SerialNumber     string `json:"serialNumber" validate:"omitempty,no_xss" maxLength:"200"`
	PurchaseLocation string `json:"purchaseLocation" validate:"omitempty,no_xss" maxLength:"500"`
	Notes            string `json:"notes" validate:"omitempty,no_xss" maxLength:"2000"`
}

// WarrantyRegisterInput đầu vào đăng ký bảo hành từ phía khách hàng
// (đã đăng nhập LINE). Thông tin khách lấy từ phiên, không lấy từ body.
type WarrantyRegisterInput struct {
	ProductID        string `json:"productId" validate:"required,exists=products"`
	PurchaseDate     string `json:"purchaseDate" validate:"required,datetime=2006-01-02"`
	SerialNumber     string `json:"serialNumber" validate:"omitempty,no_xss" maxLength:"200"`
	PurchaseLocation string `json:"purchaseLocation" validate:"omitempty,no_xss" maxLength:"500"`
	Phone            string `json:"phone" validate:"omitempty" maxLength:"30"`
}

// WarrantyUpdateInput đầu vào cập nhật bảo hành qua endpoint update chung.
// Chỉ notes thay đổi được: snapshot bất biến, status chỉ đổi qua claim.
type WarrantyUpdateInput struct {
	Notes string `json:"notes" validate:"omitempty,no_xss" maxLength:"2000"`
}

// WarrantyClaimInput đầu vào thao tác claim.
type WarrantyClaimInput struct {
	Reason string `json:"reason" validate:"omitempty,no_xss" maxLength:"1000"`
}
