// Package customerdto - các cấu trúc dữ liệu đầu vào cho luồng khách hàng LINE.
package customerdto

// LineCallbackInput là tham số LINE gửi về callback sau khi khách đồng ý.
type LineCallbackInput struct {
	Code  string `json:"code" query:"code" validate:"required"`
	State string `json:"state" query:"state" validate:"required"`
}

// CustomerProfileResult trả về phiên khách hàng hiện tại cho frontend.
type CustomerProfileResult struct {
	LineUserID  string `json:"lineUserId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl,omitempty"`
	Email       string `json:"email,omitempty"`
	Tenant      string `json:"tenant"`
}
