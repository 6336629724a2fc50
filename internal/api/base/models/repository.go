// Package models chứa các kiểu dùng chung cho tầng truy cập dữ liệu.
package models

// PaginateResult là trang kết quả trả về từ FindWithPagination,
// các trường khớp với envelope mà frontend admin phân trang theo.
type PaginateResult[T any] struct {
	Page      int64 `json:"page" bson:"page"`
	Limit     int64 `json:"limit" bson:"limit"`
	ItemCount int64 `json:"itemCount" bson:"itemCount"` // số mục trong trang hiện tại
	Items     []T   `json:"items" bson:"items"`
	Total     int64 `json:"total" bson:"total"`
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}
