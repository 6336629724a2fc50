// Package warrantysvc - nghiệp vụ vòng đời bảo hành.
package warrantysvc

import (
	"time"

	models "warranty_hub/internal/api/warranty/models"
)

// ExpiringSoonDays là ngưỡng hiển thị "sắp hết hạn".
const ExpiringSoonDays = 30

// CoverageStart trả về ngày bắt đầu bảo hành: ngày sau ngày mua.
func CoverageStart(purchaseDate time.Time) time.Time {
	return purchaseDate.AddDate(0, 0, 1)
}

// CalculateExpiry tính ngày hết hạn bảo hành từ ngày mua và thời hạn.
// Bảo hành bắt đầu ngày sau ngày mua; ngày hết hạn là ngày cuối cùng còn
// được bảo hành (inclusive): purchase +1 ngày +years +months -1 ngày.
// Ví dụ: mua 2024-01-15, 1 năm 0 tháng → hết hạn 2025-01-15.
func CalculateExpiry(purchaseDate time.Time, years, months int) time.Time {
	return CoverageStart(purchaseDate).AddDate(years, months, -1)
}

// Status phân loại trạng thái của một bảo hành tại thời điểm now.
// Claimed là trạng thái cuối, luôn thắng bất kể ngày tháng. Quá hạn là
// expired; còn hạn nhưng trong vòng ExpiringSoonDays ngày là expiring
// (chỉ để hiển thị, không lưu); còn lại là active.
func Status(storedStatus string, expiry, now time.Time) string {
	if storedStatus == models.StatusClaimed {
		return models.StatusClaimed
	}
	if now.After(expiry) {
		return models.StatusExpired
	}
	if expiry.Sub(now) <= ExpiringSoonDays*24*time.Hour {
		return models.StatusExpiring
	}
	return models.StatusActive
}

// DisplayStatus phân loại trạng thái của một bản ghi bảo hành.
// Expiry lưu dạng UnixMilli; cuối ngày hết hạn vẫn tính là còn bảo hành.
func DisplayStatus(w *models.Warranty, now time.Time) string {
	expiry := time.UnixMilli(w.WarrantyExpiry)
	// Ngày hết hạn là inclusive: cộng đủ một ngày rồi mới so sánh
	endOfCoverage := expiry.AddDate(0, 0, 1).Add(-time.Millisecond)
	return Status(w.Status, endOfCoverage, now)
}
