// Package warrantysvc - Test tính ngày hết hạn và phân loại trạng thái bảo hành.
package warrantysvc

import (
	"testing"
	"time"

	models "warranty_hub/internal/api/warranty/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateExpiry(t *testing.T) {
	cases := []struct {
		name     string
		purchase time.Time
		years    int
		months   int
		want     time.Time
	}{
		{"1 năm", date(2024, 1, 15), 1, 0, date(2025, 1, 15)},
		{"6 tháng", date(2024, 1, 15), 0, 6, date(2024, 7, 15)},
		{"1 năm 6 tháng", date(2024, 1, 15), 1, 6, date(2025, 7, 15)},
		{"2 năm", date(2024, 3, 1), 2, 0, date(2026, 3, 1)},
		{"mua cuối tháng", date(2024, 1, 31), 0, 1, date(2024, 3, 1).AddDate(0, 0, -1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateExpiry(tc.purchase, tc.years, tc.months)
			if !got.Equal(tc.want) {
				t.Errorf("CalculateExpiry(%s, %dy%dm) = %s, muốn %s",
					tc.purchase.Format("2006-01-02"), tc.years, tc.months,
					got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
			}
		})
	}
}

func TestCoverageStart(t *testing.T) {
	got := CoverageStart(date(2024, 1, 15))
	want := date(2024, 1, 16)
	if !got.Equal(want) {
		t.Errorf("CoverageStart(2024-01-15) = %s, muốn %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestStatus(t *testing.T) {
	now := date(2024, 6, 15)
	cases := []struct {
		name   string
		stored string
		expiry time.Time
		want   string
	}{
		{"claimed là trạng thái cuối dù còn hạn", models.StatusClaimed, now.AddDate(1, 0, 0), models.StatusClaimed},
		{"claimed thắng cả khi quá hạn", models.StatusClaimed, now.AddDate(-1, 0, 0), models.StatusClaimed},
		{"quá hạn là expired", models.StatusActive, now.AddDate(0, 0, -1), models.StatusExpired},
		{"còn 10 ngày là expiring", models.StatusActive, now.AddDate(0, 0, 10), models.StatusExpiring},
		{"còn đúng 30 ngày là expiring", models.StatusActive, now.AddDate(0, 0, 30), models.StatusExpiring},
		{"còn 40 ngày là active", models.StatusActive, now.AddDate(0, 0, 40), models.StatusActive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Status(tc.stored, tc.expiry, now)
			if got != tc.want {
				t.Errorf("Status(%q, %s) = %q, muốn %q", tc.stored, tc.expiry.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

func TestDisplayStatus_NgayHetHanInclusive(t *testing.T) {
	expiry := date(2024, 6, 15)
	w := &models.Warranty{Status: models.StatusActive, WarrantyExpiry: expiry.UnixMilli()}

	// Cuối ngày hết hạn vẫn còn bảo hành (expiring vì sát hạn)
	endOfDay := time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC)
	if got := DisplayStatus(w, endOfDay); got != models.StatusExpiring {
		t.Errorf("DisplayStatus cuối ngày hết hạn = %q, muốn %q", got, models.StatusExpiring)
	}

	// Sang ngày hôm sau mới là expired
	nextDay := time.Date(2024, 6, 16, 0, 0, 1, 0, time.UTC)
	if got := DisplayStatus(w, nextDay); got != models.StatusExpired {
		t.Errorf("DisplayStatus ngày sau hết hạn = %q, muốn %q", got, models.StatusExpired)
	}
}

func TestDisplayStatus_Claimed(t *testing.T) {
	w := &models.Warranty{Status: models.StatusClaimed, WarrantyExpiry: date(2030, 1, 1).UnixMilli()}
	if got := DisplayStatus(w, date(2024, 1, 1)); got != models.StatusClaimed {
		t.Errorf("DisplayStatus của bảo hành đã claim = %q, muốn %q", got, models.StatusClaimed)
	}
}

func TestNewWarrantyViews(t *testing.T) {
	now := date(2024, 6, 15)
	items := []models.Warranty{
		{Status: models.StatusActive, WarrantyExpiry: date(2026, 1, 1).UnixMilli()},
		{Status: models.StatusClaimed, WarrantyExpiry: date(2026, 1, 1).UnixMilli()},
	}
	views := NewWarrantyViews(items, now)
	if len(views) != 2 {
		t.Fatalf("NewWarrantyViews trả về %d phần tử, muốn 2", len(views))
	}
	if views[0].DisplayStatus != models.StatusActive {
		t.Errorf("views[0].DisplayStatus = %q, muốn %q", views[0].DisplayStatus, models.StatusActive)
	}
	if views[1].DisplayStatus != models.StatusClaimed {
		t.Errorf("views[1].DisplayStatus = %q, muốn %q", views[1].DisplayStatus, models.StatusClaimed)
	}
}

func TestParsePurchaseDate(t *testing.T) {
	got, err := ParsePurchaseDate("2024-01-15")
	if err != nil {
		t.Fatalf("ParsePurchaseDate(\"2024-01-15\") lỗi: %v", err)
	}
	if !got.Equal(date(2024, 1, 15)) {
		t.Errorf("ParsePurchaseDate = %s, muốn 2024-01-15", got.Format("2006-01-02"))
	}
	if _, err := ParsePurchaseDate("15/01/2024"); err == nil {
		t.Error("ParsePurchaseDate với định dạng sai phải trả về lỗi")
	}
}
