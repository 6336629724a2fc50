package warrantysvc

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "warranty_hub/internal/api/warranty/models"
)

// warrantyExportHeader là tiêu đề các cột của file export.
var warrantyExportHeader = []string{
	"Registration Date",
	"Customer Name",
	"Customer Email",
	"Customer Phone",
	"Brand",
	"Product",
	"Model",
	"Serial Number",
	"Purchase Date",
	"Purchase Location",
	"Warranty Expiry",
	"Status",
	"Notes",
}

// ExportExcel xuất toàn bộ bảo hành của một công ty ra file xlsx.
// Trạng thái trong file là trạng thái hiển thị đã phân loại tại thời điểm xuất.
func (s *WarrantyService) ExportExcel(ctx context.Context, companyID primitive.ObjectID) ([]byte, error) {
	opts := options.Find().SetSort(bson.D{{Key: "registrationDate", Value: -1}})
	warranties, err := s.Find(ctx, bson.M{"companyId": companyID}, opts)
	if err != nil {
		return nil, err
	}
	return generateWarrantyExcel(warranties, time.Now())
}

// generateWarrantyExcel dựng file xlsx từ danh sách bảo hành.
func generateWarrantyExcel(warranties []models.Warranty, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	// Không defer Close ở đây vì WriteTo cần file còn mở

	sheetName := "Warranties"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("tạo sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("tạo style tiêu đề: %w", err)
	}
	for col, header := range warrantyExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("chuyển tọa độ cột: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("ghi tiêu đề %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("đặt style tiêu đề %s: %w", cell, err)
		}
	}

	dateFormat := "2006-01-02"
	for row, w := range warranties {
		values := []interface{}{
			time.UnixMilli(w.RegistrationDate).Format(dateFormat),
			w.CustomerInfo.DisplayName,
			w.CustomerInfo.Email,
			w.CustomerInfo.Phone,
			w.ProductInfo.BrandName,
			w.ProductInfo.ProductName,
			w.ProductInfo.Model,
			w.SerialNumber,
			time.UnixMilli(w.PurchaseDate).Format(dateFormat),
			w.PurchaseLocation,
			time.UnixMilli(w.WarrantyExpiry).Format(dateFormat),
			DisplayStatus(&w, now),
			w.Notes,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("chuyển tọa độ ô: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("ghi ô %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("ghi file excel: %w", err)
	}
	f.Close()
	return buf.Bytes(), nil
}
