package basehdl

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"warranty_hub/internal/logger"
	"warranty_hub/internal/storage"
)

// UploadFormImage đọc file từ multipart form (nếu có) và upload lên object store.
//
// Upload là best-effort: thất bại không làm fail request mà trả về warning
// để handler đưa vào mảng warnings của response, caller phân biệt được
// "tạo thành công kèm ảnh" với "tạo thành công nhưng ảnh upload thất bại".
// Trả về (url, warning): không có file thì cả hai đều rỗng.
func UploadFormImage(c fiber.Ctx, field, folder, companyID string) (string, string) {
	fileHeader, err := c.FormFile(field)
	if err != nil || fileHeader == nil {
		// Request không đính kèm file, không phải lỗi
		return "", ""
	}

	store := storage.GetDefaultStore()
	if store == nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"field":  field,
			"folder": folder,
		}).Warn("Object store chưa được cấu hình, bỏ qua upload ảnh")
		return "", "ระบบจัดเก็บรูปภาพยังไม่พร้อมใช้งาน ข้อมูลถูกบันทึกโดยไม่มีรูปภาพ"
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.GetAppLogger().WithError(err).WithField("field", field).Error("Không mở được file upload")
		return "", "อัปโหลดรูปภาพไม่สำเร็จ ข้อมูลถูกบันทึกโดยไม่มีรูปภาพ"
	}
	defer file.Close()

	key := storage.BuildObjectKey(folder, companyID, fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	url, err := store.Put(c.Context(), key, file, fileHeader.Size, contentType)
	if err != nil {
		logger.GetAppLogger().WithError(err).WithFields(logrus.Fields{
			"field": field,
			"key":   key,
		}).Error("Upload ảnh lên object store thất bại")
		return "", "อัปโหลดรูปภาพไม่สำเร็จ ข้อมูลถูกบันทึกโดยไม่มีรูปภาพ"
	}
	return url, ""
}

// DeleteStoredImage xóa ảnh đã lưu theo URL, best-effort (chỉ log khi lỗi).
func DeleteStoredImage(c fiber.Ctx, imageURL, bucket string) {
	if imageURL == "" {
		return
	}
	store := storage.GetDefaultStore()
	if store == nil {
		return
	}
	key := storage.KeyFromURL(imageURL, bucket)
	if key == "" {
		return
	}
	if err := store.Delete(c.Context(), key); err != nil {
		logger.GetAppLogger().WithError(err).WithField("key", key).Warn("Xóa ảnh khỏi object store thất bại")
	}
}
