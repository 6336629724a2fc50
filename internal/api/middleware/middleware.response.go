package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"warranty_hub/internal/common"
)

// JSONResponse ghi JSON với charset=utf-8 để message tiếng Thái hiển thị đúng.
// Bản riêng của middleware để không import handler package (tránh import cycle).
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleErrorResponse trả lỗi về client theo envelope {code,message,status}.
// Lỗi ngoài taxonomy được coi là lỗi hệ thống.
func HandleErrorResponse(c fiber.Ctx, err error) {
	statusCode := common.StatusInternalServerError
	body := fiber.Map{
		"code":    common.ErrCodeDatabase.Code,
		"message": err.Error(),
		"status":  "error",
	}

	var customErr *common.Error
	if errors.As(err, &customErr) {
		statusCode = customErr.StatusCode
		body["code"] = customErr.Code.Code
		body["message"] = customErr.Message
		body["details"] = customErr.Details
	}

	JSONResponse(c, statusCode, body)
}
