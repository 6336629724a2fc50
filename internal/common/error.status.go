package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusAccepted  = 202 // Yêu cầu được chấp nhận
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	// Client Error Codes (4xx)
	StatusBadRequest         = 400 // Yêu cầu không hợp lệ
	StatusUnauthorized       = 401 // Chưa xác thực
	StatusForbidden          = 403 // Không có quyền truy cập
	StatusNotFound           = 404 // Không tìm thấy tài nguyên
	StatusMethodNotAllowed   = 405 // Phương thức HTTP không được hỗ trợ
	StatusConflict           = 409 // Xung đột dữ liệu
	StatusGone               = 410 // Tài nguyên không còn tồn tại
	StatusPreconditionFailed = 412 // Điều kiện tiên quyết không thỏa mãn
	StatusTooManyRequests    = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusNotImplemented      = 501 // Chức năng chưa được triển khai
	StatusBadGateway          = 502 // Gateway không hợp lệ
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
	StatusGatewayTimeout      = 504 // Gateway timeout
)

// Response Messages
// Thông báo hướng về người dùng bằng tiếng Thái vì sản phẩm phục vụ thị trường Thái Lan.
// Client hiển thị trực tiếp các message này.
const (
	// Success Messages
	MsgSuccess = "ดำเนินการสำเร็จ"
	MsgCreated = "สร้างข้อมูลสำเร็จ"
	MsgUpdated = "อัปเดตข้อมูลสำเร็จ"
	MsgDeleted = "ลบข้อมูลสำเร็จ"

	// Error Messages
	MsgBadRequest       = "คำขอไม่ถูกต้อง"
	MsgUnauthorized     = "กรุณาเข้าสู่ระบบ"
	MsgForbidden        = "ไม่มีสิทธิ์เข้าถึง"
	MsgNotFound         = "ไม่พบข้อมูล"
	MsgMethodNotAllowed = "ไม่รองรับวิธีการเรียกนี้"
	MsgConflict         = "ข้อมูลขัดแย้งกัน"
	MsgTooManyRequests  = "มีคำขอมากเกินไป กรุณาลองใหม่ภายหลัง"
	MsgInternalError    = "เกิดข้อผิดพลาด"

	// Session Messages
	MsgSessionMissing = "กรุณาเข้าสู่ระบบ"
	MsgSessionInvalid = "เซสชันไม่ถูกต้อง กรุณาเข้าสู่ระบบใหม่"
	MsgSessionExpired = "เซสชันหมดอายุ กรุณาเข้าสู่ระบบใหม่"

	// Validation Messages
	MsgValidationError = "ข้อมูลไม่ถูกต้อง"
	MsgDatabaseError   = "เกิดข้อผิดพลาดในการเชื่อมต่อฐานข้อมูล"
	MsgInvalidFormat   = "รูปแบบข้อมูลไม่ถูกต้อง"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: AUTH_001)
	Category    string // Phân loại lỗi (ví dụ: Authentication)
	SubCategory string // Phân loại con (ví dụ: Session)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "Lỗi xác thực chung",
	}

	ErrCodeAuthSession = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Session",
		Description: "Lỗi liên quan đến session cookie",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Lỗi thông tin đăng nhập",
	}

	ErrCodeAuthRole = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Role",
		Description: "Lỗi liên quan đến vai trò người dùng",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Lỗi xác thực dữ liệu chung",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Lỗi cơ sở dữ liệu chung",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Lỗi kết nối cơ sở dữ liệu",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Lỗi truy vấn dữ liệu",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "Lỗi logic nghiệp vụ chung",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Lỗi trạng thái nghiệp vụ",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Lỗi thao tác nghiệp vụ",
	}

	// Tenant Errors (TEN_xxx)
	ErrCodeTenant = ErrorCode{
		Code:        "TEN_001",
		Category:    "Tenant",
		SubCategory: "Resolution",
		Description: "Lỗi xác định tenant từ request",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is kiểm tra xem error có phải là target error không (hỗ trợ errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	// So sánh với các sentinel error cùng kiểu
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}

	return false
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Authentication Errors
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "อีเมลหรือรหัสผ่านไม่ถูกต้อง", StatusUnauthorized, nil)
	ErrSessionExpired     = NewError(ErrCodeAuthSession, MsgSessionExpired, StatusUnauthorized, nil)
	ErrSessionInvalid     = NewError(ErrCodeAuthSession, MsgSessionInvalid, StatusUnauthorized, nil)
	ErrSessionMissing     = NewError(ErrCodeAuthSession, MsgSessionMissing, StatusUnauthorized, nil)
	ErrForbidden          = NewError(ErrCodeAuthRole, MsgForbidden, StatusForbidden, nil)
	ErrUserNotFound       = NewError(ErrCodeAuthCredentials, "ไม่พบข้อมูลผู้ใช้", StatusNotFound, nil)
	ErrUserInactive       = NewError(ErrCodeAuthCredentials, "บัญชีนี้ถูกระงับการใช้งาน", StatusForbidden, nil)

	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, MsgValidationError, StatusBadRequest, nil)
	ErrInvalidEmail  = NewError(ErrCodeValidationInput, "รูปแบบอีเมลไม่ถูกต้อง", StatusBadRequest, nil)
	ErrWeakPassword  = NewError(ErrCodeValidationInput, "รหัสผ่านไม่ปลอดภัยเพียงพอ", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "กรุณากรอกข้อมูลให้ครบถ้วน", StatusBadRequest, nil)
	ErrInvalidSlug   = NewError(ErrCodeValidationFormat, "รูปแบบ URL ไม่ถูกต้อง ใช้ได้เฉพาะตัวอักษรภาษาอังกฤษตัวเล็ก ตัวเลข และขีดกลาง", StatusBadRequest, nil)

	// Database Errors
	ErrNotFound    = NewError(ErrCodeDatabaseQuery, MsgNotFound, StatusNotFound, nil)
	ErrDuplicate   = NewError(ErrCodeDatabaseQuery, "มีข้อมูลนี้อยู่แล้ว", StatusConflict, nil)
	ErrConstraint  = NewError(ErrCodeDatabaseQuery, "ข้อมูลไม่เป็นไปตามเงื่อนไข", StatusBadRequest, nil)
	ErrConnection  = NewError(ErrCodeDatabaseConnection, MsgDatabaseError, StatusServiceUnavailable, nil)
	ErrTransaction = NewError(ErrCodeDatabaseQuery, "เกิดข้อผิดพลาดในการบันทึกข้อมูล", StatusInternalServerError, nil)

	// Business Logic Errors
	ErrDependentData    = NewError(ErrCodeBusinessState, "ไม่สามารถลบได้ เนื่องจากมีข้อมูลที่เกี่ยวข้องอยู่", StatusBadRequest, nil)
	ErrInvalidState     = NewError(ErrCodeBusinessState, "สถานะไม่ถูกต้อง", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "ไม่สามารถดำเนินการได้", StatusBadRequest, nil)
	ErrWarrantyClaimed  = NewError(ErrCodeBusinessState, "การรับประกันนี้ถูกเคลมไปแล้ว", StatusBadRequest, nil)
	ErrWarrantyExpired  = NewError(ErrCodeBusinessState, "การรับประกันหมดอายุแล้ว", StatusBadRequest, nil)

	// Tenant Errors
	// Tenant không xác định được hoặc công ty không active đều trả về 404
	// để không rò rỉ việc tồn tại của tenant khác.
	ErrTenantNotFound = NewError(ErrCodeTenant, "ไม่พบร้านค้านี้ในระบบ", StatusNotFound, nil)
	ErrSlugTaken      = NewError(ErrCodeTenant, "URL นี้ถูกใช้งานแล้ว กรุณาเลือกใหม่", StatusConflict, nil)
)

// MongoDB Error Messages
const (
	MsgMongoConnection = "เกิดข้อผิดพลาดในการเชื่อมต่อฐานข้อมูล"
	MsgMongoNetwork    = "เกิดข้อผิดพลาดทางเครือข่ายของฐานข้อมูล"
	MsgMongoTimeout    = "การเชื่อมต่อฐานข้อมูลหมดเวลา"
	MsgMongoAuth       = "การยืนยันตัวตนกับฐานข้อมูลล้มเหลว"
	MsgMongoQuery      = "เกิดข้อผิดพลาดในการค้นหาข้อมูล"
	MsgMongoWrite      = "เกิดข้อผิดพลาดในการบันทึกข้อมูล"
	MsgMongoDuplicate  = "มีข้อมูลนี้อยู่แล้ว"
	MsgMongoSystem     = "เกิดข้อผิดพลาดของระบบฐานข้อมูล"
)

// MongoDB Specific Errors
var (
	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, MsgMongoConnection, StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, MsgMongoNetwork, StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, MsgMongoTimeout, StatusServiceUnavailable, nil)
	ErrMongoAuth       = NewError(ErrCodeAuth, MsgMongoAuth, StatusUnauthorized, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, MsgMongoQuery, StatusInternalServerError, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, MsgMongoWrite, StatusInternalServerError, nil)
	ErrMongoDuplicate  = NewError(ErrCodeDatabaseQuery, MsgMongoDuplicate, StatusConflict, nil)
	ErrMongoSystem     = NewError(ErrCodeDatabase, MsgMongoSystem, StatusInternalServerError, nil)
)

// ConvertMongoError chuyển đổi lỗi MongoDB sang lỗi hệ thống
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Không convert lỗi đã thuộc taxonomy của hệ thống
	if errors.Is(err, ErrNotFound) {
		return err
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	// mongo.ErrNoDocuments là trường hợp "không tìm thấy" bình thường
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	// Lỗi trùng unique index - map về lỗi trùng lặp để handler trả 409
	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}

	// Kiểm tra các loại lỗi MongoDB cụ thể theo dải mã lệnh
	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return ErrMongoConnection
		case mongoErr.Code >= 200 && mongoErr.Code < 300:
			return ErrMongoAuth
		case mongoErr.Code >= 300 && mongoErr.Code < 400:
			return ErrMongoQuery
		case mongoErr.Code >= 400 && mongoErr.Code < 500:
			return ErrMongoWrite
		case mongoErr.Code >= 500:
			return ErrMongoSystem
		}
	}

	// Nếu không tìm thấy lỗi cụ thể, trả về lỗi hệ thống chung
	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
