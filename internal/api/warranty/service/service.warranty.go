package warrantysvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "warranty_hub/internal/api/base/service"
	catalogmodels "warranty_hub/internal/api/catalog/models"
	warrantydto "warranty_hub/internal/api/warranty/dto"
	models "warranty_hub/internal/api/warranty/models"
	"warranty_hub/internal/common"
	"warranty_hub/internal/global"
	"warranty_hub/internal/logger"
)

// WarrantyService là cấu trúc chứa các phương thức liên quan đến bảo hành
type WarrantyService struct {
	*basesvc.BaseServiceMongoImpl[models.Warranty]
	transitionService *basesvc.BaseServiceMongoImpl[models.WarrantyTransition]
	productService    *basesvc.BaseServiceMongoImpl[catalogmodels.Product]
	brandService      *basesvc.BaseServiceMongoImpl[catalogmodels.Brand]
}

// NewWarrantyService tạo mới WarrantyService
func NewWarrantyService() (*WarrantyService, error) {
	warrantyCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Warranties)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s", global.MongoDB_ColNames.Warranties)
	}
	transitionCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.WarrantyTransitions)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s", global.MongoDB_ColNames.WarrantyTransitions)
	}
	productCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s", global.MongoDB_ColNames.Products)
	}
	brandCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Brands)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s", global.MongoDB_ColNames.Brands)
	}
	return &WarrantyService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Warranty](warrantyCol),
		transitionService:    basesvc.NewBaseServiceMongo[models.WarrantyTransition](transitionCol),
		productService:       basesvc.NewBaseServiceMongo[catalogmodels.Product](productCol),
		brandService:         basesvc.NewBaseServiceMongo[catalogmodels.Brand](brandCol),
	}, nil
}

// WarrantyView là bản ghi bảo hành kèm trạng thái hiển thị đã phân loại
// (expiring suy ra lúc đọc, không lưu).
type WarrantyView struct {
	models.Warranty
	DisplayStatus string `json:"displayStatus"`
}

// NewWarrantyView gắn trạng thái hiển thị cho một bản ghi bảo hành.
func NewWarrantyView(w models.Warranty, now time.Time) WarrantyView {
	return WarrantyView{Warranty: w, DisplayStatus: DisplayStatus(&w, now)}
}

// NewWarrantyViews gắn trạng thái hiển thị cho danh sách bản ghi.
func NewWarrantyViews(items []models.Warranty, now time.Time) []WarrantyView {
	views := make([]WarrantyView, 0, len(items))
	for _, w := range items {
		views = append(views, NewWarrantyView(w, now))
	}
	return views
}

// ParsePurchaseDate parse ngày mua dạng "2006-01-02".
func ParsePurchaseDate(value string) (time.Time, error) {
	purchaseDate, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, common.NewError(common.ErrCodeValidationFormat, "รูปแบบวันที่ซื้อไม่ถูกต้อง", common.StatusBadRequest, nil)
	}
	return purchaseDate, nil
}

// loadProductForRegistration lấy sản phẩm active thuộc đúng công ty
// kèm brand để snapshot. Sản phẩm công ty khác trả về 404.
func (s *WarrantyService) loadProductForRegistration(ctx context.Context, companyID, productID primitive.ObjectID) (catalogmodels.Product, catalogmodels.Brand, error) {
	product, err := s.productService.FindOne(ctx, bson.M{"_id": productID, "companyId": companyID, "isActive": true}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return catalogmodels.Product{}, catalogmodels.Brand{}, common.ErrNotFound
		}
		return catalogmodels.Product{}, catalogmodels.Brand{}, err
	}
	brand, err := s.brandService.FindOneById(ctx, product.BrandID)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return catalogmodels.Product{}, catalogmodels.Brand{}, err
	}
	return product, brand, nil
}

// validateRequiredFields kiểm tra dữ liệu bắt buộc theo cấu hình của sản phẩm.
// receiptProvided là việc client có đính kèm hóa đơn hay không: upload thất bại
// sau đó là best-effort, không chặn việc tạo.
func validateRequiredFields(product *catalogmodels.Product, serialNumber, purchaseLocation string, receiptProvided bool) error {
	required := product.RequiredFields
	if required.SerialNumber && serialNumber == "" {
		return common.NewError(common.ErrCodeValidationInput, "กรุณากรอกหมายเลขเครื่อง (Serial Number)", common.StatusBadRequest, nil)
	}
	if required.PurchaseLocation && purchaseLocation == "" {
		return common.NewError(common.ErrCodeValidationInput, "กรุณากรอกสถานที่ซื้อสินค้า", common.StatusBadRequest, nil)
	}
	if required.ReceiptImage && !receiptProvided {
		return common.NewError(common.ErrCodeValidationInput, "กรุณาแนบรูปใบเสร็จรับเงิน", common.StatusBadRequest, nil)
	}
	return nil
}

// buildWarranty dựng bản ghi bảo hành với snapshot và ngày hết hạn đã tính.
func buildWarranty(companyID primitive.ObjectID, product *catalogmodels.Product, brand *catalogmodels.Brand,
	customer models.CustomerInfo, purchaseDate time.Time, serialNumber, purchaseLocation, receiptURL, notes string) models.Warranty {
	now := time.Now()
	start := CoverageStart(purchaseDate)
	expiry := CalculateExpiry(purchaseDate, product.WarrantyYears, product.WarrantyMonths)
	return models.Warranty{
		CompanyID:  companyID,
		ProductID:  product.ID,
		CustomerID: customer.LineUserID,
		CustomerInfo: customer,
		ProductInfo: models.ProductInfo{
			BrandName:      brand.Name,
			ProductName:    product.Name,
			Model:          product.Model,
			WarrantyYears:  product.WarrantyYears,
			WarrantyMonths: product.WarrantyMonths,
		},
		SerialNumber:     serialNumber,
		PurchaseLocation: purchaseLocation,
		ReceiptImageURL:  receiptURL,
		PurchaseDate:     purchaseDate.UnixMilli(),
		WarrantyStart:    start.UnixMilli(),
		WarrantyExpiry:   expiry.UnixMilli(),
		Status:           models.StatusActive,
		RegistrationDate: now.UnixMilli(),
		Notes:            notes,
	}
}

// Register đăng ký bảo hành mới (dùng chung cho khách hàng và quản trị).
// Sản phẩm phải thuộc công ty và đang active; dữ liệu bắt buộc theo
// requiredFields của sản phẩm được kiểm tra trước khi ghi.
func (s *WarrantyService) Register(ctx context.Context, companyID, productID primitive.ObjectID,
	customer models.CustomerInfo, purchaseDate time.Time, serialNumber, purchaseLocation, receiptURL string,
	receiptProvided bool, notes string) (models.Warranty, error) {
	product, brand, err := s.loadProductForRegistration(ctx, companyID, productID)
	if err != nil {
		return models.Warranty{}, err
	}
	if err := validateRequiredFields(&product, serialNumber, purchaseLocation, receiptProvided); err != nil {
		return models.Warranty{}, err
	}
	warranty := buildWarranty(companyID, &product, &brand, customer, purchaseDate, serialNumber, purchaseLocation, receiptURL, notes)
	created, err := s.InsertOne(ctx, warranty)
	if err != nil {
		return models.Warranty{}, err
	}
	logger.GetAuditLogger().WithFields(logrus.Fields{
		"warrantyId": created.ID.Hex(),
		"companyId":  companyID.Hex(),
		"productId":  productID.Hex(),
		"customerId": customer.LineUserID,
	}).Info("Đăng ký bảo hành mới")
	return created, nil
}

// RegisterFromInput đăng ký bảo hành từ WarrantyCreateInput của trang quản trị.
func (s *WarrantyService) RegisterFromInput(ctx context.Context, companyID primitive.ObjectID,
	input *warrantydto.WarrantyCreateInput, receiptURL string, receiptProvided bool) (models.Warranty, error) {
	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		return models.Warranty{}, common.ErrInvalidFormat
	}
	purchaseDate, err := ParsePurchaseDate(input.PurchaseDate)
	if err != nil {
		return models.Warranty{}, err
	}
	customer := models.CustomerInfo{
		LineUserID:  input.CustomerID,
		DisplayName: input.CustomerName,
		Email:       input.CustomerEmail,
		Phone:       input.CustomerPhone,
	}
	return s.Register(ctx, companyID, productID, customer, purchaseDate,
		input.SerialNumber, input.PurchaseLocation, receiptURL, receiptProvided, input.Notes)
}

// Claim chuyển bảo hành sang trạng thái claimed (trạng thái cuối) và ghi
// bản ghi transition ai/khi nào/vì sao. Bảo hành đã claimed không claim lại được.
func (s *WarrantyService) Claim(ctx context.Context, warrantyID, companyID primitive.ObjectID, changedBy, reason string) (models.Warranty, error) {
	warranty, err := s.FindOne(ctx, bson.M{"_id": warrantyID, "companyId": companyID}, nil)
	if err != nil {
		return models.Warranty{}, err
	}
	if warranty.Status == models.StatusClaimed {
		return models.Warranty{}, common.ErrWarrantyClaimed
	}

	updated, err := s.UpdateById(ctx, warrantyID, &basesvc.UpdateData{Set: bson.M{"status": models.StatusClaimed}})
	if err != nil {
		return models.Warranty{}, err
	}

	transition := models.WarrantyTransition{
		CompanyID:  companyID,
		WarrantyID: warrantyID,
		FromStatus: warranty.Status,
		ToStatus:   models.StatusClaimed,
		Reason:     reason,
		ChangedBy:  changedBy,
	}
	if _, err := s.transitionService.InsertOne(ctx, transition); err != nil {
		// Status đã đổi nhưng transition ghi thất bại: log để đối soát,
		// không rollback vì không có transaction đa document
		logger.GetErrorLogger().WithError(err).WithFields(logrus.Fields{
			"warrantyId": warrantyID.Hex(),
			"changedBy":  changedBy,
		}).Error("Ghi warranty transition thất bại")
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"warrantyId": warrantyID.Hex(),
		"companyId":  companyID.Hex(),
		"changedBy":  changedBy,
		"fromStatus": warranty.Status,
	}).Info("Claim bảo hành")
	return updated, nil
}

// Transitions trả về lịch sử chuyển trạng thái của một bảo hành (mới nhất trước).
func (s *WarrantyService) Transitions(ctx context.Context, warrantyID, companyID primitive.ObjectID) ([]models.WarrantyTransition, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.transitionService.Find(ctx, bson.M{"warrantyId": warrantyID, "companyId": companyID}, opts)
}

// ListByCustomer trả về các bảo hành của một khách hàng LINE trong một công ty.
func (s *WarrantyService) ListByCustomer(ctx context.Context, companyID primitive.ObjectID, lineUserID string) ([]models.Warranty, error) {
	opts := options.Find().SetSort(bson.D{{Key: "registrationDate", Value: -1}})
	return s.Find(ctx, bson.M{"companyId": companyID, "customerId": lineUserID}, opts)
}
