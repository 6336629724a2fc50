package catalogsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "warranty_hub/internal/api/base/service"
	catalogdto "warranty_hub/internal/api/catalog/dto"
	models "warranty_hub/internal/api/catalog/models"
	"warranty_hub/internal/common"
	"warranty_hub/internal/global"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
	brandService *basesvc.BaseServiceMongoImpl[models.Brand]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	productCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s", global.MongoDB_ColNames.Products)
	}
	brandCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Brands)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s", global.MongoDB_ColNames.Brands)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](productCol),
		brandService:         basesvc.NewBaseServiceMongo[models.Brand](brandCol),
	}, nil
}

// ValidateBrandOwnership kiểm tra brand tồn tại và thuộc đúng công ty.
// Brand thuộc công ty khác trả về 404 như không tồn tại.
func (s *ProductService) ValidateBrandOwnership(ctx context.Context, companyID, brandID primitive.ObjectID) error {
	exists, err := s.brandService.DocumentExists(ctx, bson.M{"_id": brandID, "companyId": companyID})
	if err != nil {
		return err
	}
	if !exists {
		return common.ErrNotFound
	}
	return nil
}

// CreateProduct tạo sản phẩm mới sau khi xác minh brand thuộc cùng công ty.
// Bộ (brandId, name, model) duy nhất trong công ty do unique index đảm bảo.
func (s *ProductService) CreateProduct(ctx context.Context, companyID primitive.ObjectID, input *catalogdto.ProductCreateInput) (models.Product, error) {
	brandID, err := primitive.ObjectIDFromHex(input.BrandID)
	if err != nil {
		return models.Product{}, common.ErrInvalidFormat
	}
	if err := s.ValidateBrandOwnership(ctx, companyID, brandID); err != nil {
		return models.Product{}, err
	}

	exists, err := s.DocumentExists(ctx, bson.M{
		"companyId": companyID,
		"brandId":   brandID,
		"name":      input.Name,
		"model":     input.Model,
	})
	if err != nil {
		return models.Product{}, err
	}
	if exists {
		return models.Product{}, common.NewError(common.ErrCodeValidationInput, "มีสินค้ารุ่นนี้อยู่แล้วในแบรนด์นี้", common.StatusBadRequest, nil)
	}

	product := models.Product{
		CompanyID:      companyID,
		BrandID:        brandID,
		Name:           input.Name,
		Model:          input.Model,
		WarrantyYears:  input.WarrantyYears,
		WarrantyMonths: input.WarrantyMonths,
		RequiredFields: input.RequiredFields,
		IsActive:       true,
	}
	created, err := s.InsertOne(ctx, product)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return models.Product{}, common.NewError(common.ErrCodeValidationInput, "มีสินค้ารุ่นนี้อยู่แล้วในแบรนด์นี้", common.StatusConflict, nil)
		}
		return models.Product{}, err
	}
	return created, nil
}

// UpdateProduct cập nhật sản phẩm. Đổi brand phải là brand thuộc cùng công ty.
func (s *ProductService) UpdateProduct(ctx context.Context, productID, companyID primitive.ObjectID, input *catalogdto.ProductUpdateInput) (models.Product, error) {
	set := bson.M{}
	if input.BrandID != "" {
		brandID, err := primitive.ObjectIDFromHex(input.BrandID)
		if err != nil {
			return models.Product{}, common.ErrInvalidFormat
		}
		if err := s.ValidateBrandOwnership(ctx, companyID, brandID); err != nil {
			return models.Product{}, err
		}
		set["brandId"] = brandID
	}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Model != "" {
		set["model"] = input.Model
	}
	if input.WarrantyYears != nil {
		set["warrantyYears"] = *input.WarrantyYears
	}
	if input.WarrantyMonths != nil {
		set["warrantyMonths"] = *input.WarrantyMonths
	}
	if input.RequiredFields != nil {
		set["requiredFields"] = *input.RequiredFields
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}
	if len(set) == 0 {
		return s.FindOneById(ctx, productID)
	}
	updated, err := s.UpdateById(ctx, productID, &basesvc.UpdateData{Set: set})
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return models.Product{}, common.NewError(common.ErrCodeValidationInput, "มีสินค้ารุ่นนี้อยู่แล้วในแบรนด์นี้", common.StatusConflict, nil)
		}
		return models.Product{}, err
	}
	return updated, nil
}

// UpdateImage lưu URL hình mới của sản phẩm.
func (s *ProductService) UpdateImage(ctx context.Context, productID primitive.ObjectID, imageURL string) (models.Product, error) {
	return s.UpdateById(ctx, productID, &basesvc.UpdateData{Set: bson.M{"imageUrl": imageURL}})
}
