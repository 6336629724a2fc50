// Package catalogsvc - nghiệp vụ thương hiệu và sản phẩm.
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

// BrandService là cấu trúc chứa các phương thức liên quan đến thương hiệu
type BrandService struct {
	*basesvc.BaseServiceMongoImpl[models.Brand]
}

// NewBrandService tạo mới BrandService
func NewBrandService() (*BrandService, error) {
	brandCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Brands)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s", global.MongoDB_ColNames.Brands)
	}
	return &BrandService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Brand](brandCol),
	}, nil
}

// CreateBrand tạo thương hiệu mới trong công ty.
//
// Pre-check tên trùng chỉ để trả thông báo thân thiện; nguồn sự thật là
// unique index (companyId, name) - hai request đồng thời cùng tên thì
// request thua nhận lỗi duplicate key.
func (s *BrandService) CreateBrand(ctx context.Context, companyID primitive.ObjectID, input *catalogdto.BrandCreateInput) (models.Brand, error) {
	exists, err := s.DocumentExists(ctx, bson.M{"companyId": companyID, "name": input.Name})
	if err != nil {
		return models.Brand{}, err
	}
	if exists {
		return models.Brand{}, common.NewError(common.ErrCodeValidationInput, "มีแบรนด์ชื่อนี้อยู่แล้ว", common.StatusBadRequest, nil)
	}
	brand := models.Brand{
		CompanyID:   companyID,
		Name:        input.Name,
		Description: input.Description,
		IsActive:    true,
	}
	created, err := s.InsertOne(ctx, brand)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return models.Brand{}, common.NewError(common.ErrCodeValidationInput, "มีแบรนด์ชื่อนี้อยู่แล้ว", common.StatusConflict, nil)
		}
		return models.Brand{}, err
	}
	return created, nil
}

// UpdateBrand cập nhật thương hiệu. Đổi tên sang tên đã có trong công ty
// (trừ chính record đang sửa) bị từ chối.
func (s *BrandService) UpdateBrand(ctx context.Context, brandID, companyID primitive.ObjectID, input *catalogdto.BrandUpdateInput) (models.Brand, error) {
	set := bson.M{}
	if input.Name != "" {
		exists, err := s.DocumentExists(ctx, bson.M{
			"companyId": companyID,
			"name":      input.Name,
			"_id":       bson.M{"$ne": brandID},
		})
		if err != nil {
			return models.Brand{}, err
		}
		if exists {
			return models.Brand{}, common.NewError(common.ErrCodeValidationInput, "มีแบรนด์ชื่อนี้อยู่แล้ว", common.StatusBadRequest, nil)
		}
		set["name"] = input.Name
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}
	if len(set) == 0 {
		return s.FindOneById(ctx, brandID)
	}
	updated, err := s.UpdateById(ctx, brandID, &basesvc.UpdateData{Set: set})
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return models.Brand{}, common.NewError(common.ErrCodeValidationInput, "มีแบรนด์ชื่อนี้อยู่แล้ว", common.StatusConflict, nil)
		}
		return models.Brand{}, err
	}
	return updated, nil
}

// UpdateLogo lưu URL logo mới của thương hiệu.
func (s *BrandService) UpdateLogo(ctx context.Context, brandID primitive.ObjectID, logoURL string) (models.Brand, error) {
	return s.UpdateById(ctx, brandID, &basesvc.UpdateData{Set: bson.M{"logoUrl": logoURL}})
}
