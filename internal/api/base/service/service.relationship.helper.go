package basesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"warranty_hub/internal/common"
	"warranty_hub/internal/global"
)

// RelationshipCheck dinh nghia mot quan he can kiem tra
type RelationshipCheck struct {
	CollectionName string
	FieldName      string
	ErrorMessage   string
	Optional       bool
}

// CheckRelationshipExists kiem tra co record nao trong collection khac dang tro toi record nay khong.
// Message tra ve cho nguoi dung la tieng Thai (hien thi truc tiep tren client).
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		filter := bson.M{check.FieldName: recordID}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = common.ErrDependentData.Error()
			}
			return common.NewError(common.ErrCodeBusinessState, errorMsg, common.StatusBadRequest, map[string]interface{}{
				"collection": check.CollectionName,
				"count":      count,
			})
		}
	}
	return nil
}

// CheckRelationshipExistsWithFilter kiem tra quan he voi filter tuy chinh
func CheckRelationshipExistsWithFilter(ctx context.Context, filter bson.M, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = common.ErrDependentData.Error()
			}
			return common.NewError(common.ErrCodeBusinessState, errorMsg, common.StatusBadRequest, map[string]interface{}{
				"collection": check.CollectionName,
				"count":      count,
			})
		}
	}
	return nil
}

// GetRelationshipCount tra ve so luong record dang tham chieu toi record nay
func GetRelationshipCount(ctx context.Context, recordID primitive.ObjectID, collectionName, fieldName string) (int64, error) {
	collection, exists := global.RegistryCollections.Get(collectionName)
	if !exists {
		return 0, common.NewError(common.ErrCodeInternalServer, fmt.Sprintf("Khong tim thay collection '%s'", collectionName), common.StatusInternalServerError, nil)
	}
	filter := bson.M{fieldName: recordID}
	return collection.CountDocuments(ctx, filter)
}

// ValidateBeforeDeleteCompany kiem tra cac quan he cua Company truoc khi xoa.
// Cong ty con user, brand, product hoac warranty thi khong duoc xoa.
func ValidateBeforeDeleteCompany(ctx context.Context, companyID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Users, FieldName: "companyId"},
		{CollectionName: global.MongoDB_ColNames.Brands, FieldName: "companyId"},
		{CollectionName: global.MongoDB_ColNames.Products, FieldName: "companyId"},
		{CollectionName: global.MongoDB_ColNames.Warranties, FieldName: "companyId"},
	}
	return CheckRelationshipExists(ctx, companyID, checks)
}

// ValidateBeforeDeleteBrand kiem tra cac quan he cua Brand truoc khi xoa
func ValidateBeforeDeleteBrand(ctx context.Context, brandID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Products, FieldName: "brandId"},
	}
	return CheckRelationshipExists(ctx, brandID, checks)
}

// ValidateBeforeDeleteProduct kiem tra cac quan he cua Product truoc khi xoa
func ValidateBeforeDeleteProduct(ctx context.Context, productID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Warranties, FieldName: "productId"},
	}
	return CheckRelationshipExists(ctx, productID, checks)
}
