// Package database - Index unique cho các ràng buộc trùng lặp (slug, tên trong công ty).
// Các ràng buộc này phải nằm ở tầng database để hai request ghi đồng thời không lách qua
// bước kiểm tra trước khi ghi của tầng service.
package database

import (
	"context"
	"strings"

	"warranty_hub/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateUniqueIndexes tạo các unique index bảo vệ các ràng buộc trùng lặp.
// Gọi sau CreateIndexes cho từng collection.
func CreateUniqueIndexes(ctx context.Context, db *mongo.Database) error {
	// companies: slug — mỗi subdomain chỉ thuộc về một công ty
	companies := db.Collection(global.MongoDB_ColNames.Companies)
	if _, err := companies.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "slug", Value: 1},
		},
		Options: options.Index().SetName("company_slug_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// users: (companyId, email) — email đăng nhập duy nhất trong một công ty
	users := db.Collection(global.MongoDB_ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "companyId", Value: 1},
			{Key: "email", Value: 1},
		},
		Options: options.Index().SetName("user_company_email_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// brands: (companyId, name) — tên thương hiệu duy nhất trong một công ty
	brands := db.Collection(global.MongoDB_ColNames.Brands)
	if _, err := brands.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "companyId", Value: 1},
			{Key: "name", Value: 1},
		},
		Options: options.Index().SetName("brand_company_name_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// products: (companyId, brandId, name, model) — sản phẩm duy nhất theo thương hiệu
	products := db.Collection(global.MongoDB_ColNames.Products)
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "companyId", Value: 1},
			{Key: "brandId", Value: 1},
			{Key: "name", Value: 1},
			{Key: "model", Value: 1},
		},
		Options: options.Index().SetName("product_company_brand_name_model_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// warranties: (companyId, customerId) — tra cứu bảo hành của một khách hàng
	warranties := db.Collection(global.MongoDB_ColNames.Warranties)
	if _, err := warranties.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "companyId", Value: 1},
			{Key: "customerId", Value: 1},
		},
		Options: options.Index().SetName("warranty_company_customer"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// warranty_transitions: (warrantyId, createdAt) — đọc lịch sử chuyển trạng thái theo thứ tự
	transitions := db.Collection(global.MongoDB_ColNames.WarrantyTransitions)
	if _, err := transitions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "warrantyId", Value: 1},
			{Key: "createdAt", Value: 1},
		},
		Options: options.Index().SetName("warranty_transition_warranty_time"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
