package global

import (
	"warranty_hub/config"
	"warranty_hub/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Companies           string // Tên collection cho công ty (tenant)
	Users               string // Tên collection cho người dùng quản trị của công ty
	Brands              string // Tên collection cho thương hiệu
	Products            string // Tên collection cho sản phẩm
	Warranties          string // Tên collection cho đăng ký bảo hành
	WarrantyTransitions string // Tên collection cho lịch sử chuyển trạng thái bảo hành
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{ // Tên các collection
	Companies:           "companies",
	Users:               "users",
	Brands:              "brands",
	Products:            "products",
	Warranties:          "warranties",
	WarrantyTransitions: "warranty_transitions",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
