package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"warranty_hub/config"
	"warranty_hub/internal/database"
	"warranty_hub/internal/global"
	"warranty_hub/internal/storage"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initObjectStorage()    // Khởi tạo object storage (MinIO)
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, exists, tenant_slug, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Unique index bảo vệ các ràng buộc trùng lặp (slug công ty, email user trong công ty, ...)
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	if err := database.CreateUniqueIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create unique indexes: %v", err)
	}
	logrus.Info("Ensured unique indexes")
}

// Hàm khởi tạo object storage. Không có cấu hình MinIO thì bỏ qua,
// các tính năng upload hình sẽ trả về cảnh báo thay vì lỗi.
func initObjectStorage() {
	cfg := global.ServerConfig
	if cfg.MinioEndpoint == "" {
		logrus.Warn("MinIO chưa được cấu hình, bỏ qua khởi tạo object storage")
		return
	}
	store, err := storage.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		logrus.Errorf("Failed to initialize MinIO store: %v", err)
		// Không fatal, hệ thống vẫn chạy được, chỉ mất tính năng upload hình
		return
	}
	storage.SetDefaultStore(store)
	logrus.Info("MinIO object storage initialized successfully")
}
