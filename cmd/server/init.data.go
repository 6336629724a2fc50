package main

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"warranty_hub/internal/api/events"
	tenantdto "warranty_hub/internal/api/tenant/dto"
	tenantsvc "warranty_hub/internal/api/tenant/service"
	"warranty_hub/internal/common"
	"warranty_hub/internal/global"
	"warranty_hub/internal/logger"
)

// InitDefaultData đăng ký hook audit cho mọi thay đổi dữ liệu và seed
// tenant demo khi chạy ở chế độ khởi tạo.
func InitDefaultData() {
	log := logger.GetAppLogger()

	// Mọi thao tác ghi qua base service phát event; ghi audit log tập trung
	// tại đây thay vì rải rác trong từng service
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		fields := logrus.Fields{
			"collection": e.CollectionName,
			"operation":  e.Operation,
		}
		if companyID := events.GetCompanyIDFromDocument(e.Document); !companyID.IsZero() {
			fields["companyId"] = companyID.Hex()
		}
		logger.GetAuditLogger().WithFields(fields).Info("Data changed")
	})
	log.Info("Registered data change audit hook")

	if !global.ServerConfig.InitMode {
		return
	}
	seedDemoCompany()
}

// seedDemoCompany tạo tenant demo kèm tài khoản owner để thử nghiệm.
// Chạy lại khi slug đã tồn tại là chuyện bình thường, không phải lỗi.
func seedDemoCompany() {
	log := logger.GetAppLogger()
	companyService, err := tenantsvc.NewCompanyService()
	if err != nil {
		log.WithError(err).Error("Failed to create company service for seeding")
		return
	}

	input := &tenantdto.CompanyRegisterInput{
		Slug:          "demo-shop",
		Name:          "Demo Shop",
		Email:         "contact@demo-shop.example",
		OwnerName:     "Demo Owner",
		OwnerEmail:    "owner@demo-shop.example",
		OwnerPassword: "Demo@12345",
	}
	company, err := companyService.Register(context.TODO(), input)
	if err != nil {
		if errors.Is(err, common.ErrSlugTaken) {
			log.Info("Demo company already exists, skipping seed")
			return
		}
		log.WithError(err).Error("Failed to seed demo company")
		return
	}
	log.WithFields(logrus.Fields{
		"companyId": company.ID.Hex(),
		"slug":      company.Slug,
	}).Info("Seeded demo company")
}
