package tenantsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authmodels "warranty_hub/internal/api/auth/models"
	basesvc "warranty_hub/internal/api/base/service"
	tenantdto "warranty_hub/internal/api/tenant/dto"
	models "warranty_hub/internal/api/tenant/models"
	"warranty_hub/internal/common"
	"warranty_hub/internal/global"
	"warranty_hub/internal/logger"
)

// CompanyService là cấu trúc chứa các phương thức liên quan đến công ty (tenant)
type CompanyService struct {
	*basesvc.BaseServiceMongoImpl[models.Company]
	userService *basesvc.BaseServiceMongoImpl[authmodels.User]
}

// NewCompanyService tạo mới CompanyService
func NewCompanyService() (*CompanyService, error) {
	companyCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Companies)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s", global.MongoDB_ColNames.Companies)
	}
	userCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s", global.MongoDB_ColNames.Users)
	}
	return &CompanyService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Company](companyCol),
		userService:          basesvc.NewBaseServiceMongo[authmodels.User](userCol),
	}, nil
}

// FindBySlug tìm công ty đang hoạt động theo slug.
// Không tìm thấy (hoặc công ty bị vô hiệu hóa) trả về ErrTenantNotFound (404).
func (s *CompanyService) FindBySlug(ctx context.Context, slug string) (models.Company, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return models.Company{}, common.ErrTenantNotFound
	}
	company, err := s.FindOne(ctx, bson.M{"slug": slug, "isActive": true}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.Company{}, common.ErrTenantNotFound
		}
		return models.Company{}, err
	}
	return company, nil
}

// CheckSubdomain kiểm tra slug còn trống hay không.
// Slug dành riêng hoặc đã có công ty sử dụng đều trả về không khả dụng.
func (s *CompanyService) CheckSubdomain(ctx context.Context, slug string) (*tenantdto.SubdomainCheckResult, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	result := &tenantdto.SubdomainCheckResult{Slug: slug}

	if IsReservedSlug(slug) {
		result.Reason = "URL นี้เป็นคำสงวนของระบบ"
		return result, nil
	}
	exists, err := s.DocumentExists(ctx, bson.M{"slug": slug})
	if err != nil {
		return nil, err
	}
	if exists {
		result.Reason = "URL นี้ถูกใช้งานแล้ว"
		return result, nil
	}
	result.Available = true
	return result, nil
}

// Register đăng ký công ty mới kèm tài khoản owner đầu tiên.
//
// Uniqueness của slug do unique index companies.slug đảm bảo; CheckSubdomain
// chỉ để hiển thị thông báo sớm cho người dùng. Hai request đăng ký đồng thời
// cùng slug thì request thua cuộc nhận ErrSlugTaken từ lỗi duplicate key.
func (s *CompanyService) Register(ctx context.Context, input *tenantdto.CompanyRegisterInput) (models.Company, error) {
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if IsReservedSlug(slug) {
		return models.Company{}, common.ErrSlugTaken
	}

	company := models.Company{
		Slug:        slug,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		Description: input.Description,
		IsActive:    true,
	}
	created, err := s.InsertOne(ctx, company)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return models.Company{}, common.ErrSlugTaken
		}
		return models.Company{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.Company{}, common.NewError(common.ErrCodeInternalServer, "ไม่สามารถสร้างบัญชีผู้ดูแลได้", common.StatusInternalServerError, err)
	}
	owner := authmodels.User{
		CompanyID:    created.ID,
		Name:         input.OwnerName,
		Email:        strings.ToLower(strings.TrimSpace(input.OwnerEmail)),
		PasswordHash: string(hash),
		Role:         authmodels.RoleOwner,
		IsActive:     true,
	}
	if _, err := s.userService.InsertOne(ctx, owner); err != nil {
		// Công ty đã tạo nhưng owner thất bại: gỡ công ty để đăng ký lại được.
		// Không có transaction đa document nên đây là best-effort cleanup.
		if delErr := s.DeleteById(ctx, created.ID); delErr != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"companyId": created.ID.Hex(),
				"slug":      slug,
			}).WithError(delErr).Error("Gỡ công ty sau khi tạo owner thất bại không thành công")
		}
		return models.Company{}, err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"companyId": created.ID.Hex(),
		"slug":      slug,
	}).Info("Đăng ký công ty mới thành công")
	return created, nil
}

// UpdateSettings cập nhật thông tin/cài đặt công ty.
// Slug và trạng thái active không đổi qua đường này.
func (s *CompanyService) UpdateSettings(ctx context.Context, companyID primitive.ObjectID, input *tenantdto.CompanyUpdateInput) (models.Company, error) {
	set := bson.M{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Email != "" {
		set["email"] = input.Email
	}
	if input.Phone != "" {
		set["phone"] = input.Phone
	}
	if input.Address != "" {
		set["address"] = input.Address
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if input.LineChannelID != "" {
		set["lineChannelId"] = input.LineChannelID
	}
	if len(set) == 0 {
		return s.FindOneById(ctx, companyID)
	}
	return s.UpdateById(ctx, companyID, &basesvc.UpdateData{Set: set})
}

// UpdateLogo lưu URL logo mới của công ty.
func (s *CompanyService) UpdateLogo(ctx context.Context, companyID primitive.ObjectID, logoURL string) (models.Company, error) {
	return s.UpdateById(ctx, companyID, &basesvc.UpdateData{Set: bson.M{"logoUrl": logoURL}})
}
