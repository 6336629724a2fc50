package authsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "warranty_hub/internal/api/auth/dto"
	models "warranty_hub/internal/api/auth/models"
	basesvc "warranty_hub/internal/api/base/service"
	"warranty_hub/internal/common"
	"warranty_hub/internal/global"
	"warranty_hub/internal/logger"
)

// UserService là cấu trúc chứa các phương thức liên quan đến nhân viên quản trị
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s", global.MongoDB_ColNames.Users)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCol),
	}, nil
}

// Login xác thực email + mật khẩu trong phạm vi công ty đã resolve.
//
// Mật khẩu plaintext của dữ liệu cũ được tự động chuyển sang bcrypt hash
// ngay trong request đăng nhập thành công đầu tiên: passwordHash được set
// và password bị unset trước khi trả kết quả.
func (s *UserService) Login(ctx context.Context, companyID primitive.ObjectID, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.FindOne(ctx, bson.M{"companyId": companyID, "email": email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Không phân biệt "không có user" với "sai mật khẩu"
			return models.User{}, common.ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if !user.IsActive {
		return models.User{}, common.ErrUserInactive
	}

	check := VerifyPassword(&user, password)
	if !check.Matched {
		return models.User{}, common.ErrInvalidCredentials
	}

	update := &basesvc.UpdateData{Set: bson.M{"lastLogin": time.Now().UnixMilli()}}
	if check.NeedsMigration {
		hash, hashErr := HashPassword(password)
		if hashErr != nil {
			return models.User{}, common.NewError(common.ErrCodeInternalServer, common.MsgDatabaseError, common.StatusInternalServerError, hashErr)
		}
		update.Set["passwordHash"] = hash
		update.Unset = bson.M{"password": ""}
		logger.GetAuditLogger().WithFields(logrus.Fields{
			"userId":    user.ID.Hex(),
			"companyId": companyID.Hex(),
		}).Info("Chuyển mật khẩu plaintext sang bcrypt hash")
	}
	updated, err := s.UpdateById(ctx, user.ID, update)
	if err != nil {
		return models.User{}, err
	}
	return updated, nil
}

// CreateUser tạo nhân viên mới trong công ty với mật khẩu đã băm.
// Email trùng trong cùng công ty bị chặn bởi unique index (companyId, email).
func (s *UserService) CreateUser(ctx context.Context, companyID primitive.ObjectID, input *authdto.UserCreateInput) (models.User, error) {
	hash, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, common.NewError(common.ErrCodeInternalServer, common.MsgDatabaseError, common.StatusInternalServerError, err)
	}
	user := models.User{
		CompanyID:    companyID,
		Name:         input.Name,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
	}
	created, err := s.InsertOne(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return models.User{}, common.NewError(common.ErrCodeValidationInput, "อีเมลนี้ถูกใช้งานแล้วในบริษัทนี้", common.StatusConflict, nil)
		}
		return models.User{}, err
	}
	return created, nil
}

// UpdateUser cập nhật thông tin nhân viên (tên, vai trò, trạng thái active).
func (s *UserService) UpdateUser(ctx context.Context, userID primitive.ObjectID, input *authdto.UserUpdateInput) (models.User, error) {
	set := bson.M{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Role != "" {
		if !models.IsValidRole(input.Role) {
			return models.User{}, common.ErrInvalidInput
		}
		set["role"] = input.Role
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}
	if len(set) == 0 {
		return s.FindOneById(ctx, userID)
	}
	return s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
}

// ChangePassword đổi mật khẩu của chính user sau khi xác minh mật khẩu hiện tại.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.ChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	if !VerifyPassword(&user, input.CurrentPassword).Matched {
		return common.ErrInvalidCredentials
	}
	hash, err := HashPassword(input.NewPassword)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, common.MsgDatabaseError, common.StatusInternalServerError, err)
	}
	_, err = s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set:   bson.M{"passwordHash": hash},
		Unset: bson.M{"password": ""},
	})
	return err
}
