package sqldb

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/domain/user"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// userRepository 用户仓储实现
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

// Create 创建用户
// 邮箱唯一性最终由UNIQUE索引保证，冲突转换为ErrEmailDuplicate
func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	model := &UserModel{
		Email:    u.Email,
		Password: u.Password,
		Username: u.Username,
	}

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建用户失败")
	}

	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel
	if err := conn(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel
	if err := conn(ctx, r.db).Where("email = ?", email).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

func toUserEntity(model *UserModel) *user.User {
	return &user.User{
		ID:        model.ID,
		Email:     model.Email,
		Password:  model.Password,
		Username:  model.Username,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
