package user

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// Service 用户领域服务
// 负责密码加密、校验等不属于单个实体的业务逻辑
type Service interface {
	// Register 用户注册
	Register(ctx context.Context, email, password, username string) (*User, error)

	// Login 用户登录
	Login(ctx context.Context, email, password string) (*User, error)

	// GetByID 查询用户
	GetByID(ctx context.Context, id uint) (*User, error)
}

// PasswordCost bcrypt cost
const PasswordCost = 12

type service struct {
	repo Repository
	cost int
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo, cost: PasswordCost}
}

// NewServiceWithCost 指定bcrypt cost（测试中使用bcrypt.MinCost）
func NewServiceWithCost(repo Repository, cost int) Service {
	return &service{repo: repo, cost: cost}
}

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	hasLetter    = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
)

// Register 用户注册
// 业务规则：
// 1. 邮箱格式校验
// 2. 密码强度校验（8-20位，包含字母和数字）
// 3. 用户名2-50个字符
// 4. 邮箱已注册返回冲突；并发注册由数据库UNIQUE索引兜底
func (s *service) Register(ctx context.Context, email, password, username string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	if !emailPattern.MatchString(email) {
		return nil, apperrors.ErrInvalidParams.WithMessage("邮箱格式不正确")
	}

	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	if n := utf8.RuneCountInString(username); n < 2 || n > 50 {
		return nil, apperrors.ErrInvalidParams.WithMessage("用户名长度应为2-50个字符")
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailDuplicate
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	user := NewUser(email, string(hashedPassword), username)
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login 用户登录
// 邮箱不存在和密码错误返回同一个错误，不暴露邮箱是否注册
func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(err, "密码验证失败")
	}

	return user, nil
}

// GetByID 查询用户
func (s *service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// validatePasswordStrength 8-20位，必须包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return apperrors.ErrWeakPassword
	}
	if !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return apperrors.ErrWeakPassword
	}
	return nil
}
