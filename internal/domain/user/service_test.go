package user

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// memRepo 内存仓储
type memRepo struct {
	mu    sync.Mutex
	users map[string]*User
	next  uint
}

func newMemRepo() *memRepo {
	return &memRepo{users: make(map[string]*User)}
}

func (r *memRepo) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return apperrors.ErrEmailDuplicate
	}
	r.next++
	u.ID = r.next
	r.users[u.Email] = u
	return nil
}

func (r *memRepo) FindByID(_ context.Context, id uint) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func TestService_Register(t *testing.T) {
	svc := NewServiceWithCost(newMemRepo(), bcrypt.MinCost)
	ctx := context.Background()

	u, err := svc.Register(ctx, " Alice@Example.com ", "secret123", "alice")
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "secret123", u.Password)

	_, err = svc.Register(ctx, "alice@example.com", "secret123", "alice2")
	assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
}

func TestService_RegisterValidation(t *testing.T) {
	svc := NewServiceWithCost(newMemRepo(), bcrypt.MinCost)

	tests := []struct {
		name     string
		email    string
		password string
		username string
		wantCode int
	}{
		{"邮箱格式错误", "not-an-email", "secret123", "bob", apperrors.ErrCodeInvalidParams},
		{"密码过短", "bob@example.com", "abc12", "bob", apperrors.ErrCodeWeakPassword},
		{"密码无数字", "bob@example.com", "abcdefghij", "bob", apperrors.ErrCodeWeakPassword},
		{"密码无字母", "bob@example.com", "1234567890", "bob", apperrors.ErrCodeWeakPassword},
		{"用户名过短", "bob@example.com", "secret123", "b", apperrors.ErrCodeInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.email, tt.password, tt.username)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.GetAppError(err).Code)
		})
	}
}

func TestService_Login(t *testing.T) {
	svc := NewServiceWithCost(newMemRepo(), bcrypt.MinCost)
	ctx := context.Background()

	_, err := svc.Register(ctx, "carol@example.com", "secret123", "carol")
	require.NoError(t, err)

	u, err := svc.Login(ctx, "carol@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "carol", u.Username)

	_, err = svc.Login(ctx, "carol@example.com", "wrong1234")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
