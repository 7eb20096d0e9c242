package service

import (
	"context"
	"testing"
	"time"

	"bizcelona-backend/internal/domain"
	"bizcelona-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testTokenManager() security.TokenManager {
	return security.NewTokenManager("test-secret-0123456789abcdef0123456789", time.Hour)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepo)
		mockNotifier := new(MockNotifier)
		svc := NewAuthService(mockProfileRepo, testTokenManager(), mockNotifier)

		mockProfileRepo.On("GetByEmail", ctx, "maria@example.com").Return(nil, domain.ErrNotFound).Once()
		mockProfileRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Profile) bool {
			if p.Email != "maria@example.com" || p.FullName != "Maria Garcia" {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("sup3rsecret")) == nil
		})).Return(nil).Once()
		mockNotifier.On("NotifyNewUser", ctx, mock.AnythingOfType("string")).Return("msg-1", nil).Once()

		profile, token, err := svc.Signup(ctx, "Maria@Example.com", "sup3rsecret", "Maria Garcia")
		assert.NoError(t, err)
		assert.Equal(t, "maria@example.com", profile.Email)
		assert.NotEmpty(t, token)
		mockProfileRepo.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepo)
		svc := NewAuthService(mockProfileRepo, testTokenManager(), nil)

		mockProfileRepo.On("GetByEmail", ctx, "maria@example.com").
			Return(&domain.Profile{ID: "user-1", Email: "maria@example.com"}, nil).Once()

		_, _, err := svc.Signup(ctx, "maria@example.com", "sup3rsecret", "Maria Garcia")
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
		mockProfileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepo)
		svc := NewAuthService(mockProfileRepo, testTokenManager(), nil)

		_, _, err := svc.Signup(ctx, "maria@example.com", "short", "Maria Garcia")
		assert.Error(t, err)
		mockProfileRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("sup3rsecret"), bcrypt.MinCost)

	t.Run("Success", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepo)
		svc := NewAuthService(mockProfileRepo, testTokenManager(), nil)

		mockProfileRepo.On("GetByEmail", ctx, "maria@example.com").
			Return(&domain.Profile{ID: "user-1", Email: "maria@example.com", PasswordHash: string(hash)}, nil).Once()

		profile, token, err := svc.Login(ctx, "maria@example.com", "sup3rsecret")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", profile.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepo)
		svc := NewAuthService(mockProfileRepo, testTokenManager(), nil)

		mockProfileRepo.On("GetByEmail", ctx, "maria@example.com").
			Return(&domain.Profile{ID: "user-1", PasswordHash: string(hash)}, nil).Once()

		_, _, err := svc.Login(ctx, "maria@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepo)
		svc := NewAuthService(mockProfileRepo, testTokenManager(), nil)

		mockProfileRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrNotFound).Once()

		_, _, err := svc.Login(ctx, "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAccessGuard(t *testing.T) {
	ctx := context.Background()
	mockAdminRepo := new(MockAdminRepo)
	guard := NewAccessGuard(mockAdminRepo)

	t.Run("Admin", func(t *testing.T) {
		mockAdminRepo.On("GetByUserID", ctx, "admin-1").
			Return(&domain.Admin{UserID: "admin-1", Role: domain.AdminRoleSuperAdmin}, nil).Twice()

		isAdmin, err := guard.IsAdmin(ctx, "admin-1")
		assert.NoError(t, err)
		assert.True(t, isAdmin)

		role, err := guard.AdminRole(ctx, "admin-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.AdminRoleSuperAdmin, role)
	})

	t.Run("NotAdmin", func(t *testing.T) {
		mockAdminRepo.On("GetByUserID", ctx, "user-1").Return(nil, domain.ErrNotFound).Twice()

		isAdmin, err := guard.IsAdmin(ctx, "user-1")
		assert.NoError(t, err)
		assert.False(t, isAdmin)

		role, err := guard.AdminRole(ctx, "user-1")
		assert.NoError(t, err)
		assert.Empty(t, role)
	})

	mockAdminRepo.AssertExpectations(t)
}
