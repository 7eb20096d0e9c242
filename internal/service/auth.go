package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bizcelona-backend/internal/domain"
	"bizcelona-backend/internal/logger"
	"bizcelona-backend/internal/repository"
	"bizcelona-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	profileRepo repository.ProfileRepository
	tokens      security.TokenManager
	notifier    NotificationService
}

func NewAuthService(
	profileRepo repository.ProfileRepository,
	tokens security.TokenManager,
	notifier NotificationService,
) AuthService {
	return &authService{
		profileRepo: profileRepo,
		tokens:      tokens,
		notifier:    notifier,
	}
}

func (s *authService) Signup(ctx context.Context, email, password, fullName string) (*domain.Profile, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !strings.Contains(email, "@") {
		return nil, "", errors.New("Email must contain @")
	}
	if len(password) < 8 {
		return nil, "", errors.New("password must be at least 8 characters")
	}

	if _, err := s.profileRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check existing profile: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	profile := &domain.Profile{
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, "", fmt.Errorf("failed to create profile: %w", err)
	}

	token, err := s.tokens.GenerateSessionToken(profile.ID, profile.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	// Admin alert is best effort; the account already exists.
	if s.notifier != nil {
		if _, err := s.notifier.NotifyNewUser(ctx, profile.ID); err != nil {
			logger.Error("Failed to send new-user notification", "user_id", profile.ID, "error", err)
		}
	}

	return profile, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.Profile, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	profile, err := s.profileRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get profile: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateSessionToken(profile.ID, profile.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	return profile, token, nil
}
