package service

import (
	"context"
	"errors"

	"bizcelona-backend/internal/domain"
	"bizcelona-backend/internal/repository"
)

type accessGuard struct {
	adminRepo repository.AdminRepository
}

func NewAccessGuard(adminRepo repository.AdminRepository) AccessGuard {
	return &accessGuard{adminRepo: adminRepo}
}

// IsAdmin reports whether the user holds an admin row. No caching: every
// admin view performs its own check.
func (g *accessGuard) IsAdmin(ctx context.Context, userID string) (bool, error) {
	_, err := g.adminRepo.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (g *accessGuard) AdminRole(ctx context.Context, userID string) (domain.AdminRole, error) {
	admin, err := g.adminRepo.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return admin.Role, nil
}
