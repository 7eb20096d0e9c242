package repository

import (
	"context"

	"bizcelona-backend/internal/domain"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Application, error)
	// List returns applications newest first, optionally filtered by status
	// (empty status means all). limit <= 0 means no limit.
	List(ctx context.Context, status domain.ApplicationStatus, limit int32) ([]domain.Application, error)
	Update(ctx context.Context, app *domain.Application) error
	CountByStatus(ctx context.Context, status domain.ApplicationStatus) (int64, error)
	// Approve writes the approved application and upserts the member record
	// in a single transaction.
	Approve(ctx context.Context, app *domain.Application, member *domain.Member) error
}

type MemberRepository interface {
	Upsert(ctx context.Context, member *domain.Member) error
	GetByUserID(ctx context.Context, userID string) (*domain.Member, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Count(ctx context.Context) (int64, error)
}

type AdminRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Admin, error)
}
