package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bizcelona-backend/internal/domain"
	"bizcelona-backend/internal/repository"

	"github.com/google/uuid"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	profile.CreatedOn = now
	profile.UpdatedOn = now
	query := `INSERT INTO profiles (id, email, full_name, password_hash, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, profile.ID, profile.Email, profile.FullName,
		profile.PasswordHash, profile.CreatedOn, profile.UpdatedOn)
	return err
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT id, email, full_name, password_hash, created_on, updated_on FROM profiles WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `SELECT id, email, full_name, password_hash, created_on, updated_on FROM profiles WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *profileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	return count, err
}

func (r *profileRepository) scanOne(row *sql.Row) (*domain.Profile, error) {
	profile := &domain.Profile{}
	err := row.Scan(&profile.ID, &profile.Email, &profile.FullName, &profile.PasswordHash,
		&profile.CreatedOn, &profile.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}
