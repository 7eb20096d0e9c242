package postgres

import (
	"context"
	"database/sql"
	"errors"

	"bizcelona-backend/internal/domain"
	"bizcelona-backend/internal/repository"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// GetByUserID returns domain.ErrNotFound when the user holds no admin row,
// which is the negative answer of the access-guard predicate.
func (r *adminRepository) GetByUserID(ctx context.Context, userID string) (*domain.Admin, error) {
	admin := &domain.Admin{}
	query := `SELECT id, user_id, role, granted_by, granted_on FROM admins WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&admin.ID, &admin.UserID, &admin.Role,
		&admin.GrantedBy, &admin.GrantedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return admin, nil
}
