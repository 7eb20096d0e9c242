package postgres

import (
	"context"
	"database/sql"

	"bizcelona-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ApplicationRepository
	repository.MemberRepository
	repository.ProfileRepository
	repository.AdminRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ApplicationRepository: NewApplicationRepository(db),
		MemberRepository:      NewMemberRepository(db),
		ProfileRepository:     NewProfileRepository(db),
		AdminRepository:       NewAdminRepository(db),
	}
}

// Ping verifies the database connection, used by the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
