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

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Upsert(ctx context.Context, member *domain.Member) error {
	return upsertMember(ctx, r.db, member)
}

// execContext is satisfied by both *sql.DB and *sql.Tx, so the member upsert
// can run standalone or inside the approval transaction.
type execContext interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// upsertMember is the single member write. Keyed by user_id: re-approval
// updates the existing row instead of creating a second one.
func upsertMember(ctx context.Context, ex execContext, member *domain.Member) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	member.CreatedOn = now
	member.UpdatedOn = now
	query := `INSERT INTO members (id, user_id, status, approved_by, approved_on, membership_notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          ON CONFLICT (user_id) DO UPDATE SET
	            status = EXCLUDED.status,
	            approved_by = EXCLUDED.approved_by,
	            approved_on = EXCLUDED.approved_on,
	            membership_notes = EXCLUDED.membership_notes,
	            updated_on = EXCLUDED.updated_on`
	_, err := ex.ExecContext(ctx, query, member.ID, member.UserID, member.Status,
		member.ApprovedBy, member.ApprovedOn, member.MembershipNotes, member.CreatedOn, member.UpdatedOn)
	return err
}

func (r *memberRepository) GetByUserID(ctx context.Context, userID string) (*domain.Member, error) {
	member := &domain.Member{}
	query := `SELECT id, user_id, status, approved_by, approved_on, membership_notes, created_on, updated_on
	          FROM members WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&member.ID, &member.UserID, &member.Status,
		&member.ApprovedBy, &member.ApprovedOn, &member.MembershipNotes, &member.CreatedOn, &member.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return member, nil
}
