package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bizcelona-backend/internal/domain"
	"bizcelona-backend/internal/repository"

	"github.com/google/uuid"
)

const applicationColumns = `id, user_id, full_name, email, whatsapp_number, employer_business,
	job_title, industry_sector, what_do_you_do, hoping_to_get, hope_to_bring,
	linkedin_profile, how_heard_about, contributor_interest, additional_info,
	consent_given, status, reviewed_by, review_notes, created_on, updated_on`

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	app.CreatedOn = now
	app.UpdatedOn = now
	query := `INSERT INTO applications (id, user_id, full_name, email, whatsapp_number,
	          employer_business, job_title, industry_sector, what_do_you_do, hoping_to_get,
	          hope_to_bring, linkedin_profile, how_heard_about, contributor_interest,
	          additional_info, consent_given, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.db.ExecContext(ctx, query,
		app.ID, app.UserID, app.FullName, app.Email, app.WhatsappNumber,
		app.EmployerBusiness, app.JobTitle, app.IndustrySector, app.WhatDoYouDo,
		app.HopingToGet, app.HopeToBring, app.LinkedinProfile, app.HowHeardAbout,
		app.ContributorInterest, app.AdditionalInfo, app.ConsentGiven, app.Status,
		app.CreatedOn, app.UpdatedOn)
	return mapConstraintError(err)
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE id = $1`, applicationColumns)
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *applicationRepository) GetByUserID(ctx context.Context, userID string) (*domain.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE user_id = $1`, applicationColumns)
	return r.scanOne(r.db.QueryRowContext(ctx, query, userID))
}

func (r *applicationRepository) List(ctx context.Context, status domain.ApplicationStatus, limit int32) ([]domain.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications`, applicationColumns)
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_on DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func (r *applicationRepository) Update(ctx context.Context, app *domain.Application) error {
	app.UpdatedOn = time.Now().UTC()
	query := `UPDATE applications SET status = $1, reviewed_by = $2, review_notes = $3, updated_on = $4
	          WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, app.Status, app.ReviewedBy, app.ReviewNotes, app.UpdatedOn, app.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepository) CountByStatus(ctx context.Context, status domain.ApplicationStatus) (int64, error) {
	var count int64
	if status == "" {
		err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count)
		return count, err
	}
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE status = $1`, status).Scan(&count)
	return count, err
}

// Approve performs both approval writes in one transaction so a failure
// cannot leave an approved application without a member record.
func (r *applicationRepository) Approve(ctx context.Context, app *domain.Application, member *domain.Member) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin approval transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	app.UpdatedOn = now
	_, err = tx.ExecContext(ctx,
		`UPDATE applications SET status = $1, reviewed_by = $2, review_notes = $3, updated_on = $4 WHERE id = $5`,
		app.Status, app.ReviewedBy, app.ReviewNotes, app.UpdatedOn, app.ID)
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}

	if err := upsertMember(ctx, tx, member); err != nil {
		return fmt.Errorf("upsert member: %w", err)
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*domain.Application, error) {
	app := &domain.Application{}
	err := row.Scan(&app.ID, &app.UserID, &app.FullName, &app.Email, &app.WhatsappNumber,
		&app.EmployerBusiness, &app.JobTitle, &app.IndustrySector, &app.WhatDoYouDo,
		&app.HopingToGet, &app.HopeToBring, &app.LinkedinProfile, &app.HowHeardAbout,
		&app.ContributorInterest, &app.AdditionalInfo, &app.ConsentGiven, &app.Status,
		&app.ReviewedBy, &app.ReviewNotes, &app.CreatedOn, &app.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) scanOne(row *sql.Row) (*domain.Application, error) {
	app, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}
