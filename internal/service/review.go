package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bizcelona-backend/internal/domain"
	"bizcelona-backend/internal/logger"
	"bizcelona-backend/internal/repository"
)

const recentApplicationsLimit = 5

type reviewService struct {
	appRepo  repository.ApplicationRepository
	notifier NotificationService
}

func NewReviewService(appRepo repository.ApplicationRepository, notifier NotificationService) ReviewService {
	return &reviewService{
		appRepo:  appRepo,
		notifier: notifier,
	}
}

func (s *reviewService) ListApplications(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	return s.appRepo.List(ctx, status, 0)
}

func (s *reviewService) GetApplication(ctx context.Context, id string) (*domain.Application, error) {
	return s.appRepo.GetByID(ctx, id)
}

func (s *reviewService) MarkUnderReview(ctx context.Context, reviewerID, applicationID string) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if app.Status != domain.ApplicationStatusSubmitted {
		return nil, domain.ErrInvalidTransition
	}

	app.Status = domain.ApplicationStatusUnderReview
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	return app, nil
}

// Approve transitions the application to approved and provisions the active
// member record. Both writes happen in one repository transaction.
func (s *reviewService) Approve(ctx context.Context, reviewerID, applicationID, notes string) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if app.Status.IsTerminal() {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	app.Status = domain.ApplicationStatusApproved
	app.ReviewedBy = &reviewerID
	app.ReviewNotes = optionalNotes(notes)

	member := &domain.Member{
		UserID:          app.UserID,
		Status:          domain.MemberStatusActive,
		ApprovedBy:      &reviewerID,
		ApprovedOn:      &now,
		MembershipNotes: optionalNotes(notes),
	}

	if err := s.appRepo.Approve(ctx, app, member); err != nil {
		return nil, fmt.Errorf("failed to approve application: %w", err)
	}

	// Applicant email is best effort; the approval is already committed.
	if s.notifier != nil {
		if _, err := s.notifier.NotifyApplicationApproved(ctx, app.ID); err != nil {
			logger.Error("Failed to send approval notification", "application_id", app.ID, "error", err)
		}
	}

	return app, nil
}

// Reject refuses an empty reason before touching the store.
func (s *reviewService) Reject(ctx context.Context, reviewerID, applicationID, notes string) (*domain.Application, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, domain.ErrRejectReasonRequired
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if app.Status.IsTerminal() {
		return nil, domain.ErrInvalidTransition
	}

	app.Status = domain.ApplicationStatusRejected
	app.ReviewedBy = &reviewerID
	app.ReviewNotes = &notes
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	return app, nil
}

func (s *reviewService) WelcomeMessage(ctx context.Context, applicationID string) (string, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return "", fmt.Errorf("failed to get application: %w", err)
	}
	if app.Status != domain.ApplicationStatusApproved {
		return "", domain.ErrInvalidTransition
	}
	return WelcomeMessageText(app.FullName, app.ContributorInterest), nil
}

func (s *reviewService) Stats(ctx context.Context) (*domain.ApplicationStats, []domain.Application, error) {
	stats := &domain.ApplicationStats{}

	var err error
	if stats.Total, err = s.appRepo.CountByStatus(ctx, ""); err != nil {
		return nil, nil, fmt.Errorf("failed to count applications: %w", err)
	}
	if stats.Submitted, err = s.appRepo.CountByStatus(ctx, domain.ApplicationStatusSubmitted); err != nil {
		return nil, nil, fmt.Errorf("failed to count submitted applications: %w", err)
	}
	if stats.Approved, err = s.appRepo.CountByStatus(ctx, domain.ApplicationStatusApproved); err != nil {
		return nil, nil, fmt.Errorf("failed to count approved applications: %w", err)
	}
	if stats.Rejected, err = s.appRepo.CountByStatus(ctx, domain.ApplicationStatusRejected); err != nil {
		return nil, nil, fmt.Errorf("failed to count rejected applications: %w", err)
	}

	recent, err := s.appRepo.List(ctx, "", recentApplicationsLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list recent applications: %w", err)
	}

	return stats, recent, nil
}

func optionalNotes(notes string) *string {
	if strings.TrimSpace(notes) == "" {
		return nil
	}
	return &notes
}
