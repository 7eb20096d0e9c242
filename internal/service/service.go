package service

import (
	"context"

	"bizcelona-backend/internal/domain"
)

type AuthService interface {
	// Signup creates the profile record and returns a session token. The
	// new-signup admin alert is fired on a best-effort basis.
	Signup(ctx context.Context, email, password, fullName string) (*domain.Profile, string, error)
	Login(ctx context.Context, email, password string) (*domain.Profile, string, error)
}

type ApplicationService interface {
	// Submit validates the form and inserts one application row with status
	// "submitted". Validation failures return validation.FieldErrors; store
	// constraint violations are mapped to human-readable messages.
	Submit(ctx context.Context, userID string, form *domain.ApplicationForm) (*domain.Application, error)
	// StatusForUser returns the user's application, or domain.ErrNotFound
	// when none has been submitted yet.
	StatusForUser(ctx context.Context, userID string) (*domain.Application, error)
	// MembershipForUser returns the member record created on approval, or
	// domain.ErrNotFound while the user is not a member.
	MembershipForUser(ctx context.Context, userID string) (*domain.Member, error)
	// Prefill returns the profile values used to pre-populate the form.
	Prefill(ctx context.Context, userID string) (*domain.Profile, error)
}

type ReviewService interface {
	ListApplications(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error)
	GetApplication(ctx context.Context, id string) (*domain.Application, error)
	MarkUnderReview(ctx context.Context, reviewerID, applicationID string) (*domain.Application, error)
	Approve(ctx context.Context, reviewerID, applicationID, notes string) (*domain.Application, error)
	Reject(ctx context.Context, reviewerID, applicationID, notes string) (*domain.Application, error)
	// WelcomeMessage renders the copy-to-clipboard welcome text for an
	// approved application.
	WelcomeMessage(ctx context.Context, applicationID string) (string, error)
	Stats(ctx context.Context) (*domain.ApplicationStats, []domain.Application, error)
}

// AccessGuard answers the single admin predicate consulted by every
// admin-only view.
type AccessGuard interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
	AdminRole(ctx context.Context, userID string) (domain.AdminRole, error)
}

type NotificationService interface {
	// Each call sends exactly one email and returns the provider delivery id.
	NotifyNewUser(ctx context.Context, userID string) (string, error)
	NotifyNewApplication(ctx context.Context, applicationID string) (string, error)
	NotifyApplicationApproved(ctx context.Context, applicationID string) (string, error)
}

// Email is a single outbound message for the Mailer.
type Email struct {
	From     string
	FromName string
	To       []string
	CC       []string
	Subject  string
	HTML     string
}

// Mailer is the narrow seam to the external transactional email API.
type Mailer interface {
	Send(ctx context.Context, msg *Email) (string, error)
}
