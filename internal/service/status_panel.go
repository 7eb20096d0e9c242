package service

import "bizcelona-backend/internal/domain"

// StatusPanel is the copy shown on the member dashboard for each
// application status.
type StatusPanel struct {
	Status  domain.ApplicationStatus `json:"status"`
	Title   string                   `json:"title"`
	Message string                   `json:"message"`
}

// StatusPanelFor returns the panel copy for an application status.
func StatusPanelFor(status domain.ApplicationStatus) StatusPanel {
	switch status {
	case domain.ApplicationStatusSubmitted:
		return StatusPanel{
			Status:  status,
			Title:   "📝 Application Submitted",
			Message: "Your application has been received and is awaiting review. We typically process applications within 3-5 days.",
		}
	case domain.ApplicationStatusUnderReview:
		return StatusPanel{
			Status:  status,
			Title:   "🔍 Under Review",
			Message: "Your application is currently being reviewed by our team.",
		}
	case domain.ApplicationStatusApproved:
		return StatusPanel{
			Status:  status,
			Title:   "✅ Application Approved!",
			Message: "Congratulations! Your application has been approved. Welcome to Bizcelona!",
		}
	case domain.ApplicationStatusRejected:
		return StatusPanel{
			Status:  status,
			Title:   "❌ Application Not Approved",
			Message: "Unfortunately, your application was not approved at this time.",
		}
	default:
		return StatusPanel{Status: status}
	}
}
