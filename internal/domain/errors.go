package domain

import "errors"

var (
	ErrNotFound             = errors.New("record not found")
	ErrAlreadyApplied       = errors.New("You have already submitted an application")
	ErrEmailTaken           = errors.New("an account with this email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidTransition    = errors.New("application status does not allow this transition")
	ErrRejectReasonRequired = errors.New("Please provide a reason for rejection in the notes field")
)

// Fixed store-constraint messages, surfaced verbatim to the applicant when a
// check constraint rejects an insert that slipped past form validation.
var (
	ErrWhatsappConstraint  = errors.New("WhatsApp number format is invalid. Must be + followed by at least 10 digits.")
	ErrWhatDoYouDoTooShort = errors.New(`Please provide at least 50 characters for "What do you do?"`)
	ErrHopingToGetTooShort = errors.New(`Please provide at least 50 characters for "What are you hoping to get from Bizcelona?"`)
	ErrHopeToBringTooShort = errors.New(`Please provide at least 50 characters for "What do you hope to bring to Bizcelona?"`)
	ErrFieldRequirements   = errors.New("Please check that all required fields meet the minimum requirements.")
)
