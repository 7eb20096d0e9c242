package postgres

import (
	"errors"
	"strings"

	"bizcelona-backend/internal/domain"

	"github.com/lib/pq"
)

// Postgres error codes surfaced to the workflow layer.
const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
)

// IsUniqueViolation reports whether err is a unique-constraint violation,
// e.g. a second application for the same user.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == codeUniqueViolation
}

// CheckViolationColumn returns the column hinted at by a check-constraint
// violation, or "" if err is not one. Constraint names follow the
// applications_<column>_check convention from the migrations.
func CheckViolationColumn(err error) string {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != codeCheckViolation {
		return ""
	}
	for _, column := range []string{"whatsapp", "what_do_you_do", "hoping_to_get", "hope_to_bring"} {
		if strings.Contains(pqErr.Constraint, column) || strings.Contains(pqErr.Message, column) {
			return column
		}
	}
	return "unknown"
}

// mapConstraintError translates the store's constraint violations into the
// fixed set of human-readable domain errors; other errors pass through.
func mapConstraintError(err error) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return domain.ErrAlreadyApplied
	}
	switch CheckViolationColumn(err) {
	case "":
		return err
	case "whatsapp":
		return domain.ErrWhatsappConstraint
	case "what_do_you_do":
		return domain.ErrWhatDoYouDoTooShort
	case "hoping_to_get":
		return domain.ErrHopingToGetTooShort
	case "hope_to_bring":
		return domain.ErrHopeToBringTooShort
	default:
		return domain.ErrFieldRequirements
	}
}
