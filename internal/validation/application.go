package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"bizcelona-backend/internal/domain"
)

const longFormMinLength = 50

var (
	whatsappPattern = regexp.MustCompile(`^\+[0-9]{10,}$`)
	stripPattern    = regexp.MustCompile(`[\s-]`)
)

// FieldErrors maps form field names to human-readable messages. All rules
// are evaluated together so every failing field is reported at once.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

// CleanWhatsapp strips whitespace and dashes, the same normalization applied
// before storing the number.
func CleanWhatsapp(number string) string {
	return stripPattern.ReplaceAllString(number, "")
}

// ValidateApplication checks the full form and returns a map with one entry
// per failing field. An empty map means the form may be submitted.
func ValidateApplication(form *domain.ApplicationForm) FieldErrors {
	errs := FieldErrors{}

	if !strings.Contains(form.Email, "@") {
		errs["email"] = "Email must contain @"
	}

	whatsapp := CleanWhatsapp(form.WhatsappNumber)
	if !strings.HasPrefix(whatsapp, "+") {
		errs["whatsapp_number"] = "WhatsApp number must start with + (e.g., +34612345678)"
	} else if len(whatsapp[1:]) < 10 {
		errs["whatsapp_number"] = fmt.Sprintf("WhatsApp must have at least 10 digits after + (currently %d)", len(whatsapp[1:]))
	} else if !whatsappPattern.MatchString(whatsapp) {
		errs["whatsapp_number"] = "WhatsApp must be + followed by digits only (no spaces or dashes in final format)"
	}

	if strings.TrimSpace(form.EmployerBusiness) == "" {
		errs["employer_business"] = "Business name or employer is required"
	}
	if strings.TrimSpace(form.JobTitle) == "" {
		errs["job_title"] = "Job title is required"
	}
	if strings.TrimSpace(form.IndustrySector) == "" {
		errs["industry_sector"] = "Industry/Sector is required"
	}

	requireLongForm(errs, "what_do_you_do", form.WhatDoYouDo)
	requireLongForm(errs, "hoping_to_get", form.HopingToGet)
	requireLongForm(errs, "hope_to_bring", form.HopeToBring)

	linkedin := strings.TrimSpace(form.LinkedinProfile)
	if linkedin == "" {
		errs["linkedin_profile"] = "LinkedIn profile is required"
	} else if !strings.HasPrefix(linkedin, "http://") && !strings.HasPrefix(linkedin, "https://") {
		errs["linkedin_profile"] = "LinkedIn URL must start with https:// (e.g., https://www.linkedin.com/in/yourname/)"
	} else if !strings.Contains(linkedin, "linkedin.com") {
		errs["linkedin_profile"] = "Please provide a valid LinkedIn URL"
	}

	if strings.TrimSpace(form.HowHeardAbout) == "" {
		errs["how_heard_about"] = "Please tell us how you heard about Bizcelona"
	}

	if !form.Consent1 || !form.Consent2 || !form.Consent3 || !form.Consent4 || !form.Consent5 {
		errs["consent"] = "All consent items must be checked"
	}

	return errs
}

func requireLongForm(errs FieldErrors, field, value string) {
	trimmed := utf8.RuneCountInString(strings.TrimSpace(value))
	if trimmed < longFormMinLength {
		errs[field] = fmt.Sprintf("Please provide at least 50 characters (currently %d)", trimmed)
	}
}
