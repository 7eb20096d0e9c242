package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusSubmitted   ApplicationStatus = "submitted"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusApproved    ApplicationStatus = "approved"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// IsTerminal reports whether no further status transition is allowed.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

type Application struct {
	ID                  string            `json:"id"`
	UserID              string            `json:"user_id"`
	FullName            string            `json:"full_name"`
	Email               string            `json:"email"`
	WhatsappNumber      string            `json:"whatsapp_number"`
	EmployerBusiness    string            `json:"employer_business"`
	JobTitle            string            `json:"job_title"`
	IndustrySector      string            `json:"industry_sector"`
	WhatDoYouDo         string            `json:"what_do_you_do"`
	HopingToGet         string            `json:"hoping_to_get"`
	HopeToBring         string            `json:"hope_to_bring"`
	LinkedinProfile     string            `json:"linkedin_profile"`
	HowHeardAbout       string            `json:"how_heard_about"`
	ContributorInterest bool              `json:"contributor_interest"`
	AdditionalInfo      *string           `json:"additional_info,omitempty"`
	ConsentGiven        bool              `json:"consent_given"`
	Status              ApplicationStatus `json:"status"`
	ReviewedBy          *string           `json:"reviewed_by,omitempty"`
	ReviewNotes         *string           `json:"review_notes,omitempty"`
	CreatedOn           time.Time         `json:"created_on"`
	UpdatedOn           time.Time         `json:"updated_on"`
}

// ApplicationForm carries the raw applicant input before validation. The
// five consent flags map to the individual checkboxes on the form.
type ApplicationForm struct {
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	WhatsappNumber      string `json:"whatsapp_number"`
	EmployerBusiness    string `json:"employer_business"`
	JobTitle            string `json:"job_title"`
	IndustrySector      string `json:"industry_sector"`
	WhatDoYouDo         string `json:"what_do_you_do"`
	HopingToGet         string `json:"hoping_to_get"`
	HopeToBring         string `json:"hope_to_bring"`
	LinkedinProfile     string `json:"linkedin_profile"`
	HowHeardAbout       string `json:"how_heard_about"`
	ContributorInterest bool   `json:"contributor_interest"`
	AdditionalInfo      string `json:"additional_info"`
	Consent1            bool   `json:"consent1"`
	Consent2            bool   `json:"consent2"`
	Consent3            bool   `json:"consent3"`
	Consent4            bool   `json:"consent4"`
	Consent5            bool   `json:"consent5"`
}

type ApplicationStats struct {
	Total     int64 `json:"total"`
	Submitted int64 `json:"submitted"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
}
