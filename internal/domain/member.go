package domain

import "time"

type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
)

// Member is the fulfillment record created when an application is approved.
// Keyed by user: the approval path upserts so re-approval cannot create a
// second row.
type Member struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	Status          MemberStatus `json:"status"`
	ApprovedBy      *string      `json:"approved_by,omitempty"`
	ApprovedOn      *time.Time   `json:"approved_on,omitempty"`
	MembershipNotes *string      `json:"membership_notes,omitempty"`
	CreatedOn       time.Time    `json:"created_on"`
	UpdatedOn       time.Time    `json:"updated_on"`
}
