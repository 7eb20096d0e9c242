package domain

import "time"

type AdminRole string

const (
	AdminRoleSuperAdmin AdminRole = "super_admin"
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleModerator  AdminRole = "moderator"
)

// Admin asserts administrative privilege. Presence of a row for a user id is
// the sole admin predicate.
type Admin struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      AdminRole `json:"role"`
	GrantedBy *string   `json:"granted_by,omitempty"`
	GrantedOn time.Time `json:"granted_on"`
}
