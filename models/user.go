// models/user.go
package models

import "time"

// Role determines the dashboard variant and route access for an account.
type Role string

const (
	RoleClient Role = "client"
	RoleLawyer Role = "lawyer"
)

// ParseRole validates a raw role string. Only "client" and "lawyer" are
// valid anywhere in the guard, cookie, or profile schema.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleClient, RoleLawyer:
		return Role(s), true
	}
	return "", false
}

// UserAccount is the canonical user record. UID is the identity provider's
// unique identifier and the primary key of the profile document. Role is
// immutable after creation; no update path may change it.
type UserAccount struct {
	UID         string    `bson:"uid" json:"uid"`
	Email       string    `bson:"email" json:"email"`
	DisplayName string    `bson:"display_name" json:"displayName"`
	Role        Role      `bson:"role" json:"role"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PhotoURL    string    `bson:"photo_url,omitempty" json:"photoURL,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`

	// Lawyer-specific attributes; nil for client accounts.
	Lawyer *LawyerAttributes `bson:"lawyer,omitempty" json:"lawyer,omitempty"`
}

// LawyerAttributes holds the role-specific fields of a lawyer account.
type LawyerAttributes struct {
	Specialization []string `bson:"specialization" json:"specialization"`
	HourlyRate     float64  `bson:"hourly_rate" json:"hourlyRate"`
	Experience     int      `bson:"experience" json:"experience"`
	Bio            string   `bson:"bio" json:"bio"`
	BarLicense     string   `bson:"bar_license,omitempty" json:"barLicense,omitempty"`
	Languages      []string `bson:"languages" json:"languages"`
	Verified       bool     `bson:"verified" json:"verified"`
}

// IsLawyer reports whether the account is a lawyer.
func (u *UserAccount) IsLawyer() bool {
	return u.Role == RoleLawyer
}
