// models/registration.go
package models

import "regexp"

// ValidationError is a client-side form constraint violation. It must be
// raised before any identity-provider call is made.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateBase(email, password, confirmPassword, displayName string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "This field is required"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "Please enter a valid email address"}
	}
	if len(password) < 6 {
		return &ValidationError{Field: "password", Message: "Must be at least 6 characters"}
	}
	if len(password) > 50 {
		return &ValidationError{Field: "password", Message: "Cannot exceed 50 characters"}
	}
	if password != confirmPassword {
		return &ValidationError{Field: "confirmPassword", Message: "Passwords do not match"}
	}
	if len(displayName) < 2 {
		return &ValidationError{Field: "displayName", Message: "Must be at least 2 characters"}
	}
	if len(displayName) > 50 {
		return &ValidationError{Field: "displayName", Message: "Cannot exceed 50 characters"}
	}
	return nil
}

// ClientRegistration is the sign-up payload for a client account.
type ClientRegistration struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	DisplayName     string `json:"displayName"`
	Phone           string `json:"phone,omitempty"`
	Address         string `json:"address,omitempty"`
}

// Validate enforces the client registration constraints.
func (r ClientRegistration) Validate() error {
	if err := validateBase(r.Email, r.Password, r.ConfirmPassword, r.DisplayName); err != nil {
		return err
	}
	if r.Phone != "" && (len(r.Phone) < 10 || len(r.Phone) > 15) {
		return &ValidationError{Field: "phone", Message: "Please enter a valid phone number"}
	}
	if r.Address != "" && len(r.Address) < 5 {
		return &ValidationError{Field: "address", Message: "Please enter a valid address"}
	}
	return nil
}

// LawyerRegistration is the sign-up payload for a lawyer account.
type LawyerRegistration struct {
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirmPassword"`
	DisplayName     string   `json:"displayName"`
	Phone           string   `json:"phone"`
	Specialization  []string `json:"specialization"`
	Experience      int      `json:"experience"`
	HourlyRate      float64  `json:"hourlyRate"`
	Bio             string   `json:"bio"`
	Languages       []string `json:"languages"`
	BarLicense      string   `json:"barLicense,omitempty"`
}

// Validate enforces the lawyer registration constraints.
func (r LawyerRegistration) Validate() error {
	if err := validateBase(r.Email, r.Password, r.ConfirmPassword, r.DisplayName); err != nil {
		return err
	}
	if len(r.Phone) < 10 || len(r.Phone) > 15 {
		return &ValidationError{Field: "phone", Message: "Please enter a valid phone number"}
	}
	if len(r.Specialization) == 0 {
		return &ValidationError{Field: "specialization", Message: "Please select at least one specialization"}
	}
	if r.Experience < 0 {
		return &ValidationError{Field: "experience", Message: "Experience cannot be negative"}
	}
	if r.Experience > 60 {
		return &ValidationError{Field: "experience", Message: "Please enter a valid experience"}
	}
	if r.HourlyRate < 0 {
		return &ValidationError{Field: "hourlyRate", Message: "Hourly rate cannot be negative"}
	}
	if r.HourlyRate > 1000 {
		return &ValidationError{Field: "hourlyRate", Message: "Please enter a reasonable hourly rate"}
	}
	if len(r.Bio) < 50 {
		return &ValidationError{Field: "bio", Message: "Please write a detailed bio (at least 50 characters)"}
	}
	if len(r.Bio) > 1000 {
		return &ValidationError{Field: "bio", Message: "Cannot exceed 1000 characters"}
	}
	if len(r.Languages) == 0 {
		return &ValidationError{Field: "languages", Message: "Please select at least one language"}
	}
	if r.BarLicense != "" && len(r.BarLicense) < 5 {
		return &ValidationError{Field: "barLicense", Message: "Please enter your bar license number"}
	}
	return nil
}

// ProfileUpdate is the editable subset of a profile. Empty fields leave the
// stored value unchanged; role, email, and the verified flag are never
// client-editable.
type ProfileUpdate struct {
	DisplayName string        `json:"displayName"`
	Phone       string        `json:"phone"`
	PhotoURL    string        `json:"photoUrl"`
	Lawyer      *LawyerUpdate `json:"lawyer,omitempty"`
}

// LawyerUpdate is the editable subset of the lawyer attributes. Pointer
// fields distinguish "not sent" from an explicit zero.
type LawyerUpdate struct {
	Specialization []string `json:"specialization,omitempty"`
	HourlyRate     *float64 `json:"hourlyRate,omitempty"`
	Experience     *int     `json:"experience,omitempty"`
	Bio            string   `json:"bio"`
	Languages      []string `json:"languages,omitempty"`
	BarLicense     string   `json:"barLicense"`
}

// Validate enforces the registration constraints on every field the update
// actually carries.
func (u ProfileUpdate) Validate() error {
	if u.DisplayName != "" && (len(u.DisplayName) < 2 || len(u.DisplayName) > 50) {
		return &ValidationError{Field: "displayName", Message: "Must be at least 2 characters"}
	}
	if u.Phone != "" && (len(u.Phone) < 10 || len(u.Phone) > 15) {
		return &ValidationError{Field: "phone", Message: "Please enter a valid phone number"}
	}
	if u.Lawyer == nil {
		return nil
	}
	if u.Lawyer.Specialization != nil && len(u.Lawyer.Specialization) == 0 {
		return &ValidationError{Field: "specialization", Message: "Please select at least one specialization"}
	}
	if u.Lawyer.HourlyRate != nil && (*u.Lawyer.HourlyRate < 0 || *u.Lawyer.HourlyRate > 1000) {
		return &ValidationError{Field: "hourlyRate", Message: "Please enter a reasonable hourly rate"}
	}
	if u.Lawyer.Experience != nil && (*u.Lawyer.Experience < 0 || *u.Lawyer.Experience > 60) {
		return &ValidationError{Field: "experience", Message: "Please enter a valid experience"}
	}
	if u.Lawyer.Bio != "" && (len(u.Lawyer.Bio) < 50 || len(u.Lawyer.Bio) > 1000) {
		return &ValidationError{Field: "bio", Message: "Please write a detailed bio (at least 50 characters)"}
	}
	if u.Lawyer.Languages != nil && len(u.Lawyer.Languages) == 0 {
		return &ValidationError{Field: "languages", Message: "Please select at least one language"}
	}
	if u.Lawyer.BarLicense != "" && len(u.Lawyer.BarLicense) < 5 {
		return &ValidationError{Field: "barLicense", Message: "Please enter your bar license number"}
	}
	return nil
}

// Apply merges the update onto the stored account. Lawyer edits are applied
// only when the account already carries lawyer attributes.
func (u ProfileUpdate) Apply(account *UserAccount) {
	if u.DisplayName != "" {
		account.DisplayName = u.DisplayName
	}
	if u.Phone != "" {
		account.Phone = u.Phone
	}
	if u.PhotoURL != "" {
		account.PhotoURL = u.PhotoURL
	}
	if u.Lawyer == nil || account.Lawyer == nil {
		return
	}
	if len(u.Lawyer.Specialization) > 0 {
		account.Lawyer.Specialization = u.Lawyer.Specialization
	}
	if u.Lawyer.HourlyRate != nil {
		account.Lawyer.HourlyRate = *u.Lawyer.HourlyRate
	}
	if u.Lawyer.Experience != nil {
		account.Lawyer.Experience = *u.Lawyer.Experience
	}
	if u.Lawyer.Bio != "" {
		account.Lawyer.Bio = u.Lawyer.Bio
	}
	if len(u.Lawyer.Languages) > 0 {
		account.Lawyer.Languages = u.Lawyer.Languages
	}
	if u.Lawyer.BarLicense != "" {
		account.Lawyer.BarLicense = u.Lawyer.BarLicense
	}
}

// LoginRequest is the credential payload for sign-in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate enforces the login constraints.
func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "This field is required"}
	}
	if !emailPattern.MatchString(r.Email) {
		return &ValidationError{Field: "email", Message: "Please enter a valid email address"}
	}
	if r.Password == "" {
		return &ValidationError{Field: "password", Message: "This field is required"}
	}
	return nil
}
