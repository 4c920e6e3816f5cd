package auth

// Error is an authentication failure with a stable code. Codes follow the
// identity provider's "auth/..." convention so handlers can map them to
// user-facing messages.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

var (
	// ErrInvalidCredential signals a bad email/password combination.
	ErrInvalidCredential = &Error{Code: "auth/invalid-credential", Message: "invalid email or password"}
	// ErrDuplicateAccount signals the email is already registered.
	ErrDuplicateAccount = &Error{Code: "auth/email-already-in-use", Message: "an account with this email already exists"}
	// ErrWeakCredential signals the password fails the provider's policy.
	ErrWeakCredential = &Error{Code: "auth/weak-password", Message: "password does not meet the provider policy"}
	// ErrProfileNotFound signals an authenticated identity with no profile
	// document. Fatal to the login flow; the role is never defaulted.
	ErrProfileNotFound = &Error{Code: "auth/profile-not-found", Message: "no profile exists for this account"}
)
