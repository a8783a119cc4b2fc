package domain

// UserRole separates administrators from regular employees.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
)

// DefaultPassword is used when a user has no stored password and when an
// admin resets one. The gate compares passwords as plaintext on purpose;
// this service is not a security boundary.
const DefaultPassword = "1234"

// User is an account that can log in and hold reservations.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Role     UserRole `json:"role"`
	Email    string   `json:"email,omitempty"`
	Password string   `json:"password,omitempty"`
}

// EffectivePassword returns the stored password or the default when unset.
func (u User) EffectivePassword() string {
	if u.Password == "" {
		return DefaultPassword
	}
	return u.Password
}

// IsAdmin reports whether the user may perform admin operations.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Valid reports whether the record is well formed enough to keep on load.
func (u User) Valid() bool {
	if u.ID == "" || u.Name == "" {
		return false
	}
	return u.Role == RoleAdmin || u.Role == RoleEmployee
}
