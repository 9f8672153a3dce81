package domain

const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// User models an account that can authenticate against the API.
// PasswordHash is never serialized; the clear-text password only exists in
// request payloads.
type User struct {
	ID           int    `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
}

// ValidRole reports whether role belongs to the fixed role set.
func ValidRole(role string) bool {
	return role == RoleManager || role == RoleEmployee
}
