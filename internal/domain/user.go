package domain

// User roles.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User represents an authenticated user. The persisted session payload is
// exactly this record: presence implies an authenticated session.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsValidRole checks whether the given string is a known user role.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCustomer
}
