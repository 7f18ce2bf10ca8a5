package entity

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleAdmin indicates an administrator who reviews leads and manages accounts.
	RoleAdmin Role = "admin"
	// RoleEmployee indicates a field employee who records dispositions.
	RoleEmployee Role = "employee"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEmployee:
		return true
	default:
		return false
	}
}
