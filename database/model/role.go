package model

// Role is the privilege tier assigned to a panel user.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleGuest  Role = "guest"
)

// RoleRank maps roles onto the strict tier admin > editor > guest.
// Unknown or empty roles rank below every tier, so they never satisfy
// an authenticated requirement.
func RoleRank(r Role) int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleEditor:
		return 1
	case RoleGuest:
		return 0
	}
	return -1
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return RoleRank(r) >= 0
}

// Allowed reports whether a caller may perform an operation gated at the
// required tier. A nil caller is an anonymous request; required == ""
// marks a public operation open to everyone. The guest tier admits any
// authenticated user, admin callers pass every gate.
func Allowed(required Role, caller *User) bool {
	if required == "" {
		return true
	}
	if caller == nil {
		return false
	}
	if caller.Role == RoleAdmin {
		return true
	}
	return RoleRank(caller.Role) >= RoleRank(required)
}
