package domain

// Identity is the authenticated caller as resolved by the external identity
// service. It lives for one request and is never persisted.
type Identity struct {
	ID    ProfileID
	Email string
}

// Role is the authorization role stored on a profile.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleUser
}
