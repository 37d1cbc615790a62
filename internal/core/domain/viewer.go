package domain

// Role names carried in access tokens.
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
)

// Viewer identifies the caller of a request. The zero value is an
// anonymous visitor.
type Viewer struct {
	UserID string
	Role   string
}

// Anonymous reports whether no user is signed in.
func (v Viewer) Anonymous() bool {
	return v.UserID == ""
}

// IsAdmin reports whether the viewer holds the admin role.
func (v Viewer) IsAdmin() bool {
	return v.Role == RoleAdmin
}
