package domain

// Role determines which registry operations the UI exposes. The service
// itself trusts its caller unless role enforcement is switched on.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleResident Role = "resident"
)

// Session is the ephemeral client-side login state. It is never persisted
// and is destroyed on logout.
type Session struct {
	LoggedIn bool
	Role     Role
}
