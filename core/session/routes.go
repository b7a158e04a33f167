package session

import "github.com/shareulbi/webcore/core/identity"

// Routes the auth flow can land on.
const (
	RouteLogin      = "/login"
	RouteRegister   = "/register"
	RouteOnboarding = "/onboarding"
	RouteDashboard  = "/dashboard"
	RouteAdminHome  = "/admin"
)

// HomeRoute is the default authenticated landing route for a role.
func HomeRoute(role identity.Role) string {
	if role == identity.RoleAdmin {
		return RouteAdminHome
	}
	return RouteDashboard
}
