package domain

// Client-visible navigation routes.
const (
	RouteHome           = "/"
	RouteLogin          = "/login"
	RouteRegister       = "/register"
	RouteAdminDashboard = "/admin"
	RouteUserDashboard  = "/dashboard"
)

// Decision is the outcome of a route guard: either let the navigation
// proceed, or redirect somewhere else. Guards return values instead of
// invoking router callbacks so the same policy works under any router.
type Decision struct {
	Redirect string
}

// Proceed reports whether the navigation may continue to its target.
func (d Decision) Proceed() bool { return d.Redirect == "" }

// Allow lets the navigation continue.
func Allow() Decision { return Decision{} }

// RedirectTo diverts the navigation to path.
func RedirectTo(path string) Decision { return Decision{Redirect: path} }
