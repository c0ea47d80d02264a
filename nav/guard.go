// Package nav gates view transitions on derived authorization state. The
// guard is pure and synchronous: it never performs network calls and
// never causes a login or logout itself.
package nav

// AuthState is the slice of session state the guard reads. Satisfied by
// session.Store.
type AuthState interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// Decision is the outcome of guarding one transition.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Guard evaluates the target route against the current authorization
// state. First matching rule wins, and the order is part of the contract:
// an unauthenticated user heading for an admin view must land on login,
// not root, so the auth check runs before the admin check.
func Guard(target Route, state AuthState) Decision {
	switch {
	case target.RequiresAuth && !state.IsAuthenticated():
		return Decision{RedirectTo: PathLogin}
	case target.RequiresAdmin && !state.IsAdmin():
		return Decision{RedirectTo: PathRoot}
	case (target.Path == PathLogin || target.Path == PathRegister) && state.IsAuthenticated():
		return Decision{RedirectTo: PathRoot}
	default:
		return Decision{Allow: true}
	}
}
