package nav

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrUnknownRoute reports a navigation target absent from the route table.
var ErrUnknownRoute = errors.New("unknown route")

// Navigator applies the guard to every transition and tracks the current
// location. The pipeline's unauthorized hook uses it to force the login
// view; views use it before rendering.
type Navigator struct {
	mu      sync.Mutex
	routes  map[string]Route
	state   AuthState
	current string
}

// NewNavigator builds a navigator over a static route table. The initial
// location is the root path.
func NewNavigator(routes []Route, state AuthState) *Navigator {
	table := make(map[string]Route, len(routes))
	for _, r := range routes {
		table[r.Path] = r
	}
	return &Navigator{routes: table, state: state, current: PathRoot}
}

// Go attempts a transition to path, following guard redirects until a
// route is allowed, and returns the route actually landed on. For a fixed
// auth state the redirect chain is acyclic and at most two hops, but the
// loop is bounded by the table size regardless.
func (n *Navigator) Go(path string) (Route, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	route, ok := n.routes[path]
	if !ok {
		return Route{}, errors.Wrap(ErrUnknownRoute, path)
	}
	for range n.routes {
		decision := Guard(route, n.state)
		if decision.Allow {
			n.current = route.Path
			return route, nil
		}
		next, ok := n.routes[decision.RedirectTo]
		if !ok {
			return Route{}, errors.Wrap(ErrUnknownRoute, decision.RedirectTo)
		}
		route = next
	}
	return Route{}, errors.Errorf("navigation to %s did not settle", path)
}

// Current returns the path of the view last allowed to render.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
