package nav_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanleague/go-league-client/nav"
)

type authState struct {
	authenticated bool
	admin         bool
}

func (a authState) IsAuthenticated() bool { return a.authenticated }
func (a authState) IsAdmin() bool         { return a.admin }

var (
	anonymous = authState{}
	member    = authState{authenticated: true}
	admin     = authState{authenticated: true, admin: true}
)

func route(path string) nav.Route {
	for _, r := range nav.Routes() {
		if r.Path == path {
			return r
		}
	}
	panic("route missing from table: " + path)
}

func TestGuardDecisionTable(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		state    authState
		allow    bool
		redirect string
	}{
		{name: "anonymous reaches login", target: nav.PathLogin, state: anonymous, allow: true},
		{name: "anonymous reaches register", target: nav.PathRegister, state: anonymous, allow: true},
		{name: "anonymous bounced from root", target: nav.PathRoot, state: anonymous, redirect: nav.PathLogin},
		{name: "anonymous bounced from game view", target: nav.PathDraw, state: anonymous, redirect: nav.PathLogin},
		{name: "member reaches root", target: nav.PathRoot, state: member, allow: true},
		{name: "member reaches game view", target: nav.PathTrade, state: member, allow: true},
		{name: "member bounced from admin to root", target: nav.PathAdmin, state: member, redirect: nav.PathRoot},
		{name: "member bounced from login to root", target: nav.PathLogin, state: member, redirect: nav.PathRoot},
		{name: "member bounced from register to root", target: nav.PathRegister, state: member, redirect: nav.PathRoot},
		{name: "admin reaches admin", target: nav.PathAdmin, state: admin, allow: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decision := nav.Guard(route(tc.target), tc.state)
			require.Equal(t, tc.allow, decision.Allow)
			require.Equal(t, tc.redirect, decision.RedirectTo)
		})
	}
}

// The auth rule must be evaluated before the admin rule: an anonymous
// user heading for the admin view lands on login, not root.
func TestGuardAnonymousAdminTargetLandsOnLogin(t *testing.T) {
	decision := nav.Guard(route(nav.PathAdmin), anonymous)
	require.False(t, decision.Allow)
	require.Equal(t, nav.PathLogin, decision.RedirectTo)
}

func TestNavigatorFollowsRedirectChain(t *testing.T) {
	n := nav.NewNavigator(nav.Routes(), anonymous)

	landed, err := n.Go(nav.PathAdmin)
	require.NoError(t, err)
	require.Equal(t, nav.PathLogin, landed.Path)
	require.Equal(t, nav.PathLogin, n.Current())
}

func TestNavigatorAllowsDirectTransition(t *testing.T) {
	n := nav.NewNavigator(nav.Routes(), member)

	landed, err := n.Go(nav.PathRoster)
	require.NoError(t, err)
	require.Equal(t, nav.PathRoster, landed.Path)
	require.Equal(t, nav.PathRoster, n.Current())
}

func TestNavigatorRejectsUnknownRoute(t *testing.T) {
	n := nav.NewNavigator(nav.Routes(), member)

	_, err := n.Go("/nowhere")
	require.ErrorIs(t, err, nav.ErrUnknownRoute)
	require.Equal(t, nav.PathRoot, n.Current(), "failed navigation must not move the current location")
}

// Guard decisions track live state: the same navigator bounces before
// login and allows after.
func TestNavigatorReactsToStateChange(t *testing.T) {
	state := &mutableState{}
	n := nav.NewNavigator(nav.Routes(), state)

	landed, err := n.Go(nav.PathPolicy)
	require.NoError(t, err)
	require.Equal(t, nav.PathLogin, landed.Path)

	state.authenticated = true
	landed, err = n.Go(nav.PathPolicy)
	require.NoError(t, err)
	require.Equal(t, nav.PathPolicy, landed.Path)
}

type mutableState struct {
	authenticated bool
	admin         bool
}

func (m *mutableState) IsAuthenticated() bool { return m.authenticated }
func (m *mutableState) IsAdmin() bool         { return m.admin }
