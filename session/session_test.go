package session_test

import (
	"context"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/sanleague/go-league-client/api"
	"github.com/sanleague/go-league-client/client"
	"github.com/sanleague/go-league-client/session"
	"github.com/sanleague/go-league-client/session/repofakes"
)

const (
	testToken    = "token-abc"
	testUsername = "guanyu"
)

// fakeAuth is an in-memory AuthClient recording call counts.
type fakeAuth struct {
	mu           sync.Mutex
	loginResult  *api.LoginResult
	loginErr     error
	currentUser  *api.User
	currentErr   error
	currentCalls int
}

func (f *fakeAuth) Login(ctx context.Context, creds api.Credentials) (*api.LoginResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakeAuth) Register(ctx context.Context, reg api.Registration) (*api.LoginResult, error) {
	return f.Login(ctx, api.Credentials{Username: reg.Username, Password: reg.Password})
}

func (f *fakeAuth) CurrentUser(ctx context.Context) (*api.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.currentCalls++
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	return f.currentUser, nil
}

func (f *fakeAuth) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentCalls
}

func testUser() *api.User {
	return &api.User{
		ID:           7,
		Username:     testUsername,
		Nickname:     "Guan Yu",
		IsRegistered: true,
		Space:        350,
		UsedSpace:    120,
	}
}

func newStore(persisted string, auth *fakeAuth) (*session.Store, *repofakes.FakeTokenRepo) {
	repo := repofakes.NewFakeTokenRepo(persisted)
	store := session.NewStore(repo)
	if auth != nil {
		store.Bind(auth)
	}
	return store, repo
}

func TestLoginLogoutLifecycle(t *testing.T) {
	auth := &fakeAuth{loginResult: &api.LoginResult{Token: testToken, User: testUser()}}
	store, repo := newStore("", auth)

	require.False(t, store.IsAuthenticated())

	user, err := store.Login(context.Background(), api.Credentials{Username: testUsername, Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, testUsername, user.Username)
	require.True(t, store.IsAuthenticated())
	require.Equal(t, testToken, store.Token())
	require.Equal(t, testToken, repo.Stored(), "token must be persisted on login")

	store.Logout()
	require.False(t, store.IsAuthenticated())
	require.Nil(t, store.User())
	require.Empty(t, repo.Stored())
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	auth := &fakeAuth{loginErr: &client.AuthorizationError{Detail: "bad credentials"}}
	store, repo := newStore("", auth)

	_, err := store.Login(context.Background(), api.Credentials{Username: testUsername, Password: "wrong"})
	require.Error(t, err)
	require.False(t, store.IsAuthenticated())
	require.Empty(t, repo.Stored())
	require.Zero(t, repo.Saves)
}

func TestLoginPersistFailureKeepsInMemorySession(t *testing.T) {
	auth := &fakeAuth{loginResult: &api.LoginResult{Token: testToken, User: testUser()}}
	store, repo := newStore("", auth)
	repo.SaveErr = errors.New("disk full")

	user, err := store.Login(context.Background(), api.Credentials{Username: testUsername, Password: "pw"})
	require.Error(t, err)
	require.NotNil(t, user)
	require.True(t, store.IsAuthenticated(), "durability failure must not undo the login")
}

func TestRefreshProfileWithoutTokenSkipsNetwork(t *testing.T) {
	auth := &fakeAuth{currentUser: testUser()}
	store, _ := newStore("", auth)

	user, err := store.RefreshProfile(context.Background())
	require.NoError(t, err)
	require.Nil(t, user)
	require.Zero(t, auth.calls())
}

func TestRefreshProfileFailureTearsDownAndReRaises(t *testing.T) {
	auth := &fakeAuth{
		loginResult: &api.LoginResult{Token: testToken, User: testUser()},
		currentErr:  &client.AuthorizationError{Detail: "expired"},
	}
	store, repo := newStore("", auth)

	_, err := store.Login(context.Background(), api.Credentials{Username: testUsername, Password: "pw"})
	require.NoError(t, err)

	_, err = store.RefreshProfile(context.Background())
	var authErr *client.AuthorizationError
	require.ErrorAs(t, err, &authErr)
	require.False(t, store.IsAuthenticated())
	require.Empty(t, repo.Stored())
}

func TestRestoreWithoutPersistedToken(t *testing.T) {
	auth := &fakeAuth{currentUser: testUser()}
	store, _ := newStore("", auth)

	require.NoError(t, store.Restore(context.Background()))
	require.False(t, store.IsAuthenticated())
	require.Zero(t, auth.calls(), "no persisted token means no network call")
}

func TestRestoreWithStaleTokenClearsSilently(t *testing.T) {
	auth := &fakeAuth{currentErr: &client.AuthorizationError{Detail: "expired"}}
	store, repo := newStore("stale-token", auth)

	require.NoError(t, store.Restore(context.Background()), "refresh failure is swallowed at startup")
	require.False(t, store.IsAuthenticated())
	require.Empty(t, repo.Stored())
}

func TestRestoreWithValidTokenLoadsProfile(t *testing.T) {
	auth := &fakeAuth{currentUser: testUser()}
	store, _ := newStore(testToken, auth)

	require.NoError(t, store.Restore(context.Background()))
	require.True(t, store.IsAuthenticated())
	require.NotNil(t, store.User())
	require.True(t, store.IsRegistered())
}

func TestRemainingSpaceRecomputed(t *testing.T) {
	auth := &fakeAuth{loginResult: &api.LoginResult{Token: testToken, User: testUser()}}
	store, _ := newStore("", auth)

	require.Zero(t, store.RemainingSpace(), "no profile means no space")

	_, err := store.Login(context.Background(), api.Credentials{Username: testUsername, Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, 230, store.RemainingSpace())

	updated := testUser()
	updated.UsedSpace = 300
	auth.mu.Lock()
	auth.currentUser = updated
	auth.mu.Unlock()

	_, err = store.RefreshProfile(context.Background())
	require.NoError(t, err)
	require.Equal(t, 50, store.RemainingSpace())
}

func TestAdminFlagDerivedFromProfile(t *testing.T) {
	admin := testUser()
	admin.IsAdmin = true
	auth := &fakeAuth{loginResult: &api.LoginResult{Token: testToken, User: admin}}
	store, _ := newStore("", auth)

	require.False(t, store.IsAdmin())
	_, err := store.Login(context.Background(), api.Credentials{Username: testUsername, Password: "pw"})
	require.NoError(t, err)
	require.True(t, store.IsAdmin())
}

func TestConcurrentLogoutIsIdempotent(t *testing.T) {
	auth := &fakeAuth{loginResult: &api.LoginResult{Token: testToken, User: testUser()}}
	store, repo := newStore("", auth)

	_, err := store.Login(context.Background(), api.Credentials{Username: testUsername, Password: "pw"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Logout()
		}()
	}
	wg.Wait()

	require.False(t, store.IsAuthenticated())
	require.Nil(t, store.User())
	require.Empty(t, repo.Stored())
}

func TestOperationsRequireBoundAuth(t *testing.T) {
	store, _ := newStore(testToken, nil)

	_, err := store.Login(context.Background(), api.Credentials{Username: testUsername, Password: "pw"})
	require.ErrorIs(t, err, session.ErrAuthNotBound)

	_, err = store.RefreshProfile(context.Background())
	require.ErrorIs(t, err, session.ErrAuthNotBound)
}

func TestClaimsDecodeWithoutVerification(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  float64(7),
		"username": testUsername,
		"is_admin": true,
	}).SignedString([]byte("server-side-secret"))
	require.NoError(t, err)

	auth := &fakeAuth{loginResult: &api.LoginResult{Token: signed, User: testUser()}}
	store, _ := newStore("", auth)

	_, err = store.Claims()
	require.ErrorIs(t, err, session.ErrNoSession)

	_, err = store.Login(context.Background(), api.Credentials{Username: testUsername, Password: "pw"})
	require.NoError(t, err)

	claims, err := store.Claims()
	require.NoError(t, err)
	require.Equal(t, uint(7), claims.UserID)
	require.Equal(t, testUsername, claims.Username)
	require.True(t, claims.IsAdmin)
}
