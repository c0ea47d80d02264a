// Package session owns the process-wide session: the bearer token and the
// authenticated profile. It is the only component that mutates either;
// everything else reads through derived accessors or asks for a teardown.
package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sanleague/go-league-client/api"
)

// AuthClient is the slice of the remote surface the store needs. Satisfied
// by api.AuthService; faked in tests.
type AuthClient interface {
	Login(ctx context.Context, creds api.Credentials) (*api.LoginResult, error)
	Register(ctx context.Context, reg api.Registration) (*api.LoginResult, error)
	CurrentUser(ctx context.Context) (*api.User, error)
}

// Store holds the session. The token may be present with the user still
// being fetched; the user is never present without the token. All
// mutation happens inside the lock, which serialises concurrent teardown
// attempts the way the source environment's single-threaded scheduling
// did.
type Store struct {
	mu    sync.RWMutex
	token string
	user  *api.User

	repo TokenRepo
	auth AuthClient
}

// NewStore builds a store over durable token storage. Bind must be called
// before any operation that talks to the service.
func NewStore(repo TokenRepo) *Store {
	return &Store{repo: repo}
}

// Bind attaches the remote auth operations. Separate from NewStore because
// the request pipeline needs the store as its token source before the
// operation surface exists.
func (s *Store) Bind(auth AuthClient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = auth
}

// Token implements the pipeline's token source. Empty means anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current profile, or nil while it is absent or still
// being fetched.
func (s *Store) User() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated is true as soon as a token is held, even before the
// profile arrives. A stale token demotes itself: the eager refresh fails
// with 401 and clears the session.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// IsAdmin reports whether the current profile carries admin privilege.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsAdmin
}

// IsRegistered reports whether the current profile is signed up for the
// running season.
func (s *Store) IsRegistered() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsRegistered
}

// RemainingSpace recomputes space - used_space on every read.
func (s *Store) RemainingSpace() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.RemainingSpace()
}

// Login exchanges credentials for a session. On success the token and
// profile are set together and the token is persisted; on failure the
// session is left exactly as it was.
func (s *Store) Login(ctx context.Context, creds api.Credentials) (*api.User, error) {
	auth, err := s.boundAuth()
	if err != nil {
		return nil, err
	}
	res, err := auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.adopt(res)
}

// Register creates an account; same session contract as Login.
func (s *Store) Register(ctx context.Context, reg api.Registration) (*api.User, error) {
	auth, err := s.boundAuth()
	if err != nil {
		return nil, err
	}
	res, err := auth.Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	return s.adopt(res)
}

func (s *Store) adopt(res *api.LoginResult) (*api.User, error) {
	s.mu.Lock()
	s.token = res.Token
	s.user = res.User
	s.mu.Unlock()

	if err := s.repo.Save(res.Token); err != nil {
		// In-memory session stands; only durability failed.
		return res.User, errors.Wrap(err, "Store persist token")
	}
	return res.User, nil
}

// RefreshProfile re-fetches the current profile. Without a token it
// returns (nil, nil) and performs no network call. Any fetch failure,
// including an authorization failure, tears the session down and is then
// re-returned to the caller.
func (s *Store) RefreshProfile(ctx context.Context) (*api.User, error) {
	if s.Token() == "" {
		return nil, nil
	}
	auth, err := s.boundAuth()
	if err != nil {
		return nil, err
	}
	user, err := auth.CurrentUser(ctx)
	if err != nil {
		s.Logout()
		return nil, err
	}

	s.mu.Lock()
	// A logout can land between the fetch and this point; the profile
	// must not outlive the token.
	if s.token != "" {
		s.user = user
	}
	s.mu.Unlock()
	return user, nil
}

// Logout clears the session in memory and the persisted slot. Idempotent,
// no network call; the durable clear is best effort.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	_ = s.repo.Clear()
}

// Restore loads a persisted token at startup and eagerly refreshes the
// profile. A refresh failure is swallowed: the session ends up cleared
// and the caller renders the unauthenticated state instead of crashing.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.repo.Load()
	if err != nil {
		return errors.Wrap(err, "Store.Restore load token")
	}
	if token == "" {
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	_, _ = s.RefreshProfile(ctx)
	return nil
}

func (s *Store) boundAuth() (AuthClient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.auth == nil {
		return nil, ErrAuthNotBound
	}
	return s.auth, nil
}
