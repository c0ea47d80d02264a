package api

import (
	"context"

	"github.com/sanleague/go-league-client/client"
)

// AuthService groups account and profile operations.
type AuthService struct {
	c *client.Client
}

// Register creates an account and returns the freshly issued token with
// the new profile.
func (s *AuthService) Register(ctx context.Context, reg Registration) (*LoginResult, error) {
	if reg.Username == "" {
		return nil, &client.ValidationError{Field: "username", Reason: "is required"}
	}
	if reg.Password == "" {
		return nil, &client.ValidationError{Field: "password", Reason: "is required"}
	}
	var out LoginResult
	if err := s.c.Post(ctx, EndpointRegister, reg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token and profile.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	if creds.Username == "" {
		return nil, &client.ValidationError{Field: "username", Reason: "is required"}
	}
	if creds.Password == "" {
		return nil, &client.ValidationError{Field: "password", Reason: "is required"}
	}
	var out LoginResult
	if err := s.c.Post(ctx, EndpointLogin, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser fetches the caller's profile.
func (s *AuthService) CurrentUser(ctx context.Context) (*User, error) {
	var out User
	if err := s.c.Get(ctx, EndpointMe, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile changes the caller's display name.
func (s *AuthService) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	if update.Nickname == "" {
		return &client.ValidationError{Field: "nickname", Reason: "is required"}
	}
	return s.c.Put(ctx, EndpointMe, update, nil)
}

// MyRoster fetches the caller's owned assets.
func (s *AuthService) MyRoster(ctx context.Context) (*Roster, error) {
	var out Roster
	if err := s.c.Get(ctx, EndpointMyRoster, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyDrawRecords lists the caller's draw history.
func (s *AuthService) MyDrawRecords(ctx context.Context) ([]DrawRecord, error) {
	var out []DrawRecord
	if err := s.c.Get(ctx, EndpointMyDraws, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyDraftRecords lists the caller's draft history.
func (s *AuthService) MyDraftRecords(ctx context.Context) ([]DraftRecord, error) {
	var out []DraftRecord
	if err := s.c.Get(ctx, EndpointMyDrafts, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
