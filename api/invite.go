package api

import (
	"context"
	"net/url"

	"github.com/sanleague/go-league-client/client"
)

// InviteService exposes the public invite-code check used by the
// registration form. Issuing and managing codes is an administration
// concern.
type InviteService struct {
	c *client.Client
}

// Validate checks whether code can still be redeemed. An unknown or
// exhausted code is not an error; the result carries the reason.
func (s *InviteService) Validate(ctx context.Context, code string) (*InviteValidation, error) {
	if code == "" {
		return nil, &client.ValidationError{Field: "code", Reason: "is required"}
	}
	query := url.Values{"code": {code}}
	var out InviteValidation
	if err := s.c.Get(ctx, EndpointInviteValidate, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
