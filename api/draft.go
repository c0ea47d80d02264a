package api

import (
	"context"

	"github.com/sanleague/go-league-client/client"
)

// DraftService groups the snake-draft operations.
type DraftService struct {
	c *client.Client
}

// Pool lists the generals still available to draft.
func (s *DraftService) Pool(ctx context.Context) ([]General, error) {
	var out []General
	if err := s.c.Get(ctx, EndpointDraftPool, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Pick claims a general for the caller's roster.
func (s *DraftService) Pick(ctx context.Context, generalID uint) error {
	if err := requireID("general id", generalID); err != nil {
		return err
	}
	return s.c.Post(ctx, EndpointDraftPick, DraftPick{GeneralID: generalID}, nil)
}
