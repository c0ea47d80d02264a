package api

import (
	"context"
	"net/url"

	"github.com/sanleague/go-league-client/client"
)

// PolicyService groups the policy-bidding phase: sealed bids for selection
// order, preference lists, and ordered club selection.
type PolicyService struct {
	c *client.Client
}

// Status fetches the combined selection-phase view.
func (s *PolicyService) Status(ctx context.Context) (*PolicyStatus, error) {
	var out PolicyStatus
	if err := s.c.Get(ctx, EndpointPolicyStatus, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyBid fetches the caller's bid and preference list.
func (s *PolicyService) MyBid(ctx context.Context) (*MyPolicyBid, error) {
	var out MyPolicyBid
	if err := s.c.Get(ctx, EndpointPolicyMyBid, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlaceBid places or updates the caller's sealed bid.
func (s *PolicyService) PlaceBid(ctx context.Context, amount int) error {
	if amount < 0 {
		return &client.ValidationError{Field: "bid amount", Reason: "must not be negative"}
	}
	return s.c.Post(ctx, EndpointPolicyBid, PolicyBidRequest{BidAmount: amount}, nil)
}

// SetPreferences replaces the caller's preferred club order.
func (s *PolicyService) SetPreferences(ctx context.Context, clubIDs []uint) error {
	if len(clubIDs) == 0 {
		return &client.ValidationError{Field: "club ids", Reason: "must not be empty"}
	}
	return s.c.Post(ctx, EndpointPolicyPreferences, PolicyPreferencesRequest{ClubIDs: clubIDs}, nil)
}

// SelectClub claims a club when it is the caller's turn.
func (s *PolicyService) SelectClub(ctx context.Context, clubID uint) error {
	if err := requireID("club id", clubID); err != nil {
		return err
	}
	return s.c.Post(ctx, EndpointPolicySelect, ClubSelection{ClubID: clubID}, nil)
}

// Results lists settled club selections in selection order.
func (s *PolicyService) Results(ctx context.Context) ([]PolicySelection, error) {
	var out []PolicySelection
	if err := s.c.Get(ctx, EndpointPolicyResults, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Clubs lists clubs, optionally filtered by league or tag. Empty filters
// return the full catalogue with tags preloaded.
func (s *PolicyService) Clubs(ctx context.Context, league, tag string) ([]Club, error) {
	query := url.Values{}
	if league != "" {
		query.Set("league", league)
	}
	if tag != "" {
		query.Set("tag", tag)
	}
	var out []Club
	if err := s.c.Get(ctx, EndpointPolicyClubs, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Filters lists the filterable league and tag values.
func (s *PolicyService) Filters(ctx context.Context) (*ClubFilters, error) {
	var out ClubFilters
	if err := s.c.Get(ctx, EndpointPolicyFilters, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
