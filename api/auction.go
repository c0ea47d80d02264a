package api

import (
	"context"

	"github.com/sanleague/go-league-client/client"
)

// AuctionService groups the read side of the auction phase. Recording
// outcomes is an administration operation.
type AuctionService struct {
	c *client.Client
}

// Pool lists the generals up for auction.
func (s *AuctionService) Pool(ctx context.Context) ([]General, error) {
	var out []General
	if err := s.c.Get(ctx, EndpointAuctionPool, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Results lists settled auction lines.
func (s *AuctionService) Results(ctx context.Context) ([]AuctionResult, error) {
	var out []AuctionResult
	if err := s.c.Get(ctx, EndpointAuctionResults, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats aggregates auction progress.
func (s *AuctionService) Stats(ctx context.Context) (*AuctionStats, error) {
	var out AuctionStats
	if err := s.c.Get(ctx, EndpointAuctionStats, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
