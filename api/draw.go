package api

import (
	"context"
	"net/url"

	"github.com/sanleague/go-league-client/client"
)

// Draw pool type identifiers accepted by the pool endpoints.
const (
	PoolInitialGuarantee = "initial_guarantee"
	PoolInitialNormal    = "initial_normal"
)

// DrawService groups the unified draw operations plus the older per-pool
// draw endpoints the service still serves.
type DrawService struct {
	c *client.Client
}

// Draw performs one unified draw; the server picks the pool (guaranteed
// first, then normal).
func (s *DrawService) Draw(ctx context.Context) (*DrawOutcome, error) {
	var out DrawOutcome
	if err := s.c.Post(ctx, EndpointDraw, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Status reports how many draws the caller has left per pool.
func (s *DrawService) Status(ctx context.Context) (*DrawStatus, error) {
	var out DrawStatus
	if err := s.c.Get(ctx, EndpointDrawStatus, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Results lists every player's draw outcome.
func (s *DrawService) Results(ctx context.Context) ([]DrawResult, error) {
	var out []DrawResult
	if err := s.c.Get(ctx, EndpointDrawResults, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Pool lists the remaining generals in one draw pool.
func (s *DrawService) Pool(ctx context.Context, poolType string) ([]General, error) {
	if poolType == "" {
		return nil, &client.ValidationError{Field: "pool type", Reason: "is required"}
	}
	query := url.Values{"type": {poolType}}
	var out []General
	if err := s.c.Get(ctx, EndpointDrawPool, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Pools fetches both initial pools in one call.
func (s *DrawService) Pools(ctx context.Context) (*DrawPools, error) {
	var out DrawPools
	if err := s.c.Get(ctx, EndpointDrawPool, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GuaranteeDraw performs a draw from the guaranteed pool.
func (s *DrawService) GuaranteeDraw(ctx context.Context) (*DrawOutcome, error) {
	var out DrawOutcome
	if err := s.c.Post(ctx, EndpointGuaranteeDraw, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NormalDraw performs a draw from the normal pool.
func (s *DrawService) NormalDraw(ctx context.Context) (*DrawOutcome, error) {
	var out DrawOutcome
	if err := s.c.Post(ctx, EndpointNormalDraw, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
