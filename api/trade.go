package api

import (
	"context"
	"fmt"

	"github.com/sanleague/go-league-client/client"
)

// TradeService groups trade lifecycle operations. The server enforces all
// trade rules; the client only forwards intents.
type TradeService struct {
	c *client.Client
}

// Create proposes a trade to another player.
func (s *TradeService) Create(ctx context.Context, req TradeRequest) (*CreatedTrade, error) {
	if err := requireID("receiver id", req.ReceiverID); err != nil {
		return nil, err
	}
	var out CreatedTrade
	if err := s.c.Post(ctx, EndpointTrades, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Pending lists trades awaiting the caller's decision.
func (s *TradeService) Pending(ctx context.Context) ([]Trade, error) {
	var out []Trade
	if err := s.c.Get(ctx, EndpointTradesPending, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// History lists the caller's settled trades.
func (s *TradeService) History(ctx context.Context) ([]Trade, error) {
	var out []Trade
	if err := s.c.Get(ctx, EndpointTradesHistory, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one trade.
func (s *TradeService) Get(ctx context.Context, tradeID uint) (*Trade, error) {
	if err := requireID("trade id", tradeID); err != nil {
		return nil, err
	}
	var out Trade
	if err := s.c.Get(ctx, fmt.Sprintf(EndpointTrade, tradeID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Accept settles a trade in the proposer's favour.
func (s *TradeService) Accept(ctx context.Context, tradeID uint) error {
	if err := requireID("trade id", tradeID); err != nil {
		return err
	}
	return s.c.Post(ctx, fmt.Sprintf(EndpointTradeAccept, tradeID), nil, nil)
}

// Reject declines a trade.
func (s *TradeService) Reject(ctx context.Context, tradeID uint) error {
	if err := requireID("trade id", tradeID); err != nil {
		return err
	}
	return s.c.Post(ctx, fmt.Sprintf(EndpointTradeReject, tradeID), nil, nil)
}

// Cancel withdraws a trade the caller proposed.
func (s *TradeService) Cancel(ctx context.Context, tradeID uint) error {
	if err := requireID("trade id", tradeID); err != nil {
		return err
	}
	return s.c.Post(ctx, fmt.Sprintf(EndpointTradeCancel, tradeID), nil, nil)
}
