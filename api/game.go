package api

import (
	"context"
	"fmt"

	"github.com/sanleague/go-league-client/client"
)

// GameService groups season-phase and registration operations.
type GameService struct {
	c *client.Client
}

// Phase fetches the current season phase.
func (s *GameService) Phase(ctx context.Context) (*GamePhase, error) {
	var out GamePhase
	if err := s.c.Get(ctx, EndpointPhase, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignUp registers the caller for the running season.
func (s *GameService) SignUp(ctx context.Context) error {
	return s.c.Post(ctx, EndpointSignUp, nil, nil)
}

// Players lists all registered players.
func (s *GameService) Players(ctx context.Context) ([]User, error) {
	var out []User
	if err := s.c.Get(ctx, EndpointPlayers, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PlayerRoster fetches another player's owned assets.
func (s *GameService) PlayerRoster(ctx context.Context, playerID uint) (*Roster, error) {
	if err := requireID("player id", playerID); err != nil {
		return nil, err
	}
	var out Roster
	if err := s.c.Get(ctx, fmt.Sprintf(EndpointPlayerRoster, playerID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Statistics fetches the league-wide aggregate view.
func (s *GameService) Statistics(ctx context.Context) (*Statistics, error) {
	var out Statistics
	if err := s.c.Get(ctx, EndpointStatistics, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegistrationConfig reports whether registration requires an invite code.
func (s *GameService) RegistrationConfig(ctx context.Context) (*RegistrationConfig, error) {
	var out RegistrationConfig
	if err := s.c.Get(ctx, EndpointRegistrationConfig, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
