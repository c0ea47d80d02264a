package api

import (
	"context"
	"fmt"

	"github.com/sanleague/go-league-client/client"
)

// AssetService groups read-only access to the asset catalogue.
type AssetService struct {
	c *client.Client
}

// Generals lists every general.
func (s *AssetService) Generals(ctx context.Context) ([]General, error) {
	var out []General
	if err := s.c.Get(ctx, EndpointGenerals, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// General fetches one general.
func (s *AssetService) General(ctx context.Context, id uint) (*General, error) {
	if err := requireID("general id", id); err != nil {
		return nil, err
	}
	var out General
	if err := s.c.Get(ctx, fmt.Sprintf(EndpointGeneral, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Treasures lists every treasure.
func (s *AssetService) Treasures(ctx context.Context) ([]Treasure, error) {
	var out []Treasure
	if err := s.c.Get(ctx, EndpointTreasures, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Treasure fetches one treasure.
func (s *AssetService) Treasure(ctx context.Context, id uint) (*Treasure, error) {
	if err := requireID("treasure id", id); err != nil {
		return nil, err
	}
	var out Treasure
	if err := s.c.Get(ctx, fmt.Sprintf(EndpointTreasure, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Clubs lists every club.
func (s *AssetService) Clubs(ctx context.Context) ([]Club, error) {
	var out []Club
	if err := s.c.Get(ctx, EndpointClubs, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Club fetches one club without its policy ladder.
func (s *AssetService) Club(ctx context.Context, id uint) (*Club, error) {
	if err := requireID("club id", id); err != nil {
		return nil, err
	}
	var out Club
	if err := s.c.Get(ctx, fmt.Sprintf(EndpointClub, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClubDetail fetches one club with its full policy ladder.
func (s *AssetService) ClubDetail(ctx context.Context, id uint) (*Club, error) {
	if err := requireID("club id", id); err != nil {
		return nil, err
	}
	var out Club
	if err := s.c.Get(ctx, fmt.Sprintf(EndpointClubDetail, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cities lists every city.
func (s *AssetService) Cities(ctx context.Context) ([]City, error) {
	var out []City
	if err := s.c.Get(ctx, EndpointCities, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Rules lists the rules-sheet entries.
func (s *AssetService) Rules(ctx context.Context) ([]GameRule, error) {
	var out []GameRule
	if err := s.c.Get(ctx, EndpointRules, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
