// Package api is the typed catalogue of remote operations exposed by the
// league service, grouped by game subsystem. Every operation is a direct
// 1:1 mapping to one endpoint: fixed method, fixed path template, typed
// body and payload. Nothing here retries, caches or transforms results;
// failures propagate from the pipeline untouched.
package api

import (
	"github.com/sanleague/go-league-client/client"
)

// API bundles every operation group over one shared pipeline.
type API struct {
	Auth     *AuthService
	Game     *GameService
	Draw     *DrawService
	Draft    *DraftService
	Assets   *AssetService
	Trades   *TradeService
	Auctions *AuctionService
	Policy   *PolicyService
	Invites  *InviteService
	Admin    *AdminService
}

// New builds the full operation surface around c.
func New(c *client.Client) *API {
	return &API{
		Auth:     &AuthService{c: c},
		Game:     &GameService{c: c},
		Draw:     &DrawService{c: c},
		Draft:    &DraftService{c: c},
		Assets:   &AssetService{c: c},
		Trades:   &TradeService{c: c},
		Auctions: &AuctionService{c: c},
		Policy:   &PolicyService{c: c},
		Invites:  &InviteService{c: c},
		Admin:    &AdminService{c: c},
	}
}

// requireID rejects a missing identifier before transmission.
func requireID(field string, id uint) error {
	if id == 0 {
		return &client.ValidationError{Field: field, Reason: "is required"}
	}
	return nil
}
