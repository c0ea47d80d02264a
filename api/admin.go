package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sanleague/go-league-client/client"
)

// AdminService groups every administration operation. Each call is still
// one remote request with no client-side sequencing; the route guard, not
// this service, keeps non-admins out of admin views, and the server
// answers 403 to a non-admin caller regardless.
type AdminService struct {
	c *client.Client
}

// Page describes a paginated listing request. Zero values fall back to
// the server defaults (page 1, size 20).
type Page struct {
	Number int
	Size   int
}

func (p Page) query() url.Values {
	query := url.Values{}
	if p.Number > 0 {
		query.Set("page", strconv.Itoa(p.Number))
	}
	if p.Size > 0 {
		query.Set("page_size", strconv.Itoa(p.Size))
	}
	return query
}

// SetPhase moves the season to another phase.
func (s *AdminService) SetPhase(ctx context.Context, req SetPhaseRequest) error {
	if req.Phase == "" {
		return &client.ValidationError{Field: "phase", Reason: "is required"}
	}
	return s.c.Post(ctx, EndpointAdminPhase, req, nil)
}

// ResetSeason wipes the season state for a fresh start.
func (s *AdminService) ResetSeason(ctx context.Context) error {
	return s.c.Post(ctx, EndpointAdminReset, nil, nil)
}

// Trades lists every trade in the league.
func (s *AdminService) Trades(ctx context.Context) ([]Trade, error) {
	var out []Trade
	if err := s.c.Get(ctx, EndpointAdminTrades, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Import uploads a bulk data spreadsheet as multipart form data.
func (s *AdminService) Import(ctx context.Context, filename string, file io.Reader) (*ImportSummary, error) {
	if filename == "" {
		return nil, &client.ValidationError{Field: "filename", Reason: "is required"}
	}
	var out ImportSummary
	err := s.c.PostMultipart(ctx, EndpointAdminImport, func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("file", filename)
		if err != nil {
			return errors.Wrap(err, "AdminService.Import create form file")
		}
		if _, err := io.Copy(part, file); err != nil {
			return errors.Wrap(err, "AdminService.Import copy file")
		}
		return nil
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateInviteCodes issues a batch of registration codes.
func (s *AdminService) GenerateInviteCodes(ctx context.Context, req GenerateInviteCodesRequest) (*GeneratedInviteCodes, error) {
	if req.Count < 0 {
		return nil, &client.ValidationError{Field: "count", Reason: "must not be negative"}
	}
	var out GeneratedInviteCodes
	if err := s.c.Post(ctx, EndpointAdminInviteCodes, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InviteCodes lists issued codes one page at a time.
func (s *AdminService) InviteCodes(ctx context.Context, page Page) (*InviteCodeList, error) {
	var out InviteCodeList
	if err := s.c.Get(ctx, EndpointAdminInviteCodes, page.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInviteCode revokes one code.
func (s *AdminService) DeleteInviteCode(ctx context.Context, codeID uint) error {
	if err := requireID("invite code id", codeID); err != nil {
		return err
	}
	return s.c.Delete(ctx, fmt.Sprintf(EndpointAdminInviteCode, codeID), nil)
}

// InviteCodeUsages lists the redemptions of one code.
func (s *AdminService) InviteCodeUsages(ctx context.Context, codeID uint) ([]InviteCodeUsage, error) {
	if err := requireID("invite code id", codeID); err != nil {
		return nil, err
	}
	var out []InviteCodeUsage
	if err := s.c.Get(ctx, fmt.Sprintf(EndpointAdminInviteUsages, codeID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InviteCodeStats aggregates issuance and redemption counts.
func (s *AdminService) InviteCodeStats(ctx context.Context) (*InviteCodeStats, error) {
	var out InviteCodeStats
	if err := s.c.Get(ctx, EndpointAdminInviteStats, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetUserDraw wipes one user's draw results.
func (s *AdminService) ResetUserDraw(ctx context.Context, userID uint) error {
	if err := requireID("user id", userID); err != nil {
		return err
	}
	return s.c.Post(ctx, fmt.Sprintf(EndpointAdminDrawResetUser, userID), nil, nil)
}

// ResetAllDraws wipes every user's draw results.
func (s *AdminService) ResetAllDraws(ctx context.Context) (*AdminResetAll, error) {
	var out AdminResetAll
	if err := s.c.Post(ctx, EndpointAdminDrawResetAll, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DrawForUser runs all outstanding draws on behalf of one user.
func (s *AdminService) DrawForUser(ctx context.Context, userID uint) (*AdminDrawRun, error) {
	if err := requireID("user id", userID); err != nil {
		return nil, err
	}
	var out AdminDrawRun
	if err := s.c.Post(ctx, fmt.Sprintf(EndpointAdminDrawRunUser, userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DrawForAll runs all outstanding draws for every registered user.
func (s *AdminService) DrawForAll(ctx context.Context) (*AdminDrawRunAll, error) {
	var out AdminDrawRunAll
	if err := s.c.Post(ctx, EndpointAdminDrawRunAll, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AssignAuction records one auction outcome.
func (s *AdminService) AssignAuction(ctx context.Context, req AssignAuctionRequest) (*AssignedAuction, error) {
	if err := requireID("general id", req.GeneralID); err != nil {
		return nil, err
	}
	var out AssignedAuction
	if err := s.c.Post(ctx, EndpointAdminAuctionAssign, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetAuction clears the auction record of one general.
func (s *AdminService) ResetAuction(ctx context.Context, generalID uint) error {
	if err := requireID("general id", generalID); err != nil {
		return err
	}
	return s.c.Post(ctx, fmt.Sprintf(EndpointAdminAuctionReset, generalID), nil, nil)
}

// ClosePolicyBidding ends the sealed-bid window and ranks the bids.
func (s *AdminService) ClosePolicyBidding(ctx context.Context) error {
	return s.c.Post(ctx, EndpointAdminPolicyClose, nil, nil)
}

// StartPolicySelection opens the ordered selection phase.
func (s *AdminService) StartPolicySelection(ctx context.Context, req StartPolicySelectionRequest) error {
	return s.c.Post(ctx, EndpointAdminPolicyStart, req, nil)
}

// PolicyBids lists every sealed bid.
func (s *AdminService) PolicyBids(ctx context.Context) ([]PolicyBid, error) {
	var out []PolicyBid
	if err := s.c.Get(ctx, EndpointAdminPolicyBids, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ResetPolicyPhase wipes the whole policy phase.
func (s *AdminService) ResetPolicyPhase(ctx context.Context) error {
	return s.c.Post(ctx, EndpointAdminPolicyReset, nil, nil)
}

// ResetUserPolicySelection clears one user's club pick.
func (s *AdminService) ResetUserPolicySelection(ctx context.Context, userID uint) error {
	if err := requireID("user id", userID); err != nil {
		return err
	}
	return s.c.Post(ctx, fmt.Sprintf(EndpointAdminPolicyResetUser, userID), nil, nil)
}

// SelectClubForUser picks a club on a user's behalf.
func (s *AdminService) SelectClubForUser(ctx context.Context, userID, clubID uint) error {
	if err := requireID("user id", userID); err != nil {
		return err
	}
	if err := requireID("club id", clubID); err != nil {
		return err
	}
	return s.c.Post(ctx, fmt.Sprintf(EndpointAdminPolicySelectFor, userID), ClubSelection{ClubID: clubID}, nil)
}

// CheckPolicyTimeout asks the server to handle an expired selection turn.
// Safe to call from a scheduler; a no-op when nothing timed out.
func (s *AdminService) CheckPolicyTimeout(ctx context.Context) (*PolicyTimeoutResult, error) {
	var out PolicyTimeoutResult
	if err := s.c.Post(ctx, EndpointAdminPolicyTimeout, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForceNextSelector skips the current selector, auto-assigning their club.
func (s *AdminService) ForceNextSelector(ctx context.Context) error {
	return s.c.Post(ctx, EndpointAdminPolicyForceNext, nil, nil)
}
