package api

// Endpoint path templates
// Every remote path the client can reach is defined here to ensure
// consistency and prevent typos. Templates with a verb ending in "%d" are
// completed with fmt.Sprintf.
const (
	// Auth
	EndpointRegister  = "/auth/register"
	EndpointLogin     = "/auth/login"
	EndpointMe        = "/me"
	EndpointMyRoster  = "/me/roster"
	EndpointMyDraws   = "/me/draws"
	EndpointMyDrafts  = "/me/drafts"

	// Game & registration
	EndpointPhase              = "/phase"
	EndpointSignUp             = "/signup"
	EndpointPlayers            = "/players"
	EndpointPlayerRoster       = "/players/%d/roster"
	EndpointStatistics         = "/statistics"
	EndpointRegistrationConfig = "/config/registration"

	// Unified draw
	EndpointDraw        = "/draw"
	EndpointDrawStatus  = "/draw/status"
	EndpointDrawResults = "/draw/results"
	EndpointDrawPool    = "/draw/pool"

	// Legacy per-pool draws
	EndpointGuaranteeDraw = "/draw/guarantee"
	EndpointNormalDraw    = "/draw/normal"

	// Draft
	EndpointDraftPool = "/draft/pool"
	EndpointDraftPick = "/draft/pick"

	// Assets
	EndpointGenerals   = "/generals"
	EndpointGeneral    = "/generals/%d"
	EndpointTreasures  = "/treasures"
	EndpointTreasure   = "/treasures/%d"
	EndpointClubs      = "/clubs"
	EndpointClub       = "/clubs/%d"
	EndpointClubDetail = "/clubs/%d/detail"
	EndpointCities     = "/cities"
	EndpointRules      = "/rules"

	// Trade
	EndpointTrades        = "/trades"
	EndpointTradesPending = "/trades/pending"
	EndpointTradesHistory = "/trades/history"
	EndpointTrade         = "/trades/%d"
	EndpointTradeAccept   = "/trades/%d/accept"
	EndpointTradeReject   = "/trades/%d/reject"
	EndpointTradeCancel   = "/trades/%d/cancel"

	// Auction
	EndpointAuctionPool    = "/auction/pool"
	EndpointAuctionResults = "/auction/results"
	EndpointAuctionStats   = "/auction/stats"

	// Policy bidding
	EndpointPolicyStatus      = "/policy/status"
	EndpointPolicyMyBid       = "/policy/my-bid"
	EndpointPolicyBid         = "/policy/bid"
	EndpointPolicyPreferences = "/policy/preferences"
	EndpointPolicySelect      = "/policy/select"
	EndpointPolicyResults     = "/policy/results"
	EndpointPolicyClubs       = "/policy/clubs"
	EndpointPolicyFilters     = "/policy/filters"

	// Invite codes (public)
	EndpointInviteValidate = "/invite-codes/validate"

	// Administration
	EndpointAdminPhase            = "/admin/phase"
	EndpointAdminReset            = "/admin/reset"
	EndpointAdminTrades           = "/admin/trades"
	EndpointAdminImport           = "/admin/import"
	EndpointAdminInviteCodes      = "/admin/invite-codes"
	EndpointAdminInviteCode       = "/admin/invite-codes/%d"
	EndpointAdminInviteUsages     = "/admin/invite-codes/%d/usages"
	EndpointAdminInviteStats      = "/admin/invite-codes/stats"
	EndpointAdminDrawResetUser    = "/admin/draw/reset/%d"
	EndpointAdminDrawResetAll     = "/admin/draw/reset-all"
	EndpointAdminDrawRunUser      = "/admin/draw/run/%d"
	EndpointAdminDrawRunAll       = "/admin/draw/run-all"
	EndpointAdminAuctionAssign    = "/admin/auction/assign"
	EndpointAdminAuctionReset     = "/admin/auction/reset/%d"
	EndpointAdminPolicyClose      = "/admin/policy/close-bidding"
	EndpointAdminPolicyStart      = "/admin/policy/start-selection"
	EndpointAdminPolicyBids       = "/admin/policy/bids"
	EndpointAdminPolicyReset      = "/admin/policy/reset"
	EndpointAdminPolicyResetUser  = "/admin/policy/reset-user/%d"
	EndpointAdminPolicySelectFor  = "/admin/policy/select-for/%d"
	EndpointAdminPolicyTimeout    = "/admin/policy/check-timeout"
	EndpointAdminPolicyForceNext  = "/admin/policy/force-next"
)
