package api

import "time"

// User is the authenticated player profile as served by /me and embedded
// in other payloads.
type User struct {
	ID           uint       `json:"id"`
	Username     string     `json:"username"`
	Nickname     string     `json:"nickname"`
	IsAdmin      bool       `json:"is_admin"`
	IsRegistered bool       `json:"is_registered"`
	Space        int        `json:"space"`
	UsedSpace    int        `json:"used_space"`
	ClubID       *uint      `json:"club_id"`
	Club         *Club      `json:"club,omitempty"`
	Generals     []General  `json:"generals,omitempty"`
	Treasures    []Treasure `json:"treasures,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// RemainingSpace is the derived quantity space - used_space. It is never
// stored; recompute it wherever it is needed.
func (u *User) RemainingSpace() int {
	if u == nil {
		return 0
	}
	return u.Space - u.UsedSpace
}

// General is a draftable warrior.
type General struct {
	ID           uint   `json:"id"`
	ExcelID      int    `json:"excel_id"`
	Name         string `json:"name"`
	Command      int    `json:"command"`
	Force        int    `json:"force"`
	Intelligence int    `json:"intelligence"`
	Politics     int    `json:"politics"`
	Charm        int    `json:"charm"`
	Salary       int    `json:"salary"`
	Affinity     int    `json:"affinity"`
	Spear        string `json:"spear"`
	Halberd      string `json:"halberd"`
	Crossbow     string `json:"crossbow"`
	Cavalry      string `json:"cavalry"`
	Soldier      string `json:"soldier"`
	Water        string `json:"water"`
	Skills       string `json:"skills"`
	Morality     string `json:"morality"`
	Ambition     string `json:"ambition"`
	Personality  string `json:"personality"`
	Note         string `json:"note"`
	PoolType     string `json:"pool_type"`
	Tier         int    `json:"tier"`
	OwnerID      *uint  `json:"owner_id"`
	Owner        *User  `json:"owner,omitempty"`
	IsAvailable  bool   `json:"is_available"`
	InjuredUntil *int   `json:"injured_until"`
}

// Treasure is a tradable item.
type Treasure struct {
	ID          uint   `json:"id"`
	ExcelID     int    `json:"excel_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Value       int    `json:"value"`
	Effect      string `json:"effect"`
	Skill       string `json:"skill"`
	OwnerID     *uint  `json:"owner_id"`
	Owner       *User  `json:"owner,omitempty"`
	IsAvailable bool   `json:"is_available"`
}

// City is a map location.
type City struct {
	ID          uint   `json:"id"`
	ExcelID     int    `json:"excel_id"`
	Name        string `json:"name"`
	Specialty   string `json:"specialty"`
	MaxSoldiers int    `json:"max_soldiers"`
	GoldIncome  int    `json:"gold_income"`
	FoodIncome  int    `json:"food_income"`
	Durability  int    `json:"durability"`
	Tiles       int    `json:"tiles"`
}

// Club is a faction with an associated policy ladder.
type Club struct {
	ID          uint     `json:"id"`
	ExcelID     int      `json:"excel_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Policies    []Policy `json:"policies,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	League      string   `json:"league,omitempty"`
	BasePrice   int      `json:"base_price"`
	OwnerID     *uint    `json:"owner_id"`
	Owner       *User    `json:"owner,omitempty"`
}

// Policy is one rung of a club's policy ladder.
type Policy struct {
	ID        uint   `json:"id"`
	ClubID    uint   `json:"club_id"`
	SortOrder int    `json:"sort_order"`
	Condition string `json:"condition"`
	Effect    string `json:"effect"`
}

// GameRule is a single rules-sheet entry.
type GameRule struct {
	ID       uint   `json:"id"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// GamePhase is the server-authoritative season state.
type GamePhase struct {
	ID           uint      `json:"id"`
	CurrentPhase string    `json:"current_phase"`
	RoundNumber  int       `json:"round_number"`
	DraftRound   int       `json:"draft_round"`
	DraftOrder   string    `json:"draft_order"`
	Config       string    `json:"config"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Trade is a proposed or settled exchange between two players.
type Trade struct {
	ID               uint      `json:"id"`
	ProposerID       uint      `json:"proposer_id"`
	Proposer         User      `json:"proposer"`
	ReceiverID       uint      `json:"receiver_id"`
	Receiver         User      `json:"receiver"`
	OfferGenerals    string    `json:"offer_generals"`
	OfferTreasures   string    `json:"offer_treasures"`
	OfferSpace       int       `json:"offer_space"`
	RequestGenerals  string    `json:"request_generals"`
	RequestTreasures string    `json:"request_treasures"`
	RequestSpace     int       `json:"request_space"`
	Status           string    `json:"status"`
	Message          string    `json:"message"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TradeRequest is the body for creating a trade proposal.
type TradeRequest struct {
	ReceiverID       uint   `json:"receiver_id"`
	OfferGenerals    []uint `json:"offer_generals"`
	OfferTreasures   []uint `json:"offer_treasures"`
	OfferSpace       int    `json:"offer_space"`
	RequestGenerals  []uint `json:"request_generals"`
	RequestTreasures []uint `json:"request_treasures"`
	RequestSpace     int    `json:"request_space"`
	Message          string `json:"message"`
}

// DrawRecord is one recorded draw action.
type DrawRecord struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	User      User      `json:"user"`
	GeneralID uint      `json:"general_id"`
	General   General   `json:"general"`
	DrawType  string    `json:"draw_type"`
	CreatedAt time.Time `json:"created_at"`
}

// DraftRecord is one recorded draft pick.
type DraftRecord struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	User      User      `json:"user"`
	GeneralID uint      `json:"general_id"`
	General   General   `json:"general"`
	Round     int       `json:"round"`
	Pick      int       `json:"pick"`
	CreatedAt time.Time `json:"created_at"`
}

// DrawStatus reports how many draws the current user has left.
type DrawStatus struct {
	GuaranteeRemaining int `json:"guarantee_remaining"`
	NormalRemaining    int `json:"normal_remaining"`
	TotalRemaining     int `json:"total_remaining"`
	GuaranteeDone      int `json:"guarantee_done"`
	NormalDone         int `json:"normal_done"`
	TotalDone          int `json:"total_done"`
}

// DrawOutcome is the payload returned by a single unified draw.
type DrawOutcome struct {
	Message  string   `json:"message"`
	General  *General `json:"general"`
	DrawType string   `json:"draw_type"`
}

// DrawResult summarises one player's completed draws.
type DrawResult struct {
	UserID       uint      `json:"user_id"`
	Nickname     string    `json:"nickname"`
	Generals     []General `json:"generals"`
	TotalSalary  int       `json:"total_salary"`
	DrawComplete bool      `json:"draw_complete"`
}

// DrawPools carries both initial pools when no type filter is given.
type DrawPools struct {
	Guarantee []General `json:"guarantee"`
	Normal    []General `json:"normal"`
}

// Roster is a player's owned assets.
type Roster struct {
	User      *User      `json:"user,omitempty"`
	Generals  []General  `json:"generals"`
	Treasures []Treasure `json:"treasures"`
}

// Statistics is the league-wide aggregate view. The server owns the
// computation; the client renders whatever arrives.
type Statistics struct {
	PlayerCount   int `json:"player_count"`
	GeneralCount  int `json:"general_count"`
	TreasureCount int `json:"treasure_count"`
	TradeCount    int `json:"trade_count"`
}

// AuctionResult is one settled auction line.
type AuctionResult struct {
	GeneralID   uint     `json:"general_id"`
	GeneralName string   `json:"general_name"`
	Salary      int      `json:"salary"`
	UserID      *uint    `json:"user_id"`
	Nickname    string   `json:"nickname"`
	Price       int      `json:"price"`
	IsUnsold    bool     `json:"is_unsold"`
	Remark      string   `json:"remark"`
	General     *General `json:"general,omitempty"`
}

// AuctionStats aggregates auction progress.
type AuctionStats struct {
	TotalGenerals int `json:"total_generals"`
	Auctioned     int `json:"auctioned"`
	Sold          int `json:"sold"`
	Unsold        int `json:"unsold"`
	Pending       int `json:"pending"`
	TotalPrice    int `json:"total_price"`
}

// AuctionRecord is one stored auction assignment.
type AuctionRecord struct {
	ID        uint      `json:"id"`
	GeneralID uint      `json:"general_id"`
	General   General   `json:"general"`
	UserID    *uint     `json:"user_id"`
	User      *User     `json:"user,omitempty"`
	Price     int       `json:"price"`
	IsUnsold  bool      `json:"is_unsold"`
	Remark    string    `json:"remark"`
	CreatedAt time.Time `json:"created_at"`
}

// AssignAuctionRequest records an auction outcome. A nil UserID marks the
// general as unsold.
type AssignAuctionRequest struct {
	GeneralID uint   `json:"general_id"`
	UserID    *uint  `json:"user_id"`
	Price     int    `json:"price"`
	Remark    string `json:"remark"`
}

// PolicyBid is a player's sealed bid for policy selection order.
type PolicyBid struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	User      *User     `json:"user,omitempty"`
	BidAmount int       `json:"bid_amount"`
	Rank      int       `json:"rank"`
	CreatedAt time.Time `json:"created_at"`
}

// PolicyPreference is one entry of a player's preferred club order.
type PolicyPreference struct {
	ID        uint  `json:"id"`
	UserID    uint  `json:"user_id"`
	ClubID    uint  `json:"club_id"`
	SortOrder int   `json:"sort_order"`
	Club      *Club `json:"club,omitempty"`
}

// PolicySelection is a settled club pick.
type PolicySelection struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	User        *User     `json:"user,omitempty"`
	ClubID      uint      `json:"club_id"`
	Club        *Club     `json:"club,omitempty"`
	SelectOrder int       `json:"select_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// PolicyPhaseConfig is the server's policy-phase state machine snapshot.
type PolicyPhaseConfig struct {
	Status          string     `json:"status"`
	StartTime       *time.Time `json:"start_time"`
	TimeoutMinutes  int        `json:"timeout_minutes"`
	CurrentSelector *uint      `json:"current_selector"`
	CurrentDeadline *time.Time `json:"current_deadline"`
}

// PolicyStatus is the combined selection-phase view.
type PolicyStatus struct {
	Config         PolicyPhaseConfig `json:"config"`
	Bids           []PolicyBid       `json:"bids"`
	Selections     []PolicySelection `json:"selections"`
	AvailableClubs []Club            `json:"available_clubs"`
	CurrentUser    *User             `json:"current_user"`
}

// MyPolicyBid pairs the caller's bid with their preference list.
type MyPolicyBid struct {
	Bid         *PolicyBid         `json:"bid"`
	Preferences []PolicyPreference `json:"preferences"`
}

// ClubFilters lists the filterable dimensions of the club catalogue.
type ClubFilters struct {
	Leagues []string `json:"leagues"`
	Tags    []string `json:"tags"`
}

// StartPolicySelectionRequest opens the ordered selection phase.
type StartPolicySelectionRequest struct {
	StartTime      string `json:"start_time,omitempty"` // RFC 3339; empty means now
	TimeoutMinutes int    `json:"timeout_minutes"`
}

// PolicyTimeoutResult reports whether a timed-out selector was handled.
type PolicyTimeoutResult struct {
	TimeoutHandled bool `json:"timeout_handled"`
}

// InviteCode is an admin-issued registration code.
type InviteCode struct {
	ID        uint       `json:"id"`
	Code      string     `json:"code"`
	Type      int        `json:"type"`
	MaxUses   int        `json:"max_uses"`
	UsedCount int        `json:"used_count"`
	ExpiredAt *time.Time `json:"expired_at"`
	CreatedBy uint       `json:"created_by"`
	Creator   *User      `json:"creator,omitempty"`
	Remark    string     `json:"remark"`
	CreatedAt time.Time  `json:"created_at"`
}

// InviteCodeUsage records one redemption of an invite code.
type InviteCodeUsage struct {
	ID           uint        `json:"id"`
	InviteCodeID uint        `json:"invite_code_id"`
	InviteCode   *InviteCode `json:"invite_code,omitempty"`
	UserID       uint        `json:"user_id"`
	User         *User       `json:"user,omitempty"`
	UsedAt       time.Time   `json:"used_at"`
}

// InviteCodeList is a page of invite codes.
type InviteCodeList struct {
	Codes    []InviteCode `json:"codes"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// GenerateInviteCodesRequest issues a batch of codes.
type GenerateInviteCodesRequest struct {
	Count      int    `json:"count"`
	Type       int    `json:"type"` // 0 single-use, 1 multi-use
	MaxUses    int    `json:"max_uses"`
	ExpireDays int    `json:"expire_days"` // 0 means never
	Remark     string `json:"remark"`
}

// GeneratedInviteCodes is the issuance response; CodeStrings repeats the
// bare codes for easy copying.
type GeneratedInviteCodes struct {
	Message     string       `json:"message"`
	Codes       []InviteCode `json:"codes"`
	CodeStrings []string     `json:"code_strings"`
}

// InviteCodeStats aggregates issuance and redemption counts.
type InviteCodeStats struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Exhausted int64 `json:"exhausted"`
	Expired   int64 `json:"expired"`
	TotalUses int64 `json:"total_uses"`
}

// InviteValidation is the public validity check result.
type InviteValidation struct {
	Valid     bool   `json:"valid"`
	Remaining int    `json:"remaining,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// RegistrationConfig reports whether registration needs an invite code.
type RegistrationConfig struct {
	RequireInviteCode bool `json:"require_invite_code"`
}

// Credentials is the login body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the account-creation body.
type Registration struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Nickname   string `json:"nickname,omitempty"`
	InviteCode string `json:"invite_code,omitempty"`
}

// LoginResult is the payload of a successful login or registration.
type LoginResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
}

// ProfileUpdate changes the caller's display name.
type ProfileUpdate struct {
	Nickname string `json:"nickname"`
}

// SetPhaseRequest moves the season to another phase.
type SetPhaseRequest struct {
	Phase       string `json:"phase"`
	RoundNumber int    `json:"round_number"`
	DraftRound  int    `json:"draft_round"`
}

// DraftPick is the body for claiming a general during the draft.
type DraftPick struct {
	GeneralID uint `json:"general_id"`
}

// ClubSelection is the body for picking a club in the policy phase.
type ClubSelection struct {
	ClubID uint `json:"club_id"`
}

// PolicyBidRequest places or updates the caller's bid.
type PolicyBidRequest struct {
	BidAmount int `json:"bid_amount"`
}

// PolicyPreferencesRequest replaces the caller's preferred club order.
type PolicyPreferencesRequest struct {
	ClubIDs []uint `json:"club_ids"`
}

// ImportSummary reports the outcome of a bulk data import.
type ImportSummary struct {
	Message   string `json:"message"`
	Generals  int    `json:"generals"`
	Treasures int    `json:"treasures"`
	Clubs     int    `json:"clubs"`
	Cities    int    `json:"cities"`
	Rules     int    `json:"rules"`
}

// MessageResponse is the generic acknowledgement body used by mutating
// endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserDrawResult is one line of an admin batch draw.
type UserDrawResult struct {
	UserID   uint      `json:"user_id"`
	Generals []General `json:"generals"`
	Count    int       `json:"count"`
}

// AdminDrawRun is the response of a per-user admin draw.
type AdminDrawRun struct {
	Message  string    `json:"message"`
	Generals []General `json:"generals"`
	Count    int       `json:"count"`
}

// AdminDrawRunAll is the response of a league-wide admin draw.
type AdminDrawRunAll struct {
	Message    string           `json:"message"`
	Results    []UserDrawResult `json:"results"`
	UserCount  int              `json:"user_count"`
	TotalCount int              `json:"total_count"`
}

// AdminResetAll reports how many users a league-wide draw reset touched.
type AdminResetAll struct {
	Message    string `json:"message"`
	ResetCount int    `json:"reset_count"`
}

// AssignedAuction is the response of recording an auction outcome.
type AssignedAuction struct {
	Message string         `json:"message"`
	Record  *AuctionRecord `json:"record"`
}

// CreatedTrade is the response of proposing a trade.
type CreatedTrade struct {
	Message string `json:"message"`
	Trade   *Trade `json:"trade"`
}
