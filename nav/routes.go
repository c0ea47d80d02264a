package nav

// Route path constants
// All application views are defined here to ensure consistency and
// prevent typos.
const (
	PathLogin    = "/login"
	PathRegister = "/register"
	PathRoot     = "/"

	PathRoster    = "/roster"
	PathGenerals  = "/generals"
	PathTreasures = "/treasures"
	PathClubs     = "/clubs"
	PathCities    = "/cities"
	PathRules     = "/rules"
	PathPlayers   = "/players"
	PathDraw      = "/draw"
	PathDraft     = "/draft"
	PathTrade     = "/trade"
	PathPolicy    = "/policy"
	PathAuction   = "/auction"
	PathAdmin     = "/admin"
)

// Route describes one view's access requirements. Static, defined at
// startup, never mutated.
type Route struct {
	Path          string
	RequiresAuth  bool
	RequiresAdmin bool
}

// Routes returns the application's static route table.
func Routes() []Route {
	return []Route{
		{Path: PathLogin},
		{Path: PathRegister},
		{Path: PathRoot, RequiresAuth: true},
		{Path: PathRoster, RequiresAuth: true},
		{Path: PathGenerals, RequiresAuth: true},
		{Path: PathTreasures, RequiresAuth: true},
		{Path: PathClubs, RequiresAuth: true},
		{Path: PathCities, RequiresAuth: true},
		{Path: PathRules, RequiresAuth: true},
		{Path: PathPlayers, RequiresAuth: true},
		{Path: PathDraw, RequiresAuth: true},
		{Path: PathDraft, RequiresAuth: true},
		{Path: PathTrade, RequiresAuth: true},
		{Path: PathPolicy, RequiresAuth: true},
		{Path: PathAuction, RequiresAuth: true},
		{Path: PathAdmin, RequiresAuth: true, RequiresAdmin: true},
	}
}
