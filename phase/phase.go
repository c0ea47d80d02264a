// Package phase defines the closed set of season phase identifiers used by
// the league service and their display labels.
package phase

// Phase identifies a stage of the season lifecycle. The service controls
// which phase is current; the client only displays it.
type Phase string

const (
	Signup        Phase = "signup"
	GuaranteeDraw Phase = "guarantee_draw"
	NormalDraw    Phase = "normal_draw"
	Draft         Phase = "draft"
	Trading       Phase = "trading"
	Auction       Phase = "auction"
	Match         Phase = "match"
	Finished      Phase = "finished"
)

var labels = map[Phase]string{
	Signup:        "Sign-up",
	GuaranteeDraw: "Guaranteed draw",
	NormalDraw:    "Normal draw",
	Draft:         "Draft",
	Trading:       "Free trading",
	Auction:       "Auction",
	Match:         "Match play",
	Finished:      "Season finished",
}

// Label returns the display label for p. An identifier the client does not
// know yet is returned verbatim, so phases introduced server-side still
// render instead of failing.
func Label(p Phase) string {
	if l, ok := labels[p]; ok {
		return l
	}
	return string(p)
}

// All returns the known phases in season order.
func All() []Phase {
	return []Phase{
		Signup,
		GuaranteeDraw,
		NormalDraw,
		Draft,
		Trading,
		Auction,
		Match,
		Finished,
	}
}
