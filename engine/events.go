package engine

import "strings"

// Events flags what happened during one Step, for logging, stats and the replay journal
type Events uint16

const (
	EventServe Events = 1 << iota
	EventPlayerHit
	EventCPUHit
	EventBounce
	EventOut
	EventPointPlayer
	EventPointCPU
	EventReserve
	EventSetPlayer
	EventSetCPU
	EventMatchWon
	EventOverlayClosed
	EventNewMatch
)

var eventNames = []struct {
	ev   Events
	name string
}{
	{EventServe, "serve"},
	{EventPlayerHit, "player_hit"},
	{EventCPUHit, "cpu_hit"},
	{EventBounce, "bounce"},
	{EventOut, "out"},
	{EventPointPlayer, "point_player"},
	{EventPointCPU, "point_cpu"},
	{EventReserve, "reserve"},
	{EventSetPlayer, "set_player"},
	{EventSetCPU, "set_cpu"},
	{EventMatchWon, "match_won"},
	{EventOverlayClosed, "overlay_closed"},
	{EventNewMatch, "new_match"},
}

// Has reports whether every flag in x is set
func (e Events) Has(x Events) bool {
	return e&x == x
}

// String joins the set flag names with '|'
func (e Events) String() string {
	if e == 0 {
		return "none"
	}
	var b strings.Builder
	for _, n := range eventNames {
		if e&n.ev == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(n.name)
	}
	return b.String()
}
