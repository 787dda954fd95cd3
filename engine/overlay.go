package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/systems"
)

// MessageKind selects how the renderer draws an overlay message
type MessageKind uint8

const (
	MessageText MessageKind = iota
	MessageStandings
)

// Message is one time-boxed banner
type Message struct {
	Text      string
	Remaining int // ticks left while at the front
	Color     components.Color
	Kind      MessageKind

	// Standings is the snapshot taken when the message was queued; MessageStandings only
	Standings components.Standings
}

// OverlayQueue is a bounded LIFO of banners held by value
// Only the front is inspected and ticked
type OverlayQueue struct {
	items [constants.OverlayCapacity]Message
	n     int
}

// Push places m at the front
// Exceeding capacity is a logic fault: a set win queues two messages and a point at most one
func (q *OverlayQueue) Push(m Message) {
	if q.n == len(q.items) {
		panic(fmt.Sprintf("fault: overlay queue overflow pushing %q", m.Text))
	}
	q.items[q.n] = m
	q.n++
}

// Front returns the message currently shown
func (q OverlayQueue) Front() (Message, bool) {
	if q.n == 0 {
		return Message{}, false
	}
	return q.items[q.n-1], true
}

// Tick decrements the front message and pops it once expired
// Returns true if a message was removed; the newly exposed front is not touched
func (q *OverlayQueue) Tick() bool {
	if q.n == 0 {
		return false
	}
	front := &q.items[q.n-1]
	front.Remaining--
	if front.Remaining > 0 {
		return false
	}
	q.items[q.n-1] = Message{}
	q.n--
	return true
}

func (q OverlayQueue) Len() int { return q.n }

func (q OverlayQueue) Empty() bool { return q.n == 0 }

func outMessage() Message {
	return Message{
		Text:      "Out",
		Remaining: constants.OutDuration,
		Color:     constants.ColorWhite,
	}
}

func setWonMessage(side components.Side) Message {
	return Message{
		Text:      side.String() + " wins",
		Remaining: constants.SetWinDuration,
		Color:     side.Color(),
	}
}

func standingsMessage(s components.Score) Message {
	return Message{
		Text:      "Match Standings",
		Remaining: constants.StandingsDuration,
		Color:     constants.ColorWhite,
		Kind:      MessageStandings,
		Standings: systems.Snapshot(s),
	}
}
