// Package events fans turn lifecycle events out to push transports. Delivery
// is in-process fan-out with an optional PostgreSQL NOTIFY bridge so that
// listeners on other pods see the same stream.
//
// Events are transient: nothing here is a source of truth. The persisted
// record of a turn lives in the messages table; a dropped event only costs a
// live-view update.
package events

import "time"

// Event types.
const (
	EventTypeTurnStarted    = "turn.started"
	EventTypeSegment        = "turn.segment"
	EventTypeTurnCompleted  = "turn.completed"
	EventTypeTurnSuperseded = "turn.superseded"
)

// SessionChannel returns the NOTIFY channel for one (bot, user) session.
func SessionChannel(botID, externalID string) string {
	return "session:" + botID + ":" + externalID
}

// Event is one turn lifecycle notification.
type Event struct {
	Type       string    `json:"type"`
	TurnID     string    `json:"turn_id"`
	BotID      string    `json:"bot_id"`
	ExternalID string    `json:"external_id"`
	At         time.Time `json:"at"`

	// Segment payload, set on turn.segment.
	Seq          int     `json:"seq,omitempty"`
	Content      string  `json:"content,omitempty"`
	Action       string  `json:"action,omitempty"`
	DelaySeconds float64 `json:"delay_seconds,omitempty"`

	// Completion payload, set on turn.completed.
	SegmentCount      int     `json:"segment_count,omitempty"`
	MacroDelaySeconds float64 `json:"macro_delay_seconds,omitempty"`
}
