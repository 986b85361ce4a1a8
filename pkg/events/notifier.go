package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"
)

// notifyLimit stays under PostgreSQL's 8000-byte NOTIFY payload cap.
const notifyLimit = 7900

const notifyTimeout = 2 * time.Second

// PGNotifier broadcasts events via pg_notify so listeners on other pods see
// the same stream. Transient only; failures are logged and dropped.
type PGNotifier struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPGNotifier creates a PGNotifier on an open database handle.
func NewPGNotifier(db *sql.DB, logger *slog.Logger) *PGNotifier {
	return &PGNotifier{db: db, logger: logger.With("component", "pg_notifier")}
}

// Notify broadcasts one event to its session channel. Oversized payloads are
// reduced to a routing envelope; the full content is in the messages table.
func (n *PGNotifier) Notify(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		n.logger.Warn("failed to marshal event", "type", ev.Type, "error", err)
		return
	}
	if len(payload) > notifyLimit {
		payload, err = json.Marshal(Event{
			Type:       ev.Type,
			TurnID:     ev.TurnID,
			BotID:      ev.BotID,
			ExternalID: ev.ExternalID,
			At:         ev.At,
			Seq:        ev.Seq,
		})
		if err != nil {
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	channel := SessionChannel(ev.BotID, ev.ExternalID)
	if _, err := n.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, string(payload)); err != nil {
		n.logger.Warn("pg_notify failed", "channel", channel, "type", ev.Type, "error", err)
	}
}
