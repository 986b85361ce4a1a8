package session

import (
	"context"
	"time"

	"github.com/rapport-chat/rapport/pkg/events"
	"github.com/rapport-chat/rapport/pkg/models"
)

// startEmitter delivers the turn's segments as timed events, honoring each
// segment's delay. A newer turn or Stop cancels the remainder; the full
// segment list was already handed to the waiter, so nothing is lost.
func (d *Dispatcher) startEmitter(turnID string, segments []models.Segment) {
	if len(segments) == 0 {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.emitCancel = cancel

	go func() {
		for i, seg := range segments {
			if seg.DelaySeconds > 0 {
				wait := time.Duration(seg.DelaySeconds * float64(d.delayUnit))
				timer := time.NewTimer(wait)
				select {
				case <-timer.C:
				case <-ctx.Done():
					timer.Stop()
					return
				}
			}
			if ctx.Err() != nil {
				return
			}
			d.bus.Publish(events.Event{
				Type:         events.EventTypeSegment,
				TurnID:       turnID,
				BotID:        d.botID,
				ExternalID:   d.externalID,
				At:           d.now(),
				Seq:          i,
				Content:      seg.Content,
				Action:       string(seg.Action),
				DelaySeconds: seg.DelaySeconds,
			})
		}
	}()
}

// stopEmitter discards any segments the previous turn has not emitted yet.
func (d *Dispatcher) stopEmitter() {
	if d.emitCancel != nil {
		d.emitCancel()
		d.emitCancel = nil
	}
}
