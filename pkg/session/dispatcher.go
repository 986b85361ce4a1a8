package session

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/rapport-chat/rapport/pkg/config"
	"github.com/rapport-chat/rapport/pkg/events"
	"github.com/rapport-chat/rapport/pkg/graph"
	"github.com/rapport-chat/rapport/pkg/models"
)

// Runner executes one turn. Satisfied by *graph.Executor; tests plug fakes.
type Runner interface {
	Run(ctx context.Context, in graph.Input) (*models.TurnState, error)
}

// Dispatcher owns one (bot, user) conversation. All turns for the pair run
// on its goroutine, strictly one at a time.
type Dispatcher struct {
	botID      string
	externalID string
	exec       Runner
	bus        *events.Bus
	cfg        *config.SessionConfig
	logger     *slog.Logger

	inbox  chan *submission
	stopCh chan struct{}
	done   chan struct{}

	// emitCancel stops the previous turn's segment emitter.
	emitCancel context.CancelFunc

	// delayUnit scales segment delays; tests shrink it.
	delayUnit time.Duration
	now       func() time.Time
}

type turnOutcome struct {
	state *models.TurnState
	err   error
}

func newDispatcher(botID, externalID string, exec Runner, bus *events.Bus, cfg *config.SessionConfig, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		botID:      botID,
		externalID: externalID,
		exec:       exec,
		bus:        bus,
		cfg:        cfg,
		logger:     logger.With("component", "dispatcher", "bot_id", botID, "external_id", externalID),
		inbox:      make(chan *submission, cfg.QueueDepth),
		stopCh:     make(chan struct{}),
		done:       make(chan struct{}),
		delayUnit:  time.Second,
		now:        time.Now,
	}
	go d.loop()
	return d
}

func (d *Dispatcher) loop() {
	defer close(d.done)
	defer d.stopEmitter()

	var queue []*submission
	for {
		var sub *submission
		if len(queue) > 0 {
			sub = queue[0]
			queue = queue[1:]
		} else {
			select {
			case sub = <-d.inbox:
			case <-d.stopCh:
				d.rejectPending(queue)
				return
			}
		}
		queue = d.runTurn(sub, queue)

		select {
		case <-d.stopCh:
			d.rejectPending(queue)
			return
		default:
		}
	}
}

// runTurn executes one turn, restarting with merged input whenever a new
// message lands while the turn is still interruptible. Returns the pending
// queue, possibly grown by messages that arrived too late to merge.
func (d *Dispatcher) runTurn(sub *submission, queue []*submission) []*submission {
	d.stopEmitter()

	parentTurnID := ""
	for {
		turnID := uuid.New().String()
		var stage atomic.Int32

		ctx, cancel := context.WithTimeout(context.Background(), d.cfg.TurnTimeout)
		in := graph.Input{
			TurnID:       turnID,
			ParentTurnID: parentTurnID,
			BotID:        d.botID,
			ExternalID:   d.externalID,
			UserInput:    sub.input,
			ReceivedAt:   sub.received,
			OnStage:      func(s graph.Stage) { stage.Store(int32(s)) },
		}
		d.bus.Publish(events.Event{
			Type: events.EventTypeTurnStarted, TurnID: turnID,
			BotID: d.botID, ExternalID: d.externalID, At: d.now(),
		})

		resCh := make(chan turnOutcome, 1)
		go func() {
			state, err := d.exec.Run(ctx, in)
			resCh <- turnOutcome{state: state, err: err}
		}()

		restarted := false
		for !restarted {
			select {
			case out := <-resCh:
				cancel()
				d.finish(sub, turnID, out)
				return queue

			case next := <-d.inbox:
				if !graph.Stage(stage.Load()).Interruptible() {
					queue = d.enqueue(queue, next)
					continue
				}
				// Merge and restart: throw the in-flight turn away and run
				// one turn over both inputs.
				cancel()
				<-resCh
				sub.resolve(models.TurnResult{Status: models.TurnStatusSuperseded})
				d.bus.Publish(events.Event{
					Type: events.EventTypeTurnSuperseded, TurnID: turnID,
					BotID: d.botID, ExternalID: d.externalID, At: d.now(),
				})
				d.logger.Info("turn superseded", "turn_id", turnID, "stage", graph.Stage(stage.Load()).String())

				merged := &submission{input: sub.input, received: sub.received}
				merged.absorb(next)
				sub = merged
				parentTurnID = turnID
				restarted = true

			case <-d.stopCh:
				// Let the in-flight turn run out; TurnTimeout bounds the wait.
				out := <-resCh
				cancel()
				d.finish(sub, turnID, out)
				return queue
			}
		}
	}
}

// enqueue appends within QueueDepth; beyond it the newest queued entry
// absorbs the overflow so no input is ever dropped.
func (d *Dispatcher) enqueue(queue []*submission, next *submission) []*submission {
	if len(queue) >= d.cfg.QueueDepth {
		queue[len(queue)-1].absorb(next)
		return queue
	}
	return append(queue, next)
}

func (d *Dispatcher) finish(sub *submission, turnID string, out turnOutcome) {
	switch {
	case out.err == nil:
		res := models.TurnResult{
			Status:            models.TurnStatusSuccess,
			Segments:          out.state.FinalSegments,
			MacroDelaySeconds: out.state.MacroDelaySeconds,
			UserCreatedAt:     out.state.ReceivedAt,
			Errors:            out.state.Errors,
		}
		if out.state.FinalResponse != "" {
			res.AICreatedAt = d.now()
		}
		sub.resolve(res)
		d.bus.Publish(events.Event{
			Type: events.EventTypeTurnCompleted, TurnID: turnID,
			BotID: d.botID, ExternalID: d.externalID, At: d.now(),
			SegmentCount:      len(out.state.FinalSegments),
			MacroDelaySeconds: out.state.MacroDelaySeconds,
		})
		d.startEmitter(turnID, out.state.FinalSegments)

	case errors.Is(out.err, graph.ErrCanceled):
		// Only the turn deadline cancels here; supersession never reaches
		// finish.
		d.logger.Warn("turn timed out", "turn_id", turnID)
		sub.resolve(models.TurnResult{
			Status: models.TurnStatusError,
			Errors: []models.TurnError{{Kind: models.ErrKindFatal, Detail: "turn deadline exceeded"}},
		})

	default:
		d.logger.Error("turn failed", "turn_id", turnID, "error", out.err)
		errs := []models.TurnError{{Kind: models.ErrKindFatal, Detail: out.err.Error()}}
		if out.state != nil {
			errs = append(out.state.Errors, errs...)
		}
		sub.resolve(models.TurnResult{Status: models.TurnStatusError, Errors: errs})
	}
}

func (d *Dispatcher) rejectPending(queue []*submission) {
	for _, sub := range queue {
		sub.resolve(models.TurnResult{
			Status: models.TurnStatusError,
			Errors: []models.TurnError{{Kind: models.ErrKindFatal, Detail: ErrShuttingDown.Error()}},
		})
	}
	// Anything still in the inbox gets the same answer.
	for {
		select {
		case sub := <-d.inbox:
			sub.resolve(models.TurnResult{
				Status: models.TurnStatusError,
				Errors: []models.TurnError{{Kind: models.ErrKindFatal, Detail: ErrShuttingDown.Error()}},
			})
		default:
			return
		}
	}
}

func (d *Dispatcher) stop() {
	select {
	case <-d.stopCh:
	default:
		close(d.stopCh)
	}
}
