package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rapport-chat/rapport/pkg/config"
	"github.com/rapport-chat/rapport/pkg/events"
	"github.com/rapport-chat/rapport/pkg/models"
)

// Manager routes submissions to per-conversation dispatchers, creating them
// on first contact.
type Manager struct {
	exec   Runner
	bus    *events.Bus
	cfg    *config.Config
	logger *slog.Logger

	mu          sync.Mutex
	dispatchers map[string]*Dispatcher
	stopped     bool
}

// NewManager creates a session manager. Panics on nil dependencies.
func NewManager(exec Runner, bus *events.Bus, cfg *config.Config, logger *slog.Logger) *Manager {
	if exec == nil || bus == nil || cfg == nil {
		panic("session: all manager dependencies are required")
	}
	return &Manager{
		exec:        exec,
		bus:         bus,
		cfg:         cfg,
		logger:      logger.With("component", "session_manager"),
		dispatchers: make(map[string]*Dispatcher),
	}
}

// Submit hands one user message to the conversation's dispatcher and blocks
// until the turn resolves: success with segments, superseded, or error. The
// caller's ctx only bounds the wait; the turn itself runs to completion.
func (m *Manager) Submit(ctx context.Context, botID, externalID, input string) (models.TurnResult, error) {
	if botID == "" || externalID == "" {
		return models.TurnResult{}, fmt.Errorf("bot_id and external_id are required")
	}
	if input == "" {
		return models.TurnResult{}, fmt.Errorf("input is required")
	}

	d, err := m.dispatcher(botID, externalID)
	if err != nil {
		return models.TurnResult{}, err
	}

	res := make(chan models.TurnResult, 1)
	sub := &submission{
		input:    input,
		received: time.Now(),
		waiters:  []chan models.TurnResult{res},
	}

	select {
	case d.inbox <- sub:
	case <-d.stopCh:
		return models.TurnResult{}, ErrShuttingDown
	case <-ctx.Done():
		return models.TurnResult{}, ctx.Err()
	}

	select {
	case r := <-res:
		return r, nil
	case <-ctx.Done():
		return models.TurnResult{}, ctx.Err()
	}
}

func (m *Manager) dispatcher(botID, externalID string) (*Dispatcher, error) {
	key := botID + "/" + externalID

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return nil, ErrShuttingDown
	}
	if d, ok := m.dispatchers[key]; ok {
		return d, nil
	}
	d := newDispatcher(botID, externalID, m.exec, m.bus, m.cfg.Session, m.logger)
	m.dispatchers[key] = d
	m.logger.Debug("dispatcher created", "bot_id", botID, "external_id", externalID)
	return d, nil
}

// ActiveSessions reports how many conversations currently hold a dispatcher.
func (m *Manager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.dispatchers)
}

// Stop refuses new submissions and waits for in-flight turns, bounded by
// GracefulShutdownTimeout. Returns an error if the wait timed out.
func (m *Manager) Stop(ctx context.Context) error {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return nil
	}
	m.stopped = true
	dispatchers := make([]*Dispatcher, 0, len(m.dispatchers))
	for _, d := range m.dispatchers {
		dispatchers = append(dispatchers, d)
	}
	m.mu.Unlock()

	for _, d := range dispatchers {
		d.stop()
	}

	deadline := time.NewTimer(m.cfg.Session.GracefulShutdownTimeout)
	defer deadline.Stop()
	for _, d := range dispatchers {
		select {
		case <-d.done:
		case <-deadline.C:
			return fmt.Errorf("graceful shutdown timed out with turns in flight")
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	m.logger.Info("session manager stopped", "sessions", len(dispatchers))
	return nil
}
