// Package cleanup enforces data retention in the background.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rapport-chat/rapport/ent"
	"github.com/rapport-chat/rapport/ent/derivednote"
	"github.com/rapport-chat/rapport/ent/message"
	"github.com/rapport-chat/rapport/ent/transcript"
	entuser "github.com/rapport-chat/rapport/ent/user"
	"github.com/rapport-chat/rapport/pkg/config"
)

// Service periodically enforces retention policies:
//   - Prunes raw messages beyond the per-user message window
//   - Deletes transcripts and derived notes past their age bound
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	cfg    *config.RetentionConfig
	client *ent.Client
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client, logger *slog.Logger) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
		logger: logger.With("component", "cleanup"),
	}
}

// Start launches the background cleanup loop. The first pass runs
// immediately so a long-down deployment catches up on boot.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("cleanup service started",
		"message_window", s.cfg.MessageWindow,
		"transcript_max_age", s.cfg.TranscriptMaxAge,
		"interval", s.cfg.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	if count, err := s.PruneMessages(ctx); err != nil {
		s.logger.Error("retention: message pruning failed", "error", err)
	} else if count > 0 {
		s.logger.Info("retention: pruned messages", "count", count)
	}

	if count, err := s.PruneTranscripts(ctx); err != nil {
		s.logger.Error("retention: transcript pruning failed", "error", err)
	} else if count > 0 {
		s.logger.Info("retention: pruned transcripts", "count", count)
	}
}

// PruneMessages deletes, per user, every message older than the newest
// MessageWindow ones.
func (s *Service) PruneMessages(ctx context.Context) (int, error) {
	window := s.cfg.MessageWindow
	if window <= 0 {
		return 0, nil
	}

	userIDs, err := s.client.User.Query().Select(entuser.FieldID).Strings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users: %w", err)
	}

	total := 0
	for _, userID := range userIDs {
		// The cutoff is the created_at of the oldest message inside the
		// window; everything strictly older goes.
		boundary, err := s.client.Message.Query().
			Where(message.UserIDEQ(userID)).
			Order(ent.Desc(message.FieldCreatedAt)).
			Offset(window - 1).
			Limit(1).
			First(ctx)
		if ent.IsNotFound(err) {
			continue
		}
		if err != nil {
			return total, fmt.Errorf("failed to find window boundary for user %s: %w", userID, err)
		}
		count, err := s.client.Message.Delete().
			Where(
				message.UserIDEQ(userID),
				message.CreatedAtLT(boundary.CreatedAt),
			).
			Exec(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to prune messages for user %s: %w", userID, err)
		}
		total += count
	}
	return total, nil
}

// PruneTranscripts deletes transcripts older than TranscriptMaxAge. Derived
// notes cascade with their transcript; orphan notes past the bound are swept
// separately.
func (s *Service) PruneTranscripts(ctx context.Context) (int, error) {
	if s.cfg.TranscriptMaxAge <= 0 {
		return 0, nil
	}
	cutoff := time.Now().Add(-s.cfg.TranscriptMaxAge)

	count, err := s.client.Transcript.Delete().
		Where(transcript.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune transcripts: %w", err)
	}

	orphans, err := s.client.DerivedNote.Delete().
		Where(
			derivednote.TranscriptIDIsNil(),
			derivednote.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return count, fmt.Errorf("failed to prune orphan notes: %w", err)
	}
	return count + orphans, nil
}
