package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rapport-chat/rapport/ent"
	"github.com/rapport-chat/rapport/ent/derivednote"
	"github.com/rapport-chat/rapport/ent/transcript"
	"github.com/rapport-chat/rapport/pkg/config"
	"github.com/rapport-chat/rapport/pkg/memory"
	"github.com/rapport-chat/rapport/pkg/models"
)

// Candidate scan limits. Ranking is cheap in-process string math, so the
// scan windows can stay generous without a text index.
const (
	noteScanLimit       = 200
	transcriptScanLimit = 100
)

// MemoryService retrieves stored notes and transcript previews ranked
// against the current user input.
type MemoryService struct {
	client *ent.Client
	cfg    *config.Config
	logger *slog.Logger
}

// NewMemoryService creates a MemoryService.
func NewMemoryService(client *ent.Client, cfg *config.Config, logger *slog.Logger) *MemoryService {
	return &MemoryService{client: client, cfg: cfg, logger: logger.With("component", "memory_service")}
}

// Retrieve loads the newest notes and transcripts for the user and ranks
// them against the input. Returns at most topK items, best first.
func (s *MemoryService) Retrieve(ctx context.Context, userID, input string, topK int) ([]models.MemoryItem, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if topK <= 0 {
		topK = s.cfg.Memory.RetrieveTopK
	}

	notes, err := s.client.DerivedNote.Query().
		Where(derivednote.UserIDEQ(userID)).
		Order(ent.Desc(derivednote.FieldCreatedAt)).
		Limit(noteScanLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load derived notes: %w", err)
	}

	transcripts, err := s.client.Transcript.Query().
		Where(transcript.UserIDEQ(userID)).
		Order(ent.Desc(transcript.FieldCreatedAt)).
		Limit(transcriptScanLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcripts: %w", err)
	}

	candidates := make([]memory.Candidate, 0, len(notes)+len(transcripts))
	for i, n := range notes {
		candidates = append(candidates, memory.Candidate{
			Content:    n.Content,
			Importance: n.Importance,
			Recency:    recency(i, len(notes)),
		})
	}
	for i, t := range transcripts {
		content := t.ShortContext
		if content == "" {
			content = t.UserText
		}
		candidates = append(candidates, memory.Candidate{
			Content:    content,
			Entities:   t.Entities,
			Importance: t.Importance,
			Recency:    recency(i, len(transcripts)),
		})
	}

	return memory.Rank(input, candidates, topK), nil
}

// recency maps a newest-first position to (0,1], newest highest.
func recency(pos, total int) float64 {
	if total <= 1 {
		return 1
	}
	return 1 - float64(pos)/float64(total)
}
