package api

import (
	"time"

	"github.com/rapport-chat/rapport/pkg/models"
)

// SegmentResponse is one delivery bubble in a turn response.
type SegmentResponse struct {
	Content      string  `json:"content"`
	DelaySeconds float64 `json:"delay_seconds"`
	Action       string  `json:"action,omitempty"`
}

// TurnResponse is the body of a resolved turn. Superseded turns carry only
// the status; the merged successor turn answers for both messages.
type TurnResponse struct {
	Status            models.TurnStatus  `json:"status"`
	ClientTurnID      string             `json:"client_turn_id,omitempty"`
	Segments          []SegmentResponse  `json:"segments,omitempty"`
	MacroDelaySeconds float64            `json:"macro_delay_seconds,omitempty"`
	UserCreatedAt     *time.Time         `json:"user_created_at,omitempty"`
	AICreatedAt       *time.Time         `json:"ai_created_at,omitempty"`
	Errors            []models.TurnError `json:"errors,omitempty"`
}

func toTurnResponse(res models.TurnResult, clientTurnID string) TurnResponse {
	out := TurnResponse{
		Status:            res.Status,
		ClientTurnID:      clientTurnID,
		MacroDelaySeconds: res.MacroDelaySeconds,
		Errors:            res.Errors,
	}
	if !res.UserCreatedAt.IsZero() {
		t := res.UserCreatedAt
		out.UserCreatedAt = &t
	}
	if !res.AICreatedAt.IsZero() {
		t := res.AICreatedAt
		out.AICreatedAt = &t
	}
	for _, seg := range res.Segments {
		out.Segments = append(out.Segments, SegmentResponse{
			Content:      seg.Content,
			DelaySeconds: seg.DelaySeconds,
			Action:       string(seg.Action),
		})
	}
	return out
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
