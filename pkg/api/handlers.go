package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rapport-chat/rapport/pkg/database"
	"github.com/rapport-chat/rapport/pkg/events"
	"github.com/rapport-chat/rapport/pkg/models"
	"github.com/rapport-chat/rapport/pkg/version"
)

const healthProbeTimeout = 5 * time.Second

// handleTurn handles POST /api/v1/turn. The call blocks until the turn
// resolves; clients needing timed delivery subscribe to /api/v1/stream and
// replay the segment delays from there.
func (s *Server) handleTurn(c *gin.Context) {
	var req TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	s.logger.Debug("turn submitted",
		"bot_id", req.BotID, "user_id", req.UserID,
		"client_turn_id", req.ClientTurnID,
		"preview", s.masker.Preview(req.Message, 30))

	res, err := s.sessions.Submit(c.Request.Context(), req.BotID, req.UserID, req.Message)
	if err != nil {
		c.JSON(mapSubmitError(err), ErrorResponse{Error: err.Error()})
		return
	}

	switch res.Status {
	case models.TurnStatusSuperseded:
		// A newer message absorbed this one; the merged turn answers both.
		c.JSON(http.StatusConflict, toTurnResponse(res, req.ClientTurnID))
	case models.TurnStatusError:
		c.JSON(http.StatusInternalServerError, toTurnResponse(res, req.ClientTurnID))
	default:
		c.JSON(http.StatusOK, toTurnResponse(res, req.ClientTurnID))
	}
}

// handleHealth handles GET /api/v1/health.
func (s *Server) handleHealth(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": version.Full()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthProbeTimeout)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	body := gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	}
	if s.cfg.Invoker != nil {
		body["invoker"] = gin.H{"addr": s.cfg.Invoker.Addr}
	}
	c.JSON(http.StatusOK, body)
}

// handleStream handles GET /api/v1/stream: a server-sent-events feed of the
// conversation's turn lifecycle, filtered by bot_id and user_id.
func (s *Server) handleStream(c *gin.Context) {
	botID := c.Query("bot_id")
	userID := c.Query("user_id")
	if botID == "" || userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bot_id and user_id are required"})
		return
	}

	ch, cancel := s.bus.Subscribe(64)
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			if ev.BotID != botID || ev.ExternalID != userID {
				return true
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				return true
			}
			c.SSEvent(sseEventName(ev), string(payload))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func sseEventName(ev events.Event) string {
	switch ev.Type {
	case events.EventTypeSegment:
		return "segment"
	case events.EventTypeTurnStarted:
		return "turn_started"
	case events.EventTypeTurnCompleted:
		return "turn_completed"
	case events.EventTypeTurnSuperseded:
		return "turn_superseded"
	default:
		return "event"
	}
}
