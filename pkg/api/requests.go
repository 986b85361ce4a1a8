package api

// TurnRequest is the body of POST /api/v1/turn. UserID is the caller-side
// identity for the conversation; it maps to the user's external id, with the
// row created lazily on first contact. ClientTurnID is an optional caller
// correlation id echoed back in the response.
type TurnRequest struct {
	BotID        string `json:"bot_id" binding:"required"`
	UserID       string `json:"user_id" binding:"required"`
	Message      string `json:"message" binding:"required"`
	ClientTurnID string `json:"client_turn_id"`
}
