// Package services is the persistence layer between the turn pipeline and
// Ent. StateService owns the load/persist cycle of a turn, MemoryService the
// retrieval reads. All mutations of a turn land in one transaction at
// Persist; everything before that is read-only.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rapport-chat/rapport/ent"
	entbot "github.com/rapport-chat/rapport/ent/bot"
	"github.com/rapport-chat/rapport/ent/derivednote"
	"github.com/rapport-chat/rapport/ent/message"
	"github.com/rapport-chat/rapport/ent/transcript"
	entuser "github.com/rapport-chat/rapport/ent/user"
	"github.com/rapport-chat/rapport/pkg/config"
	"github.com/rapport-chat/rapport/pkg/memory"
	"github.com/rapport-chat/rapport/pkg/models"
)

// persistRetries is how many times a failed commit is retried before the
// turn surfaces a persist error.
const persistRetries = 2

// persistBackoff returns the wait before retry n (0-based).
func persistBackoff(n int) time.Duration {
	return time.Duration(n+1) * 150 * time.Millisecond
}

// StateService loads and commits turn state.
type StateService struct {
	client *ent.Client
	cfg    *config.Config
	logger *slog.Logger
}

// NewStateService creates a StateService.
func NewStateService(client *ent.Client, cfg *config.Config, logger *slog.Logger) *StateService {
	return &StateService{client: client, cfg: cfg, logger: logger.With("component", "state_service")}
}

// Load resolves (botID, externalID) into a TurnState. The bot must exist;
// the user row is created lazily on first contact.
func (s *StateService) Load(ctx context.Context, botID, externalID string) (*models.TurnState, error) {
	if botID == "" {
		return nil, NewValidationError("bot_id", "required")
	}
	if externalID == "" {
		return nil, NewValidationError("external_id", "required")
	}

	bot, err := s.client.Bot.Get(ctx, botID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("bot %s: %w", botID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load bot: %w", err)
	}

	usr, err := s.client.User.Query().
		Where(entuser.BotIDEQ(botID), entuser.ExternalIDEQ(externalID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		usr, err = s.createUser(ctx, botID, externalID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	state := &models.TurnState{
		BotID:      botID,
		UserID:     usr.ID,
		ExternalID: externalID,
	}
	if err := s.decodeBot(bot, state); err != nil {
		return nil, fmt.Errorf("failed to decode bot row: %w", err)
	}
	if err := s.decodeUser(usr, state); err != nil {
		return nil, fmt.Errorf("failed to decode user row: %w", err)
	}
	if err := s.loadBuffer(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to load chat buffer: %w", err)
	}
	return state, nil
}

func (s *StateService) createUser(ctx context.Context, botID, externalID string) (*ent.User, error) {
	created, err := s.client.User.Create().
		SetID(uuid.New().String()).
		SetBotID(botID).
		SetExternalID(externalID).
		SetCurrentStage(entuser.CurrentStageInitiating).
		Save(ctx)
	if ent.IsConstraintError(err) {
		// Two first messages raced; the loser reads the winner's row.
		return s.client.User.Query().
			Where(entuser.BotIDEQ(botID), entuser.ExternalIDEQ(externalID)).
			Only(ctx)
	}
	return created, err
}

func (s *StateService) decodeBot(bot *ent.Bot, state *models.TurnState) error {
	if err := fromJSON(bot.BasicInfo, &state.BotBasicInfo); err != nil {
		return err
	}
	if err := fromJSON(bot.BigFive, &state.BotBigFive); err != nil {
		return err
	}
	state.BotBigFive.Clamp()
	if bot.Persona != nil {
		if err := fromJSON(bot.Persona, &state.BotPersona); err != nil {
			return err
		}
	}
	if bot.MoodState != nil {
		if err := fromJSON(bot.MoodState, &state.Mood); err != nil {
			return err
		}
		state.Mood.Clamp()
	}
	if bot.UrgentTasks != nil {
		if err := fromJSON(bot.UrgentTasks, &state.UrgentTasks); err != nil {
			return err
		}
	}
	return nil
}

func (s *StateService) decodeUser(usr *ent.User, state *models.TurnState) error {
	if usr.BasicInfo != nil {
		if err := fromJSON(usr.BasicInfo, &state.UserBasicInfo); err != nil {
			return err
		}
	}
	state.CurrentStage = models.RelationshipStage(usr.CurrentStage)
	if !state.CurrentStage.IsValid() {
		state.CurrentStage = models.StageInitiating
	}

	state.Relationship = models.DefaultRelationship()
	for dim, v := range usr.Dimensions {
		state.Relationship.SetDimension(dim, v)
	}
	state.Relationship.Clamp()

	state.UserInferredProfile = usr.InferredProfile
	if usr.SptInfo != nil {
		if err := fromJSON(usr.SptInfo, &state.SPT); err != nil {
			return err
		}
	}
	state.ConversationSummary = usr.ConversationSummary
	state.Tasks = decodeTaskList(usr.TaskList)
	if usr.UrgentTasks != nil {
		var userUrgent []models.Task
		if err := fromJSON(usr.UrgentTasks, &userUrgent); err != nil {
			return err
		}
		state.UrgentTasks = append(state.UrgentTasks, userUrgent...)
	}
	return nil
}

// loadBuffer fills the chat buffer with the newest window of messages and
// the turn index with the latest transcript position.
func (s *StateService) loadBuffer(ctx context.Context, state *models.TurnState) error {
	window := s.cfg.Memory.BufferWindow
	msgs, err := s.client.Message.Query().
		Where(message.UserIDEQ(state.UserID)).
		Order(ent.Desc(message.FieldCreatedAt)).
		Limit(window).
		All(ctx)
	if err != nil {
		return err
	}
	buf := make([]models.ChatMessage, 0, len(msgs))
	for i := len(msgs) - 1; i >= 0; i-- {
		m := msgs[i]
		buf = append(buf, models.ChatMessage{
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	state.ChatBuffer = buf

	idx, err := s.latestTurnIndex(ctx, state.UserID)
	if err != nil {
		return err
	}
	state.TurnIndex = idx
	return nil
}

func (s *StateService) latestTurnIndex(ctx context.Context, userID string) (int, error) {
	latest, err := s.client.Transcript.Query().
		Where(transcript.UserIDEQ(userID)).
		Order(ent.Desc(transcript.FieldTurnIndex)).
		First(ctx)
	if ent.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return latest.TurnIndex, nil
}

// Persist commits the finished turn in one transaction, retrying transient
// failures. The bot mood row is taken under a row lock because it is shared
// across every user of the bot.
func (s *StateService) Persist(ctx context.Context, state *models.TurnState, ext memory.Extraction) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = s.persistOnce(ctx, state, ext)
		if err == nil {
			return nil
		}
		if attempt == persistRetries || ctx.Err() != nil {
			break
		}
		s.logger.Warn("persist attempt failed, retrying",
			"turn_id", state.TurnID, "attempt", attempt+1, "error", err)
		select {
		case <-time.After(persistBackoff(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("persist failed after %d attempts: %w", persistRetries+1, err)
}

func (s *StateService) persistOnce(ctx context.Context, state *models.TurnState, ext memory.Extraction) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to open transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = s.persistBot(ctx, tx, state); err != nil {
		return err
	}
	if err = s.persistUser(ctx, tx, state); err != nil {
		return err
	}
	if err = s.persistMessages(ctx, tx, state); err != nil {
		return err
	}
	if err = s.persistTranscript(ctx, tx, state, ext); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit turn: %w", err)
	}
	return nil
}

// persistBot writes the shared mood row under FOR UPDATE and clears the
// operator urgent tasks the turn consumed.
func (s *StateService) persistBot(ctx context.Context, tx *ent.Tx, state *models.TurnState) error {
	bot, err := tx.Bot.Query().
		Where(entbot.IDEQ(state.BotID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock bot row: %w", err)
	}
	_, err = bot.Update().
		SetMoodState(toJSONMap(state.Mood)).
		SetUrgentTasks([]interface{}{}).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update bot row: %w", err)
	}
	return nil
}

func (s *StateService) persistUser(ctx context.Context, tx *ent.Tx, state *models.TurnState) error {
	dims := make(map[string]float64, len(models.RelationshipDimensions))
	for _, dim := range models.RelationshipDimensions {
		v, _ := state.Relationship.Dimension(dim)
		dims[dim] = v
	}

	_, err := tx.User.UpdateOneID(state.UserID).
		SetBasicInfo(toJSONMap(state.UserBasicInfo)).
		SetCurrentStage(entuser.CurrentStage(state.CurrentStage)).
		SetDimensions(dims).
		SetInferredProfile(state.UserInferredProfile).
		SetSptInfo(toJSONMap(state.SPT)).
		SetConversationSummary(state.ConversationSummary).
		SetTaskList(toJSONSlice(taskListDoc(state.Tasks))).
		SetUrgentTasks([]interface{}{}).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update user row: %w", err)
	}
	return nil
}

// decodeTaskList reverses taskListDoc. Entries with an unknown or missing
// pool land in the backlog rather than being dropped.
func decodeTaskList(docs []interface{}) models.TaskList {
	var list models.TaskList
	for _, doc := range docs {
		m, ok := doc.(map[string]interface{})
		if !ok {
			continue
		}
		var task models.Task
		if err := fromJSON(m, &task); err != nil || task.Description == "" {
			continue
		}
		if pool, _ := m["pool"].(string); pool == "session" {
			list.Session = append(list.Session, task)
		} else {
			list.Backlog = append(list.Backlog, task)
		}
	}
	return list
}

// taskListDoc flattens the task pools into the stored slice form:
// [{"pool":"session",...},{"pool":"backlog",...}].
func taskListDoc(list models.TaskList) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(list.Session)+len(list.Backlog))
	for _, t := range list.Session {
		doc := toJSONMap(t)
		doc["pool"] = "session"
		out = append(out, doc)
	}
	for _, t := range list.Backlog {
		doc := toJSONMap(t)
		doc["pool"] = "backlog"
		out = append(out, doc)
	}
	return out
}

func (s *StateService) persistMessages(ctx context.Context, tx *ent.Tx, state *models.TurnState) error {
	_, err := tx.Message.Create().
		SetID(uuid.New().String()).
		SetUserID(state.UserID).
		SetRole(message.RoleUser).
		SetContent(state.UserInput).
		SetMetadata(map[string]interface{}{"turn_id": state.TurnID}).
		SetCreatedAt(state.ReceivedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to write user message: %w", err)
	}

	if state.FinalResponse == "" {
		return nil
	}
	meta := map[string]interface{}{
		"turn_id":  state.TurnID,
		"segments": len(state.FinalSegments),
	}
	if state.IsMacroDelay {
		meta["macro_delay_seconds"] = state.MacroDelaySeconds
	}
	if len(state.Errors) > 0 {
		meta["errors"] = toJSONSlice(state.Errors)
	}
	_, err = tx.Message.Create().
		SetID(uuid.New().String()).
		SetUserID(state.UserID).
		SetRole(message.RoleAi).
		SetContent(state.FinalResponse).
		SetMetadata(meta).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to write ai message: %w", err)
	}
	return nil
}

func (s *StateService) persistTranscript(ctx context.Context, tx *ent.Tx, state *models.TurnState, ext memory.Extraction) error {
	transcriptID := uuid.New().String()
	_, err := tx.Transcript.Create().
		SetID(transcriptID).
		SetUserID(state.UserID).
		SetTurnIndex(state.TurnIndex).
		SetUserText(state.UserInput).
		SetBotText(state.FinalResponse).
		SetEntities(ext.TranscriptMeta.Entities).
		SetTopic(ext.TranscriptMeta.Topic).
		SetImportance(ext.TranscriptMeta.Importance).
		SetShortContext(ext.TranscriptMeta.ShortContext).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}

	for _, note := range ext.Notes {
		_, err = tx.DerivedNote.Create().
			SetID(uuid.New().String()).
			SetUserID(state.UserID).
			SetTranscriptID(transcriptID).
			SetNoteType(derivednote.NoteType(note.NoteType)).
			SetContent(note.Content).
			SetImportance(note.Importance).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to write derived note: %w", err)
		}
	}
	return nil
}
