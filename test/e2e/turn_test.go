package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapport-chat/rapport/ent"
	entmessage "github.com/rapport-chat/rapport/ent/message"
	enttranscript "github.com/rapport-chat/rapport/ent/transcript"
	entuser "github.com/rapport-chat/rapport/ent/user"
	"github.com/rapport-chat/rapport/pkg/invoker"
	"github.com/rapport-chat/rapport/pkg/models"
	"github.com/rapport-chat/rapport/pkg/services"
)

func TestTurnRoundTrip(t *testing.T) {
	a := newApp(t, happyInvoker())
	ctx := context.Background()

	res, err := a.sessions.Submit(ctx, testBotID, testExternalID, "你好")
	require.NoError(t, err)
	require.Equal(t, models.TurnStatusSuccess, res.Status)
	require.NotEmpty(t, res.Segments)
	assert.Empty(t, res.Errors)

	// The user row was created lazily on first contact.
	usr, err := a.client.User.Query().
		Where(entuser.BotIDEQ(testBotID), entuser.ExternalIDEQ(testExternalID)).
		Only(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, usr.Dimensions, "evolved relationship dimensions are stored")
	assert.NotEmpty(t, usr.ConversationSummary)

	// One user message and one ai message.
	msgs, err := a.client.Message.Query().
		Where(entmessage.UserIDEQ(usr.ID)).
		Order(ent.Asc(entmessage.FieldCreatedAt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, entmessage.RoleUser, msgs[0].Role)
	assert.Equal(t, "你好", msgs[0].Content)
	assert.Equal(t, entmessage.RoleAi, msgs[1].Role)
	assert.NotEmpty(t, msgs[1].Content)

	// One transcript at index 1, plus its derived note.
	tr, err := a.client.Transcript.Query().
		Where(enttranscript.UserIDEQ(usr.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.TurnIndex)
	assert.Equal(t, "你好", tr.UserText)
	assert.Equal(t, "寒暄", tr.Topic)
	notes, err := a.client.DerivedNote.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "用户刚下班", notes[0].Content)
}

func TestSecondTurnSeesFirst(t *testing.T) {
	a := newApp(t, happyInvoker())
	ctx := context.Background()

	_, err := a.sessions.Submit(ctx, testBotID, testExternalID, "你好")
	require.NoError(t, err)
	res, err := a.sessions.Submit(ctx, testBotID, testExternalID, "在忙吗")
	require.NoError(t, err)
	require.Equal(t, models.TurnStatusSuccess, res.Status)

	usr, err := a.client.User.Query().
		Where(entuser.BotIDEQ(testBotID), entuser.ExternalIDEQ(testExternalID)).
		Only(ctx)
	require.NoError(t, err)

	// The transcript index keeps counting from where turn one left off.
	indexes, err := a.client.Transcript.Query().
		Where(enttranscript.UserIDEQ(usr.ID)).
		Order(ent.Asc(enttranscript.FieldTurnIndex)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, indexes, 2)
	assert.Equal(t, 1, indexes[0].TurnIndex)
	assert.Equal(t, 2, indexes[1].TurnIndex)

	msgCount, err := a.client.Message.Query().
		Where(entmessage.UserIDEQ(usr.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, msgCount)
}

func TestSecurityPathRoundTrip(t *testing.T) {
	inv := newScripted(func(role invoker.Role, p invoker.Prompt) (json.RawMessage, error) {
		if role != invoker.RoleFast {
			return nil, fmt.Errorf("role %s must not run on the security path", role)
		}
		switch {
		case strings.Contains(p.System, "安全筛查"):
			return json.RawMessage(`{"is_injection_attempt":false,"is_ai_test":true,"is_user_treating_as_assistant":false}`), nil
		case strings.Contains(p.System, "触发了安全标记"):
			return json.RawMessage(`{"strategy":"question_ai","reply":"咦？你怎么突然这么问。"}`), nil
		case strings.Contains(p.System, "对关系的影响"):
			return json.RawMessage(`{"deltas":{"closeness":0,"trust":0,"liking":0,"respect":0,"warmth":0,"power":0}}`), nil
		case strings.Contains(p.System, "transcript_meta"):
			return json.RawMessage(`{"new_summary":"用户试探小雨是不是机器人，小雨带着点疑惑把话题带了回去。","transcript_meta":{"topic":"试探","importance":0.4,"short_context":"AI 试探"},"notes":[]}`), nil
		}
		return nil, fmt.Errorf("unexpected fast prompt: %.40s", p.System)
	})
	a := newApp(t, inv)
	ctx := context.Background()

	res, err := a.sessions.Submit(ctx, testBotID, testExternalID, "你是AI吗")
	require.NoError(t, err)
	require.Equal(t, models.TurnStatusSuccess, res.Status)
	require.Len(t, res.Segments, 1)
	assert.Equal(t, "咦？你怎么突然这么问。", res.Segments[0].Content)
	assert.Equal(t, 0, inv.count(invoker.RoleMain))

	// The deflection still commits like a normal exchange.
	usr, err := a.client.User.Query().
		Where(entuser.BotIDEQ(testBotID), entuser.ExternalIDEQ(testExternalID)).
		Only(ctx)
	require.NoError(t, err)
	ai, err := a.client.Message.Query().
		Where(entmessage.UserIDEQ(usr.ID), entmessage.RoleEQ(entmessage.RoleAi)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "咦？你怎么突然这么问。", ai.Content)
}

func TestLoadUnknownBot(t *testing.T) {
	a := newApp(t, happyInvoker())

	_, err := a.store.Load(context.Background(), "no-such-bot", testExternalID)
	require.ErrorIs(t, err, services.ErrNotFound)
}
