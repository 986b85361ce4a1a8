package e2e

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapport-chat/rapport/ent"
	entmessage "github.com/rapport-chat/rapport/ent/message"
	"github.com/rapport-chat/rapport/pkg/cleanup"
	"github.com/rapport-chat/rapport/pkg/config"
	testdb "github.com/rapport-chat/rapport/test/database"
)

func TestRetentionPruning(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := client.Bot.Create().
		SetID("b1").SetName("b").
		SetBasicInfo(map[string]interface{}{"name": "b"}).
		SetBigFive(map[string]float64{"openness": 0}).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.User.Create().
		SetID("u1").SetBotID("b1").SetExternalID("e1").
		Save(ctx)
	require.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 15; i++ {
		_, err = client.Message.Create().
			SetID(uuid.New().String()).
			SetUserID("u1").
			SetRole(entmessage.RoleUser).
			SetContent(fmt.Sprintf("m%02d", i)).
			SetCreatedAt(base.Add(time.Duration(i) * time.Minute)).
			Save(ctx)
		require.NoError(t, err)
	}

	old := time.Now().Add(-48 * time.Hour)
	oldTr, err := client.Transcript.Create().
		SetID(uuid.New().String()).SetUserID("u1").
		SetTurnIndex(1).SetUserText("旧").SetBotText("旧").
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.DerivedNote.Create().
		SetID(uuid.New().String()).SetUserID("u1").
		SetTranscriptID(oldTr.ID).SetContent("随转写一起清").
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.DerivedNote.Create().
		SetID(uuid.New().String()).SetUserID("u1").
		SetContent("无主旧笔记").
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Transcript.Create().
		SetID(uuid.New().String()).SetUserID("u1").
		SetTurnIndex(2).SetUserText("新").SetBotText("新").
		Save(ctx)
	require.NoError(t, err)

	svc := cleanup.NewService(&config.RetentionConfig{
		MessageWindow:    10,
		TranscriptMaxAge: 24 * time.Hour,
	}, client.Client, logger)

	pruned, err := svc.PruneMessages(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, pruned)

	remaining, err := client.Message.Query().
		Order(ent.Asc(entmessage.FieldCreatedAt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 10)
	assert.Equal(t, "m05", remaining[0].Content, "the newest window survives")

	// The old transcript goes, its note cascades, and the orphan note is
	// swept in the same pass.
	pruned, err = svc.PruneTranscripts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, pruned)

	trs, err := client.Transcript.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, trs, 1)
	assert.Equal(t, "新", trs[0].UserText)
	noteCount, err := client.DerivedNote.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, noteCount)
}
