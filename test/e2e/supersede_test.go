package e2e

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enttranscript "github.com/rapport-chat/rapport/ent/transcript"
	entuser "github.com/rapport-chat/rapport/ent/user"
	"github.com/rapport-chat/rapport/pkg/invoker"
	"github.com/rapport-chat/rapport/pkg/models"
)

// blockingInvoker parks the first detection call until its context is
// canceled, pinning the turn in an interruptible stage so a follow-up
// message supersedes it.
type blockingInvoker struct {
	inner   *scriptedInvoker
	entered chan struct{}
	once    sync.Once
}

func (b *blockingInvoker) Invoke(ctx context.Context, role invoker.Role, p invoker.Prompt, schema json.RawMessage) (json.RawMessage, error) {
	if role == invoker.RoleMain && strings.Contains(p.System, "结构化判断") {
		first := false
		b.once.Do(func() { first = true })
		if first {
			close(b.entered)
			<-ctx.Done()
			return nil, ctx.Err()
		}
	}
	return b.inner.Invoke(ctx, role, p, schema)
}

func TestFollowUpSupersedesInFlightTurn(t *testing.T) {
	inv := &blockingInvoker{inner: happyInvoker(), entered: make(chan struct{})}
	a := newApp(t, inv)
	ctx := context.Background()

	type outcome struct {
		res models.TurnResult
		err error
	}
	firstCh := make(chan outcome, 1)
	go func() {
		res, err := a.sessions.Submit(ctx, testBotID, testExternalID, "第一句")
		firstCh <- outcome{res, err}
	}()

	select {
	case <-inv.entered:
	case <-time.After(10 * time.Second):
		t.Fatal("first turn never reached detection")
	}

	res2, err := a.sessions.Submit(ctx, testBotID, testExternalID, "第二句")
	require.NoError(t, err)
	require.Equal(t, models.TurnStatusSuccess, res2.Status)
	require.NotEmpty(t, res2.Segments)

	var first outcome
	select {
	case first = <-firstCh:
	case <-time.After(10 * time.Second):
		t.Fatal("first submission never resolved")
	}
	require.NoError(t, first.err)
	assert.Equal(t, models.TurnStatusSuperseded, first.res.Status)
	assert.Empty(t, first.res.Segments)

	// Only the merged turn reached the database.
	usr, err := a.client.User.Query().
		Where(entuser.BotIDEQ(testBotID), entuser.ExternalIDEQ(testExternalID)).
		Only(ctx)
	require.NoError(t, err)
	tr, err := a.client.Transcript.Query().
		Where(enttranscript.UserIDEQ(usr.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "第一句\n第二句", tr.UserText)
	assert.Equal(t, 1, tr.TurnIndex)
}
