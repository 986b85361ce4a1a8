package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entmessage "github.com/rapport-chat/rapport/ent/message"
	"github.com/rapport-chat/rapport/test/util"
)

// newTestClient builds a Client over the shared test database with the GIN
// indexes in place.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, CreateGINIndexes(ctx, drv))

	return NewClientFromEnt(entClient, db)
}

func TestClientHealth(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.Less(t, health.ResponseTime, int64(1000), "local ping reported in milliseconds")
}

func TestFullTextSearchOverMessages(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Bot.Create().
		SetID("b1").SetName("小雨").
		SetBasicInfo(map[string]interface{}{"name": "小雨"}).
		SetBigFive(map[string]float64{"openness": 0.5}).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.User.Create().
		SetID("u1").SetBotID("b1").SetExternalID("e1").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Message.Create().
		SetID("m1").SetUserID("u1").SetRole(entmessage.RoleUser).
		SetContent("晚上去吃 hotpot 火锅").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Message.Create().
		SetID("m2").SetUserID("u1").SetRole(entmessage.RoleAi).
		SetContent("明天记得带伞").
		Save(ctx)
	require.NoError(t, err)

	// The 'simple' tsvector configuration keeps latin tokens searchable in
	// mixed CJK/English content.
	rows, err := client.DB().QueryContext(ctx,
		`SELECT message_id FROM messages
		WHERE to_tsvector('simple', content) @@ plainto_tsquery('simple', $1)`,
		"hotpot")
	require.NoError(t, err)
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"m1"}, ids)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	for _, key := range envKeys {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "rapport", cfg.User)
	assert.Equal(t, "rapport", cfg.Database)
	assert.Equal(t, "disable", cfg.SSLMode)
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)

	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_HOST", "db.internal")
	cfg, err = LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 5433, cfg.Port)

	t.Setenv("DB_PORT", "not-a-port")
	_, err = LoadConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid DB_PORT")
}
