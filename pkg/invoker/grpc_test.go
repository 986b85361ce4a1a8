package invoker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rapport-chat/rapport/pkg/config"
)

func TestRoleIsValid(t *testing.T) {
	for _, role := range []Role{RoleMain, RoleFast, RoleJudge, RoleProcessor} {
		assert.True(t, role.IsValid(), "role %s", role)
	}
	assert.False(t, Role("draft").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestClassifyError(t *testing.T) {
	t.Run("context deadline", func(t *testing.T) {
		err := classifyError(context.DeadlineExceeded, RoleFast)
		assert.ErrorIs(t, err, ErrTimeout)
	})

	t.Run("grpc deadline status", func(t *testing.T) {
		err := classifyError(status.Error(codes.DeadlineExceeded, "deadline exceeded"), RoleJudge)
		assert.ErrorIs(t, err, ErrTimeout)
	})

	t.Run("grpc unavailable", func(t *testing.T) {
		err := classifyError(status.Error(codes.Unavailable, "connection refused"), RoleMain)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		base := errors.New("boom")
		err := classifyError(base, RoleMain)
		assert.ErrorIs(t, err, base)
		assert.NotErrorIs(t, err, ErrTimeout)
	})
}

func TestTimeoutFor(t *testing.T) {
	c := &GRPCInvoker{cfg: &config.InvokerConfig{
		Timeouts: config.RoleTimeouts{
			Main:      60 * time.Second,
			Fast:      20 * time.Second,
			Judge:     20 * time.Second,
			Processor: 30 * time.Second,
		},
	}}

	assert.Equal(t, 60*time.Second, c.timeoutFor(RoleMain))
	assert.Equal(t, 20*time.Second, c.timeoutFor(RoleFast))
	assert.Equal(t, 20*time.Second, c.timeoutFor(RoleJudge))
	assert.Equal(t, 30*time.Second, c.timeoutFor(RoleProcessor))
	assert.Equal(t, 60*time.Second, c.timeoutFor(Role("unknown")))
}
