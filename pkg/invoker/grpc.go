package invoker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/rapport-chat/rapport/pkg/config"
	"github.com/rapport-chat/rapport/pkg/models"
	invokerv1 "github.com/rapport-chat/rapport/proto"
)

// GRPCInvoker implements Invoker by calling the invoker service via gRPC.
type GRPCInvoker struct {
	conn   *grpc.ClientConn
	client invokerv1.InvokerServiceClient
	cfg    *config.InvokerConfig
}

// NewGRPCInvoker creates a new gRPC invoker client.
func NewGRPCInvoker(cfg *config.InvokerConfig) (*GRPCInvoker, error) {
	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to invoker service at %s: %w", cfg.Addr, err)
	}
	return &GRPCInvoker{
		conn:   conn,
		client: invokerv1.NewInvokerServiceClient(conn),
		cfg:    cfg,
	}, nil
}

// Close releases the gRPC connection.
func (c *GRPCInvoker) Close() error {
	return c.conn.Close()
}

// Invoke calls the invoker service under the role's deadline. A timed-out
// call is retried once unless the caller's own context already ended, so
// supersession cancellations never retry.
func (c *GRPCInvoker) Invoke(ctx context.Context, role Role, prompt Prompt, schema json.RawMessage) (json.RawMessage, error) {
	content, err := c.invokeOnce(ctx, role, prompt, schema)
	if err != nil && c.cfg.RetryOnTimeout && errors.Is(err, ErrTimeout) && ctx.Err() == nil {
		slog.Warn("Invoker call timed out, retrying once",
			"role", role,
			"turn_id", prompt.TurnID)
		content, err = c.invokeOnce(ctx, role, prompt, schema)
	}
	if err != nil {
		return nil, err
	}

	if schema == nil {
		return json.RawMessage(content), nil
	}

	doc, err := ParseBestEffort(content)
	if err != nil {
		return nil, err
	}
	if c.cfg.ValidateSchema {
		if err := validateAgainstSchema(doc, schema); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (c *GRPCInvoker) invokeOnce(ctx context.Context, role Role, prompt Prompt, schema json.RawMessage) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, c.timeoutFor(role))
	defer cancel()

	start := time.Now()
	resp, err := c.client.Invoke(cctx, toProtoRequest(role, prompt, schema))
	if err != nil {
		return "", classifyError(err, role)
	}

	slog.Debug("Invoker call completed",
		"role", role,
		"turn_id", prompt.TurnID,
		"model", resp.Model,
		"input_tokens", resp.InputTokens,
		"output_tokens", resp.OutputTokens,
		"duration_ms", time.Since(start).Milliseconds())

	return resp.Content, nil
}

func (c *GRPCInvoker) timeoutFor(role Role) time.Duration {
	switch role {
	case RoleFast:
		return c.cfg.Timeouts.Fast
	case RoleJudge:
		return c.cfg.Timeouts.Judge
	case RoleProcessor:
		return c.cfg.Timeouts.Processor
	default:
		return c.cfg.Timeouts.Main
	}
}

// classifyError maps transport errors onto the invoker failure classes.
func classifyError(err error, role Role) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: role %s: %v", ErrTimeout, role, err)
	}
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.DeadlineExceeded:
			return fmt.Errorf("%w: role %s: %v", ErrTimeout, role, err)
		case codes.Unavailable:
			return fmt.Errorf("%w: role %s: %v", ErrUnavailable, role, err)
		}
	}
	return fmt.Errorf("invoker call failed: role %s: %w", role, err)
}

// ────────────────────────────────────────────────────────────
// Proto conversion helpers
// ────────────────────────────────────────────────────────────

func toProtoRequest(role Role, prompt Prompt, schema json.RawMessage) *invokerv1.InvokeRequest {
	return &invokerv1.InvokeRequest{
		Role:       string(role),
		System:     prompt.System,
		Messages:   toProtoMessages(prompt.Messages),
		User:       prompt.User,
		SchemaJson: string(schema),
		TurnId:     prompt.TurnID,
	}
}

func toProtoMessages(msgs []models.ChatMessage) []*invokerv1.ChatMessage {
	out := make([]*invokerv1.ChatMessage, len(msgs))
	for i, m := range msgs {
		out[i] = &invokerv1.ChatMessage{
			Role:    m.Role,
			Content: m.Content,
		}
	}
	return out
}
