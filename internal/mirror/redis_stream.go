package mirror

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/hmktraders999-droid/AivoraHospitality/internal/leads"
)

// RedisStreamMirror appends each lead to a Redis stream for downstream consumers.
type RedisStreamMirror struct {
	client redis.Cmdable
	stream string
}

// NewRedisStreamMirror returns nil when either the client or the stream name is missing.
func NewRedisStreamMirror(client redis.Cmdable, stream string) *RedisStreamMirror {
	stream = strings.TrimSpace(stream)
	if client == nil || stream == "" {
		return nil
	}
	return &RedisStreamMirror{client: client, stream: stream}
}

func (m *RedisStreamMirror) Name() string { return "redis_stream" }

// Write issues one XADD. Absent optional fields are written as empty strings.
func (m *RedisStreamMirror) Write(ctx context.Context, lead *leads.Lead) error {
	if lead == nil {
		return errors.New("mirror: lead required")
	}
	err := m.client.XAdd(ctx, &redis.XAddArgs{
		Stream: m.stream,
		Values: map[string]any{
			"name":           lead.Name,
			"email":          lead.Email,
			"business_name":  deref(lead.BusinessName),
			"contact_number": deref(lead.ContactNumber),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("mirror: xadd %s: %w", m.stream, err)
	}
	return nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
