package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/aihoply/auth-email-otp/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const keyPrefix = "auth:revoked:"

// Cache stores positive revocation marks in Redis. Entries carry the
// credential lifetime as TTL, once a credential has expired on its own
// there is nothing left to revoke.
type Cache struct {
	client *redis.Client
	ins    instrument.Instrumentation
}

func NewCache(client *redis.Client, ins instrument.Instrumentation) *Cache {
	return &Cache{client: client, ins: ins}
}

func (c *Cache) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.ins.Tracer("auth.outbound.cache").Start(ctx, name)
}

func (c *Cache) endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (c *Cache) IsRevoked(ctx context.Context, credential string) (_ bool, err error) {
	ctx, span := c.startSpan(ctx, "IsRevoked")
	defer func() { c.endSpan(span, err) }()

	if err = c.client.Get(ctx, keyPrefix+credential).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			err = nil
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (c *Cache) MarkRevoked(ctx context.Context, credential string, ttl time.Duration) (err error) {
	ctx, span := c.startSpan(ctx, "MarkRevoked")
	defer func() { c.endSpan(span, err) }()

	err = c.client.Set(ctx, keyPrefix+credential, "1", ttl).Err()
	return err
}
