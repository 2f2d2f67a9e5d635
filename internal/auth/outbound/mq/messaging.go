package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aihoply/auth-email-otp/internal/auth/usecase"
	"github.com/aihoply/auth-email-otp/internal/pkg/instrument"
	"github.com/aihoply/auth-email-otp/internal/pkg/messaging"
	"github.com/aihoply/auth-email-otp/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Publisher
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishUserRegistered(ctx context.Context, msg usecase.UserRegisteredEvent) error {
	return m.publish(ctx, "PublishUserRegistered", event.UserRegisteredDestination, event.UserRegisteredMessage{
		Email:        msg.Email,
		RegisteredAt: msg.RegisteredAt.Format(time.RFC3339),
	})
}

func (m *Messaging) PublishChallengeIssued(ctx context.Context, msg usecase.ChallengeIssuedEvent) error {
	return m.publish(ctx, "PublishChallengeIssued", event.ChallengeIssuedDestination, event.ChallengeIssuedMessage{
		Email:    msg.Email,
		IssuedAt: msg.IssuedAt.Format(time.RFC3339),
	})
}

func (m *Messaging) PublishCredentialRevoked(ctx context.Context, msg usecase.CredentialRevokedEvent) error {
	return m.publish(ctx, "PublishCredentialRevoked", event.CredentialRevokedDestination, event.CredentialRevokedMessage{
		Subject:   msg.Subject,
		RevokedAt: msg.RevokedAt.Format(time.RFC3339),
	})
}

func (m *Messaging) publish(ctx context.Context, spanName, destination string, payload any) error {
	ctx, span := m.ins.Tracer("auth.outbound.mq").Start(ctx, spanName)
	defer span.End()

	body, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, destination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
