package mailer

import (
	"context"

	"github.com/aihoply/auth-email-otp/internal/pkg/instrument"
	"github.com/aihoply/auth-email-otp/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

type Mailer struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Mailer {
	return &Mailer{client: client, ins: ins}
}

// SendCode emails a one-time code to the given address.
func (m *Mailer) SendCode(ctx context.Context, email, code string) error {
	ctx, span := m.ins.Tracer("auth.outbound.mailer").Start(ctx, "SendCode")
	defer span.End()

	msg := mail.Message{
		To:       []string{email},
		Subject:  "Your OTP Code",
		TextBody: "Your OTP code is " + code,
	}

	if err := m.client.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
