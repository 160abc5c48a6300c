package email

import (
	"context"
	"fmt"
	"time"

	"github.com/shandysiswandi/gonotes/internal/pkg/instrument"
	"github.com/shandysiswandi/gonotes/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

type Mail struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Mail {
	return &Mail{client: client, ins: ins}
}

// SendOTP delivers the one-time code to the recipient. The caller decides
// what a delivery failure means for the stored code.
func (m *Mail) SendOTP(ctx context.Context, to, name, code string, ttl time.Duration) error {
	ctx, span := m.ins.Tracer("identity.outbound.email").Start(ctx, "SendOTP")
	defer span.End()

	minutes := int(ttl.Minutes())
	msg := mail.Message{
		To:      []string{to},
		Subject: "Your OTP Code",
		TextBody: fmt.Sprintf(
			"Hello %s,\n\nYour one-time password is %s. It will expire in %d minutes.\n\nIf you did not request this code, you can ignore this email.",
			name, code, minutes,
		),
		HTMLBody: fmt.Sprintf(
			`<p>Hello %s,</p><p>Your one-time password is <strong>%s</strong>. It will expire in %d minutes.</p><p>If you did not request this code, you can ignore this email.</p>`,
			name, code, minutes,
		),
	}

	if err := m.client.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
