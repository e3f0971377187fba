package tasks

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
)

// Mailer delivers transactional email. Delivery is fire-and-forget from the
// caller's perspective; failures are logged, never propagated into the
// primary operation's result.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// AsynqMailer enqueues messages for background SMTP delivery.
type AsynqMailer struct {
	Client *asynq.Client
	From   string
}

// Send enqueues the message. The asynq worker retries delivery on failure.
func (m *AsynqMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	task, err := NewEmailDeliveryTask(EmailPayload{
		From:     m.From,
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	})
	if err != nil {
		return fmt.Errorf("failed to build email task: %w", err)
	}
	if _, err := m.Client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}
	return nil
}
