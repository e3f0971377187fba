package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"strings"

	"bookday/config"

	"github.com/hibiken/asynq"
)

const TypeEmailDeliver = "email:deliver"

// EmailPayload is the queued representation of one outbound message.
type EmailPayload struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"htmlBody"`
}

// NewEmailDeliveryTask builds an asynq task carrying the message.
func NewEmailDeliveryTask(payload EmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeEmailDeliver, b), nil
}

// HandleEmailDeliveryTask delivers a queued message over SMTP. There is no
// mail client library in use; the message is assembled by hand.
func HandleEmailDeliveryTask(ctx context.Context, t *asynq.Task) error {
	var payload EmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to decode email payload: %w", err)
	}

	var msg strings.Builder
	msg.WriteString("From: " + payload.From + "\r\n")
	msg.WriteString("To: " + payload.To + "\r\n")
	msg.WriteString("Subject: " + payload.Subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(payload.HTMLBody)

	cfg := config.AppConfig
	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}
	if err := smtp.SendMail(addr, auth, payload.From, []string{payload.To}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", payload.To, err)
	}
	return nil
}
