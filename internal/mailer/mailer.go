package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender is the outbound transactional-email collaborator. Send returns
// the provider's identifier for the accepted message.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

type ResendSender struct {
	client *resend.Client
}

func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey)}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}
	return sent.Id, nil
}
