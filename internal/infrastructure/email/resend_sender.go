package email

import (
	"context"
	"errors"
	"fmt"

	"eventpilot/internal/config"
	"eventpilot/internal/usecase/interfaces"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

var ErrMissingAPIKey = errors.New("missing RESEND_API_KEY")

// ResendSender dispatches transactional email through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
	logger *zap.Logger
}

var _ interfaces.IEmailSender = (*ResendSender)(nil)

func NewResendSender(cfg *config.Config, logger *zap.Logger) (*ResendSender, error) {
	if cfg.Email.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	from := cfg.Email.FromAddress
	if cfg.Email.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.Email.FromName, cfg.Email.FromAddress)
	}

	return &ResendSender{
		client: resend.NewClient(cfg.Email.APIKey),
		from:   from,
		logger: logger,
	}, nil
}

func (s *ResendSender) Send(ctx context.Context, msg interfaces.EmailMessage) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTMLBody,
		Text:    msg.TextBody,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return err
	}
	s.logger.Debug("email dispatched",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("provider_id", sent.Id))
	return nil
}
