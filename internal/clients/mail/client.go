package mail

import (
	"context"
	"fmt"

	"growth-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

type ResendClient struct {
	client *resend.Client
	sender string
	logger *observability.Logger
}

func NewResendClient(apiKey, sender string, logger *observability.Logger) (*ResendClient, error) {
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return &ResendClient{
		client: client,
		sender: sender,
		logger: logger,
	}, nil
}

// SendEmail sends an HTML email from the default sender and returns the provider message id
func (c *ResendClient) SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	params := &resend.SendEmailRequest{
		From:    c.sender,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	}

	res, err := c.client.Emails.Send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("email service: failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent successfully")
	return res.Id, nil
}
