// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the email provider and renders email bodies
// from HTML templates embedded in the binary.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/deppfellow/dictionary-api/internal/config"
)

//go:embed templates/*.html
var templates embed.FS

// Sender is the part of the Resend client used to deliver messages.
type Sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Client wraps the Resend client and a logger.
type Client struct {
	sender Sender
	from   string
	logger *zerolog.Logger
}

// NewClient creates an email Client using the Resend API key from config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return NewClientWithSender(resend.NewClient(cfg.Integration.ResendAPIKey).Emails, cfg.Integration.EmailFrom, logger)
}

// NewClientWithSender creates a Client delivering through sender.
func NewClientWithSender(sender Sender, from string, logger *zerolog.Logger) *Client {
	return &Client{
		sender: sender,
		from:   from,
		logger: logger,
	}
}

// SendEmail renders templateName with data and sends it to every recipient.
func (c *Client) SendEmail(to []string, subject string, templateName Template, data any) error {
	body, err := render(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      to,
		Subject: subject,
		Html:    body,
	}

	if _, err := c.sender.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Debug().
		Str("template", string(templateName)).
		Int("recipients", len(to)).
		Msg("email sent")

	return nil
}

func render(templateName Template, data any) (string, error) {
	tmpl, err := template.ParseFS(templates, fmt.Sprintf("templates/%s.html", templateName))
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}
	return body.String(), nil
}
