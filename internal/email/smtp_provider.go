package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider implements Provider over gomail.
type SMTPProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer TemplateRenderer
}

func NewSMTPProvider(config *SMTPConfig, renderer TemplateRenderer) *SMTPProvider {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPProvider{
		config:   config,
		dialer:   dialer,
		renderer: renderer,
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}
	fromName := email.FromName
	if fromName == "" {
		fromName = p.config.FromName
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, fromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTMLBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}

	htmlBody, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return p.Send(&Email{
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	})
}

func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}
	if p.config.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// Close is a no-op: gomail dials per send.
func (p *SMTPProvider) Close() error {
	return nil
}
