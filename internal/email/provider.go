package email

// Provider is the outgoing email contract.
type Provider interface {
	// Send delivers the message. It returns only after the provider has
	// accepted the message, so callers may treat nil as confirmed delivery.
	Send(email *Email) error

	// SendTemplate renders the named template and sends it.
	SendTemplate(to []string, subject, templateName string, data TemplateData) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}

// TemplateRenderer renders named HTML templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
