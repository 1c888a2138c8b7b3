package email

// Email represents one outgoing message.
type Email struct {
	From     string
	FromName string
	To       []string
	Subject  string
	HTMLBody string
}

// TemplateData carries values into email templates.
type TemplateData map[string]interface{}
