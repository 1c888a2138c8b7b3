package email

// SMTPConfig holds SMTP server settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// DefaultConfig returns a config with usual defaults.
func DefaultConfig() *SMTPConfig {
	return &SMTPConfig{
		Host: "localhost",
		Port: 587,
	}
}
