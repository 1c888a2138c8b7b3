package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Template names used by the reminder dispatcher.
const (
	TemplateReminderOneDay  = "reminder_one_day"
	TemplateReminderOneHour = "reminder_one_hour"
)

const reminderOneDayTemplate = `<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>Interview tomorrow 📅</h2>
  <p>Hi {{.Name}},</p>
  <p>Your interview for <strong>{{.Role}}</strong> at <strong>{{.Company}}</strong>
  is scheduled for <strong>{{.ScheduledAt}}</strong> — that's about 24 hours from now.</p>
  <p>Review your notes, prepare your questions, and get a good night's sleep.</p>
  <p>Good luck!<br>The Intervue team</p>
</body>
</html>`

const reminderOneHourTemplate = `<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>Interview in one hour ⏰</h2>
  <p>Hi {{.Name}},</p>
  <p>Your interview for <strong>{{.Role}}</strong> at <strong>{{.Company}}</strong>
  starts at <strong>{{.ScheduledAt}}</strong>.</p>
  <p>Check your link or route, have some water ready, and breathe.</p>
  <p>You've got this!<br>The Intervue team</p>
</body>
</html>`

// TemplateManager implements TemplateRenderer.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager with the built-in reminder templates
// registered.
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	builtins := map[string]string{
		TemplateReminderOneDay:  reminderOneDayTemplate,
		TemplateReminderOneHour: reminderOneHourTemplate,
	}
	for name, tpl := range builtins {
		if err := tm.AddTemplate(name, tpl); err != nil {
			return nil, err
		}
	}

	return tm, nil
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}
