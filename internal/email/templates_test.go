package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinReminderTemplates(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	data := TemplateData{
		"Name":        "Aizhan",
		"Role":        "Backend Engineer",
		"Company":     "Nimbus Labs",
		"ScheduledAt": "2026-03-11 14:00 UTC",
	}

	for _, name := range []string{TemplateReminderOneDay, TemplateReminderOneHour} {
		html, err := tm.Render(name, data)
		require.NoError(t, err, "template %q", name)
		assert.Contains(t, html, "Aizhan")
		assert.Contains(t, html, "Backend Engineer")
		assert.Contains(t, html, "Nimbus Labs")
		assert.Contains(t, html, "2026-03-11 14:00 UTC")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	_, err = tm.Render("password_reset", TemplateData{})
	assert.Error(t, err)
}

func TestAddTemplate(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	require.NoError(t, tm.AddTemplate("welcome", "<p>Hello {{.Name}}</p>"))
	html, err := tm.Render("welcome", TemplateData{"Name": "Dana"})
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello Dana</p>", html)

	assert.Error(t, tm.AddTemplate("broken", "{{.Name"))
}
