package publish

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mcplug-ai/mcplug/internal/manifest"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#8AB4F8"))

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#9AA0A6"))
)

// RenderSummary produces the human-readable pre-publish summary shown at the
// confirmation gate: name, version, links, and entry counts, in fixed order.
func RenderSummary(m *manifest.Manifest) string {
	var b strings.Builder

	b.WriteString(summaryTitleStyle.Render(fmt.Sprintf("%s v%s", m.Name, m.Version)))
	b.WriteString("\n\n")

	writeField(&b, "GitHub", orNotSpecified(m.GitHub))
	writeField(&b, "Website", orNotSpecified(m.Website))
	writeField(&b, "Env vars", fmt.Sprintf("%d", len(m.Env)))
	writeField(&b, "Tools", fmt.Sprintf("%d", len(m.Tools)))
	writeField(&b, "Prompts", fmt.Sprintf("%d", len(m.Prompts)))
	writeField(&b, "Resources", fmt.Sprintf("%d", len(m.Resources)))

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(summaryLabelStyle.Render(label + ":"))
	b.WriteString(" " + value + "\n")
}

func orNotSpecified(value string) string {
	if value == "" {
		return "Not specified"
	}
	return value
}
