package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const pageRuleWidth = 54

// renderPage stacks the title, the indented body and the key hints, with a
// rule above and below the body. An empty body renders as "-".
func renderPage(title, body, keys string) string {
	rule := "  " + strings.Repeat("─", pageRuleWidth)

	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	hints := []string{"ctrl+c: quit"}
	if strings.TrimSpace(keys) != "" {
		hints = append(strings.Split(keys, "\n"), hints...)
	}
	for i, h := range hints {
		hints[i] = helpStyle.Render(h)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		rule,
		"",
		indent(body),
		"",
		rule,
		indent(strings.Join(hints, "\n")),
	)
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText cuts v to max runes, ending with "..." when it was longer.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func label(name string) string {
	return labelStyle.Render(name + ":")
}
