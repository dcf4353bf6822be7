package view

import (
	"strings"

	"crmctl/internal/tui/design"
	"crmctl/internal/tui/utils"
)

// PrepareLogContent styles each activity log line by its level marker.
// Lines wider than maxWidth are cut; a maxWidth of zero leaves them whole.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if maxWidth > 0 {
			l = utils.Ellipsize(l, maxWidth)
		}
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
