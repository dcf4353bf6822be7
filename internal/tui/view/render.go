package view

import (
	"fmt"

	"crmctl/internal/tui/components"
	"crmctl/internal/tui/design"
	"crmctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	appTitle = "crmctl"

	// listColumnRatio is the share of the width taken by the left column.
	listColumnRatio = 0.55
)

// Render renders the UI according to the current model state. It never
// mutates m.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return design.TextSecondaryStyle.Render(m.QuittingMessage) + "\n"
	}
	if m.Width == 0 || m.Height == 0 {
		return design.TextSecondaryStyle.Render("Initializing...")
	}

	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	case model.ModeNoticeOverlay:
		return renderNoticeOverlay(m)
	case model.ModeConfirmOverlay:
		return renderConfirmOverlay(m)
	default:
		return renderMain(m)
	}
}

// renderMain lays out header, the two columns of the visible view, the key
// hints and the status bar.
func renderMain(m *model.Model) string {
	header := renderHeader(m)
	hints := renderHints(m)
	status := renderStatusBar(m)

	layout := components.NewLayout(m.Width, m.Height)
	bodyHeight := layout.CalculateContentArea(
		lipgloss.Height(header), lipgloss.Height(hints), lipgloss.Height(status))
	leftWidth, rightWidth := layout.SplitVertical(listColumnRatio)

	var left, right string
	switch m.CurrentView {
	case model.ViewDetail:
		left = renderDetailPanel(m, leftWidth, bodyHeight)
		right = renderAddressFormPanel(m, rightWidth, bodyHeight)
	default:
		left = renderCustomerListPanel(m, leftWidth, bodyHeight)
		right = renderCustomerFormPanel(m, rightWidth, bodyHeight)
	}

	body := components.JoinHorizontal(0, left, right)
	return components.JoinVertical(header, body, hints, status)
}

func renderHeader(m *model.Model) string {
	right := "Customers"
	if m.CurrentView == model.ViewDetail {
		right = "Customer Detail"
		if c := m.Detail.Customer; c != nil {
			right = fmt.Sprintf("Customer Detail %s %s", design.IconPerson, c.ID)
		}
	}

	h := components.NewHeader(appTitle).
		WithSubtitle(m.BackendURL).
		WithRightContent(right).
		WithWidth(m.Width)
	if m.IsLoading() {
		h = h.WithSpinner(m.Spinner.View())
	}
	return h.Render()
}

func renderHints(m *model.Model) string {
	hints := m.Help.ShortHelpView(m.Keys.ShortHelp())
	return lipgloss.NewStyle().
		Padding(0, design.SpaceSM).
		Width(m.Width).
		MaxWidth(m.Width).
		Render(hints)
}

func renderStatusBar(m *model.Model) string {
	return components.NewStatusBar(m.Width).
		WithLeftText(statusSummary(m)).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		WithRightText(fmt.Sprintf("%s | focus: %s", m.CurrentView, m.Focus)).
		Render()
}

// statusSummary describes the visible data when no transient message is set.
func statusSummary(m *model.Model) string {
	if m.CurrentView == model.ViewDetail {
		n := len(m.Detail.Addresses())
		return fmt.Sprintf("%d %s", n, plural(n, "address", "addresses"))
	}
	if !m.List.Loaded {
		return "Loading customers"
	}
	n := len(m.List.Rows)
	summary := fmt.Sprintf("%d %s", n, plural(n, "customer", "customers"))
	if m.List.Term != "" {
		summary += fmt.Sprintf(" matching %q", m.List.Term)
	}
	return summary
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// scrollWindow returns the slice of lines of at most rows entries that keeps
// line focus visible.
func scrollWindow(lines []string, focus, rows int) []string {
	if rows <= 0 || len(lines) <= rows {
		return lines
	}
	start := 0
	if focus >= rows {
		start = focus - rows + 1
	}
	if start+rows > len(lines) {
		start = len(lines) - rows
	}
	return lines[start : start+rows]
}
