package view

import (
	"crmctl/internal/tui/design"
	"crmctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// logTitle is rendered above the log viewport. Its height, margin included,
// is subtracted in LogViewportSize.
const logTitle = "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)"

// LogViewportSize returns the viewport dimensions that fit the log overlay
// in a terminal of the given size.
func LogViewportSize(width, height int) (int, int) {
	overlayW := int(float64(width) * design.LogOverlayWidthRatio)
	overlayH := int(float64(height) * design.LogOverlayHeightRatio)

	titleH := lipgloss.Height(design.LogPanelTitleStyle.Render(logTitle)) +
		design.LogPanelTitleStyle.GetMarginBottom()

	vpW := overlayW - design.LogOverlayStyle.GetHorizontalFrameSize()
	vpH := overlayH - design.LogOverlayStyle.GetVerticalFrameSize() - titleH
	return max(vpW, 1), max(vpH, 1)
}

func renderHelpOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render(design.IconText(design.IconQuestion, "Keyboard Shortcuts"))
	h := m.Help
	h.ShowAll = true
	body := h.FullHelpView(m.Keys.FullHelp())
	box := design.CenteredOverlayContainerStyle.Render(lipgloss.JoinVertical(lipgloss.Center, title, body))
	return placeCentered(m, box)
}

func renderLogOverlay(m *model.Model) string {
	title := design.LogPanelTitleStyle.Render(design.IconText(design.IconScroll, logTitle))
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())

	overlayW := int(float64(m.Width) * design.LogOverlayWidthRatio)
	overlayH := int(float64(m.Height) * design.LogOverlayHeightRatio)
	box := design.LogOverlayStyle.
		Width(overlayW - design.LogOverlayStyle.GetHorizontalBorderSize()).
		Height(overlayH - design.LogOverlayStyle.GetVerticalBorderSize()).
		Render(content)

	status := renderStatusBar(m)
	area := lipgloss.Place(m.Width, m.Height-lipgloss.Height(status), lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(design.ColorBackground))
	return lipgloss.JoinVertical(lipgloss.Left, area, status)
}

func renderNoticeOverlay(m *model.Model) string {
	style := design.NoticeSuccessContainerStyle
	icon := design.IconCheck
	titleStyle := design.TextSuccessStyle
	if m.Notice.IsError {
		style = design.NoticeErrorContainerStyle
		icon = design.IconCross
		titleStyle = design.TextErrorStyle
	}

	title := m.Notice.Title
	if title == "" {
		title = "Notice"
	}

	box := style.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Bold(true).Render(design.IconText(icon, title)),
		"",
		design.TextStyle.Render(m.Notice.Message),
		"",
		design.DimStyle.Render("enter / esc to dismiss"),
	))
	return placeCentered(m, box)
}

func renderConfirmOverlay(m *model.Model) string {
	box := design.ConfirmContainerStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		design.TextWarningStyle.Bold(true).Render(design.IconText(design.IconWarning, "Delete "+m.PendingDelete.Entity.String()+"?")),
		"",
		design.TextStyle.Render(m.PendingDelete.Label),
		"",
		design.DimStyle.Render("y confirm  •  n / esc cancel"),
	))
	return placeCentered(m, box)
}

func placeCentered(m *model.Model, box string) string {
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(design.ColorBackground))
}
