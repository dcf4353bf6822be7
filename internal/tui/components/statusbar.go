package components

import (
	"strings"

	"crmctl/internal/tui/design"
	"crmctl/internal/tui/model"
	"crmctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	LeftText    string
	RightText   string
	ShowMessage bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{
		Width:       width,
		ShowMessage: false,
	}
}

// WithMessage sets a transient message. It replaces the left text while set.
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	s.ShowMessage = message != ""
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	style := s.getStyle()
	avail := max(s.Width-style.GetHorizontalFrameSize(), 0)

	left := s.LeftText
	if s.ShowMessage {
		left = s.messageIcon() + s.Message
	}

	var content string
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(s.RightText)
	switch {
	case s.RightText == "":
		content = utils.Ellipsize(left, avail)
	case leftWidth+rightWidth+1 <= avail:
		content = left + strings.Repeat(" ", avail-leftWidth-rightWidth) + s.RightText
	default:
		// The message wins over the hint.
		content = utils.Ellipsize(left, avail)
	}

	return style.
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

func (s *StatusBar) messageIcon() string {
	switch s.MessageType {
	case model.StatusBarSuccess:
		return design.SafeIcon(design.IconCheck)
	case model.StatusBarError:
		return design.SafeIcon(design.IconCross)
	case model.StatusBarWarning:
		return design.SafeIcon(design.IconWarning)
	default:
		return design.SafeIcon(design.IconInfo)
	}
}

// getStyle returns the appropriate style based on message type
func (s *StatusBar) getStyle() lipgloss.Style {
	if !s.ShowMessage {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	case model.StatusBarWarning:
		return design.StatusBarWarningStyle
	default:
		return design.StatusBarInfoStyle
	}
}
