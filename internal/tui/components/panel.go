package components

import (
	"strings"

	"crmctl/internal/tui/design"
	"crmctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeSuccess
	PanelTypeError
	PanelTypeWarning
	PanelTypeInfo
)

// Panel is a bordered box with a title line and clipped content.
type Panel struct {
	Title    string
	Content  string
	Footer   string
	Width    int
	Height   int
	Focused  bool
	Type     PanelType
	ShowIcon bool
	Icon     string
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title:    title,
		Width:    design.MinPanelWidth,
		Height:   design.MinPanelHeight,
		Type:     PanelTypeDefault,
		ShowIcon: true,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithFooter pins a line to the bottom of the panel. It is never clipped by
// overflowing content.
func (p *Panel) WithFooter(footer string) *Panel {
	p.Footer = footer
	return p
}

// WithDimensions sets the outer panel dimensions, border included.
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// WithIcon sets a custom icon for the panel
func (p *Panel) WithIcon(icon string) *Panel {
	p.Icon = icon
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// InnerWidth is the number of cells available to a content line.
func (p *Panel) InnerWidth() int {
	w := max(p.Width, design.MinPanelWidth) - p.getStyle().GetHorizontalFrameSize()
	return max(w, 1)
}

// ContentRows is the number of content lines shown without clipping.
func (p *Panel) ContentRows() int {
	rows := max(p.Height, design.MinPanelHeight) - p.getStyle().GetVerticalFrameSize()
	if p.Title != "" {
		rows -= 2
	}
	if p.Footer != "" {
		rows--
	}
	return max(rows, 0)
}

// Render returns the styled panel
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height < design.MinPanelHeight {
		p.Height = design.MinPanelHeight
	}

	style := p.getStyle()

	innerWidth := p.InnerWidth()
	innerHeight := max(p.Height-style.GetVerticalFrameSize(), 1)

	var lines []string
	if p.Title != "" {
		lines = append(lines, p.renderTitle(innerWidth))
		if p.Content != "" {
			lines = append(lines, "")
		}
	}

	available := innerHeight - len(lines)
	if p.Footer != "" {
		available--
	}

	if p.Content != "" && available > 0 {
		contentLines := strings.Split(p.Content, "\n")
		if len(contentLines) > available {
			contentLines = append(contentLines[:available-1], "...")
		}
		for _, line := range contentLines {
			if lipgloss.Width(line) > innerWidth {
				line = utils.Ellipsize(line, innerWidth)
			}
			lines = append(lines, line)
		}
	}

	footerRow := -1
	if p.Footer != "" {
		for len(lines) < innerHeight-1 {
			lines = append(lines, "")
		}
		footerRow = len(lines)
		lines = append(lines, utils.Ellipsize(p.Footer, innerWidth))
	}

	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	if len(lines) > innerHeight {
		if footerRow >= innerHeight {
			lines[innerHeight-1] = lines[footerRow]
		}
		lines = lines[:innerHeight]
	}

	// lipgloss sizes exclude the border.
	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Height(p.Height - style.GetVerticalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

// getStyle returns the appropriate style based on panel state
func (p *Panel) getStyle() lipgloss.Style {
	baseStyle := design.PanelStyle
	if p.Focused {
		baseStyle = design.PanelFocusedStyle
	}

	switch p.Type {
	case PanelTypeSuccess:
		return baseStyle.BorderForeground(design.ColorSuccess)
	case PanelTypeError:
		return baseStyle.BorderForeground(design.ColorError)
	case PanelTypeWarning:
		return baseStyle.BorderForeground(design.ColorWarning)
	case PanelTypeInfo:
		return baseStyle.BorderForeground(design.ColorInfo)
	default:
		return baseStyle
	}
}

// renderTitle renders the panel title with optional icon
func (p *Panel) renderTitle(width int) string {
	if p.Title == "" {
		return ""
	}

	title := p.Title
	if p.ShowIcon && p.Icon != "" {
		title = design.SafeIcon(p.Icon) + title
	}
	title = utils.Ellipsize(title, max(width, 1))

	titleStyle := design.TitleStyle
	if p.Focused {
		titleStyle = titleStyle.Foreground(design.ColorPrimary)
	}
	return titleStyle.Render(title)
}
