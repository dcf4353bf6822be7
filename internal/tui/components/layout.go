package components

import (
	"strings"

	"crmctl/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Layout divides the terminal between the fixed chrome and the two panes.
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a new layout manager
func NewLayout(width, height int) *Layout {
	return &Layout{
		Width:  width,
		Height: height,
	}
}

// SplitVertical splits the width into a left and right column by percentage.
// Both columns are at least MinPanelWidth wide.
func (l *Layout) SplitVertical(leftPercent float64) (leftWidth, rightWidth int) {
	if l.Width < design.MinPanelWidth*2 {
		l.Width = design.MinPanelWidth * 2
	}

	if leftPercent <= 0 || leftPercent >= 1 {
		leftPercent = 0.5
	}

	leftWidth = int(float64(l.Width) * leftPercent)
	rightWidth = l.Width - leftWidth

	if leftWidth < design.MinPanelWidth {
		leftWidth = design.MinPanelWidth
		rightWidth = l.Width - leftWidth
	}
	if rightWidth < design.MinPanelWidth {
		rightWidth = design.MinPanelWidth
		leftWidth = l.Width - rightWidth
	}

	return leftWidth, rightWidth
}

// CalculateContentArea returns the height left for the panes once the given
// chrome rows are taken. It never drops below MinPanelHeight.
func (l *Layout) CalculateContentArea(chromeHeights ...int) int {
	contentHeight := l.Height
	for _, h := range chromeHeights {
		contentHeight -= h
	}
	if contentHeight < design.MinPanelHeight {
		contentHeight = design.MinPanelHeight
	}
	return contentHeight
}

// JoinHorizontal joins components horizontally with optional gap
func JoinHorizontal(gap int, components ...string) string {
	if gap > 0 && len(components) > 1 {
		spacer := strings.Repeat(" ", gap)
		parts := make([]string, 0, len(components)*2-1)
		for i, comp := range components {
			if i > 0 {
				parts = append(parts, spacer)
			}
			parts = append(parts, comp)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, components...)
}

// JoinVertical joins components vertically
func JoinVertical(components ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}
