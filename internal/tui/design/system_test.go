package design

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
		expected   bool
	}{
		{"set dark mode", true, true},
		{"set light mode", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			if lipgloss.HasDarkBackground() != tt.expected {
				t.Errorf("lipgloss.HasDarkBackground() got %v, want %v after Initialize(%v)", lipgloss.HasDarkBackground(), tt.expected, tt.isDarkMode)
			}
		})
	}
}

func TestCenterHelpers(t *testing.T) {
	out := CenterHorizontal(6, "ab")
	if w := lipgloss.Width(out); w != 6 {
		t.Errorf("CenterHorizontal width = %d, want 6", w)
	}
	if !strings.Contains(out, "ab") {
		t.Errorf("CenterHorizontal lost content: %q", out)
	}

	out = CenterVertical(5, "ab")
	if h := lipgloss.Height(out); h != 5 {
		t.Errorf("CenterVertical height = %d, want 5", h)
	}
}

func TestBadgeStylesDiffer(t *testing.T) {
	multi := BadgeMultipleStyle.Render("Multiple Addresses")
	single := BadgeSingleStyle.Render("Only One Address")
	if !strings.Contains(multi, "Multiple Addresses") || !strings.Contains(single, "Only One Address") {
		t.Errorf("badges should keep their text: %q / %q", multi, single)
	}
}
