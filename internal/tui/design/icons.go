package design

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icons used across the views. Glyphs carry no variation selector so that
// terminals agree on their width.
const (
	IconCheck     = "✔"
	IconCross     = "✘"
	IconWarning   = "⚠"
	IconInfo      = "ℹ"
	IconPerson    = "👤"
	IconHome      = "🏠"
	IconPencil    = "✎"
	IconScroll    = "📜"
	IconQuestion  = "?"
	IconHourglass = "⏳"
)

// SafeIcon appends enough trailing space that the icon does not swallow the
// next cell: one space for narrow glyphs, two for wide ones.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return icon + strings.Repeat(" ", spaces)
}

// IconText prefixes text with a spaced icon.
func IconText(icon, text string) string {
	return SafeIcon(icon) + text
}
