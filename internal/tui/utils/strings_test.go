package utils

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestEllipsize(t *testing.T) {
	assert.Equal(t, "Jane Doe", Ellipsize("Jane Doe", 8))
	assert.Equal(t, "Jane...", Ellipsize("Jane Doe - 555", 7))
	assert.Equal(t, "..", Ellipsize("Jane Doe", 2))
	assert.Equal(t, "", Ellipsize("Jane", 0))
	assert.Equal(t, "日...", Ellipsize("日本語", 5), "wide runes are not split")

	// The cut keeps the cell before it, even a space.
	assert.Equal(t, "Jane ...", Ellipsize("Jane Doe - 555", 8))

	styled := "\x1b[1mJane Doe - 555-0100\x1b[0m"
	cut := Ellipsize(styled, 8)
	assert.Equal(t, "\x1b[1mJane ...\x1b[0m", cut)
	assert.Equal(t, 8, ansi.StringWidth(cut))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", PadRight("ab", 4))
	assert.Equal(t, "abcd", PadRight("abcd", 2))
}
