package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stripANSI removes escape sequences so tests see the plain characters
// regardless of the terminal profile lipgloss detects.
func stripANSI(s string) string {
	var out strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

func TestRenderTagRow(t *testing.T) {
	row := stripANSI(RenderTagRow("cur", 0b0101, 4))

	assert.Contains(t, row, "cur")
	assert.Contains(t, row, "0b0101")
}

func TestRenderTagRowWidth(t *testing.T) {
	row := stripANSI(RenderTagRow("occ", 0, 32))
	assert.Contains(t, row, "0b"+strings.Repeat("0", 32))
}

func TestRenderCycleSummary(t *testing.T) {
	summary := stripANSI(RenderCycleSummary(0b0001, 0b0110, 0b0010, 4))

	lines := strings.Split(summary, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "0b0001")
	assert.Contains(t, lines[1], "0b0110")
	assert.Contains(t, lines[2], "0b0010")
}

func TestRenderOutputLine(t *testing.T) {
	line := stripANSI(RenderOutputLine(0, 0b0001, "rivertile", true))
	assert.Contains(t, line, "output 0")
	assert.Contains(t, line, "0x1")
	assert.Contains(t, line, "layout=rivertile")
	assert.True(t, strings.HasPrefix(line, "*"))

	line = stripANSI(RenderOutputLine(1, 0b1000, "", false))
	assert.Contains(t, line, "output 1")
	assert.NotContains(t, line, "layout=")
}
