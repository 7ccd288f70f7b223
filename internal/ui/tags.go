// Package ui renders tag bitmaps for the --debug output.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorActive = lipgloss.Color("39")  // Bright blue
	ColorSet    = lipgloss.Color("82")  // Green
	ColorUnset  = lipgloss.Color("238") // Dark gray
	ColorLabel  = lipgloss.Color("252") // Light gray
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true).
			Width(4)

	setBitStyle = lipgloss.NewStyle().
			Foreground(ColorSet).
			Bold(true)

	unsetBitStyle = lipgloss.NewStyle().
			Foreground(ColorUnset)
)

// RenderTagRow renders one labeled bitmap as a fixed-width binary row,
// highest tag first, with set bits highlighted.
func RenderTagRow(label string, tags uint32, nTags uint) string {
	var row strings.Builder
	row.WriteString(labelStyle.Render(label))
	row.WriteString(" 0b")

	for bit := int(nTags) - 1; bit >= 0; bit-- {
		if tags&(1<<uint(bit)) != 0 {
			row.WriteString(setBitStyle.Render("1"))
		} else {
			row.WriteString(unsetBitStyle.Render("0"))
		}
	}
	return row.String()
}

// RenderCycleSummary renders the current, occupied, and new tag bitmaps as
// aligned rows for side-by-side comparison.
func RenderCycleSummary(current, occupied, newTags uint32, nTags uint) string {
	rows := []string{
		RenderTagRow("cur", current, nTags),
		RenderTagRow("occ", occupied, nTags),
		RenderTagRow("new", newTags, nTags),
	}
	return strings.Join(rows, "\n")
}

// RenderOutputLine summarizes one output's state for debug logging.
func RenderOutputLine(index int, focusedTags uint32, layoutName string, focused bool) string {
	marker := " "
	if focused {
		marker = lipgloss.NewStyle().Foreground(ColorActive).Render("*")
	}
	line := fmt.Sprintf("%s output %d focused-tags=%#x", marker, index, focusedTags)
	if layoutName != "" {
		line += fmt.Sprintf(" layout=%s", layoutName)
	}
	return line
}
