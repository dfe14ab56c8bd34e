package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// fmtByteSize renders a byte count with binary (1024-based) units and
// one decimal place, picking the largest unit whose scaled value is
// still >= 1. A trailing ".0" is dropped, so 1024 -> "1 KB".
func fmtByteSize(b uint64) string {
	if b == 0 {
		return "0 Byte"
	}
	v := float64(b)
	unit := 0
	for v >= 1024 && unit < len(byteUnits)-1 {
		v /= 1024
		unit++
	}
	s := strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")
	return s + " " + byteUnits[unit]
}

func fmtPct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// displayStatus upper-cases the first letter of a raw process state
// ("running" -> "Running") for the expanded-row detail view.
func displayStatus(s string) string {
	if s == "" {
		return "?"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// styledPad pads a styled string to the given visual width using spaces.
// Unlike fmt.Sprintf("%-Xs"), this accounts for ANSI escape codes.
func styledPad(styled string, width int) string {
	visW := lipgloss.Width(styled)
	if visW >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-visW)
}

// padRight pads or truncates s to width, ellipsizing long values.
func padRight(s string, width int) string {
	if len(s) >= width {
		if width > 3 {
			return s[:width-3] + "..."
		}
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return strings.Repeat(" ", width-len(s)) + s
}
