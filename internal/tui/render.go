package tui

import (
	"strings"
	"unicode/utf8"
)

// Box drawing characters (Unicode)
const (
	BoxTopLeft     = "┌"
	BoxTopRight    = "┐"
	BoxBottomLeft  = "└"
	BoxBottomRight = "┘"
	BoxHorizontal  = "─"
	BoxVertical    = "│"
)

// BoxWithContent frames content lines in a box sized to the widest line.
// Width is measured in runes with ANSI escape sequences excluded.
func BoxWithContent(content []string) []string {
	inner := 0
	for _, line := range content {
		if w := VisibleWidth(line); w > inner {
			inner = w
		}
	}

	lines := make([]string, 0, len(content)+2)
	lines = append(lines, BoxTopLeft+strings.Repeat(BoxHorizontal, inner+2)+BoxTopRight)
	for _, line := range content {
		pad := strings.Repeat(" ", inner-VisibleWidth(line))
		lines = append(lines, BoxVertical+" "+line+pad+" "+BoxVertical)
	}
	lines = append(lines, BoxBottomLeft+strings.Repeat(BoxHorizontal, inner+2)+BoxBottomRight)
	return lines
}

// VisibleWidth returns the rune count of s ignoring ANSI CSI sequences.
func VisibleWidth(s string) int {
	width := 0
	inEscape := false
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case inEscape:
			if r >= '@' && r <= '~' && r != '[' {
				inEscape = false
			}
		case r == '\033':
			inEscape = true
		default:
			width++
		}
	}
	return width
}
