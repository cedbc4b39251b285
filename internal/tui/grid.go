package tui

import (
	"strconv"
	"strings"

	"github.com/thruflo/sieve/internal/primetable"
)

// Glyphs used for grid cells.
const (
	GlyphPrime     = "■"
	GlyphComposite = "□"
	GlyphOutside   = " "
)

// GridStyle controls how cells are drawn.
type GridStyle struct {
	// Color highlights primes and dims composites with ANSI codes.
	Color bool
}

// Grid renders rows x cols cells in row-major order, one string per row.
// Cell (i, j) shows candidate cols*i + j: GlyphPrime when prime,
// GlyphComposite when not, GlyphOutside when past the table's bound.
// Non-positive dimensions render nothing.
func Grid(q primetable.Querier, rows, cols int, style GridStyle) []string {
	if rows <= 0 || cols <= 0 {
		return nil
	}

	lines := make([]string, rows)
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		sb.Reset()
		for j := 0; j < cols; j++ {
			sb.WriteString(cell(q, uint64(cols)*uint64(i)+uint64(j), style))
		}
		lines[i] = sb.String()
	}
	return lines
}

func cell(q primetable.Querier, k uint64, style GridStyle) string {
	switch {
	case !q.Contains(k):
		return GlyphOutside
	case q.IsPrime(k):
		if style.Color {
			return Style(GlyphPrime, Bold, FgBrightGreen)
		}
		return GlyphPrime
	default:
		if style.Color {
			return Style(GlyphComposite, FgBrightBlack)
		}
		return GlyphComposite
	}
}

// Legend describes the glyphs and the candidate range a grid covers.
// The range is computed in uint64 like the cells themselves.
func Legend(rows, cols int) string {
	var last uint64
	if rows > 0 && cols > 0 {
		last = uint64(rows)*uint64(cols) - 1
	}
	return GlyphPrime + " prime  " + GlyphComposite + " not prime  (0.." + strconv.FormatUint(last, 10) + ", row-major)"
}
