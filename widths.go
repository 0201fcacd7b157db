package tableui

import (
	"math"
	"strconv"
	"strings"
)

// Column width limits used by the resize interaction and the width post-fixer.
const (
	// ColumnMinWidthPixels is the narrowest a column may be dragged, in pixels.
	ColumnMinWidthPixels = 40.0

	// ColumnMinWidthPercent is the fallback minimum column width used when no
	// rendered table width is available to derive a pixel-based minimum.
	ColumnMinWidthPercent = 5.0
)

// widthTolerance is the floating-point slack allowed when checking that a
// width sequence sums to 100.
const widthTolerance = 0.001

// roundPercent rounds a percentage value to two decimal places, the precision
// used in the serialized columnWidths attribute.
func roundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}

// sumWidths returns the sum of a width sequence.
func sumWidths(widths []float64) float64 {
	total := 0.0
	for _, w := range widths {
		total += w
	}
	return total
}

// pixelsToPercent converts a pixel width to a percentage of the given total.
// Returns 0 when the total is not positive.
func pixelsToPercent(px, totalPx float64) float64 {
	if totalPx <= 0 {
		return 0
	}
	return px / totalPx * 100
}

// parseColumnWidths parses a comma-separated sequence of percentage tokens
// ("25%,25%,50%") into numbers. Malformed tokens are dropped.
func parseColumnWidths(attr string) []float64 {
	if attr == "" {
		return nil
	}
	parts := strings.Split(attr, ",")
	widths := make([]float64, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSuffix(strings.TrimSpace(part), "%")
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		widths = append(widths, v)
	}
	return widths
}

// formatColumnWidths serializes a width sequence as comma-separated
// percentage tokens. Values are rounded to two decimal places and trailing
// zeros are dropped ("25%", not "25.00%").
func formatColumnWidths(widths []float64) string {
	var sb strings.Builder
	for i, w := range widths {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(formatPercent(w))
	}
	return sb.String()
}

// formatPercent serializes a single percentage value as "<number>%".
func formatPercent(v float64) string {
	return strconv.FormatFloat(roundPercent(v), 'f', -1, 64) + "%"
}

// parsePercent parses a single "<number>%" token. Returns false for
// malformed input.
func parsePercent(s string) (float64, bool) {
	token := strings.TrimSuffix(strings.TrimSpace(s), "%")
	if token == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// normalizeColumnWidths scales a width sequence so its values sum to exactly
// 100. The rounding remainder is folded into the last entry, so repeated
// normalization is stable.
func normalizeColumnWidths(widths []float64) []float64 {
	if len(widths) == 0 {
		return nil
	}
	out := make([]float64, len(widths))
	total := sumWidths(widths)

	if total <= 0 {
		// Degenerate input, distribute evenly.
		even := roundPercent(100 / float64(len(widths)))
		for i := range out {
			out[i] = even
		}
	} else {
		scale := 1.0
		if math.Abs(total-100) >= widthTolerance {
			scale = 100 / total
		}
		for i, w := range widths {
			out[i] = roundPercent(w * scale)
		}
	}

	// Redistribute the rounding remainder onto the last column.
	if remainder := roundPercent(100 - sumWidths(out)); remainder != 0 {
		out[len(out)-1] = roundPercent(out[len(out)-1] + remainder)
	}
	return out
}

// spliceWidths inserts count entries of the given value at index.
func spliceWidths(widths []float64, index, count int, value float64) []float64 {
	if count <= 0 {
		return widths
	}
	index = int(clampf(float64(index), 0, float64(len(widths))))
	out := make([]float64, 0, len(widths)+count)
	out = append(out, widths[:index]...)
	for i := 0; i < count; i++ {
		out = append(out, value)
	}
	return append(out, widths[index:]...)
}

// removeWidthsDonatingLeft removes count entries starting at index and adds
// the freed width to the column immediately to the left. When removal starts
// at index 0 the freed width flows to the column to the right instead, so no
// width is ever discarded.
func removeWidthsDonatingLeft(widths []float64, index, count int) []float64 {
	if count <= 0 || index < 0 || index >= len(widths) {
		return widths
	}
	if index+count > len(widths) {
		count = len(widths) - index
	}
	freed := sumWidths(widths[index : index+count])
	out := make([]float64, 0, len(widths)-count)
	out = append(out, widths[:index]...)
	out = append(out, widths[index+count:]...)
	if len(out) == 0 {
		return out
	}
	if index > 0 {
		out[index-1] = roundPercent(out[index-1] + freed)
	} else {
		out[0] = roundPercent(out[0] + freed)
	}
	return out
}
