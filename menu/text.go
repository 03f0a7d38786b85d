package menu

import "strings"

// Wrap splits text into lines no wider than maxWidth, breaking only at whitespace.
// A single word wider than maxWidth stays unsplit on its own line.
func Wrap(m Measurer, text string, maxWidth, scale float64, font int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if m.MeasureText(candidate, scale, font) > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

// FitScale returns the largest scale in [minScale, scale] at which text fits on a
// single line of maxWidth. If even minScale is too wide, minScale is returned.
func FitScale(m Measurer, text string, maxWidth, scale, minScale float64, font int) float64 {
	if m.MeasureText(text, scale, font) <= maxWidth {
		return scale
	}
	if minScale >= scale || m.MeasureText(text, minScale, font) > maxWidth {
		return minScale
	}

	lo, hi := minScale, scale
	for i := 0; i < 16; i++ {
		mid := (lo + hi) / 2
		if m.MeasureText(text, mid, font) <= maxWidth {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
