package component

import (
	"strings"

	"tessera/pkg/style"
)

// wrapText splits text into lines that fit the given width. Wrapping is
// greedy on spaces; breakWord additionally splits words that alone exceed
// the width. noWrap yields a single line regardless of width. Explicit
// newlines always break.
func wrapText(text string, width, fontSize float64, m Metrics, rs *style.Resolved) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		if rs.WhiteSpace == style.WhiteSpaceNoWrap || m == nil || width <= 0 {
			out = append(out, para)
			continue
		}
		out = appendWrapped(out, para, width, fontSize, m, rs.OverflowWrap)
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

func appendWrapped(out []string, para string, width, fontSize float64, m Metrics, ow style.OverflowWrap) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return append(out, "")
	}

	line := ""
	for _, w := range words {
		cand := w
		if line != "" {
			cand = line + " " + w
		}
		if m.TextWidth(cand, fontSize) <= width {
			line = cand
			continue
		}
		if line != "" {
			out = append(out, line)
			line = ""
		}
		// The word alone overflows the line.
		if ow == style.OverflowWrapBreakWord && m.TextWidth(w, fontSize) > width {
			out, line = breakWord(out, w, width, fontSize, m)
		} else {
			line = w
		}
	}
	return append(out, line)
}

// breakWord splits a single oversized word across lines at rune granularity,
// returning the trailing fragment as the open line.
func breakWord(out []string, word string, width, fontSize float64, m Metrics) ([]string, string) {
	runes := []rune(word)
	start := 0
	for i := 1; i <= len(runes); i++ {
		if m.TextWidth(string(runes[start:i]), fontSize) > width && i-1 > start {
			out = append(out, string(runes[start:i-1]))
			start = i - 1
		}
	}
	return out, string(runes[start:])
}

// truncateLine clips or ellipsizes one line that overflows its box.
func truncateLine(line string, width, fontSize float64, m Metrics, to style.TextOverflow) string {
	if m == nil || m.TextWidth(line, fontSize) <= width {
		return line
	}
	if to != style.TextOverflowEllipsis {
		return line
	}

	const ell = "…"
	runes := []rune(line)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if m.TextWidth(string(runes)+ell, fontSize) <= width {
			return string(runes) + ell
		}
	}
	return ell
}
