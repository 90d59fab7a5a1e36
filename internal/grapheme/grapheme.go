package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += clusterWidth(c)
	}
	return w
}

func clusterWidth(c string) int {
	w := runewidth.StringWidth(c)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(c); fallback > w {
			w = fallback
		}
	}
	return w
}

// Truncate cuts text on a grapheme boundary so the result, including tail,
// fits in width cells. Text that already fits is returned unchanged.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	tw := Width(tail)
	if tw > width {
		tail, tw = "", 0
	}

	budget := width - tw
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		cw := clusterWidth(c)
		if used+cw > budget {
			break
		}
		sb.WriteString(c)
		used += cw
	}
	sb.WriteString(tail)
	return sb.String()
}

// Fit truncates text to width and right-pads it with spaces to exactly
// width cells.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	s := Truncate(text, width, "…")
	if pad := width - Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// Center pads text on both sides to width cells. Text wider than width is
// truncated.
func Center(text string, width int) string {
	if width <= 0 {
		return ""
	}
	s := Truncate(text, width, "")
	pad := width - Width(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Flatten replaces line breaks and tabs with spaces so text renders on a
// single terminal line.
func Flatten(text string) string {
	if !strings.ContainsAny(text, "\r\n\t") {
		return text
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '\r', '\n', '\t':
			return ' '
		}
		return r
	}, text)
}
