package layout

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences, leaving the printable text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleLength is the number of terminal cells s occupies. Wide runes count
// as two.
func VisibleLength(s string) int {
	return lipgloss.Width(s)
}

// TruncateText fits text into maxWidth cells, ending it with cfg.Ellipsis
// when it had to be cut. The bool reports whether anything was cut.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", text != ""
	}
	if ansi.StringWidth(text) <= maxWidth {
		return text, false
	}
	if maxWidth <= ansi.StringWidth(cfg.Ellipsis) {
		return ansi.Truncate(cfg.Ellipsis, maxWidth, ""), true
	}
	return ansi.Truncate(text, maxWidth, cfg.Ellipsis), true
}

// TruncateWithPrefixSuffix cuts only the middle of prefix+text+suffix, so a
// day row keeps its arrow and article count:
//
//	TruncateWithPrefixSuffix("Yesterday", 14, "> ", " (2)", cfg) == "> Yeste... (2)"
//
// When even prefix, ellipsis and suffix don't fit, the whole line is cut from
// the right instead.
func TruncateWithPrefixSuffix(text string, maxWidth int, prefix, suffix string, cfg TextConfig) (string, bool) {
	line := prefix + text + suffix
	if maxWidth <= 0 {
		return "", line != ""
	}
	if ansi.StringWidth(line) <= maxWidth {
		return line, false
	}

	room := maxWidth - ansi.StringWidth(prefix) - ansi.StringWidth(suffix)
	if room <= ansi.StringWidth(cfg.Ellipsis) {
		return TruncateText(line, maxWidth, cfg)
	}
	return prefix + ansi.Truncate(text, room, cfg.Ellipsis) + suffix, true
}
