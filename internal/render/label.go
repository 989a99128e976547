package render

import "strings"

// WrapWidth is the number of label characters per DOT line.
const WrapWidth = 30

// dotLineBreak is the DOT escape for a centered line break inside a label.
const dotLineBreak = `\n`

// EscapeQuotes escapes every double quote for use inside a DOT string.
func EscapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Wrap inserts a DOT line break after every WrapWidth characters of s when
// more text follows. A backslash escape pair is never split across lines.
func Wrap(s string) string {
	runes := []rune(s)
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/WrapWidth*len(dotLineBreak))

	count := 0
	for i := 0; i < len(runes); i++ {
		sb.WriteRune(runes[i])
		count++
		if runes[i] == '\\' && i+1 < len(runes) {
			i++
			sb.WriteRune(runes[i])
			count++
		}
		if count >= WrapWidth && i+1 < len(runes) {
			sb.WriteString(dotLineBreak)
			count = 0
		}
	}
	return sb.String()
}

// Label escapes then wraps a node title for a DOT label. Graphviz reads a
// quote that directly follows a backslash as escaped, so a label ending in a
// backslash gets a trailing space to keep the closing quote intact.
func Label(title string) string {
	label := Wrap(EscapeQuotes(title))
	if strings.HasSuffix(label, `\`) {
		label += " "
	}
	return label
}
