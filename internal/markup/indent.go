package markup

import (
	"strings"
	"unicode"
)

// NormalizeIndentation dedents every run of lines strictly between a line
// containing openTag and one containing closeTag by the run's minimum
// indentation. All other lines are only right-trimmed.
func NormalizeIndentation(text, openTag, closeTag string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	var run []string
	inBlock := false
	for _, line := range lines {
		switch {
		case inBlock && strings.Contains(line, closeTag):
			out = append(out, dedent(run)...)
			out = append(out, trimRight(line))
			run = nil
			inBlock = opensBlock(line, openTag, closeTag)
		case inBlock:
			run = append(run, line)
		default:
			out = append(out, trimRight(line))
			inBlock = opensBlock(line, openTag, closeTag)
		}
	}
	if inBlock {
		// unterminated block
		out = append(out, dedent(run)...)
	}
	return strings.Join(out, "\n")
}

// opensBlock reports whether the last opening tag on line is left unclosed.
func opensBlock(line, openTag, closeTag string) bool {
	i := strings.LastIndex(line, openTag)
	return i >= 0 && !strings.Contains(line[i:], closeTag)
}

func dedent(run []string) []string {
	minIndent := -1
	for _, l := range run {
		if isBlank(l) {
			continue
		}
		if w := indentWidth(l); minIndent < 0 || w < minIndent {
			minIndent = w
		}
	}
	if minIndent < 0 {
		minIndent = 0
	}

	out := make([]string, len(run))
	for i, l := range run {
		if isBlank(l) {
			continue
		}
		out[i] = l[min(indentWidth(l), minIndent):]
	}
	return out
}

func indentWidth(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
