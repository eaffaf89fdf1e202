package extractor

import (
	"regexp"
	"strings"

	"csdoc/internal/syntax"
)

var (
	summaryRe = regexp.MustCompile(`(?s)<summary\b[^>]*>(.*?)</summary>`)

	// "/// " is listed first so it wins over "///" at the same position.
	markerStripper = strings.NewReplacer("/// ", "", "///", "")
	tagStripper    = strings.NewReplacer("<summary>", "", "</summary>", "")
)

// ExtractSummaries walks the tree depth-first and returns the summary text
// of every documented type, method and property, in encounter order.
func ExtractSummaries(root *syntax.Node) []string {
	var summaries []string
	root.Walk(func(n *syntax.Node) bool {
		switch n.Kind {
		case syntax.KindType, syntax.KindMethod, syntax.KindProperty:
			if s, ok := summaryOf(n); ok {
				summaries = append(summaries, s)
			}
		}
		return true
	})
	return summaries
}

func summaryOf(n *syntax.Node) (string, bool) {
	block := docCommentBlock(n.LeadingComments)
	if block == "" {
		return "", false
	}

	m := summaryRe.FindStringSubmatch(block)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return "", false
	}

	text := markerStripper.Replace(m[1])
	text = tagStripper.Replace(text)
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	return text, true
}

// docCommentBlock joins the "///" lines of the leading trivia. Ordinary
// comments interleaved with them are not part of the documentation.
func docCommentBlock(comments []string) string {
	var lines []string
	for _, c := range comments {
		if strings.HasPrefix(c, "///") {
			lines = append(lines, c)
		}
	}
	return strings.Join(lines, "\n")
}
