package markup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	codeRe        = regexp.MustCompile(`(?s)<code>(.*?)</code>`)
	placeholderRe = regexp.MustCompile("\uE000(\\d+)\uE001")

	codeEscaper = strings.NewReplacer(
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"`", "&#96;",
	)

	inlineTags = []string{
		"<b>", `<h4 class="summary-heading">`,
		"</b>", "</h4>",
		"<i>", `<span class="summary-emphasis">`,
		"</i>", "</span>",
	}
	// Placeholders are delimited by private-use runes; any already in the
	// input are dropped so prose can never address a stored block.
	sentinelRunes = []string{
		"\uE000", "",
		"\uE001", "",
	}
	braceEntities = []string{
		"{", "&#123;",
		"}", "&#125;",
	}
)

// Transformer turns a raw summary into embeddable HTML for one render mode.
// It keeps no state between calls.
type Transformer struct {
	wrapper  Wrapper
	replacer *strings.Replacer
}

// NewTransformer returns a transformer using the default wrapper of mode.
func NewTransformer(m Mode) *Transformer {
	return NewTransformerWithWrapper(m, WrapperFor(m))
}

// NewTransformerWithWrapper lets callers supply their own code-block template.
func NewTransformerWithWrapper(m Mode, w Wrapper) *Transformer {
	pairs := append(append([]string(nil), sentinelRunes...), inlineTags...)
	if m == ModeFragment {
		// The SPA template engine would interpolate raw braces.
		pairs = append(pairs, braceEntities...)
	}
	return &Transformer{
		wrapper:  w,
		replacer: strings.NewReplacer(pairs...),
	}
}

// Transform runs the four stages in order: inline substitution, code
// extraction behind placeholders, placeholder expansion, and indentation
// normalization. Code must be protected before any line is reformatted.
func (t *Transformer) Transform(raw string) string {
	text := t.replacer.Replace(raw)

	var blocks []string
	text = codeRe.ReplaceAllStringFunc(text, func(match string) string {
		content := codeRe.FindStringSubmatch(match)[1]
		blocks = append(blocks, EscapeCode(content))
		return fmt.Sprintf("\uE000%d\uE001", len(blocks)-1)
	})

	text = placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		idx, err := strconv.Atoi(placeholderRe.FindStringSubmatch(match)[1])
		if err != nil || idx >= len(blocks) {
			return match
		}
		return t.wrapper.Render(idx, blocks[idx])
	})

	return NormalizeIndentation(text, t.wrapper.OpenTag, t.wrapper.CloseTag)
}

// EscapeCode escapes the characters that are unsafe inside a code sample.
// Ampersands are left alone, so escaping twice changes nothing.
func EscapeCode(s string) string {
	return codeEscaper.Replace(s)
}
