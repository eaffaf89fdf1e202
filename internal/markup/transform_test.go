package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standaloneOpen = `<pre><button class="copy-button" onclick="copyCode(this)">Copy</button><code class="language-csharp">`

func TestTransform_InlineTags(t *testing.T) {
	tr := NewTransformer(ModeStandalone)

	got := tr.Transform("<b>Note</b> this is <i>important</i>")
	assert.Equal(t, `<h4 class="summary-heading">Note</h4> this is <span class="summary-emphasis">important</span>`, got)
}

func TestTransform_Braces(t *testing.T) {
	t.Run("Standalone keeps braces", func(t *testing.T) {
		got := NewTransformer(ModeStandalone).Transform("Use {name} here")
		assert.Equal(t, "Use {name} here", got)
	})

	t.Run("Fragment escapes braces", func(t *testing.T) {
		got := NewTransformer(ModeFragment).Transform("Use {name} here")
		assert.Equal(t, "Use &#123;name&#125; here", got)
	})
}

func TestTransform_CodeBlock(t *testing.T) {
	raw := "Example:\n<code>\n    x\n      y\n\n    z\n</code>\nDone.   "

	got := NewTransformer(ModeStandalone).Transform(raw)
	want := "Example:\n" + standaloneOpen + "\nx\n  y\n\nz\n</code></pre>\nDone."
	assert.Equal(t, want, got)
}

func TestTransform_Escaping(t *testing.T) {
	raw := `<code>if (a < b) { Console.WriteLine("it's `+"`"+`ok`+"`"+`"); }</code>`

	got := NewTransformer(ModeStandalone).Transform(raw)
	assert.Contains(t, got, "if (a &lt; b) { Console.WriteLine(&quot;it&#39;s &#96;ok&#96;&quot;); }")
	assert.NotContains(t, got, "<code>if")
}

func TestTransform_ScriptIsNotDoubleEscaped(t *testing.T) {
	tr := NewTransformer(ModeStandalone)
	escaped := `&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;`

	first := tr.Transform(`<code><script>alert("x")</script></code>`)
	assert.Equal(t, standaloneOpen+escaped+"</code></pre>", first)

	// Feeding the escaped text back in must leave the entities untouched.
	second := tr.Transform("<code>" + escaped + "</code>")
	assert.Equal(t, first, second)
	assert.NotContains(t, second, "&amp;")
}

func TestEscapeCode_Idempotent(t *testing.T) {
	fixture := `<a href="x">'q' ` + "`t`" + `</a>`
	once := EscapeCode(fixture)
	assert.Equal(t, once, EscapeCode(once))
}

func TestTransform_MultipleBlocks(t *testing.T) {
	raw := "<code>a()</code> then <code>\n  b()\n</code>"
	got := NewTransformer(ModeStandalone).Transform(raw)

	assert.Equal(t, 2, strings.Count(got, "<pre>"))
	assert.Contains(t, got, standaloneOpen+"a()</code></pre> then "+standaloneOpen+"\nb()\n</code></pre>")
}

func TestTransform_PlaceholderLookalikeIsKept(t *testing.T) {
	tr := NewTransformer(ModeStandalone)

	got := tr.Transform("literal @@CODEBLOCK_7@@ text")
	assert.Equal(t, "literal @@CODEBLOCK_7@@ text", got)

	got = tr.Transform("see @@CODEBLOCK_0@@ and <code>x()</code>")
	assert.Equal(t, 1, strings.Count(got, "<pre>"))
	assert.Equal(t, "see @@CODEBLOCK_0@@ and "+standaloneOpen+"x()</code></pre>", got)
}

func TestTransform_SentinelRunesInProse(t *testing.T) {
	got := NewTransformer(ModeStandalone).Transform("odd \uE0000\uE001 text <code>y()</code>")
	assert.Equal(t, 1, strings.Count(got, "<pre>"))
	assert.Equal(t, "odd 0 text "+standaloneOpen+"y()</code></pre>", got)
}

func TestTransform_FragmentWrapper(t *testing.T) {
	raw := "Call it:\n<code>\n        var w = new Widget { Size = 2 };\n          w.Spin();\n</code>"
	got := NewTransformer(ModeFragment).Transform(raw)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Call it:", lines[0])
	assert.Equal(t, `<div class="code-snippet-wrapper card" data-snippet="0">`, lines[1])
	assert.Equal(t, "<app-copy-button></app-copy-button>", lines[2])
	assert.Equal(t, "<pre><code language=\"csharp\" [highlight]=\"`", lines[3])
	assert.Equal(t, "var w = new Widget &#123; Size = 2 &#125;;", lines[4])
	assert.Equal(t, "  w.Spin();", lines[5])
	assert.Equal(t, "`\"></code></pre>", lines[6])
	assert.Equal(t, "</div>", lines[7])
}

func TestTransform_CustomWrapper(t *testing.T) {
	w := Wrapper{
		OpenTag:  "<pre>",
		CloseTag: "</pre>",
		Render: func(i int, code string) string {
			return "<pre>" + code + "</pre>"
		},
	}
	got := NewTransformerWithWrapper(ModeStandalone, w).Transform("<code>\n   q\n</code>")
	assert.Equal(t, "<pre>\nq\n</pre>", got)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Fragment")
	require.NoError(t, err)
	assert.Equal(t, ModeFragment, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeStandalone, m)

	_, err = ParseMode("pdf")
	assert.ErrorIs(t, err, ErrUnsupportedMode)
}
