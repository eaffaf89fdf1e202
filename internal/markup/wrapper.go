package markup

import "fmt"

// Wrapper renders one extracted code sample. OpenTag and CloseTag mark the
// lines between which indentation is normalized.
type Wrapper struct {
	OpenTag  string
	CloseTag string
	Render   func(index int, code string) string
}

// StandaloneWrapper puts the copy button inside the <pre> so the page
// script can find the block with closest('pre').
var StandaloneWrapper = Wrapper{
	OpenTag:  "<pre>",
	CloseTag: "</pre>",
	Render: func(_ int, code string) string {
		return `<pre><button class="copy-button" onclick="copyCode(this)">Copy</button>` +
			`<code class="language-csharp">` + code + `</code></pre>`
	},
}

// FragmentWrapper binds the code as a template literal. The copy-button
// component locates the <pre> inside its enclosing wrapper itself.
var FragmentWrapper = Wrapper{
	OpenTag:  "<pre>",
	CloseTag: "</pre>",
	Render: func(index int, code string) string {
		return fmt.Sprintf(`<div class="code-snippet-wrapper card" data-snippet="%d">`, index) + "\n" +
			`<app-copy-button></app-copy-button>` + "\n" +
			"<pre><code language=\"csharp\" [highlight]=\"`" + code + "`\"></code></pre>\n" +
			`</div>`
	},
}

// WrapperFor returns the code-block template used by mode.
func WrapperFor(m Mode) Wrapper {
	if m == ModeFragment {
		return FragmentWrapper
	}
	return StandaloneWrapper
}
