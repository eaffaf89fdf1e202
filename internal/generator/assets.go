package generator

const pageStyle = `
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; color: #1f2328; background: #fff; }
header { background: #24292f; color: #fff; padding: 1.5rem 2rem; }
header h1 { margin: 0; font-size: 1.6rem; }
.layout { display: flex; align-items: flex-start; }
nav.toc { position: sticky; top: 0; min-width: 14rem; max-height: 100vh; overflow-y: auto; padding: 1rem 1.5rem; border-right: 1px solid #d0d7de; }
nav.toc ul { list-style: none; padding: 0; margin: 0; }
nav.toc li { margin: 0.3rem 0; }
nav.toc a { color: #0969da; text-decoration: none; }
main { flex: 1; padding: 1rem 2rem; }
section { border-bottom: 1px solid #d0d7de; padding-bottom: 1rem; margin-bottom: 1.5rem; }
.namespace { color: #57606a; font-size: 0.9rem; margin-top: -0.5rem; }
.summary { margin: 0.75rem 0; white-space: pre-line; }
.summary-heading { margin: 0.5rem 0 0.25rem; }
.summary-emphasis { font-style: italic; }
pre { position: relative; background: #f6f8fa; border: 1px solid #d0d7de; border-radius: 6px; padding: 1rem; overflow-x: auto; white-space: pre; }
.copy-button { position: absolute; top: 0.5rem; right: 0.5rem; font-size: 0.75rem; cursor: pointer; }
.copy-button.copied { background: #2da44e; color: #fff; }
`

const copyScript = `
function copyCode(button) {
  var pre = button.closest('pre');
  if (!pre) { return; }
  var code = pre.querySelector('code');
  var text = (code || pre).textContent;
  navigator.clipboard.writeText(text).then(function () {
    var label = button.textContent;
    button.textContent = 'Copied!';
    button.classList.add('copied');
    setTimeout(function () {
      button.textContent = label;
      button.classList.remove('copied');
    }, 2000);
  });
}
`
