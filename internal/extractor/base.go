package extractor

// GlobalNamespace is reported for files without any namespace declaration.
const GlobalNamespace = "Global Namespace"

// FileResult is what one source file contributes to the document.
type FileResult struct {
	Title     string // base name without extension
	Namespace string // resolved namespace or GlobalNamespace
	// Summaries holds the raw, marker-stripped summary text of every
	// documented declaration in encounter order.
	Summaries []string
}
