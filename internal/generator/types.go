package generator

// Item is the documentation of one source file.
type Item struct {
	Title     string
	Namespace string
	Slug      string   // anchor id, derived from Title
	Summaries []string // rendered HTML, declaration order
}

// Stats counts what a generation run processed.
type Stats struct {
	FilesScanned    int
	FilesDocumented int
	Summaries       int
}
