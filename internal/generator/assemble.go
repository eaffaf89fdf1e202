package generator

import (
	"regexp"
	"sort"
	"strings"

	"github.com/serenize/snaker"
)

var wordSplitRe = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Assemble drops items without summaries, fills in slugs and sorts by title.
// Titles are compared ordinally; equal titles keep their input order.
func Assemble(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if len(it.Summaries) == 0 {
			continue
		}
		it.Slug = Slug(it.Title)
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Title < out[j].Title
	})
	return out
}

// Slug converts a title to kebab case ("WidgetFactory" -> "widget-factory").
// Different titles may produce the same slug; no suffix is added.
func Slug(title string) string {
	var parts []string
	for _, word := range wordSplitRe.Split(title, -1) {
		if word == "" {
			continue
		}
		parts = append(parts, strings.ReplaceAll(snaker.CamelToSnake(word), "_", "-"))
	}
	return strings.ToLower(strings.Join(parts, "-"))
}
