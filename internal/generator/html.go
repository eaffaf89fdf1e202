package generator

import (
	"fmt"
	"regexp"
	"strings"

	"csdoc/internal/markup"

	"golang.org/x/net/html"
)

// ProductLabel prefixes the display title of every document.
const ProductLabel = "API Documentation - "

// DefaultRoute is the SPA route fragment-mode TOC links point at.
const DefaultRoute = "/documentation"

var upperRe = regexp.MustCompile(`[A-Z]`)

// HTMLRenderer emits the final document for one render mode.
type HTMLRenderer struct {
	mode  markup.Mode
	route string
}

// NewHTMLRenderer creates a renderer. route is only used in fragment mode;
// empty means DefaultRoute.
func NewHTMLRenderer(mode markup.Mode, route string) *HTMLRenderer {
	if route == "" {
		route = DefaultRoute
	}
	return &HTMLRenderer{mode: mode, route: route}
}

// DisplayTitle turns a folder name like "MyProject" into
// "API Documentation - My Project".
func DisplayTitle(folder string) string {
	spaced := upperRe.ReplaceAllString(folder, " $0")
	return ProductLabel + strings.TrimSpace(spaced)
}

// Render builds the document. Items are expected to be assembled already.
func (r *HTMLRenderer) Render(items []Item, projectName string) string {
	if r.mode == markup.ModeFragment {
		return r.renderFragment(items, projectName)
	}
	return r.renderStandalone(items, projectName)
}

func (r *HTMLRenderer) renderStandalone(items []Item, projectName string) string {
	title := r.escape(DisplayTitle(projectName))

	parts := []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<head>",
		`<meta charset="utf-8">`,
		`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		"<title>" + title + "</title>",
		"<style>" + pageStyle + "</style>",
		"<script>" + copyScript + "</script>",
		"</head>",
		"<body>",
		"<header><h1>" + title + "</h1></header>",
		`<div class="layout">`,
		`<nav class="toc">`,
		"<h2>Contents</h2>",
		"<ul>",
	}
	for _, it := range items {
		parts = append(parts, fmt.Sprintf(`<li><a href="#%s">%s</a></li>`, r.escape(it.Slug), r.escape(it.Title)))
	}
	parts = append(parts, "</ul>", "</nav>", "<main>")
	parts = append(parts, r.sections(items)...)
	parts = append(parts, "</main>", "</div>", "</body>", "</html>")
	return strings.Join(parts, "\n") + "\n"
}

func (r *HTMLRenderer) renderFragment(items []Item, projectName string) string {
	parts := []string{
		`<div class="documentation">`,
		"<h1>" + r.escape(DisplayTitle(projectName)) + "</h1>",
		`<nav class="toc">`,
		"<ul>",
	}
	for _, it := range items {
		parts = append(parts, fmt.Sprintf(`<li><a [routerLink]="['%s']" fragment="%s">%s</a></li>`,
			r.escape(r.route), r.escape(it.Slug), r.escape(it.Title)))
	}
	parts = append(parts, "</ul>", "</nav>")
	parts = append(parts, r.sections(items)...)
	parts = append(parts, "</div>")
	return strings.Join(parts, "\n") + "\n"
}

func (r *HTMLRenderer) sections(items []Item) []string {
	var parts []string
	for _, it := range items {
		parts = append(parts,
			fmt.Sprintf(`<section id="%s">`, r.escape(it.Slug)),
			"<h2>"+r.escape(it.Title)+"</h2>",
			`<p class="namespace">Namespace: `+r.escape(it.Namespace)+"</p>",
		)
		for _, s := range it.Summaries {
			parts = append(parts, `<div class="summary">`+s+"</div>")
		}
		parts = append(parts, "</section>")
	}
	return parts
}

// escape prepares plain text for the active mode.
func (r *HTMLRenderer) escape(s string) string {
	s = html.EscapeString(s)
	if r.mode == markup.ModeFragment {
		s = strings.NewReplacer("{", "&#123;", "}", "&#125;").Replace(s)
	}
	return s
}

