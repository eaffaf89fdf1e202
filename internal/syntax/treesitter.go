package syntax

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
)

// declarationKinds maps tree-sitter C# node types onto the kinds the
// extractor understands. Every other node type is transparent.
var declarationKinds = map[string]Kind{
	"file_scoped_namespace_declaration": KindFileScopedNamespace,
	"namespace_declaration":             KindBlockNamespace,
	"class_declaration":                 KindType,
	"struct_declaration":                KindType,
	"interface_declaration":             KindType,
	"record_declaration":                KindType,
	"record_struct_declaration":         KindType,
	"method_declaration":                KindMethod,
	"property_declaration":              KindProperty,
}

// TreeSitterProvider parses C# with the tree-sitter grammar.
// A fresh parser is created per call, so one provider can be shared across goroutines.
type TreeSitterProvider struct{}

func NewTreeSitterProvider() *TreeSitterProvider {
	return &TreeSitterProvider{}
}

func (p *TreeSitterProvider) Parse(ctx context.Context, source []byte) (*Node, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(csharp.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}

	root := tree.RootNode()
	unit := &Node{Kind: KindUnit}
	unit.Children = convertChildren(root, source)
	return unit, nil
}

func convertChildren(parent *sitter.Node, source []byte) []*Node {
	var out []*Node
	for i := 0; i < int(parent.NamedChildCount()); i++ {
		child := parent.NamedChild(i)
		if child == nil || child.Type() == "comment" {
			continue
		}

		kind, ok := declarationKinds[child.Type()]
		if !ok {
			out = append(out, convertChildren(child, source)...)
			continue
		}

		n := &Node{
			Kind:            kind,
			LeadingComments: leadingComments(child, source),
		}
		if nameNode := child.ChildByFieldName("name"); nameNode != nil {
			n.Name = nameNode.Content(source)
		}
		n.Children = convertChildren(child, source)
		out = append(out, n)
	}
	return out
}

// leadingComments collects the comment trivia in front of node: every
// comment between the previous code token and the declaration. Blank lines
// and preprocessor directives do not end the block.
func leadingComments(node *sitter.Node, source []byte) []string {
	var lines []string
	for prev := node.PrevSibling(); prev != nil; prev = prev.PrevSibling() {
		switch {
		case prev.Type() == "comment":
			lines = append([]string{strings.TrimSpace(prev.Content(source))}, lines...)
		case isDirective(prev.Type()):
		default:
			return lines
		}
	}
	return lines
}

// isDirective reports whether t is a preprocessor line (#if, #region, ...).
// using and extern alias directives are code.
func isDirective(t string) bool {
	if strings.HasPrefix(t, "preproc_") {
		return true
	}
	switch t {
	case "using_directive", "extern_alias_directive":
		return false
	}
	return strings.HasSuffix(t, "_directive")
}
