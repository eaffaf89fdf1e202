package syntax

import "context"

// Kind classifies a declaration node. The set is closed: anything the
// extractor does not care about is folded into its parent.
type Kind int

const (
	KindUnit Kind = iota // compilation unit (tree root)
	KindFileScopedNamespace
	KindBlockNamespace
	KindType
	KindMethod
	KindProperty
)

func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindFileScopedNamespace:
		return "file_scoped_namespace"
	case KindBlockNamespace:
		return "block_namespace"
	case KindType:
		return "type"
	case KindMethod:
		return "method"
	case KindProperty:
		return "property"
	default:
		return "unknown"
	}
}

// Node is a declaration in a parsed source file.
type Node struct {
	Kind Kind
	Name string
	// LeadingComments holds the comment lines between the previous code
	// token and the declaration, in source order, exactly as written
	// (markers included).
	LeadingComments []string
	Children        []*Node
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Provider turns source text into a declaration tree.
type Provider interface {
	Parse(ctx context.Context, source []byte) (*Node, error)
}
