package extractor

import "csdoc/internal/syntax"

// ResolveNamespace returns the name of the first file-scoped namespace
// declaration, falling back to the first block namespace and finally to
// GlobalNamespace. Further declarations are ignored.
func ResolveNamespace(root *syntax.Node) string {
	var fileScoped, block *syntax.Node
	root.Walk(func(n *syntax.Node) bool {
		switch n.Kind {
		case syntax.KindFileScopedNamespace:
			if fileScoped == nil {
				fileScoped = n
			}
		case syntax.KindBlockNamespace:
			if block == nil {
				block = n
			}
		}
		return true
	})

	switch {
	case fileScoped != nil:
		return fileScoped.Name
	case block != nil:
		return block.Name
	default:
		return GlobalNamespace
	}
}
