package report

import (
	"fmt"

	"github.com/blackwell-systems/treedoc/internal/classify"
	"github.com/blackwell-systems/treedoc/internal/walker"
)

// Tree renders the walked tree in the report's box-drawing format: one line
// per entry, text files annotated with emoji, size, and brief.
func Tree(root *walker.Node) []string {
	lines := []string{root.Name + "/"}
	renderChildren(&lines, root, "")
	return lines
}

func renderChildren(lines *[]string, node *walker.Node, prefix string) {
	if node.Denied {
		*lines = append(*lines, prefix+"[Permission Denied]")
		return
	}

	for i, child := range node.Children {
		connector := "├── "
		childPrefix := prefix + "│   "
		if i == len(node.Children)-1 {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		*lines = append(*lines, prefix+connector+renderEntry(child))
		if child.IsDir {
			renderChildren(lines, child, childPrefix)
		}
	}
}

func renderEntry(node *walker.Node) string {
	if node.IsDir {
		return "📁 " + node.Name + "/"
	}
	size := FormatSize(node.Size)
	if node.IsText {
		return fmt.Sprintf("%s %s (%s) - %s",
			classify.Emoji(classify.NormalizeExt(node.Name)), node.Name, size, node.Brief)
	}
	return fmt.Sprintf("%s (%s)", node.Name, size)
}
