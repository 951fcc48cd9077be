package boxtree

import (
	"fmt"
	"io"

	"github.com/npillmayer/boxtree/rtree"
)

// Tree2Dot outputs the internal structure of an Index in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot(idx *Index, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	idx.WalkNodes(func(info rtree.NodeInfo) bool {
		styles := nodeDotStyles(info.Leaf)
		if info.Leaf {
			label := fmt.Sprintf("%v\\n%s", info.Item, boxDotLabel(info))
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", info.ID, label, styles)
		} else {
			label := fmt.Sprintf("L%d ×%d\\n%s", info.Level, info.ChildCount, boxDotLabel(info))
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", info.ID, label, styles)
		}
		if info.ParentID != 0 {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", info.ParentID, info.ID)
		}
		return true
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func boxDotLabel(info rtree.NodeInfo) string {
	min, max := info.Box.Min(), info.Box.Max()
	return fmt.Sprintf("(%.3g %.3g %.3g)–(%.3g %.3g %.3g)",
		min.X, min.Y, min.Z, max.X, max.Y, max.Z)
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
