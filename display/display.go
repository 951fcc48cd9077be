package display

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/boxtree"
	"github.com/npillmayer/boxtree/rtree"
	"golang.org/x/term"
)

// Params controls console rendering of an index structure.
type Params struct {
	// LineWidth truncates output lines; 0 selects the terminal width when
	// the writer is a terminal, or a default of 100 otherwise.
	LineWidth int
	// Monochrome suppresses per-level coloring.
	Monochrome bool
}

const defaultLineWidth = 100

// levelColors rotate over tree levels, leaves first.
var levelColors = [...]*color.Color{
	color.New(color.FgWhite),
	color.New(color.FgCyan),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgYellow),
}

// Dump writes an indented structural listing of an index to w, one line per
// tree node, colored by node level.
//
// Dump reads node bounds and therefore refreshes stale bound caches; it
// never changes the structure itself.
func Dump(idx *boxtree.Index, w io.Writer, params Params) {
	width := params.LineWidth
	if width <= 0 {
		width = defaultLineWidth
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
				width = tw
			}
		}
	}
	if idx == nil || idx.IsEmpty() {
		fmt.Fprintln(w, "(empty index)")
		return
	}
	idx.WalkNodes(func(info rtree.NodeInfo) bool {
		line := nodeLine(info)
		if utf8.RuneCountInString(line) > width {
			line = string([]rune(line)[:width-1]) + "…"
		}
		if params.Monochrome {
			fmt.Fprintln(w, line)
		} else {
			c := levelColors[info.Level%len(levelColors)]
			fmt.Fprintln(w, c.Sprint(line))
		}
		return true
	})
}

func nodeLine(info rtree.NodeInfo) string {
	indent := strings.Repeat("  ", info.Depth)
	min, max := info.Box.Min(), info.Box.Max()
	span := fmt.Sprintf("(%g %g %g)–(%g %g %g)", min.X, min.Y, min.Z, max.X, max.Y, max.Z)
	if info.Leaf {
		return fmt.Sprintf("%s▪ %s %v", indent, span, info.Item)
	}
	return fmt.Sprintf("%s▸ L%d %s ×%d", indent, info.Level, span, info.ChildCount)
}
