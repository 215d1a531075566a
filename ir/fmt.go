package ir

import (
	"fmt"
	"io"
)

// Format writes a textual representation of the receiver, providing
// improved fmt.Printf display. Produces a multi-line, indented tree dump
// under `%+v`, a terse one-liner otherwise.
func (d *Document) Format(f fmt.State, c rune) {
	if f.Flag('+') {
		fmt.Fprintf(f, "Document dialect:%v roots:%v nodes:%v\n", d.DialectTag, len(d.Roots), len(d.nodes))
		for i, id := range d.Roots {
			if i > 0 {
				io.WriteString(f, "\n")
			}
			formatNode(f, d, id, 0)
		}
		return
	}
	fmt.Fprintf(f, "Document{dialect:%v roots:%v nodes:%v}", d.DialectTag, len(d.Roots), len(d.nodes))
}

func formatNode(f fmt.State, d *Document, id NodeID, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(f, "  ")
	}
	n := d.Node(id)
	switch n.Kind {
	case LineKind:
		fmt.Fprintf(f, "#%v %v %q", id, n.Line.Trivia, n.Line.Raw.Text())
	case BlockKind:
		fmt.Fprintf(f, "#%v Block %q (%v children)", id, n.Header.Raw.Text(), len(n.Children))
		for _, child := range n.Children {
			io.WriteString(f, "\n")
			formatNode(f, d, child, depth+1)
		}
	}
}

// Format writes a terse representation of a Trivia constant; String
// already provides this, Format just routes the common verbs to it.
func (t Trivia) Format(f fmt.State, c rune) {
	switch c {
	case 's', 'v', 'q':
		io.WriteString(f, t.String())
	default:
		fmt.Fprintf(f, "!(ERROR invalid format verb %%%s)", string(c))
	}
}
