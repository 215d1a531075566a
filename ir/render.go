package ir

// Render reproduces the document's source bytes exactly: a preorder
// traversal of Roots, emitting each Line's raw text then its line ending,
// and for each Block its header, then its children recursively, then its
// footer if present (always nil in this version, see Open Question (a)).
//
// For any Document d produced by Parse, Parse(d.Render(), profile).Render()
// equals d.Render() (the textual fixed point spec §4.2 requires).
func (d *Document) Render() []byte {
	var buf []byte
	for _, id := range d.Roots {
		buf = appendNode(d, buf, id)
	}
	return buf
}

// String is a convenience wrapper over Render.
func (d *Document) String() string {
	return string(d.Render())
}

func appendNode(d *Document, buf []byte, id NodeID) []byte {
	n := d.Node(id)
	switch n.Kind {
	case LineKind:
		return appendLine(buf, n.Line)
	case BlockKind:
		buf = appendLine(buf, n.Header)
		for _, child := range n.Children {
			buf = appendNode(d, buf, child)
		}
		if n.Footer != nil {
			buf = appendLine(buf, *n.Footer)
		}
		return buf
	default:
		return buf
	}
}

func appendLine(buf []byte, l Line) []byte {
	buf = append(buf, l.Raw.Bytes()...)
	buf = append(buf, l.LineEnding...)
	return buf
}
