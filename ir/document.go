package ir

import "github.com/confdiff/confdiff/internal/arena"

// Document is a parsed configuration: an arena of nodes plus an ordered
// list of root node identifiers. The Document owns its arena exclusively;
// there is no aliasing across documents (see spec §5 resource model).
type Document struct {
	// DialectTag names the profile used to parse this document (e.g.
	// "generic", "eos"). Purely informational.
	DialectTag string

	// DetectedNewline is the line ending of the first terminated line
	// encountered, or "" if the source had no terminated lines. It is
	// metadata only — the renderer always replays each Line's own
	// LineEnding, never DetectedNewline, so mixed-newline input still
	// round-trips exactly.
	DetectedNewline string

	// Original holds the exact bytes this Document was parsed from.
	// Optional: a Document built incrementally outside Parse may leave
	// this nil without affecting Render correctness.
	Original []byte

	arena arena.ByteArena
	nodes []Node
	Roots []NodeID
}

// Node returns the node at id. Panics if id is out of range — an
// out-of-range NodeID is an internal invariant violation (spec §7),
// never a recoverable condition.
func (d *Document) Node(id NodeID) Node {
	return d.nodes[id]
}

// Len returns the number of nodes in the document's arena.
func (d *Document) Len() int { return len(d.nodes) }

// addNode appends node to the arena and returns its newly assigned id.
func (d *Document) addNode(n Node) NodeID {
	id := NodeID(len(d.nodes))
	d.nodes = append(d.nodes, n)
	return id
}

// Resolve walks path from the document roots and returns the node id it
// names, or false if the path doesn't resolve (out of range at any step).
func (d *Document) Resolve(path Path) (NodeID, bool) {
	if len(path) == 0 {
		return 0, false
	}
	i := path[0]
	if i < 0 || i >= len(d.Roots) {
		return 0, false
	}
	id := d.Roots[i]
	for _, i := range path[1:] {
		n := d.Node(id)
		if n.Kind != BlockKind || i < 0 || i >= len(n.Children) {
			return 0, false
		}
		id = n.Children[i]
	}
	return id, true
}

// PathOf returns the path from the document roots to id, by preorder
// search, and whether id was found at all.
func (d *Document) PathOf(id NodeID) (Path, bool) {
	for i, root := range d.Roots {
		if p, ok := d.findPath(root, id, Path{i}); ok {
			return p, true
		}
	}
	return nil, false
}

func (d *Document) findPath(at, target NodeID, path Path) (Path, bool) {
	if at == target {
		return path, true
	}
	n := d.Node(at)
	if n.Kind != BlockKind {
		return nil, false
	}
	for i, child := range n.Children {
		childPath := append(append(Path{}, path...), i)
		if p, ok := d.findPath(child, target, childPath); ok {
			return p, true
		}
	}
	return nil, false
}
