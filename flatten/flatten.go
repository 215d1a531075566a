// Package flatten walks a parsed ir.Document into an ordered sequence of
// comparable lines, each carrying a stable identity (content key,
// occurrence key) the diff engine can align on, plus enough addressing
// (path, span) to anchor grouped edits back into the tree.
package flatten

import (
	"hash/fnv"
	"strconv"

	"github.com/confdiff/confdiff/dialect"
	"github.com/confdiff/confdiff/ir"
	"github.com/confdiff/confdiff/normalize"
)

// CompLine is one line of the comparable stream.
type CompLine struct {
	Normalized string // text after the normalization pipeline; used for matching
	Original   string // the unmodified raw text

	ContentKey    uint64 // hash of Normalized; the Myers equality predicate
	OccurrenceKey uint64 // ContentKey + per-parent duplicate index

	Path   ir.Path
	Span   ir.Span
	Trivia ir.Trivia

	KeyHint    string
	HasKeyHint bool
}

// Flatten walks doc in preorder (every Line, including Block headers),
// applying opts to build each line's comparable text, and profile to
// extract an optional key hint. Lines dropped by opts (ignore_comments /
// ignore_blank_lines) are omitted from the returned stream but remain in
// doc unmodified.
func Flatten(doc *ir.Document, profile dialect.Profile, opts normalize.Options) []CompLine {
	var out []CompLine
	counts := map[string]map[uint64]int{}

	emit := func(line ir.Line, path ir.Path) {
		raw := line.Raw.Text()
		normalized, drop := normalize.Apply(opts, line.Trivia, raw)
		if drop {
			return
		}

		contentKey := hashText(normalized)

		parentKey := pathKey(path[:len(path)-1])
		bucket := counts[parentKey]
		if bucket == nil {
			bucket = map[uint64]int{}
			counts[parentKey] = bucket
		}
		dupIdx := bucket[contentKey]
		bucket[contentKey] = dupIdx + 1

		cl := CompLine{
			Normalized:    normalized,
			Original:      raw,
			ContentKey:    contentKey,
			OccurrenceKey: hashOccurrence(contentKey, dupIdx),
			Path:          append(ir.Path{}, path...),
			Span:          line.Span,
			Trivia:        line.Trivia,
		}
		if line.Parsed != nil {
			cl.KeyHint, cl.HasKeyHint = profile.KeyHint(raw, line.Parsed.Head, line.Parsed.Args)
		}
		out = append(out, cl)
	}

	var walk func(id ir.NodeID, path ir.Path)
	walk = func(id ir.NodeID, path ir.Path) {
		n := doc.Node(id)
		switch n.Kind {
		case ir.LineKind:
			emit(n.Line, path)
		case ir.BlockKind:
			emit(n.Header, path)
			for i, child := range n.Children {
				childPath := append(append(ir.Path{}, path...), i)
				walk(child, childPath)
			}
		}
	}

	for i, root := range doc.Roots {
		walk(root, ir.Path{i})
	}
	return out
}

func hashText(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

func hashOccurrence(contentKey uint64, dupIdx int) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putUint64(buf[:], contentKey)
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(strconv.Itoa(dupIdx)))
	return h.Sum64()
}

func putUint64(buf []byte, v uint64) {
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * uint(i)))
	}
}

// pathKey renders a Path into a map key suitable for grouping by parent.
func pathKey(p ir.Path) string {
	b := make([]byte, 0, len(p)*4)
	for i, idx := range p {
		if i > 0 {
			b = append(b, '/')
		}
		b = strconv.AppendInt(b, int64(idx), 10)
	}
	return string(b)
}
