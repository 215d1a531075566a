// Package plan translates a Diff into a transport-neutral apply plan:
// a flat, ordered list of actions a caller can hand to whatever
// mechanism actually talks to a device, without that mechanism needing
// to understand diff internals.
//
// There is no teacher or pack analogue for this package (scandown never
// produces an apply plan); it is built fresh from spec.md §4.8 — see
// DESIGN.md.
package plan

import (
	"sort"
	"strconv"
	"strings"

	"github.com/confdiff/confdiff/diff"
	"github.com/confdiff/confdiff/ir"
)

// ActionKind is the kind of a plan action.
type ActionKind string

// Recognized action kinds.
const (
	ReplaceBlock        ActionKind = "replace_block"
	ApplyLineEditsUnder ActionKind = "apply_line_edits_under_context"
)

// Action is one entry of a Plan.
type Action struct {
	Kind ActionKind `json:"kind"`

	// Path is the block path being rewritten, for ReplaceBlock.
	Path ir.Path `json:"path,omitempty"`
	// NewBlockText is the rendered replacement content for ReplaceBlock:
	// the block's new children, one per line, in order. The block's own
	// header is left untouched by this action (unchanged, or it would
	// have surfaced as its own edit one level up) — only its body is
	// replaced.
	NewBlockText string `json:"new_block_text,omitempty"`

	// ParentPath is the parent block path the edits below apply under,
	// for ApplyLineEditsUnder.
	ParentPath ir.Path `json:"parent_path,omitempty"`
	// Edits is the subsequence of grouped diff edits anchored under
	// ParentPath, for ApplyLineEditsUnder.
	Edits []diff.Edit `json:"edits,omitempty"`
}

// Plan is a flat, ordered list of actions, ordered by left-document
// preorder of parent path (spec §4.8).
type Plan struct {
	Actions []Action `json:"actions"`
}

type bucket struct {
	parent       ir.Path
	edits        []diff.Edit
	leftCovered  map[int]bool
	rightCovered map[int]bool
	leftTotal    int
	rightTotal   int
}

// Build groups a Diff's edits by the sibling level they apply under and
// chooses, per level, between a single replace_block action (when the
// combined edits cover every child of that level) and an
// apply_line_edits_under_context action (otherwise).
func Build(d *diff.Diff) *Plan {
	buckets := map[string]*bucket{}
	var order []ir.Path

	for _, e := range d.Edits {
		key := pathKey(e.LeftParent)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				parent:       e.LeftParent,
				leftCovered:  map[int]bool{},
				rightCovered: map[int]bool{},
			}
			buckets[key] = b
			order = append(order, e.LeftParent)
		}
		b.edits = append(b.edits, e)
		for _, i := range e.LeftChildIndices {
			b.leftCovered[i] = true
		}
		for _, i := range e.RightChildIndices {
			b.rightCovered[i] = true
		}
		if e.LeftSiblingCount > b.leftTotal {
			b.leftTotal = e.LeftSiblingCount
		}
		if e.RightSiblingCount > b.rightTotal {
			b.rightTotal = e.RightSiblingCount
		}
	}

	sort.Slice(order, func(i, j int) bool { return pathLess(order[i], order[j]) })

	var actions []Action
	for _, parent := range order {
		b := buckets[pathKey(parent)]
		if len(parent) > 0 && fullyCovers(b.leftCovered, b.leftTotal) && fullyCovers(b.rightCovered, b.rightTotal) {
			actions = append(actions, Action{
				Kind:         ReplaceBlock,
				Path:         parent,
				NewBlockText: renderNewBlockText(b.edits),
			})
			continue
		}
		actions = append(actions, Action{
			Kind:       ApplyLineEditsUnder,
			ParentPath: parent,
			Edits:      b.edits,
		})
	}

	return &Plan{Actions: actions}
}

func fullyCovers(covered map[int]bool, total int) bool {
	if total == 0 {
		return false
	}
	for i := 0; i < total; i++ {
		if !covered[i] {
			return false
		}
	}
	return true
}

// renderNewBlockText concatenates every right-hand line a replace_block
// action's edits contribute, in edit order, one per line.
func renderNewBlockText(edits []diff.Edit) string {
	var lines []string
	for _, e := range edits {
		for _, lv := range e.RightLines {
			lines = append(lines, lv.Original)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// pathKey renders a Path into a map key for bucket grouping (equality
// only; ordering is done on the Path values themselves by pathLess).
func pathKey(p ir.Path) string {
	var b strings.Builder
	for i, idx := range p {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(strconv.Itoa(idx))
	}
	return b.String()
}

func pathLess(p, q ir.Path) bool {
	for i := 0; i < len(p) && i < len(q); i++ {
		if p[i] != q[i] {
			return p[i] < q[i]
		}
	}
	return len(p) < len(q)
}
