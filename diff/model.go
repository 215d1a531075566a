// Package diff implements the deterministic structural diff engine: it
// aligns two documents one sibling level at a time (the root list, then
// each matched Block's children) under a configurable order policy
// using a classic Myers shortest-edit-script alignment, groups the raw
// edits into block-aware Insert/Delete/Replace operations, and emits
// stable-coded findings for anything that makes the result uncertain.
//
// There is no teacher or pack analogue for this package (scandown never
// diffs); the algorithm is written from the classic Myers 1986 O(ND)
// formulation per spec.md's explicit determinism contract, not adapted
// from any example — see DESIGN.md.
package diff

import (
	"github.com/confdiff/confdiff/ir"
	"github.com/confdiff/confdiff/normalize"
)

// OrderPolicy selects how sibling order is treated during alignment.
type OrderPolicy string

// Recognized order policies.
const (
	Ordered     OrderPolicy = "ordered"
	Unordered   OrderPolicy = "unordered"
	KeyedStable OrderPolicy = "keyed-stable"
)

// OrderPolicyConfig wraps the selected policy; a struct (rather than a
// bare string) so it can grow configuration knobs without breaking the
// library surface.
type OrderPolicyConfig struct {
	Policy OrderPolicy
}

// EditKind is the kind of a grouped edit operation.
type EditKind string

// Recognized edit kinds.
const (
	Insert  EditKind = "insert"
	Delete  EditKind = "delete"
	Replace EditKind = "replace"
)

// Anchor locates a grouped edit within one of the two input documents.
type Anchor struct {
	Path ir.Path `json:"path"`
	Span ir.Span `json:"span"`
}

// LineView is a single line as it appears within a grouped edit.
type LineView struct {
	Original   string  `json:"original"`
	Normalized string  `json:"normalized"`
	Path       ir.Path `json:"path"`
	Span       ir.Span `json:"span"`
	Trivia     ir.Trivia `json:"trivia"`
	KeyHint    string  `json:"key_hint,omitempty"`
	HasKeyHint bool    `json:"-"`
}

// Edit is one grouped Insert/Delete/Replace operation.
type Edit struct {
	Kind EditKind `json:"kind"`

	LeftAnchor  *Anchor `json:"left_anchor,omitempty"`  // nil for Insert
	RightAnchor *Anchor `json:"right_anchor,omitempty"` // nil for Delete

	LeftLines  []LineView `json:"left_lines"`  // lines removed/replaced from the left document
	RightLines []LineView `json:"right_lines"` // lines added/replacing, from the right document

	// LeftParent/RightParent locate the sibling level this edit's
	// immediate children belong to (an empty Path is the document root
	// level); LeftChildIndices/RightChildIndices are the immediate-child
	// positions at that level this edit consumes; LeftSiblingCount/
	// RightSiblingCount are the total immediate-child counts at that
	// level. Together these let the Plan Builder decide replace_block
	// vs apply_line_edits_under_context from the Diff alone, without
	// re-consulting the original documents (spec §4.8, §6). They're
	// plan-internal addressing, not part of the public Diff JSON schema.
	LeftParent        ir.Path `json:"-"`
	RightParent       ir.Path `json:"-"`
	LeftChildIndices  []int   `json:"-"`
	RightChildIndices []int   `json:"-"`
	LeftSiblingCount  int     `json:"-"`
	RightSiblingCount int     `json:"-"`
}

// CountLeft and CountRight mirror the atomic counts the edit groups,
// matching spec §4.6's count_left/count_right.
func (e Edit) CountLeft() int  { return len(e.LeftChildIndices) }
func (e Edit) CountRight() int { return len(e.RightChildIndices) }

// FindingCode names a stable uncertainty signal.
type FindingCode string

// Recognized finding codes.
const (
	UnknownUnparsedConstruct FindingCode = "unknown_unparsed_construct"
	AmbiguousKeyMatch        FindingCode = "ambiguous_key_match"
	DiffUnreliableRegion     FindingCode = "diff_unreliable_region"
)

// Finding is a stable-coded, never-fatal uncertainty signal attached to a
// Diff. Findings never block producing a Diff; they're the single
// uncertainty channel (spec §7).
type Finding struct {
	Code      FindingCode `json:"code"`
	LeftPath  *ir.Path    `json:"left_path,omitempty"`
	RightPath *ir.Path    `json:"right_path,omitempty"`
	Message   string      `json:"message"`
}

// Stats counts grouped (not atomic) operations.
type Stats struct {
	Inserts  int `json:"inserts"`
	Deletes  int `json:"deletes"`
	Replaces int `json:"replaces"`
}

// Any returns the total grouped operation count.
func (s Stats) Any() int { return s.Inserts + s.Deletes + s.Replaces }

// Diff is the full result of comparing two documents.
type Diff struct {
	HasChanges         bool              `json:"has_changes"`
	NormalizationSteps []normalize.Step  `json:"normalization_steps"`
	OrderPolicy        OrderPolicy       `json:"order_policy"`
	Edits              []Edit            `json:"edits"`
	Findings           []Finding         `json:"findings"`
	Stats              Stats             `json:"stats"`
}
