// Package ir implements the lossless, indentation-driven intermediate
// representation: a Document is an arena of nodes (Line or Block), parsed
// from raw config text such that rendering it back reproduces the source
// byte-for-byte. The arena-of-indices shape is grounded in the teacher's
// scandown.BlockStack (blocks referenced by id, not by owning pointer) and
// internal/scanio's ByteArena token discipline, generalized from Markdown's
// many block kinds down to the single indentation rule this domain needs.
package ir

import "github.com/confdiff/confdiff/internal/arena"

// NodeID is an opaque, stable index into a Document's node arena. Once
// assigned by the parser it never changes or is reused for the life of the
// document.
type NodeID int

// Trivia classifies a Line.
type Trivia int

// Trivia values.
const (
	Blank Trivia = iota
	Comment
	Content
	Unknown
)

// String renders a Trivia for debugging and log messages.
func (t Trivia) String() string {
	switch t {
	case Blank:
		return "Blank"
	case Comment:
		return "Comment"
	case Content:
		return "Content"
	case Unknown:
		return "Unknown"
	default:
		return "InvalidTrivia"
	}
}

// MarshalJSON renders a Trivia by its String form, so the JSON reports
// (spec §6) carry readable trivia names instead of bare integers.
func (t Trivia) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// Span locates a Line within the original source: a 1-based line number
// and the byte offsets [Start, End) it occupies, including its line
// ending.
type Span struct {
	Line       int `json:"line"`
	Start      int `json:"start"`
	End        int `json:"end"`
}

// Parsed holds a Line's best-effort head/args tokenization, nil when the
// dialect could not tokenize the line (in which case Trivia is Unknown).
type Parsed struct {
	Head string
	Args []string
}

// Line is a single physical line of source text.
type Line struct {
	Raw        arena.Token // text without trailing newline
	LineEnding string      // "", "\n", or "\r\n"
	Span       Span
	Parsed     *Parsed
	Trivia     Trivia
}

// NodeKind distinguishes the two Node variants.
type NodeKind int

// NodeKind values.
const (
	LineKind NodeKind = iota
	BlockKind
)

// Node is a tagged variant: a Line or a Block. Nodes are created only by
// the parser and are immutable thereafter.
type Node struct {
	Kind NodeKind

	// Line is populated when Kind == LineKind.
	Line Line

	// Header, Children, Footer, and KindLabel are populated when
	// Kind == BlockKind. Footer and KindLabel are reserved for a future
	// version and are never populated by this parser (see spec Open
	// Question (a)); the fields exist so the shape is stable to add to
	// without a breaking change.
	Header    Line
	Children  []NodeID
	Footer    *Line
	KindLabel string
}

// Path is the ordered sequence of child indices from a root to a node,
// stable for a given parse of a given input.
type Path []int
