// Package normalize applies an ordered pipeline of text-normalization
// steps to a comparison view of lines, without ever mutating the IR: the
// Flattener asks this package for a line's normalized text (or whether
// to drop the line entirely), and the original ir.Document is left
// untouched so reports can still show the pristine source.
package normalize

import (
	"strings"

	"github.com/confdiff/confdiff/ir"
)

// Step names a single normalization step. Steps always apply in the
// fixed canonical Order, regardless of the order they're enabled in.
type Step string

// The recognized steps, in their fixed application order (spec §4.4).
const (
	IgnoreComments             Step = "ignore_comments"
	IgnoreBlankLines           Step = "ignore_blank_lines"
	TrimTrailingWhitespace     Step = "trim_trailing_whitespace"
	NormalizeLeadingWhitespace Step = "normalize_leading_whitespace"
	CollapseInternalWhitespace Step = "collapse_internal_whitespace"
)

// Order is the fixed, canonical order steps apply in.
var Order = []Step{
	IgnoreComments,
	IgnoreBlankLines,
	TrimTrailingWhitespace,
	NormalizeLeadingWhitespace,
	CollapseInternalWhitespace,
}

// Options is the enabled subset of steps.
type Options struct {
	enabled map[Step]bool
}

// NewOptions builds an Options with the given steps enabled. Unknown
// step names are ignored here; the CLI layer is responsible for
// rejecting unrecognized step names (spec §7, "option misuse").
func NewOptions(steps ...Step) Options {
	o := Options{enabled: make(map[Step]bool, len(steps))}
	for _, s := range steps {
		o.enabled[s] = true
	}
	return o
}

// Has reports whether step s is enabled.
func (o Options) Has(s Step) bool { return o.enabled[s] }

// Applied returns the enabled steps in their fixed canonical order; this
// is the slice recorded on a resulting Diff.
func (o Options) Applied() []Step {
	var applied []Step
	for _, s := range Order {
		if o.Has(s) {
			applied = append(applied, s)
		}
	}
	return applied
}

// Apply runs the enabled steps, in canonical order, against a single
// line's trivia and raw text. It returns the normalized text and
// whether the line should be dropped from the comparable stream
// entirely (ignore_comments / ignore_blank_lines).
func Apply(o Options, trivia ir.Trivia, raw string) (normalized string, drop bool) {
	if o.Has(IgnoreComments) && trivia == ir.Comment {
		return "", true
	}
	if o.Has(IgnoreBlankLines) && trivia == ir.Blank {
		return "", true
	}

	s := raw
	if o.Has(TrimTrailingWhitespace) {
		s = trimTrailingWhitespace(s)
	}
	if o.Has(NormalizeLeadingWhitespace) {
		s = normalizeLeadingWhitespace(s)
	}
	if o.Has(CollapseInternalWhitespace) {
		s = collapseInternalWhitespace(s)
	}
	return s, false
}

func trimTrailingWhitespace(s string) string {
	return strings.TrimRight(s, " \t")
}

// normalizeLeadingWhitespace replaces the leading whitespace run with a
// canonical all-spaces form of the same character count, so "a tab and a
// space of indent" compares equal to "two spaces of indent" under this
// step regardless of which whitespace bytes the source used.
func normalizeLeadingWhitespace(s string) string {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	if n == 0 {
		return s
	}
	return strings.Repeat(" ", n) + s[n:]
}

// collapseInternalWhitespace collapses runs of interior whitespace (after
// any leading indent) to a single space.
func collapseInternalWhitespace(s string) string {
	lead := 0
	for lead < len(s) && (s[lead] == ' ' || s[lead] == '\t') {
		lead++
	}
	indent, rest := s[:lead], s[lead:]

	var b strings.Builder
	b.Grow(len(rest))
	inRun := false
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c == ' ' || c == '\t' {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteByte(c)
	}
	return indent + b.String()
}
