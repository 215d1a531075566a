// Package report renders a Diff/Plan for human and machine consumption.
// It is the only package that knows about JSON/Markdown output shapes;
// diff and plan stay transport-neutral (spec §1, §6) and this package
// translates their values into the exact wire schemas spec.md §6 names.
//
// There is no teacher or pack analogue for a diff/plan reporter;
// RenderDiffJSON/RenderPlanJSON lean on encoding/json directly against
// the diff/plan packages' own `json:"..."` struct tags (no third-party
// JSON library appears anywhere in the retrieved corpus — see
// DESIGN.md), while RenderMarkdown borrows the teacher's own dependency
// choices for the text it produces (see markdown.go).
package report

import (
	"encoding/json"

	"github.com/confdiff/confdiff/diff"
	"github.com/confdiff/confdiff/normalize"
	"github.com/confdiff/confdiff/plan"
)

// Options carries the run's input metadata and comparison settings, used
// only to populate the Markdown report's header (spec §6 "header (file
// names, options echoed)"). JSON rendering ignores it: the Diff/Plan
// JSON schemas carry their own normalization_steps/order_policy fields.
type Options struct {
	LeftFile           string
	RightFile          string
	Dialect            string
	OrderPolicy        diff.OrderPolicy
	NormalizationSteps []normalize.Step
}

// RenderDiffJSON marshals d into spec.md §6's Diff JSON schema.
func RenderDiffJSON(d *diff.Diff) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// RenderPlanJSON marshals p into spec.md §6's Plan JSON schema.
func RenderPlanJSON(p *plan.Plan) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
