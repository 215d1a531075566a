package report

import (
	"fmt"
	"strconv"
	"strings"

	anchorname "github.com/shurcooL/sanitized_anchor_name"

	"github.com/confdiff/confdiff/diff"
	"github.com/confdiff/confdiff/ir"
	"github.com/confdiff/confdiff/plan"
)

// RenderMarkdown produces the deterministic report spec.md §6 describes:
// a header echoing the inputs and options, one block per edit showing
// its anchors and a unified-style left/right view, a findings list, and
// a stats footer. Byte-identical Diffs under identical Options always
// render identical bytes (no map iteration, no timestamps).
//
// Section headings carry an explicit anchor id rendered via
// github.com/shurcooL/sanitized_anchor_name, so the report can be linked
// into other documents (e.g. a CI summary) without relying on whatever
// anchor convention the eventual Markdown viewer happens to pick.
func RenderMarkdown(d *diff.Diff, p *plan.Plan, opts Options) string {
	var b strings.Builder

	heading(&b, 1, "config-diff report")
	writeHeader(&b, d, opts)

	heading(&b, 2, "Changes")
	if len(d.Edits) == 0 {
		b.WriteString("_no changes_\n\n")
	} else {
		for i, e := range d.Edits {
			writeEdit(&b, i+1, e)
		}
	}

	heading(&b, 2, "Findings")
	if len(d.Findings) == 0 {
		b.WriteString("_none_\n\n")
	} else {
		for _, f := range d.Findings {
			writeFinding(&b, f)
		}
	}

	heading(&b, 2, "Plan")
	if p == nil || len(p.Actions) == 0 {
		b.WriteString("_no actions_\n\n")
	} else {
		for _, act := range p.Actions {
			writeAction(&b, act)
		}
	}

	heading(&b, 2, "Stats")
	fmt.Fprintf(&b, "| inserts | deletes | replaces | total |\n")
	fmt.Fprintf(&b, "|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d |\n", d.Stats.Inserts, d.Stats.Deletes, d.Stats.Replaces, d.Stats.Any())

	return b.String()
}

func heading(b *strings.Builder, level int, title string) {
	fmt.Fprintf(b, "<a id=%q></a>\n", anchorname.Create(title))
	b.WriteString(strings.Repeat("#", level))
	b.WriteByte(' ')
	b.WriteString(title)
	b.WriteString("\n\n")
}

func writeHeader(b *strings.Builder, d *diff.Diff, opts Options) {
	fmt.Fprintf(b, "- **Left:** %s\n", orDash(opts.LeftFile))
	fmt.Fprintf(b, "- **Right:** %s\n", orDash(opts.RightFile))
	fmt.Fprintf(b, "- **Dialect:** %s\n", orDash(opts.Dialect))
	fmt.Fprintf(b, "- **Order policy:** %s\n", d.OrderPolicy)
	if len(d.NormalizationSteps) == 0 {
		b.WriteString("- **Normalization:** none\n")
	} else {
		steps := make([]string, len(d.NormalizationSteps))
		for i, s := range d.NormalizationSteps {
			steps[i] = string(s)
		}
		fmt.Fprintf(b, "- **Normalization:** %s\n", strings.Join(steps, ", "))
	}
	fmt.Fprintf(b, "- **Has changes:** %v\n\n", d.HasChanges)
}

func writeEdit(b *strings.Builder, n int, e diff.Edit) {
	fmt.Fprintf(b, "### Edit %d: %s\n\n", n, e.Kind)
	if e.LeftAnchor != nil {
		fmt.Fprintf(b, "- left anchor: `%s` (line %d)\n", pathString(e.LeftAnchor.Path), e.LeftAnchor.Span.Line)
	}
	if e.RightAnchor != nil {
		fmt.Fprintf(b, "- right anchor: `%s` (line %d)\n", pathString(e.RightAnchor.Path), e.RightAnchor.Span.Line)
	}
	b.WriteString("\n```diff\n")
	for _, lv := range e.LeftLines {
		fmt.Fprintf(b, "-%s\n", lv.Original)
	}
	for _, lv := range e.RightLines {
		fmt.Fprintf(b, "+%s\n", lv.Original)
	}
	b.WriteString("```\n\n")
}

func writeFinding(b *strings.Builder, f diff.Finding) {
	fmt.Fprintf(b, "- `%s`: %s", f.Code, f.Message)
	if f.LeftPath != nil {
		fmt.Fprintf(b, " (left: `%s`)", pathString(*f.LeftPath))
	}
	if f.RightPath != nil {
		fmt.Fprintf(b, " (right: `%s`)", pathString(*f.RightPath))
	}
	b.WriteString("\n")
}

func writeAction(b *strings.Builder, act plan.Action) {
	switch act.Kind {
	case plan.ReplaceBlock:
		fmt.Fprintf(b, "- `replace_block` at `%s`\n", pathString(act.Path))
	case plan.ApplyLineEditsUnder:
		fmt.Fprintf(b, "- `apply_line_edits_under_context` under `%s` (%d edits)\n", pathString(act.ParentPath), len(act.Edits))
	}
}

func pathString(p ir.Path) string {
	if len(p) == 0 {
		return "(root)"
	}
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, "/")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
