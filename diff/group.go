package diff

import (
	"github.com/confdiff/confdiff/dialect"
	"github.com/confdiff/confdiff/ir"
	"github.com/confdiff/confdiff/normalize"
)

// groupOps walks one level's atomic ops and groups every contiguous run
// of Delete atoms immediately followed by a contiguous run of Insert
// atoms into a single Replace edit (spec §4.6); a run with only one
// side present stays an isolated Delete or Insert. Keep atoms never
// produce an edit; they just break contiguity.
func groupOps(aDoc, bDoc *ir.Document, aIDs, bIDs []ir.NodeID, aBase, bBase ir.Path, ops []atomOp, profile dialect.Profile, opts normalize.Options, edits *[]Edit) {
	i := 0
	for i < len(ops) {
		if ops[i].kind == opKeep {
			i++
			continue
		}
		j := i
		var dels, inss []atomOp
		for j < len(ops) && ops[j].kind == opDelete {
			dels = append(dels, ops[j])
			j++
		}
		for j < len(ops) && ops[j].kind == opInsert {
			inss = append(inss, ops[j])
			j++
		}

		var leftLines, rightLines []LineView
		for _, op := range dels {
			leftLines = append(leftLines, collectLines(aDoc, aIDs[op.li], appendPath(aBase, op.li), profile, opts)...)
		}
		for _, op := range inss {
			rightLines = append(rightLines, collectLines(bDoc, bIDs[op.ri], appendPath(bBase, op.ri), profile, opts)...)
		}

		var kind EditKind
		var leftAnchor, rightAnchor *Anchor
		switch {
		case len(dels) > 0 && len(inss) > 0:
			kind = Replace
			leftAnchor = &Anchor{Path: appendPath(aBase, dels[0].li), Span: leftLines[0].Span}
			rightAnchor = &Anchor{Path: appendPath(bBase, inss[0].ri), Span: rightLines[0].Span}
		case len(dels) > 0:
			kind = Delete
			leftAnchor = &Anchor{Path: appendPath(aBase, dels[0].li), Span: leftLines[0].Span}
		default:
			kind = Insert
			rightAnchor = &Anchor{Path: appendPath(bBase, inss[0].ri), Span: rightLines[0].Span}
		}

		leftIdx := make([]int, len(dels))
		for k, op := range dels {
			leftIdx[k] = op.li
		}
		rightIdx := make([]int, len(inss))
		for k, op := range inss {
			rightIdx[k] = op.ri
		}

		*edits = append(*edits, Edit{
			Kind:              kind,
			LeftAnchor:        leftAnchor,
			RightAnchor:       rightAnchor,
			LeftLines:         leftLines,
			RightLines:        rightLines,
			LeftParent:        append(ir.Path{}, aBase...),
			RightParent:       append(ir.Path{}, bBase...),
			LeftChildIndices:  leftIdx,
			RightChildIndices: rightIdx,
			LeftSiblingCount:  len(aIDs),
			RightSiblingCount: len(bIDs),
		})
		i = j
	}
}

// collectLines renders a subtree rooted at id (a plain Line, or a Block
// with its header and every descendant line) into report-ready views,
// in document order.
func collectLines(doc *ir.Document, id ir.NodeID, path ir.Path, profile dialect.Profile, opts normalize.Options) []LineView {
	n := doc.Node(id)
	if n.Kind == ir.LineKind {
		return []LineView{lineView(n.Line, path, profile, opts)}
	}
	out := []LineView{lineView(n.Header, path, profile, opts)}
	for i, child := range n.Children {
		out = append(out, collectLines(doc, child, appendPath(path, i), profile, opts)...)
	}
	return out
}

func lineView(line ir.Line, path ir.Path, profile dialect.Profile, opts normalize.Options) LineView {
	raw := line.Raw.Text()
	normalized, _ := normalize.Apply(opts, line.Trivia, raw)
	lv := LineView{
		Original:   raw,
		Normalized: normalized,
		Path:       path,
		Span:       line.Span,
		Trivia:     line.Trivia,
	}
	if line.Parsed != nil {
		lv.KeyHint, lv.HasKeyHint = profile.KeyHint(raw, line.Parsed.Head, line.Parsed.Args)
	}
	return lv
}

func appendPath(base ir.Path, idx int) ir.Path {
	p := make(ir.Path, len(base)+1)
	copy(p, base)
	p[len(base)] = idx
	return p
}
