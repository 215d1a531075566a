package diff

import (
	"fmt"
	"sort"

	"github.com/confdiff/confdiff/dialect"
	"github.com/confdiff/confdiff/flatten"
	"github.com/confdiff/confdiff/ir"
	"github.com/confdiff/confdiff/normalize"
)

// Documents compares a against b under opts and policy, producing a
// deterministic Diff: the same two documents, options, and policy
// always produce byte-identical JSON output (spec §8).
func Documents(a, b *ir.Document, opts normalize.Options, policy OrderPolicyConfig) *Diff {
	profile, err := dialect.Lookup(a.DialectTag)
	if err != nil {
		profile = dialect.Generic()
	}

	var findings []Finding
	onFinding := func(f Finding) { findings = append(findings, f) }

	var edits []Edit
	diffTree(a, b, a.Roots, b.Roots, nil, nil, profile, opts, policy.Policy, onFinding, &edits)

	findings = append(findings, unknownFindings(a, b, profile, opts)...)
	findings = append(findings, unreliableRegionFindings(a, b, edits)...)

	sortEdits(edits)
	sortFindings(findings)

	return &Diff{
		HasChanges:         len(edits) > 0,
		NormalizationSteps: opts.Applied(),
		OrderPolicy:        policy.Policy,
		Edits:              edits,
		Findings:           findings,
		Stats:              computeStats(edits),
	}
}

// diffTree aligns one sibling level and recurses into every matched
// Block/Block pair, under aBase/bBase (the path prefix to this level).
func diffTree(aDoc, bDoc *ir.Document, aIDs, bIDs []ir.NodeID, aBase, bBase ir.Path, profile dialect.Profile, opts normalize.Options, policy OrderPolicy, onFinding func(Finding), edits *[]Edit) {
	aInfo := collectChildInfo(aDoc, aIDs, profile, opts)
	bInfo := collectChildInfo(bDoc, bIDs, profile, opts)

	// alignLevel reports finding paths relative to this level; prefix
	// them with aBase/bBase so they address nodes from the document root.
	levelFinding := func(f Finding) {
		if f.LeftPath != nil {
			p := append(append(ir.Path{}, aBase...), (*f.LeftPath)...)
			f.LeftPath = &p
		}
		if f.RightPath != nil {
			p := append(append(ir.Path{}, bBase...), (*f.RightPath)...)
			f.RightPath = &p
		}
		onFinding(f)
	}
	res := alignLevel(aInfo, bInfo, policy, levelFinding)
	groupOps(aDoc, bDoc, aIDs, bIDs, aBase, bBase, res.ops, profile, opts, edits)

	for _, m := range res.matched {
		aPath := appendPath(aBase, m.li)
		bPath := appendPath(bBase, m.ri)

		aNode := aDoc.Node(aIDs[m.li])
		bNode := bDoc.Node(bIDs[m.ri])

		// A matched pair only ever compares comparable-line content
		// (the Header text for a Block, the Line text otherwise); it
		// never looks at NodeKind. So a Block whose header text
		// happens to equal some unrelated Line's text on the other
		// side — e.g. a block that lost every child and was demoted
		// to a bare line by the parser — would otherwise fall through
		// as a silent match: same content key, and the Block/Block
		// recursion guard below never fires since one side isn't a
		// Block. Treat any Kind mismatch as a full-subtree Replace
		// before ever considering content keys or recursing.
		if aNode.Kind != bNode.Kind {
			leftLines := collectLines(aDoc, aIDs[m.li], aPath, profile, opts)
			rightLines := collectLines(bDoc, bIDs[m.ri], bPath, profile, opts)
			*edits = append(*edits, Edit{
				Kind:              Replace,
				LeftAnchor:        &Anchor{Path: aPath, Span: leftLines[0].Span},
				RightAnchor:       &Anchor{Path: bPath, Span: rightLines[0].Span},
				LeftLines:         leftLines,
				RightLines:        rightLines,
				LeftParent:        append(ir.Path{}, aBase...),
				RightParent:       append(ir.Path{}, bBase...),
				LeftChildIndices:  []int{m.li},
				RightChildIndices: []int{m.ri},
				LeftSiblingCount:  len(aIDs),
				RightSiblingCount: len(bIDs),
			})
			continue
		}

		if aInfo[m.li].contentKey != bInfo[m.ri].contentKey {
			*edits = append(*edits, Edit{
				Kind:              Replace,
				LeftAnchor:        &Anchor{Path: aPath, Span: aInfo[m.li].line.Span},
				RightAnchor:       &Anchor{Path: bPath, Span: bInfo[m.ri].line.Span},
				LeftLines:         []LineView{lineView(aInfo[m.li].line, aPath, profile, opts)},
				RightLines:        []LineView{lineView(bInfo[m.ri].line, bPath, profile, opts)},
				LeftParent:        append(ir.Path{}, aBase...),
				RightParent:       append(ir.Path{}, bBase...),
				LeftChildIndices:  []int{m.li},
				RightChildIndices: []int{m.ri},
				LeftSiblingCount:  len(aIDs),
				RightSiblingCount: len(bIDs),
			})
		}

		if aNode.Kind == ir.BlockKind && bNode.Kind == ir.BlockKind {
			diffTree(aDoc, bDoc, aNode.Children, bNode.Children, aPath, bPath, profile, opts, policy, onFinding, edits)
		}
	}
}

func computeStats(edits []Edit) Stats {
	var s Stats
	for _, e := range edits {
		switch e.Kind {
		case Insert:
			s.Inserts++
		case Delete:
			s.Deletes++
		case Replace:
			s.Replaces++
		}
	}
	return s
}

// unknownFindings reports every line either document couldn't tokenize,
// in left-document preorder followed by right-document preorder.
func unknownFindings(a, b *ir.Document, profile dialect.Profile, opts normalize.Options) []Finding {
	var out []Finding
	for _, cl := range flatten.Flatten(a, profile, opts) {
		if cl.Trivia != ir.Unknown {
			continue
		}
		path := cl.Path
		out = append(out, Finding{
			Code:     UnknownUnparsedConstruct,
			LeftPath: &path,
			Message:  fmt.Sprintf("left document: unrecognized construct at %v", cl.Path),
		})
	}
	for _, cl := range flatten.Flatten(b, profile, opts) {
		if cl.Trivia != ir.Unknown {
			continue
		}
		path := cl.Path
		out = append(out, Finding{
			Code:      UnknownUnparsedConstruct,
			RightPath: &path,
			Message:   fmt.Sprintf("right document: unrecognized construct at %v", cl.Path),
		})
	}
	return out
}

// unreliableRegionFindings flags any edit anchored beneath a Block whose
// own header could not be tokenized: structural changes under an
// unrecognized header are reported, but their grouping can't be trusted.
func unreliableRegionFindings(a, b *ir.Document, edits []Edit) []Finding {
	seen := map[string]bool{}
	var out []Finding

	check := func(doc *ir.Document, p *ir.Path, side string) *Finding {
		if p == nil || len(*p) < 2 {
			return nil
		}
		parent := (*p)[:len(*p)-1]
		id, ok := doc.Resolve(parent)
		if !ok {
			return nil
		}
		n := doc.Node(id)
		if n.Kind != ir.BlockKind || n.Header.Trivia != ir.Unknown {
			return nil
		}
		key := side + ":" + pathKey(parent)
		if seen[key] {
			return nil
		}
		seen[key] = true
		pp := append(ir.Path{}, parent...)
		f := Finding{
			Code:    DiffUnreliableRegion,
			Message: fmt.Sprintf("%s document: changes beneath unrecognized block header at %v", side, pp),
		}
		if side == "left" {
			f.LeftPath = &pp
		} else {
			f.RightPath = &pp
		}
		return &f
	}

	for _, e := range edits {
		if f := check(a, pathOf(e.LeftAnchor), "left"); f != nil {
			out = append(out, *f)
		}
		if f := check(b, pathOf(e.RightAnchor), "right"); f != nil {
			out = append(out, *f)
		}
	}
	return out
}

func pathOf(a *Anchor) *ir.Path {
	if a == nil {
		return nil
	}
	return &a.Path
}

func pathKey(p ir.Path) string {
	b := make([]byte, 0, len(p)*4)
	for i, idx := range p {
		if i > 0 {
			b = append(b, '/')
		}
		b = append(b, []byte(fmt.Sprintf("%d", idx))...)
	}
	return string(b)
}

func pathLess(p, q ir.Path) bool {
	for i := 0; i < len(p) && i < len(q); i++ {
		if p[i] != q[i] {
			return p[i] < q[i]
		}
	}
	return len(p) < len(q)
}

// sortEdits imposes a total, deterministic order: by left anchor path
// when present, otherwise by right anchor path. This is the canonical
// order reports and JSON output walk.
func sortEdits(edits []Edit) {
	sort.SliceStable(edits, func(i, j int) bool {
		pi, pj := anchorPath(edits[i]), anchorPath(edits[j])
		return pathLess(pi, pj)
	})
}

func anchorPath(e Edit) ir.Path {
	if e.LeftAnchor != nil {
		return e.LeftAnchor.Path
	}
	if e.RightAnchor != nil {
		return e.RightAnchor.Path
	}
	return nil
}

// sortFindings orders left-anchored findings in left-document preorder,
// then right-anchored findings in right-document preorder, with ties
// broken by code and message for full determinism.
func sortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		fi, fj := findings[i], findings[j]
		li, lj := fi.LeftPath != nil, fj.LeftPath != nil
		if li != lj {
			return li
		}
		if li {
			if !pathEqual(*fi.LeftPath, *fj.LeftPath) {
				return pathLess(*fi.LeftPath, *fj.LeftPath)
			}
		} else if fi.RightPath != nil && fj.RightPath != nil {
			if !pathEqual(*fi.RightPath, *fj.RightPath) {
				return pathLess(*fi.RightPath, *fj.RightPath)
			}
		}
		if fi.Code != fj.Code {
			return fi.Code < fj.Code
		}
		return fi.Message < fj.Message
	})
}

func pathEqual(p, q ir.Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}
