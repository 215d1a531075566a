package diff

import (
	"sort"

	"github.com/confdiff/confdiff/dialect"
	"github.com/confdiff/confdiff/ir"
	"github.com/confdiff/confdiff/normalize"
)

// childInfo is the per-sibling view alignment operates on: just enough
// to decide equality and key hints, without needing the full flattened
// stream.
type childInfo struct {
	id         ir.NodeID
	line       ir.Line // the comparable line: Line for a LineKind node, Header for a Block
	contentKey uint64
	keyHint    string
	hasKeyHint bool
}

func collectChildInfo(doc *ir.Document, ids []ir.NodeID, profile dialect.Profile, opts normalize.Options) []childInfo {
	out := make([]childInfo, len(ids))
	for i, id := range ids {
		n := doc.Node(id)
		line := n.Line
		if n.Kind == ir.BlockKind {
			line = n.Header
		}
		normalized, _ := normalize.Apply(opts, line.Trivia, line.Raw.Text())
		info := childInfo{id: id, line: line, contentKey: hashLine(normalized)}
		if line.Parsed != nil {
			info.keyHint, info.hasKeyHint = profile.KeyHint(line.Raw.Text(), line.Parsed.Head, line.Parsed.Args)
		}
		out[i] = info
	}
	return out
}

// matchedPair is a same-position correspondence found during alignment,
// a candidate for recursing into children.
type matchedPair struct {
	li, ri int
}

// levelResult is the outcome of aligning one sibling level.
type levelResult struct {
	ops     []atomOp
	matched []matchedPair
}

// alignLevel aligns aInfo against bInfo under policy, returning the
// atomic op sequence (for grouping) and the matched pairs (for
// recursion). It may append ambiguous_key_match findings for
// keyed-stable.
func alignLevel(aInfo, bInfo []childInfo, policy OrderPolicy, onFinding func(Finding)) levelResult {
	switch policy {
	case Unordered:
		return alignUnordered(aInfo, bInfo)
	case KeyedStable:
		return alignKeyedStable(aInfo, bInfo, onFinding)
	default:
		return alignOrdered(aInfo, bInfo)
	}
}

func contentKeys(infos []childInfo) []uint64 {
	ks := make([]uint64, len(infos))
	for i, c := range infos {
		ks[i] = c.contentKey
	}
	return ks
}

func alignOrdered(aInfo, bInfo []childInfo) levelResult {
	atoms := myersSES(contentKeys(aInfo), contentKeys(bInfo))
	var matched []matchedPair
	for _, op := range atoms {
		if op.kind == opKeep {
			matched = append(matched, matchedPair{li: op.li, ri: op.ri})
		}
	}
	return levelResult{ops: atoms, matched: matched}
}

// alignUnordered pairs siblings as a multiset by content key, matching
// in original left-then-right order among equal keys; everything left
// unmatched is emitted as a single contiguous Delete run followed by a
// single contiguous Insert run, which groups into one Replace (or an
// isolated Insert/Delete when only one side has leftovers).
func alignUnordered(aInfo, bInfo []childInfo) levelResult {
	rightQueues := map[uint64][]int{}
	for i, c := range bInfo {
		rightQueues[c.contentKey] = append(rightQueues[c.contentKey], i)
	}

	matchedRight := make([]bool, len(bInfo))
	var matched []matchedPair
	var unmatchedLeft []int

	for i, c := range aInfo {
		q := rightQueues[c.contentKey]
		if len(q) == 0 {
			unmatchedLeft = append(unmatchedLeft, i)
			continue
		}
		ri := q[0]
		rightQueues[c.contentKey] = q[1:]
		matchedRight[ri] = true
		matched = append(matched, matchedPair{li: i, ri: ri})
	}

	var unmatchedRight []int
	for i := range bInfo {
		if !matchedRight[i] {
			unmatchedRight = append(unmatchedRight, i)
		}
	}

	var ops []atomOp
	for _, i := range unmatchedLeft {
		ops = append(ops, atomOp{kind: opDelete, li: i, ri: -1})
	}
	for _, i := range unmatchedRight {
		ops = append(ops, atomOp{kind: opInsert, li: -1, ri: i})
	}
	return levelResult{ops: ops, matched: matched}
}

// alignKeyedStable anchors siblings that carry the same unique,
// non-empty key hint on both sides, recording an ambiguous_key_match
// finding for any key hint that doesn't resolve to exactly one
// candidate per side; everything not anchored falls back to ordered
// (Myers) alignment among the leftovers, preserving their relative
// order.
func alignKeyedStable(aInfo, bInfo []childInfo, onFinding func(Finding)) levelResult {
	leftByKey := map[string][]int{}
	var leftKeyOrder []string
	for i, c := range aInfo {
		if !c.hasKeyHint || c.keyHint == "" {
			continue
		}
		if _, seen := leftByKey[c.keyHint]; !seen {
			leftKeyOrder = append(leftKeyOrder, c.keyHint)
		}
		leftByKey[c.keyHint] = append(leftByKey[c.keyHint], i)
	}
	rightByKey := map[string][]int{}
	for i, c := range bInfo {
		if !c.hasKeyHint || c.keyHint == "" {
			continue
		}
		if _, seen := rightByKey[c.keyHint]; !seen {
			leftKeyOrder = appendUnique(leftKeyOrder, c.keyHint)
		}
		rightByKey[c.keyHint] = append(rightByKey[c.keyHint], i)
	}
	sort.Strings(leftKeyOrder)

	anchoredLeft := make([]bool, len(aInfo))
	anchoredRight := make([]bool, len(bInfo))
	var matched []matchedPair

	for _, key := range leftKeyOrder {
		ls := leftByKey[key]
		rs := rightByKey[key]
		if len(ls) == 1 && len(rs) == 1 {
			li, ri := ls[0], rs[0]
			anchoredLeft[li] = true
			anchoredRight[ri] = true
			matched = append(matched, matchedPair{li: li, ri: ri})
			continue
		}
		if len(ls) == 0 && len(rs) == 0 {
			continue
		}
		msg := "key hint " + key + " did not resolve to exactly one candidate on each side"
		var lp, rp *ir.Path
		if len(ls) > 0 {
			p := ir.Path{ls[0]}
			lp = &p
		}
		if len(rs) > 0 {
			p := ir.Path{rs[0]}
			rp = &p
		}
		onFinding(Finding{Code: AmbiguousKeyMatch, LeftPath: lp, RightPath: rp, Message: msg})
	}

	var remLeft, remRight []int
	for i := range aInfo {
		if !anchoredLeft[i] {
			remLeft = append(remLeft, i)
		}
	}
	for i := range bInfo {
		if !anchoredRight[i] {
			remRight = append(remRight, i)
		}
	}

	subA := make([]childInfo, len(remLeft))
	for i, idx := range remLeft {
		subA[i] = aInfo[idx]
	}
	subB := make([]childInfo, len(remRight))
	for i, idx := range remRight {
		subB[i] = bInfo[idx]
	}

	fallback := myersSES(contentKeys(subA), contentKeys(subB))
	ops := make([]atomOp, 0, len(fallback))
	for _, op := range fallback {
		switch op.kind {
		case opKeep:
			li, ri := remLeft[op.li], remRight[op.ri]
			matched = append(matched, matchedPair{li: li, ri: ri})
			ops = append(ops, atomOp{kind: opKeep, li: li, ri: ri})
		case opDelete:
			ops = append(ops, atomOp{kind: opDelete, li: remLeft[op.li], ri: -1})
		case opInsert:
			ops = append(ops, atomOp{kind: opInsert, li: -1, ri: remRight[op.ri]})
		}
	}
	return levelResult{ops: ops, matched: matched}
}

func appendUnique(s []string, v string) []string {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}
