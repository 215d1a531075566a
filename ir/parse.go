package ir

import (
	"strings"

	"github.com/confdiff/confdiff/dialect"
)

// ParseGeneric parses text using the default dialect profile.
func ParseGeneric(text []byte) *Document {
	return Parse(text, dialect.Generic())
}

// Parse parses text using the given dialect profile. The parser is total:
// every byte string yields a valid Document, and any construct the profile
// can't make sense of is preserved verbatim with Trivia Unknown rather than
// rejected (spec §4.1 "Failure model").
func Parse(text []byte, profile dialect.Profile) *Document {
	d := &Document{DialectTag: profile.Name, Original: append([]byte(nil), text...)}
	d.arena.Write(text)

	lines := splitLines(text)
	if len(lines) == 0 {
		return d
	}
	d.DetectedNewline = lines[0].ending
	for _, l := range lines {
		if l.ending != "" {
			d.DetectedNewline = l.ending
			break
		}
	}

	p := &parser{doc: d, profile: profile}
	for _, pl := range lines {
		p.feed(pl)
	}
	p.closeAll()
	return d
}

// physLine is a raw split of the source prior to trivia classification.
type physLine struct {
	start, end int // [start,end) of raw content, excluding the line ending
	ending     string
	lineNo     int
}

// splitLines splits text on '\n', classifying each physical line's ending
// as "", "\n", or "\r\n" and preserving an unterminated final line.
func splitLines(text []byte) []physLine {
	var lines []physLine
	start := 0
	lineNo := 1
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			end := i
			ending := "\n"
			if end > start && text[end-1] == '\r' {
				end--
				ending = "\r\n"
			}
			lines = append(lines, physLine{start: start, end: end, ending: ending, lineNo: lineNo})
			start = i + 1
			lineNo++
		}
	}
	if start < len(text) {
		lines = append(lines, physLine{start: start, end: len(text), ending: "", lineNo: lineNo})
	}
	return lines
}

// frame tracks one tentatively-open block on the parser's indentation
// stack. A frame only becomes a Block node if it gains a genuine
// (indentation-confirmed) child; otherwise it collapses back to a plain
// Line node, and any buffered blank/comment lines are re-attached as its
// siblings instead of its children. This keeps blank/comment runs from
// ever spuriously promoting a line into a block (spec §4.1's "Unknown
// lines ... never acquire children if they themselves have no
// more-indented successor", generalized here to all trivia so the
// behavior is uniform and doesn't depend on trivia classification).
type frame struct {
	header  Line
	indent  int
	open    bool     // offset this header occupies is still unclosed
	children []NodeID // committed children (flushed pending + finalized)
	pending []NodeID // blank/comment lines seen since the last commit
}

type parser struct {
	doc     *Document
	profile dialect.Profile
	stack   []frame
}

// indent counts leading whitespace characters, each counting as 1
// regardless of tab vs space, per spec §4.1.
func indent(raw string) int {
	n := 0
	for n < len(raw) && (raw[n] == ' ' || raw[n] == '\t') {
		n++
	}
	return n
}

func isBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

func (p *parser) classify(raw string) (Trivia, *Parsed) {
	if isBlank(raw) {
		return Blank, nil
	}
	if p.profile.IsComment(raw) {
		return Comment, nil
	}
	head, args, ok := p.profile.Tokenize(raw)
	if !ok {
		return Unknown, nil
	}
	return Content, &Parsed{Head: head, Args: args}
}

func (p *parser) makeLine(pl physLine) Line {
	raw := string(p.doc.Original[pl.start:pl.end])
	trivia, parsed := p.classify(raw)
	return Line{
		Raw:        p.doc.arena.Ref(pl.start, pl.end),
		LineEnding: pl.ending,
		Span:       Span{Line: pl.lineNo, Start: pl.start, End: pl.end + len(pl.ending)},
		Parsed:     parsed,
		Trivia:     trivia,
	}
}

func (p *parser) feed(pl physLine) {
	line := p.makeLine(pl)

	if line.Trivia == Blank || line.Trivia == Comment {
		id := p.doc.addNode(Node{Kind: LineKind, Line: line})
		p.attachPending(id)
		return
	}

	in := indent(line.Raw.Text())
	for len(p.stack) > 0 && in <= p.stack[len(p.stack)-1].indent {
		p.closeTop()
	}
	p.stack = append(p.stack, frame{header: line, indent: in, open: true})
	if len(p.stack) > 1 {
		// this line is a genuine, indentation-confirmed child of its
		// new parent frame: flush any buffered blank/comment lines
		// into the parent's committed children now, ahead of this
		// frame's own eventual (finalized) node.
		parent := &p.stack[len(p.stack)-2]
		parent.children = append(parent.children, parent.pending...)
		parent.pending = nil
	}
}

// attachPending appends a blank/comment node id to the innermost open
// frame's pending buffer, or directly to the document roots if no frame
// is open.
func (p *parser) attachPending(id NodeID) {
	if len(p.stack) == 0 {
		p.doc.Roots = append(p.doc.Roots, id)
		return
	}
	top := &p.stack[len(p.stack)-1]
	top.pending = append(top.pending, id)
}

// closeTop finalizes the innermost open frame into a Node (Block if it
// ever gained a committed child, otherwise Line), and attaches it — along
// with any still-pending blank/comment lines collected after its last
// committed child — to the new stack top, or to the document roots.
func (p *parser) closeTop() {
	n := len(p.stack) - 1
	f := p.stack[n]
	p.stack = p.stack[:n]

	var id NodeID
	if len(f.children) == 0 {
		id = p.doc.addNode(Node{Kind: LineKind, Line: f.header})
	} else {
		id = p.doc.addNode(Node{Kind: BlockKind, Header: f.header, Children: f.children})
	}

	ids := append([]NodeID{id}, f.pending...)
	if len(p.stack) == 0 {
		p.doc.Roots = append(p.doc.Roots, ids...)
		return
	}
	parent := &p.stack[len(p.stack)-1]
	parent.children = append(parent.children, ids...)
}

func (p *parser) closeAll() {
	for len(p.stack) > 0 {
		p.closeTop()
	}
}
