package prettyprint

import (
	"fmt"
	"strings"
)

// Loosely based on http://homepages.inf.ed.ac.uk/wadler/papers/prettier/prettier.pdf,
// without the width-sensitive group/best combinators.

type Doc interface {
	// String renders the doc.
	String() string
	// Debug returns a representation of the doc tree.
	Debug() string

	render(*renderer)
}

// renderer writes docs into a buffer, inserting the current indentation
// at the start of every line.
type renderer struct {
	buf         strings.Builder
	indent      int
	atLineStart bool
}

func (r *renderer) writeText(s string) {
	for idx, line := range strings.Split(s, "\n") {
		if idx > 0 {
			r.newline()
		}
		if line == "" {
			continue
		}
		if r.atLineStart {
			r.buf.WriteString(strings.Repeat(" ", r.indent))
			r.atLineStart = false
		}
		r.buf.WriteString(line)
	}
}

func (r *renderer) newline() {
	r.buf.WriteByte('\n')
	r.atLineStart = true
}

func render(d Doc) string {
	r := &renderer{atLineStart: true}
	d.render(r)
	return r.buf.String()
}

// Text

type text struct {
	str string
}

var _ Doc = &text{}

func Text(s string) Doc {
	return &text{str: s}
}

func Textf(format string, args ...interface{}) Doc {
	return Text(fmt.Sprintf(format, args...))
}

func (t *text) render(r *renderer) { r.writeText(t.str) }
func (t *text) String() string     { return render(t) }
func (t *text) Debug() string      { return fmt.Sprintf("Text(%q)", t.str) }

// Nest indents every line started inside d by `by` spaces.

type nest struct {
	doc Doc
	by  int
}

func Nest(by int, d Doc) Doc {
	return &nest{doc: d, by: by}
}

func (n *nest) render(r *renderer) {
	r.indent += n.by
	// The first line is indented too, even if we're mid-line.
	if !r.atLineStart {
		r.buf.WriteString(strings.Repeat(" ", n.by))
	}
	n.doc.render(r)
	r.indent -= n.by
}

func (n *nest) String() string { return render(n) }
func (n *nest) Debug() string  { return fmt.Sprintf("Nest(%d, %s)", n.by, n.doc.Debug()) }

// Empty

type empty struct{}

var Empty Doc = empty{}

func (empty) render(*renderer) {}
func (empty) String() string   { return "" }
func (empty) Debug() string    { return "Empty" }

// Seq

type seq struct {
	docs []Doc
}

func Seq(docs ...Doc) Doc {
	return &seq{docs: docs}
}

func (s *seq) render(r *renderer) {
	for _, d := range s.docs {
		d.render(r)
	}
}

func (s *seq) String() string { return render(s) }

func (s *seq) Debug() string {
	parts := make([]string, len(s.docs))
	for idx, d := range s.docs {
		parts[idx] = d.Debug()
	}
	return fmt.Sprintf("Seq(%s)", strings.Join(parts, ", "))
}

// Newline

type newline struct{}

var Newline Doc = newline{}

func (newline) render(r *renderer) { r.newline() }
func (newline) String() string     { return "\n" }
func (newline) Debug() string      { return "Newline" }

// Combinators

func Join(docs []Doc, sep Doc) Doc {
	out := make([]Doc, 0, 2*len(docs))
	for idx, d := range docs {
		if idx > 0 {
			out = append(out, sep)
		}
		out = append(out, d)
	}
	return Seq(out...)
}

// Surround wraps d in open and close, e.g. Surround("array<", d, ">").
func Surround(open string, d Doc, close string) Doc {
	return Seq(Text(open), d, Text(close))
}

var Comma = Text(",")

var CommaSpace = Text(", ")

var CommaNewline = Seq(Comma, Newline)
