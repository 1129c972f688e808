package lang

import (
	"github.com/beevik/etree"

	pp "github.com/vilterp/balnative/pkg/prettyprint"
)

// XML is an XML sequence: the top-level children of doc, in order.
type XML struct {
	doc *etree.Document
}

var _ Value = &XML{}

func NewXML(doc *etree.Document) *XML {
	if doc == nil {
		doc = etree.NewDocument()
	}
	return &XML{doc: doc}
}

// ParseXML reads text as a sequence of items. More than one top-level
// element is allowed.
func ParseXML(text string) (*XML, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, WrapError(XmlError, "parse xml", err)
	}
	return &XML{doc: doc}, nil
}

// Items returns the sequence items. The tokens belong to the value and must
// not be modified.
func (x *XML) Items() []etree.Token {
	return append([]etree.Token(nil), x.doc.Child...)
}

func (x *XML) Type() Type                 { return TXML }
func (x *XML) NativePayload() interface{} { return x.doc }
func (x *XML) Format() pp.Doc             { return pp.Text(x.String()) }

func (x *XML) String() string {
	s, err := x.doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}

// Strip returns a copy of the sequence without the text items that consist
// only of XML whitespace. Nested content is left alone.
func (x *XML) Strip() (*XML, error) {
	stripped := etree.NewDocument()
	for _, item := range x.doc.Child {
		switch t := item.(type) {
		case *etree.CharData:
			if isXMLWhitespace(t.Data) {
				continue
			}
			if t.IsCData() {
				stripped.AddChild(etree.NewCData(t.Data))
			} else {
				stripped.AddChild(etree.NewText(t.Data))
			}
		case *etree.Element:
			stripped.AddChild(t.Copy())
		case *etree.Comment:
			stripped.AddChild(etree.NewComment(t.Data))
		case *etree.ProcInst:
			stripped.AddChild(etree.NewProcInst(t.Target, t.Inst))
		case *etree.Directive:
			stripped.AddChild(etree.NewDirective(t.Data))
		default:
			return nil, NewError(XmlError, "unexpected xml item %T", item)
		}
	}
	return &XML{doc: stripped}, nil
}

// isXMLWhitespace is true iff s contains only space, tab, CR and LF.
func isXMLWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
		default:
			return false
		}
	}
	return true
}
