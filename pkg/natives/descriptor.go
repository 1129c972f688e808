package natives

import (
	"fmt"
	"regexp"

	"github.com/vilterp/balnative/pkg/lang"
	pp "github.com/vilterp/balnative/pkg/prettyprint"
)

// Descriptor is the declarative binding of a native: where it lives, what it
// takes and returns, and its documentation. Doc is kept for tooling only and
// plays no part in dispatch.
type Descriptor struct {
	Package string
	Name    string
	Args    []Arg
	Returns []lang.Type
	Public  bool
	Doc     Doc
}

type Arg struct {
	Name string
	Type lang.Type
}

type Doc struct {
	Description string
	Params      []AttrDoc
	Returns     []AttrDoc
}

type AttrDoc struct {
	Name        string
	Description string
}

// FullName is how the registry indexes natives: "{package}:{name}".
func FullName(pkg, name string) string {
	return pkg + ":" + name
}

func (d *Descriptor) FullName() string {
	return FullName(d.Package, d.Name)
}

var (
	identRegexp   = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	packageRegexp = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)*$`)
)

// Validate checks the descriptor is well formed. Argument types must be
// primitives or any.
func (d *Descriptor) Validate() error {
	if !packageRegexp.MatchString(d.Package) {
		return &invalidDescriptor{d.FullName(), fmt.Sprintf("bad package name %q", d.Package)}
	}
	if !identRegexp.MatchString(d.Name) {
		return &invalidDescriptor{d.FullName(), fmt.Sprintf("bad function name %q", d.Name)}
	}
	argNames := map[string]bool{}
	for idx, arg := range d.Args {
		if !identRegexp.MatchString(arg.Name) {
			return &invalidDescriptor{d.FullName(), fmt.Sprintf("arg %d: bad name %q", idx, arg.Name)}
		}
		if argNames[arg.Name] {
			return &invalidDescriptor{d.FullName(), fmt.Sprintf("duplicate arg %s", arg.Name)}
		}
		argNames[arg.Name] = true
		if arg.Type == nil {
			return &invalidDescriptor{d.FullName(), fmt.Sprintf("arg %s has no type", arg.Name)}
		}
		if k := arg.Type.Kind(); k == lang.KindArray || k == lang.KindMap {
			return &invalidDescriptor{d.FullName(), fmt.Sprintf("arg %s: %s is not a primitive type", arg.Name, arg.Type)}
		}
	}
	for idx, ret := range d.Returns {
		if ret == nil {
			return &invalidDescriptor{d.FullName(), fmt.Sprintf("return %d has no type", idx)}
		}
	}
	for _, param := range d.Doc.Params {
		if !argNames[param.Name] {
			return &invalidDescriptor{d.FullName(), fmt.Sprintf("doc for unknown param %s", param.Name)}
		}
	}
	if len(d.Doc.Returns) > len(d.Returns) {
		return &invalidDescriptor{d.FullName(), fmt.Sprintf("%d return docs for %d returns", len(d.Doc.Returns), len(d.Returns))}
	}
	return nil
}

// Format renders the signature, e.g.
// `public ballerina.lang.xmls:strip(x xml) (xml)`.
func (d *Descriptor) Format() pp.Doc {
	argDocs := make([]pp.Doc, len(d.Args))
	for idx, arg := range d.Args {
		argDocs[idx] = pp.Seq(pp.Text(arg.Name), pp.Text(" "), arg.Type.Format())
	}
	retDocs := make([]pp.Doc, len(d.Returns))
	for idx, ret := range d.Returns {
		retDocs[idx] = ret.Format()
	}
	visibility := pp.Empty
	if d.Public {
		visibility = pp.Text("public ")
	}
	return pp.Seq(
		visibility,
		pp.Text(d.FullName()),
		pp.Surround("(", pp.Join(argDocs, pp.CommaSpace), ")"),
		pp.Text(" "),
		pp.Surround("(", pp.Join(retDocs, pp.CommaSpace), ")"),
	)
}

// Describe renders the signature followed by the documentation.
func (d *Descriptor) Describe() pp.Doc {
	lines := []pp.Doc{d.Format()}
	if d.Doc.Description != "" {
		lines = append(lines, pp.Nest(2, pp.Text(d.Doc.Description)))
	}
	for _, param := range d.Doc.Params {
		lines = append(lines, pp.Nest(2, pp.Textf("@param %s: %s", param.Name, param.Description)))
	}
	for _, ret := range d.Doc.Returns {
		lines = append(lines, pp.Nest(2, pp.Textf("@return %s: %s", ret.Name, ret.Description)))
	}
	return pp.Join(lines, pp.Newline)
}
