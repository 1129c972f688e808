package lang

import (
	"fmt"

	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
	"github.com/pkg/errors"
)

var (
	typeLexer = lexer.Must(
		lexer.Regexp(`(\s+)` +
			`|(?P<Ident>[a-zA-Z_][a-zA-Z0-9_]*)` +
			`|(?P<Operators>[<>])`,
		),
	)
	typeParser = participle.MustBuild(&typeExpr{}, typeLexer)
)

type typeExpr struct {
	Array *typeExpr `  "array" "<" @@ ">"`
	Map   *typeExpr `| "map" "<" @@ ">"`
	Name  string    `| @Ident`
}

func (te *typeExpr) resolve() (Type, error) {
	switch {
	case te.Array != nil:
		elem, err := te.Array.resolve()
		if err != nil {
			return nil, err
		}
		return ArrayOf(elem), nil
	case te.Map != nil:
		value, err := te.Map.resolve()
		if err != nil {
			return nil, err
		}
		return MapOf(value), nil
	default:
		t, ok := PrimitiveByName(te.Name)
		if !ok {
			return nil, fmt.Errorf("can't parse type %s", te.Name)
		}
		return t, nil
	}
}

// ParseType parses the canonical text of a descriptor, e.g. "array<map<int>>".
// It is the inverse of Type.String.
func ParseType(text string) (Type, error) {
	expr := &typeExpr{}
	if err := typeParser.ParseString(text, expr); err != nil {
		return nil, errors.Wrapf(err, "parsing type %q", text)
	}
	return expr.resolve()
}

func MustParseType(text string) Type {
	t, err := ParseType(text)
	if err != nil {
		panic(err)
	}
	return t
}
