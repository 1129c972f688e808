package main

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
	"github.com/pkg/errors"
	"github.com/vilterp/balnative/pkg/lang"
	"github.com/vilterp/balnative/pkg/tablestore"
)

var (
	callLexer = lexer.Must(
		lexer.Regexp(`(\s+)` +
			`|(?P<Ident>[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)*)` +
			"|(?P<String>\"(\\\\.|[^\"\\\\])*\"|`[^`]*`)" +
			`|(?P<Number>[-+]?\d+(\.\d+)?([eE][-+]?\d+)?)` +
			`|(?P<Operators>[:(),])`,
		),
	)
	callParser = participle.MustBuild(&call{}, callLexer)
)

// call is e.g. `ballerina.lang.xmls:strip(xml "<a> </a>")`.
type call struct {
	Package string     `@Ident ":"`
	Name    string     `@Ident`
	Args    []*literal `"(" [ @@ { "," @@ } ] ")"`
}

type literal struct {
	XML    *string `  "xml" @String`
	Table  *string `| "table" "(" @String ")"`
	Null   bool    `| @"null"`
	True   bool    `| @"true"`
	False  bool    `| @"false"`
	Number *string `| @Number`
	String *string `| @String`
}

func parseCall(line string) (*call, error) {
	result := &call{}
	if err := callParser.ParseString(line, result); err != nil {
		return nil, err
	}
	return result, nil
}

// evaluate turns the literal into a value. Table literals open a cursor
// positioned on the table's first row; the caller must close it.
func (l *literal) evaluate(store *tablestore.Store) (lang.Value, *tablestore.Cursor, error) {
	switch {
	case l.XML != nil:
		text, err := unquote(*l.XML)
		if err != nil {
			return nil, nil, err
		}
		x, err := lang.ParseXML(text)
		return x, nil, err
	case l.Table != nil:
		name, err := unquote(*l.Table)
		if err != nil {
			return nil, nil, err
		}
		return openTable(store, name)
	case l.Null:
		return lang.Null, nil, nil
	case l.True:
		return lang.NewVBoolean(true), nil, nil
	case l.False:
		return lang.NewVBoolean(false), nil, nil
	case l.Number != nil:
		return parseNumber(*l.Number)
	case l.String != nil:
		s, err := unquote(*l.String)
		if err != nil {
			return nil, nil, err
		}
		return lang.NewVString(s), nil, nil
	default:
		return nil, nil, errors.New("empty literal")
	}
}

func parseNumber(text string) (lang.Value, *tablestore.Cursor, error) {
	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "bad float %s", text)
		}
		return lang.NewVFloat(f), nil, nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "bad int %s", text)
	}
	return lang.NewVInt(i), nil, nil
}

func unquote(text string) (string, error) {
	s, err := strconv.Unquote(text)
	if err != nil {
		return "", errors.Wrapf(err, "bad string %s", text)
	}
	return s, nil
}

func openTable(store *tablestore.Store, name string) (lang.Value, *tablestore.Cursor, error) {
	if store == nil {
		return nil, nil, errors.New("no data file; start the shell with -data")
	}
	cursor, err := store.Query(name)
	if err != nil {
		return nil, nil, err
	}
	if _, err := cursor.Next(); err != nil {
		cursor.Close()
		return nil, nil, err
	}
	return lang.NewDataTable(cursor), cursor, nil
}
