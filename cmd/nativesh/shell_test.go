package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vilterp/balnative/pkg/nativeimpl"
	"github.com/vilterp/balnative/pkg/natives"
	"github.com/vilterp/balnative/pkg/tablestore"
)

func newTestShell(t *testing.T) (*shell, *bytes.Buffer, func()) {
	dir, err := ioutil.TempDir("", "nativesh_test")
	if err != nil {
		t.Fatal(err)
	}
	store, err := tablestore.Open(filepath.Join(dir, "test.db"))
	if err != nil {
		os.RemoveAll(dir)
		t.Fatal(err)
	}
	if err := seedPeople(store); err != nil {
		t.Fatal(err)
	}
	// seeding twice is a no-op
	if err := seedPeople(store); err != nil {
		t.Fatal(err)
	}
	registry, err := nativeimpl.Registry(natives.WithArgumentChecking())
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	return &shell{registry: registry, store: store, out: out}, out, func() {
		store.Close()
		os.RemoveAll(dir)
	}
}

func TestShell(t *testing.T) {
	sh, out, cleanup := newTestShell(t)
	defer cleanup()

	cases := []struct {
		line     string
		expected string
	}{
		{``, ``},
		{
			`ballerina.lang.datatables:getValueAsString(table("people"), 0)`,
			`"7"` + "\n",
		},
		{
			`ballerina.lang.datatables:getValueAsString(table("people"), "name")`,
			`"Ada"` + "\n",
		},
		{
			"ballerina.lang.datatables:getValueAsString(table(`people`), \"photo\")",
			`"aGk="` + "\n",
		},
		{
			`ballerina.lang.datatables:getValueAsString(table("people"), true)`,
			"error: TypeError: get value as string: column must be an int or a string; got boolean\n",
		},
		{
			`ballerina.lang.datatables:getValueAsString(table("people"), 1.5)`,
			"error: TypeError: get value as string: column must be an int or a string; got float\n",
		},
		{
			`ballerina.lang.xmls:strip(xml "<a> </a> <b>hi</b>")`,
			"<a> </a><b>hi</b>\n",
		},
		{
			`ballerina.lang.xmls:strip()`,
			"error: Arity: ballerina.lang.xmls:strip: expected 1 arguments; got 0\n",
		},
		{
			`ballerina.lang.xmls:strip("<a/>")`,
			"error: TypeError: ballerina.lang.xmls:strip: argument x: expected xml; got string\n",
		},
		{
			`ballerina.lang.xmls:nope(null)`,
			"no such native: ballerina.lang.xmls:nope\n",
		},
		{
			`ballerina.lang.datatables:getValueAsString(table("nope"), 0)`,
			"argument 0: no such table: nope\n",
		},
		{
			`\t`,
			"people\n",
		},
		{
			`\l`,
			"public ballerina.lang.datatables:getValueAsString(dt datatable, column any) (string)\n" +
				"public ballerina.lang.xmls:strip(x xml) (xml)\n",
		},
		{
			`\d ballerina.lang.xmls:strip`,
			"public ballerina.lang.xmls:strip(x xml) (xml)\n" +
				"  Strips any text items from an XML sequence that are all whitespace.\n" +
				"  @param x: An XML object\n" +
				"  @return seq: XML seq with any text items that are all whitespace stripped\n",
		},
	}

	for idx, testCase := range cases {
		out.Reset()
		sh.handleLine(testCase.line)
		if out.String() != testCase.expected {
			t.Errorf("case %d: expected %q; got %q", idx, testCase.expected, out.String())
		}
	}
}

func TestShellParseErrors(t *testing.T) {
	sh, out, cleanup := newTestShell(t)
	defer cleanup()

	for idx, line := range []string{`strip(`, `a.b:c(1,)`, `a:b(xml 3)`} {
		out.Reset()
		sh.handleLine(line)
		if !strings.HasPrefix(out.String(), "parse error:") {
			t.Errorf("case %d: expected a parse error; got %q", idx, out.String())
		}
	}
}

func TestShellMetrics(t *testing.T) {
	sh, out, cleanup := newTestShell(t)
	defer cleanup()

	sh.handleLine(`ballerina.lang.xmls:strip(xml "<a/>")`)
	out.Reset()
	sh.handleLine(`\m`)
	if !strings.Contains(out.String(), `natives_invocations{native="ballerina.lang.xmls:strip"} 1`) {
		t.Fatalf("expected the strip invocation to be counted; got:\n%s", out.String())
	}
}

func TestParseCall(t *testing.T) {
	c, err := parseCall(`a.b:c(1, -2.5, "x", true, false, null)`)
	if err != nil {
		t.Fatal(err)
	}
	if c.Package != "a.b" || c.Name != "c" || len(c.Args) != 6 {
		t.Fatalf("unexpected call %+v", c)
	}
	expected := []string{"1", "-2.5", `"x"`, "true", "false", "null"}
	for idx, lit := range c.Args {
		val, cursor, err := lit.evaluate(nil)
		if err != nil {
			t.Fatalf("case %d: %v", idx, err)
		}
		if cursor != nil {
			t.Fatalf("case %d: unexpected cursor", idx)
		}
		if actual := val.Format().String(); actual != expected[idx] {
			t.Errorf("case %d: expected %s; got %s", idx, expected[idx], actual)
		}
	}

	c, err = parseCall(`a:b(table("t"))`)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := c.Args[0].evaluate(nil); err == nil {
		t.Fatal("expected table literal without a store to fail")
	}
}
