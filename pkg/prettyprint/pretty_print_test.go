package prettyprint

import "testing"

func TestPrettyPrint(t *testing.T) {
	cases := []struct {
		in  Doc
		out string
	}{
		{
			Seq(Text("foo"), Text(" "), Text("bar")),
			`foo bar`,
		},
		{
			Seq(Text("foo["), Newline, Nest(2, Text("bar")), Newline, Text("]")),
			`foo[
  bar
]`,
		},
		{
			Seq(
				Text("{"), Newline,
				Nest(2, Join([]Doc{Text("a: 1"), Text("b: 2")}, CommaNewline)),
				CommaNewline, Text("}"),
			),
			`{
  a: 1,
  b: 2,
}`,
		},
		{
			Surround("array<", Surround("map<", Text("int"), ">"), ">"),
			`array<map<int>>`,
		},
		{
			Nest(2, Text("x\ny")),
			"  x\n  y",
		},
		{
			Join(nil, CommaSpace),
			``,
		},
	}

	for idx, testCase := range cases {
		actual := testCase.in.String()
		if actual != testCase.out {
			t.Fatalf("case %d:\nEXPECTED\n\n%s\n\nGOT\n\n%s", idx, testCase.out, actual)
		}
	}
}

func TestDebug(t *testing.T) {
	d := Seq(Text("a"), Newline, Nest(2, Empty))
	expected := `Seq(Text("a"), Newline, Nest(2, Empty))`
	if d.Debug() != expected {
		t.Fatalf("expected %s; got %s", expected, d.Debug())
	}
}
