package natives

import (
	"context"
	"fmt"
	"testing"

	"github.com/vilterp/balnative/pkg/lang"
	"github.com/vilterp/balnative/pkg/util"
)

func TestContextArguments(t *testing.T) {
	x, err := lang.ParseXML("<a/>")
	if err != nil {
		t.Fatal(err)
	}
	ctx := NewContext(context.Background(), []lang.Value{lang.NewVInt(3), lang.NewVString("s"), x}, 1)
	if ctx.NumArguments() != 3 {
		t.Fatalf("expected 3 arguments; got %d", ctx.NumArguments())
	}

	i, err := ctx.IntArgument(0)
	if err != nil || i != 3 {
		t.Fatalf("expected 3; got %d, %v", i, err)
	}
	s, err := ctx.StringArgument(1)
	if err != nil || s != "s" {
		t.Fatalf("expected s; got %q, %v", s, err)
	}
	if got, err := ctx.XMLArgument(2); err != nil || got != x {
		t.Fatalf("expected the xml argument; got %v, %v", got, err)
	}

	cases := []struct {
		get  func() error
		kind lang.ErrorKind
	}{
		{func() error { _, err := ctx.Argument(3); return err }, lang.Arity},
		{func() error { _, err := ctx.Argument(-1); return err }, lang.Arity},
		{func() error { _, err := ctx.StringArgument(0); return err }, lang.TypeError},
		{func() error { _, err := ctx.DataTableArgument(2); return err }, lang.TypeError},
		{func() error { _, err := ctx.IntArgument(9); return err }, lang.Arity},
	}
	for idx, testCase := range cases {
		util.AssertErrorKind(t, idx, testCase.kind, testCase.get())
	}
	// Argument errors are returned, not recorded.
	if ctx.Err() != nil {
		t.Fatalf("expected no recorded error; got %v", ctx.Err())
	}
}

func TestContextReturns(t *testing.T) {
	ctx := NewContext(nil, nil, 2)
	if len(ctx.Returns()) != 2 {
		t.Fatalf("expected 2 return slots; got %d", len(ctx.Returns()))
	}
	ctx.SetReturn(lang.NewVInt(1))
	if ctx.Returns()[0].(*lang.VInt).IntValue() != 1 || ctx.Returns()[1] != nil {
		t.Fatalf("unexpected return slots %v", ctx.Returns())
	}
	ctx.SetReturn(WrapReturns(lang.Null, lang.Null, lang.Null)...)
	if len(ctx.Returns()) != 3 {
		t.Fatalf("expected return slots to grow to 3; got %d", len(ctx.Returns()))
	}
}

func TestContextRaise(t *testing.T) {
	ctx := NewContext(context.Background(), nil, 0)
	first := ctx.Raise(lang.XmlError, "strip xml", fmt.Errorf("boom"))
	second := ctx.Raise(lang.DataAccess, "other", fmt.Errorf("later"))
	if first != second || ctx.Err() != first {
		t.Fatal("expected the first raised error to stick")
	}
	util.AssertError(t, 0, "XmlError: strip xml: boom", ctx.Err())
	if !lang.Recoverable(ctx.Err().Kind) {
		t.Fatal("xml errors are recoverable")
	}
}

func TestContextIDs(t *testing.T) {
	a := NewContext(nil, nil, 0)
	b := NewContext(nil, nil, 0)
	if a.ID() == b.ID() {
		t.Fatal("expected distinct invocation ids")
	}
	if a.Cancelled() {
		t.Fatal("new context should not be cancelled")
	}
	a.Cancel()
	if !a.Cancelled() {
		t.Fatal("expected context to be cancelled")
	}
}
