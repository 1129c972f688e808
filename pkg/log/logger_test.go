package log

import (
	"bytes"
	"context"
	"io/ioutil"
	"strings"
	"testing"
)

type loggable struct {
	ctx context.Context
}

func (l loggable) Ctx() context.Context { return l.ctx }

func TestPrintlnTags(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	defer SetOutput(ioutil.Discard)

	ctx := context.WithValue(context.Background(), InvocationIDKey, "abc")
	ctx = context.WithValue(ctx, NativeKey, "ballerina.lang.xmls:strip")

	Println(loggable{ctx}, "invoked")
	Printf(loggable{context.Background()}, "n=%d", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines; got %q", buf.String())
	}
	if !strings.HasSuffix(lines[0], "[inv=abc,native=ballerina.lang.xmls:strip] invoked") {
		t.Errorf("unexpected line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "[] n=3") {
		t.Errorf("unexpected line %q", lines[1])
	}
}
