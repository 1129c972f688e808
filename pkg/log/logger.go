package log

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"strings"
)

type ctxKey string

const (
	InvocationIDKey ctxKey = "InvocationID"
	NativeKey       ctxKey = "Native"
)

// The value model and dispatch layer never write to stdout/stderr on their
// own; output is discarded until SetOutput is called.
var std = log.New(ioutil.Discard, "", log.LstdFlags)

func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func ctxToString(ctx context.Context) string {
	var tags []string
	if invID := ctx.Value(InvocationIDKey); invID != nil {
		tags = append(tags, fmt.Sprintf("inv=%s", invID))
	}
	if native := ctx.Value(NativeKey); native != nil {
		tags = append(tags, fmt.Sprintf("native=%s", native))
	}
	return fmt.Sprintf("[%s]", strings.Join(tags, ","))
}

func Println(l Loggable, args ...interface{}) {
	allArgs := append([]interface{}{ctxToString(l.Ctx())}, args...)
	std.Println(allArgs...)
}

func Printf(l Loggable, format string, args ...interface{}) {
	std.Printf("%s %s", ctxToString(l.Ctx()), fmt.Sprintf(format, args...))
}

type Loggable interface {
	Ctx() context.Context
}
