package natives

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vilterp/balnative/pkg/lang"
	clog "github.com/vilterp/balnative/pkg/log"
)

// Context carries one native call: the argument frame, the return slots and
// the error channel. It is built by the interpreter, handed to exactly one
// Execute, and dropped afterwards. It must not be shared between goroutines.
type Context struct {
	ctx       context.Context
	id        uuid.UUID
	native    string
	args      []lang.Value
	returns   []lang.Value
	err       *lang.Error
	cancelled bool
}

var _ clog.Loggable = &Context{}

func NewContext(parent context.Context, args []lang.Value, numReturns int) *Context {
	if parent == nil {
		parent = context.Background()
	}
	id := uuid.New()
	return &Context{
		ctx:     context.WithValue(parent, clog.InvocationIDKey, id.String()),
		id:      id,
		args:    args,
		returns: make([]lang.Value, numReturns),
	}
}

func (c *Context) ID() uuid.UUID         { return c.id }
func (c *Context) Ctx() context.Context  { return c.ctx }
func (c *Context) NumArguments() int     { return len(c.args) }
func (c *Context) Returns() []lang.Value { return c.returns }

// bind tags the context with the native about to run.
func (c *Context) bind(fullName string) {
	c.native = fullName
	c.ctx = context.WithValue(c.ctx, clog.NativeKey, fullName)
}

// Argument returns the i-th argument, or an Arity error.
func (c *Context) Argument(i int) (lang.Value, error) {
	if i < 0 || i >= len(c.args) {
		return nil, &lang.Error{
			Kind:      lang.Arity,
			Operation: c.native,
			Message:   fmt.Sprintf("no argument %d; frame has %d", i, len(c.args)),
		}
	}
	return c.args[i], nil
}

func argumentAs[T lang.Value](c *Context, i int, expected lang.Type) (T, error) {
	var zero T
	v, err := c.Argument(i)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &lang.Error{
			Kind:      lang.TypeError,
			Operation: c.native,
			Message:   fmt.Sprintf("argument %d: expected %s; got %s", i, expected, v.Type()),
		}
	}
	return typed, nil
}

func (c *Context) IntArgument(i int) (int64, error) {
	v, err := argumentAs[*lang.VInt](c, i, lang.TInt)
	if err != nil {
		return 0, err
	}
	return v.IntValue(), nil
}

func (c *Context) StringArgument(i int) (string, error) {
	v, err := argumentAs[*lang.VString](c, i, lang.TString)
	if err != nil {
		return "", err
	}
	return v.StringValue(), nil
}

func (c *Context) XMLArgument(i int) (*lang.XML, error) {
	return argumentAs[*lang.XML](c, i, lang.TXML)
}

func (c *Context) DataTableArgument(i int) (*lang.DataTable, error) {
	return argumentAs[*lang.DataTable](c, i, lang.TDataTable)
}

// SetReturn fills the return slots from the front, adding slots if there
// are more values than were reserved.
func (c *Context) SetReturn(vals ...lang.Value) {
	if len(vals) > len(c.returns) {
		grown := make([]lang.Value, len(vals))
		copy(grown, c.returns)
		c.returns = grown
	}
	copy(c.returns, vals)
}

// WrapReturns packs return values for Execute.
func WrapReturns(vals ...lang.Value) []lang.Value {
	return vals
}

// Raise records a structured error attributed to operation and returns it.
// Only the first error of a call is kept.
func (c *Context) Raise(kind lang.ErrorKind, operation string, cause error) *lang.Error {
	e := &lang.Error{
		Kind:      kind,
		Operation: operation,
		Err:       cause,
	}
	if cause == nil {
		e.Message = "unknown failure"
	}
	return c.record(e)
}

// record puts err on the error channel unless something is already there,
// and returns whatever the channel holds.
func (c *Context) record(err error) *lang.Error {
	if c.err != nil {
		return c.err
	}
	e, ok := err.(*lang.Error)
	if !ok {
		e = lang.WrapError(lang.Internal, c.native, err)
	}
	c.err = e
	return e
}

// Err is the error channel: nil unless the call failed.
func (c *Context) Err() *lang.Error { return c.err }

// Cancel marks the context so that the next Invoke refuses to run. A native
// that is already running is not interrupted.
func (c *Context) Cancel()         { c.cancelled = true }
func (c *Context) Cancelled() bool { return c.cancelled }
