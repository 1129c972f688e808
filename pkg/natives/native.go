package natives

import "github.com/vilterp/balnative/pkg/lang"

// Native is a host-implemented function callable from the language. By the
// time Execute runs, the arguments have been checked against the descriptor,
// so implementations may downcast them without rechecking.
type Native interface {
	Descriptor() *Descriptor
	Execute(ctx *Context) ([]lang.Value, error)
}

// Function is a Native built from a descriptor and a func.
type Function struct {
	Desc *Descriptor
	Impl func(ctx *Context) ([]lang.Value, error)
}

var _ Native = &Function{}

func (f *Function) Descriptor() *Descriptor { return f.Desc }

func (f *Function) Execute(ctx *Context) ([]lang.Value, error) {
	return f.Impl(ctx)
}
