package natives

import (
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vilterp/balnative/pkg/lang"
	clog "github.com/vilterp/balnative/pkg/log"
)

const defaultMetricsNamespace = "natives"

// Registry maps fully-qualified names to natives. It is filled once at
// build time and only read afterwards.
type Registry struct {
	natives map[string]Native

	checkArgs        bool
	metricsNamespace string
	metrics          *metrics
}

type Option func(*Registry)

// WithArgumentChecking makes Invoke check arity and argument types against
// the descriptor, for callers that have no type checker of their own.
func WithArgumentChecking() Option {
	return func(r *Registry) { r.checkArgs = true }
}

func WithMetricsNamespace(namespace string) Option {
	return func(r *Registry) { r.metricsNamespace = namespace }
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		natives:          map[string]Native{},
		metricsNamespace: defaultMetricsNamespace,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.metrics = newMetrics(r.metricsNamespace, r)
	return r
}

// Register adds n under its fully-qualified name. Registering the same name
// twice is an error.
func (r *Registry) Register(n Native) error {
	desc := n.Descriptor()
	if desc == nil {
		return fmt.Errorf("native %T has no descriptor", n)
	}
	if err := desc.Validate(); err != nil {
		return err
	}
	name := desc.FullName()
	if _, exists := r.natives[name]; exists {
		return &DuplicateNativeError{Name: name}
	}
	r.natives[name] = n
	return nil
}

// Build makes a registry from a registration table, failing on the first
// invalid or duplicate entry.
func Build(table []Native, opts ...Option) (*Registry, error) {
	r := NewRegistry(opts...)
	for _, n := range table {
		if err := r.Register(n); err != nil {
			return nil, errors.Wrap(err, "building native registry")
		}
	}
	return r, nil
}

func MustBuild(table []Native, opts ...Option) *Registry {
	r, err := Build(table, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Lookup(pkg, name string) (Native, bool) {
	return r.LookupName(FullName(pkg, name))
}

func (r *Registry) LookupName(fullName string) (Native, bool) {
	n, ok := r.natives[fullName]
	return n, ok
}

// Natives returns every registered native, sorted by fully-qualified name.
func (r *Registry) Natives() []Native {
	names := make([]string, 0, len(r.natives))
	for name := range r.natives {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Native, len(names))
	for idx, name := range names {
		out[idx] = r.natives[name]
	}
	return out
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.metrics.registry
}

// Invoke runs n against ctx. On success the results are also in the
// context's return slots; on failure the error is also on its error channel.
func (r *Registry) Invoke(ctx *Context, n Native) ([]lang.Value, error) {
	desc := n.Descriptor()
	ctx.bind(desc.FullName())

	if ctx.Cancelled() {
		return nil, ctx.record(lang.NewError(lang.Cancelled, "invocation of %s was cancelled", desc.FullName()))
	}
	if r.checkArgs {
		if err := checkArguments(desc, ctx.args); err != nil {
			return nil, ctx.record(err)
		}
	}

	clog.Println(ctx, "invoking")
	start := time.Now()
	rets, err := execute(ctx, n)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	if err != nil {
		e := ctx.record(err)
		r.metrics.observe(desc.FullName(), time.Since(start), e)
		clog.Printf(ctx, "failed: %v", e)
		return nil, e
	}
	r.metrics.observe(desc.FullName(), time.Since(start), nil)
	ctx.SetReturn(rets...)
	return rets, nil
}

func execute(ctx *Context, n Native) (rets []lang.Value, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &lang.Error{
				Kind:      lang.Internal,
				Operation: n.Descriptor().FullName(),
				Message:   fmt.Sprintf("native panicked: %v", p),
			}
		}
	}()
	return n.Execute(ctx)
}

func checkArguments(desc *Descriptor, args []lang.Value) *lang.Error {
	if len(args) != len(desc.Args) {
		return &lang.Error{
			Kind:      lang.Arity,
			Operation: desc.FullName(),
			Message:   fmt.Sprintf("expected %d arguments; got %d", len(desc.Args), len(args)),
		}
	}
	for idx, arg := range desc.Args {
		if !lang.Conforms(args[idx], arg.Type) {
			got := "nil"
			if args[idx] != nil {
				got = args[idx].Type().String()
			}
			return &lang.Error{
				Kind:      lang.TypeError,
				Operation: desc.FullName(),
				Message:   fmt.Sprintf("argument %s: expected %s; got %s", arg.Name, arg.Type, got),
			}
		}
	}
	return nil
}
