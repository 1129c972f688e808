package natives

import "fmt"

// DuplicateNativeError means two natives claimed the same fully-qualified
// name. It is a configuration error, caught when the registry is built.
type DuplicateNativeError struct {
	Name string
}

func (e *DuplicateNativeError) Error() string {
	return fmt.Sprintf("native already registered: %s", e.Name)
}

type invalidDescriptor struct {
	Name   string
	Reason string
}

func (e *invalidDescriptor) Error() string {
	return fmt.Sprintf("invalid descriptor for %s: %s", e.Name, e.Reason)
}
