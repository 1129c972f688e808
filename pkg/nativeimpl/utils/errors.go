// Package utils holds helpers shared by the native implementations.
package utils

import (
	"github.com/vilterp/balnative/pkg/lang"
	"github.com/vilterp/balnative/pkg/natives"
)

// HandleXMLError records err on the context as an XmlError attributed to
// operation, whatever its original kind.
func HandleXMLError(ctx *natives.Context, operation string, err error) *lang.Error {
	return ctx.Raise(lang.XmlError, operation, err)
}

// HandleDataAccessError records err on the context attributed to operation.
// Structured errors keep their kind; anything else becomes DataAccess.
func HandleDataAccessError(ctx *natives.Context, operation string, err error) *lang.Error {
	kind := lang.DataAccess
	if e, ok := err.(*lang.Error); ok {
		kind = e.Kind
	}
	return ctx.Raise(kind, operation, err)
}
