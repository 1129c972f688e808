// Package nativeimpl collects the natives shipped with the runtime.
package nativeimpl

import (
	"github.com/vilterp/balnative/pkg/nativeimpl/datatables"
	"github.com/vilterp/balnative/pkg/nativeimpl/xmls"
	"github.com/vilterp/balnative/pkg/natives"
)

// All is the registration table.
func All() []natives.Native {
	return []natives.Native{
		xmls.Strip,
		datatables.GetValueAsString,
	}
}

func Registry(opts ...natives.Option) (*natives.Registry, error) {
	return natives.Build(All(), opts...)
}
