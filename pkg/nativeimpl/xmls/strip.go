package xmls

import (
	"fmt"

	"github.com/vilterp/balnative/pkg/lang"
	"github.com/vilterp/balnative/pkg/nativeimpl/utils"
	"github.com/vilterp/balnative/pkg/natives"
)

const stripOperation = "strip xml"

// Strip is ballerina.lang.xmls:strip.
var Strip = &natives.Function{
	Desc: &natives.Descriptor{
		Package: "ballerina.lang.xmls",
		Name:    "strip",
		Args:    []natives.Arg{{Name: "x", Type: lang.TXML}},
		Returns: []lang.Type{lang.TXML},
		Public:  true,
		Doc: natives.Doc{
			Description: "Strips any text items from an XML sequence that are all whitespace.",
			Params:      []natives.AttrDoc{{Name: "x", Description: "An XML object"}},
			Returns: []natives.AttrDoc{
				{Name: "seq", Description: "XML seq with any text items that are all whitespace stripped"},
			},
		},
	},
	Impl: strip,
}

func strip(ctx *natives.Context) (rets []lang.Value, err error) {
	defer func() {
		if p := recover(); p != nil {
			rets = nil
			err = utils.HandleXMLError(ctx, stripOperation, fmt.Errorf("%v", p))
		}
	}()

	x, err := ctx.XMLArgument(0)
	if err != nil {
		return nil, utils.HandleXMLError(ctx, stripOperation, err)
	}
	stripped, err := x.Strip()
	if err != nil {
		return nil, utils.HandleXMLError(ctx, stripOperation, err)
	}
	return natives.WrapReturns(stripped), nil
}
