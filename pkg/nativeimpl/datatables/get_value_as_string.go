package datatables

import (
	"github.com/pkg/errors"
	"github.com/vilterp/balnative/pkg/lang"
	"github.com/vilterp/balnative/pkg/nativeimpl/utils"
	"github.com/vilterp/balnative/pkg/natives"
)

const getValueAsStringOperation = "get value as string"

// GetValueAsString is ballerina.lang.datatables:getValueAsString. The
// column is chosen by index when given an int and by name when given a
// string.
var GetValueAsString = &natives.Function{
	Desc: &natives.Descriptor{
		Package: "ballerina.lang.datatables",
		Name:    "getValueAsString",
		Args: []natives.Arg{
			{Name: "dt", Type: lang.TDataTable},
			{Name: "column", Type: lang.TAny},
		},
		Returns: []lang.Type{lang.TString},
		Public:  true,
		Doc: natives.Doc{
			Description: "Retrieves the string value of the designated column in the current row. " +
				"The value of type blob and binary columns will return as a Base64Encoded string.",
			Params: []natives.AttrDoc{
				{Name: "dt", Description: "The datatable object"},
				{Name: "column", Description: "The column position of the result as index or name"},
			},
			Returns: []natives.AttrDoc{{Name: "string", Description: "The column value as a string"}},
		},
	},
	Impl: getValueAsString,
}

func getValueAsString(ctx *natives.Context) ([]lang.Value, error) {
	dt, err := ctx.DataTableArgument(0)
	if err != nil {
		return nil, err
	}
	column, err := ctx.Argument(1)
	if err != nil {
		return nil, err
	}

	var str string
	switch c := column.(type) {
	case *lang.VInt:
		str, err = dt.ObjectAsStringByIndex(int(c.IntValue()))
	case *lang.VString:
		str, err = dt.ObjectAsStringByName(c.StringValue())
	default:
		got := "nil"
		if column != nil {
			got = column.Type().String()
		}
		return nil, ctx.Raise(lang.TypeError, getValueAsStringOperation,
			errors.Errorf("column must be an int or a string; got %s", got))
	}
	if err != nil {
		return nil, utils.HandleDataAccessError(ctx, getValueAsStringOperation, err)
	}
	return natives.WrapReturns(lang.NewVString(str)), nil
}
