package adapter

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// decodeHCL reads top-level attributes of an HCL file:
//
//	logging_level     = "DEBUG"
//	include_fixer_ids = ["fix_a", "fix_b"]
//	exclude_fixer_ids = null
func decodeHCL(name string, data []byte) (map[string]any, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, diags
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	values := make(map[string]any, len(attrs))

	for key, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}

		goVal, err := ctyToGo(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", key, err)
		}

		values[key] = goVal
	}

	return values, nil
}

// ctyToGo converts a known cty value into the plain Go values ConfigFromMap
// understands.
func ctyToGo(v cty.Value) (any, error) {
	if !v.IsKnown() {
		return nil, errors.New("value is not known")
	}

	if v.IsNull() {
		return nil, nil
	}

	t := v.Type()

	switch {
	case t == cty.String:
		return v.AsString(), nil
	case t == cty.Bool:
		return v.True(), nil
	case t == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return f, nil
	case t.IsListType() || t.IsTupleType() || t.IsSetType():
		out := make([]any, 0, v.LengthInt())

		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()

			goElem, err := ctyToGo(elem)
			if err != nil {
				return nil, err
			}

			out = append(out, goElem)
		}

		return out, nil
	case t.IsMapType() || t.IsObjectType():
		out := make(map[string]any)

		for it := v.ElementIterator(); it.Next(); {
			k, elem := it.Element()

			goElem, err := ctyToGo(elem)
			if err != nil {
				return nil, err
			}

			out[k.AsString()] = goElem
		}

		return out, nil
	default:
		return nil, fmt.Errorf("unsupported type %s", t.FriendlyName())
	}
}
