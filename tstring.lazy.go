package tstring

import (
	"context"
	"strings"
)

// DefaultSelectedPlaceholder replaces interpolations whose format spec does
// not match the selector in FormatSelected.
const DefaultSelectedPlaceholder = "***"

// FormatSelected renders a template whose interpolation values are all
// zero-argument suppliers, invoking a supplier only when its format spec
// equals the selector. Non-matching interpolations render as the default
// placeholder. Conversions apply to invoked values; the format spec itself
// is the routing selector and is not applied as formatting.
func FormatSelected(selector string, t Template) (string, error) {
	return FormatSelectedWith(selector, DefaultSelectedPlaceholder, t)
}

// FormatSelectedWith is FormatSelected with a custom placeholder.
func FormatSelectedWith(selector, placeholder string, t Template) (string, error) {
	var sb strings.Builder
	for _, p := range t.Parts() {
		switch part := p.(type) {
		case Literal:
			sb.WriteString(string(part))
		case Interpolation:
			supplier, err := callSupplier(part)
			if err != nil {
				return "", err
			}
			if part.FormatSpec() == selector {
				resolved, err := supplier()
				if err != nil {
					return "", NewSupplierError(part.Expr(), err)
				}
				sb.WriteString(Stringify(Convert(resolved, part.Conv())))
			} else {
				sb.WriteString(placeholder)
			}
		}
	}
	return sb.String(), nil
}

// callSupplier normalizes the supported supplier shapes to one signature.
func callSupplier(in Interpolation) (func() (any, error), error) {
	switch fn := in.Value().(type) {
	case func() any:
		return func() (any, error) { return fn(), nil }, nil
	case func() (any, error):
		return fn, nil
	default:
		return nil, NewNotCallableError(in.Expr(), in.Value())
	}
}

// FormatContext renders a template whose interpolation values may be plain
// values or suppliers. Plain values are used as-is; func() any and
// func() (any, error) suppliers are invoked; func(context.Context)
// (any, error) suppliers are invoked with ctx, so slow value production can
// honor cancellation. Conversions and format specs apply to the resolved
// values.
func FormatContext(ctx context.Context, t Template) (string, error) {
	return formatParts(t, func(in Interpolation) (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, NewSupplierError(in.Expr(), err)
		}
		switch fn := in.Value().(type) {
		case func() any:
			return fn(), nil
		case func() (any, error):
			value, err := fn()
			if err != nil {
				return nil, NewSupplierError(in.Expr(), err)
			}
			return value, nil
		case func(context.Context) (any, error):
			value, err := fn(ctx)
			if err != nil {
				return nil, NewSupplierError(in.Expr(), err)
			}
			return value, nil
		default:
			return in.Value(), nil
		}
	})
}
