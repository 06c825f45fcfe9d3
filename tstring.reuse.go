package tstring

// Formatter is a reusable template: every interpolation value in the wrapped
// template is a string key, resolved against a fresh value set on each
// Format call. Conversion and format spec of each interpolation are applied
// to the per-call value.
type Formatter struct {
	template Template
}

// NewFormatter validates that all interpolation values in t are string keys
// and returns a reusable Formatter.
func NewFormatter(t Template) (*Formatter, error) {
	for _, in := range t.Interpolations() {
		if _, ok := in.Value().(string); !ok {
			return nil, NewNonStringKeyError(in.Expr(), in.Value())
		}
	}
	return &Formatter{template: t}, nil
}

// Template returns the wrapped template.
func (f *Formatter) Template() Template {
	return f.template
}

// Format renders the template with per-call values substituted for each
// interpolation's key.
func (f *Formatter) Format(values map[string]any) (string, error) {
	return formatParts(f.template, func(in Interpolation) (any, error) {
		key := in.Value().(string)
		value, ok := values[key]
		if !ok {
			return nil, NewMissingKeyError(key)
		}
		return value, nil
	})
}
