package tstring

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log field name constants
const (
	LogFieldMessage = "message"
	LogFieldValues  = "values"
)

// TemplateMessage routes one template to two output encodings: a rendered
// human-readable message and the structured interpolation values. It
// implements zapcore.ObjectMarshaler so a single logging call can emit both:
//
//	logger.Info("login", zap.Object("event", tstring.NewTemplateMessage(t)))
type TemplateMessage struct {
	template Template
}

// NewTemplateMessage wraps a template for structured logging.
func NewTemplateMessage(t Template) TemplateMessage {
	return TemplateMessage{template: t}
}

// Template returns the wrapped template.
func (m TemplateMessage) Template() Template {
	return m.template
}

// Message renders the human-readable form of the template.
func (m TemplateMessage) Message() (string, error) {
	return Format(m.template)
}

// Values maps each interpolation's expression text to its value.
func (m TemplateMessage) Values() map[string]any {
	values := make(map[string]any)
	for _, in := range m.template.Interpolations() {
		values[in.Expr()] = in.Value()
	}
	return values
}

// Fields returns one zap field per interpolation, keyed by expression text.
func (m TemplateMessage) Fields() []zap.Field {
	interps := m.template.Interpolations()
	fields := make([]zap.Field, 0, len(interps))
	for _, in := range interps {
		fields = append(fields, zap.Any(in.Expr(), in.Value()))
	}
	return fields
}

// MarshalLogObject emits the message and the structured values as one
// encoder object.
func (m TemplateMessage) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	msg, err := m.Message()
	if err != nil {
		return err
	}
	enc.AddString(LogFieldMessage, msg)
	enc.OpenNamespace(LogFieldValues)
	for _, in := range m.template.Interpolations() {
		if err := enc.AddReflected(in.Expr(), in.Value()); err != nil {
			return err
		}
	}
	return nil
}

// String renders the message, falling back to the debug representation of
// the template when formatting fails.
func (m TemplateMessage) String() string {
	msg, err := m.Message()
	if err != nil {
		return m.template.String()
	}
	return msg
}
