package tstring

import (
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Template construction errors
	ErrMsgBadTemplateArg = "template argument must be a string or an Interpolation"

	// Format rendering errors
	ErrMsgFormatFailed      = "template formatting failed"
	ErrMsgBadFormatSpec     = "invalid format spec"
	ErrMsgUnknownFormatVerb = "unknown format type"
	ErrMsgPrecisionInt      = "precision not allowed for integer formatting"
	ErrMsgNotInteger        = "value is not an integer"
	ErrMsgNotNumeric        = "value is not numeric"

	// Legacy format string conversion errors
	ErrMsgUnknownConversion = "unknown conversion specifier"
	ErrMsgNestedSpec        = "format spec interpolations are not supported"
	ErrMsgNumberingMix      = "cannot switch between automatic and manual field numbering"
	ErrMsgIndexOutOfRange   = "replacement index out of range for positional args"
	ErrMsgMissingKey        = "replacement key not found in keyword args"

	// Reusable formatter errors
	ErrMsgNonStringKey = "interpolation value must be a string key"

	// Deferred evaluation errors
	ErrMsgNotCallable    = "interpolation value is not callable"
	ErrMsgSupplierFailed = "value supplier failed"
)

// Error code constants for categorization
const (
	ErrCodeTemplate = "TSTR_TEMPLATE"
	ErrCodeFormat   = "TSTR_FORMAT"
	ErrCodeType     = "TSTR_TYPE"
)

// Metadata keys attached to errors
const (
	MetaKeyArgIndex = "arg_index"
	MetaKeyArgType  = "arg_type"
	MetaKeyExpr     = "expr"
	MetaKeySpec     = "spec"
	MetaKeyConv     = "conv"
	MetaKeyIndex    = "index"
	MetaKeyKey      = "key"
)

// NewTemplateArgError creates an error for an invalid New() argument.
func NewTemplateArgError(index int, arg any) error {
	return cuserr.NewValidationError(ErrCodeTemplate, ErrMsgBadTemplateArg).
		WithMetadata(MetaKeyArgIndex, strconv.Itoa(index)).
		WithMetadata(MetaKeyArgType, fmt.Sprintf("%T", arg))
}

// NewFormatSpecError creates an error for a malformed or unsupported format spec.
func NewFormatSpecError(msg, spec string) error {
	return cuserr.NewValidationError(ErrCodeFormat, msg).
		WithMetadata(MetaKeySpec, spec)
}

// NewFormatValueError creates an error for a value that cannot satisfy its
// format spec (e.g. a string formatted with an integer type).
func NewFormatValueError(msg, spec string, value any) error {
	return cuserr.NewValidationError(ErrCodeType, msg).
		WithMetadata(MetaKeySpec, spec).
		WithMetadata(MetaKeyArgType, fmt.Sprintf("%T", value))
}

// NewConversionError creates an error for an unknown conversion specifier.
func NewConversionError(conv string) error {
	return cuserr.NewValidationError(ErrCodeFormat, ErrMsgUnknownConversion).
		WithMetadata(MetaKeyConv, conv)
}

// NewNumberingMixError creates an error for mixing automatic and manual
// field numbering in one format string.
func NewNumberingMixError() error {
	return cuserr.NewValidationError(ErrCodeFormat, ErrMsgNumberingMix)
}

// NewIndexOutOfRangeError creates an error for a positional replacement
// index with no matching argument.
func NewIndexOutOfRangeError(index int) error {
	return cuserr.NewValidationError(ErrCodeFormat, ErrMsgIndexOutOfRange).
		WithMetadata(MetaKeyIndex, strconv.Itoa(index))
}

// NewMissingKeyError creates an error for a keyword replacement key with no
// matching argument.
func NewMissingKeyError(key string) error {
	return cuserr.NewNotFoundError(MetaKeyKey, ErrMsgMissingKey).
		WithMetadata(MetaKeyKey, key)
}

// NewNonStringKeyError creates an error for a reusable-formatter template
// whose interpolation value is not a string key.
func NewNonStringKeyError(expr string, value any) error {
	return cuserr.NewValidationError(ErrCodeType, ErrMsgNonStringKey).
		WithMetadata(MetaKeyExpr, expr).
		WithMetadata(MetaKeyArgType, fmt.Sprintf("%T", value))
}

// NewNotCallableError creates an error for a deferred-evaluation template
// whose interpolation value is not a supplier function.
func NewNotCallableError(expr string, value any) error {
	return cuserr.NewValidationError(ErrCodeType, ErrMsgNotCallable).
		WithMetadata(MetaKeyExpr, expr).
		WithMetadata(MetaKeyArgType, fmt.Sprintf("%T", value))
}

// NewSupplierError wraps a failure from a value supplier.
func NewSupplierError(expr string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeFormat, ErrMsgSupplierFailed).
		WithMetadata(MetaKeyExpr, expr)
}
