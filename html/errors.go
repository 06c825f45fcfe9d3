package html

import (
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-tstring/internal"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	ErrMsgParseFailed     = "HTML template parsing failed"
	ErrMsgUnexpectedChar  = "unexpected character"
	ErrMsgUnterminatedTag = "unterminated tag"
	ErrMsgUnterminatedStr = "unterminated attribute value"
	ErrMsgUnexpectedEOF   = "unexpected end of template"
	ErrMsgInvalidTagName  = "invalid tag name"
	ErrMsgEmptyTagName    = "tag name cannot be empty"
	ErrMsgMismatchedTag   = "mismatched closing tag"
	ErrMsgUnexpectedClose = "closing tag without matching opening tag"
	ErrMsgNoRoot          = "no root element"
	ErrMsgMultipleRoots   = "multiple root elements"
	ErrMsgTextOutsideRoot = "text outside of root element"
	ErrMsgFragmentAttrs   = "fragments cannot have attributes, only children"
	ErrMsgMaxDepth        = "maximum template nesting depth exceeded"

	ErrMsgBadTagValue     = "unsupported tag interpolation value"
	ErrMsgBadContentValue = "unsupported content interpolation value"
	ErrMsgBadAttrValue    = "attribute interpolation value must be a string or a bool"
	ErrMsgBadAttrsValue   = "attributes interpolation value must be an attribute mapping"
	ErrMsgBadAttrEntry    = "attribute mapping entry must be a string or a bool"
	ErrMsgComponentFailed = "component invocation failed"
)

// Error code constants for categorization
const (
	ErrCodeParse = "TSTR_HTML_PARSE"
	ErrCodeType  = "TSTR_HTML_TYPE"
)

// Metadata keys attached to errors
const (
	MetaKeyLine      = "line"
	MetaKeyColumn    = "column"
	MetaKeyOffset    = "offset"
	MetaKeyExpected  = "expected"
	MetaKeyActual    = "actual"
	MetaKeyExpr      = "expr"
	MetaKeyValueType = "value_type"
	MetaKeyAttr      = "attr"
	MetaKeyEntry     = "entry"
)

func withPosition(err *cuserr.CustomError, pos internal.Position) *cuserr.CustomError {
	return err.
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// NewParseError creates a parse error with position context.
func NewParseError(msg string, pos internal.Position, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeParse, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeParse, msg)
	}
	return withPosition(err, pos)
}

// NewMismatchedTagError creates an error for a closing tag that does not
// match its opening tag.
func NewMismatchedTagError(expected, actual string, pos internal.Position) error {
	return withPosition(cuserr.NewValidationError(ErrCodeParse, ErrMsgMismatchedTag), pos).
		WithMetadata(MetaKeyExpected, expected).
		WithMetadata(MetaKeyActual, actual)
}

// NewFragmentAttrsError creates an error for a fragment carrying attributes.
func NewFragmentAttrsError() error {
	return cuserr.NewValidationError(ErrCodeParse, ErrMsgFragmentAttrs)
}

// NewValueError creates a type error for an interpolation value that is not
// acceptable at its position.
func NewValueError(msg, expr string, value any, pos internal.Position) error {
	return withPosition(cuserr.NewValidationError(ErrCodeType, msg), pos).
		WithMetadata(MetaKeyExpr, expr).
		WithMetadata(MetaKeyValueType, fmt.Sprintf("%T", value))
}

// NewAttrValueError creates a type error for an attribute-value
// interpolation.
func NewAttrValueError(attr, expr string, value any, pos internal.Position) error {
	return withPosition(cuserr.NewValidationError(ErrCodeType, ErrMsgBadAttrValue), pos).
		WithMetadata(MetaKeyAttr, attr).
		WithMetadata(MetaKeyExpr, expr).
		WithMetadata(MetaKeyValueType, fmt.Sprintf("%T", value))
}

// NewAttrEntryError creates a type error for an attributes-mapping entry.
func NewAttrEntryError(entry, expr string, value any, pos internal.Position) error {
	return withPosition(cuserr.NewValidationError(ErrCodeType, ErrMsgBadAttrEntry), pos).
		WithMetadata(MetaKeyEntry, entry).
		WithMetadata(MetaKeyExpr, expr).
		WithMetadata(MetaKeyValueType, fmt.Sprintf("%T", value))
}

// NewComponentError wraps a failure from a component invocation.
func NewComponentError(expr string, pos internal.Position, cause error) error {
	return withPosition(cuserr.WrapStdError(cause, ErrCodeParse, ErrMsgComponentFailed), pos).
		WithMetadata(MetaKeyExpr, expr)
}
