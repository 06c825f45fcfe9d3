package html

// DefaultMaxDepth limits how deeply templates may be nested through
// content interpolation before parsing aborts.
const DefaultMaxDepth = 64

// Log message constants
const (
	LogMsgParseStart = "parsing HTML template"
	LogMsgParseDone  = "parsed HTML template"
)

// Log field constants
const (
	LogFieldParts    = "parts"
	LogFieldTag      = "tag"
	LogFieldChildren = "children"
)
