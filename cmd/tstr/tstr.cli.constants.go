package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameHTML    = "html"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagTemplate = "template"
	FlagData     = "data"
	FlagDataFile = "data-file"
	FlagOutput   = "output"
	FlagFormat   = "format"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagOutputShort   = "o"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Document frontmatter delimiter
const (
	FrontmatterDelimiter = "---"
)

// Error messages - ALL must be constants
const (
	ErrMsgNoCommand         = "no command specified"
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgMissingTemplate   = "template source required"
	ErrMsgInvalidData       = "invalid template data"
	ErrMsgInvalidDocument   = "invalid template document"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgBuildFailed       = "template construction failed"
	ErrMsgFormatFailed      = "template formatting failed"
	ErrMsgParseHTMLFailed   = "HTML parsing failed"
	ErrMsgInvalidFormat     = "invalid output format"
)

// Help text templates
const (
	HelpMainUsage = `go-tstring - Template string formatting CLI

Usage:
    tstr <command> [options]

Commands:
    render      Format a template document to text
    html        Parse a template document as HTML and render it
    version     Show version information
    help        Show help for a command

Use "tstr help <command>" for more information about a command.`

	HelpRenderUsage = `Format a template document to text

A template document is a format string, optionally preceded by a YAML
frontmatter block carrying its data:

    ---
    args:
      - 42
    kwargs:
      name: World
    ---
    Hello {name}, the answer is {0:>5d}.

Usage:
    tstr render [options]

Options:
    -t, --template <file>   Template document (use "-" for stdin)
    -d, --data <yaml>       Inline YAML/JSON mapping merged into kwargs
    -f, --data-file <file>  YAML file with args/kwargs
    -o, --output <file>     Output file (default: stdout)

Examples:
    tstr render -t greeting.tstr
    tstr render -t greeting.tstr -d '{"name": "Alice"}'
    cat greeting.tstr | tstr render -t -`

	HelpHTMLUsage = `Parse a template document as HTML and render it

The document body is parsed as restricted HTML markup; interpolated
values are escaped during parsing.

Usage:
    tstr html [options]

Options:
    -t, --template <file>   Template document (use "-" for stdin)
    -d, --data <yaml>       Inline YAML/JSON mapping merged into kwargs
    -f, --data-file <file>  YAML file with args/kwargs
    -o, --output <file>     Output file (default: stdout)

Examples:
    tstr html -t page.tstr -d '{"title": "Home"}'
    cat page.tstr | tstr html -t -`

	HelpVersionUsage = `Show version information

Usage:
    tstr version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    tstr help [command]

Commands:
    render      Show help for render command
    html        Show help for html command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-tstring version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// CLI metadata
const (
	CLIName        = "tstr"
	CLIDescription = "Template string formatting CLI"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
