package main

import (
	"fmt"
	"io"

	"github.com/itsatony/go-tstring/html"
)

func runHTML(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(CmdNameHTML, args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	tmpl, code := buildTemplate(cfg, stdin, stderr)
	if code != ExitCodeSuccess {
		return code
	}

	root, err := html.Parse(tmpl)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgParseHTMLFailed, err)
		return ExitCodeError
	}

	result := html.Render(root) + FmtNewline
	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}
