package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	tstring "github.com/itsatony/go-tstring"
)

// renderConfig holds parsed render/html command configuration
type renderConfig struct {
	templatePath string
	dataYAML     string
	dataFilePath string
	outputPath   string
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(CmdNameRender, args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	tmpl, code := buildTemplate(cfg, stdin, stderr)
	if code != ExitCodeSuccess {
		return code
	}

	result, err := tstring.Format(tmpl)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgFormatFailed, err)
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseRenderFlags(name string, args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.dataYAML, FlagData, "", "")
	fs.StringVar(&cfg.dataYAML, FlagDataShort, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFile, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFileShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	return cfg, nil
}

// buildTemplate reads the document, resolves its data and constructs the
// template. Shared by render and html.
func buildTemplate(cfg *renderConfig, stdin io.Reader, stderr io.Writer) (tstring.Template, int) {
	source, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return tstring.Template{}, ExitCodeInputError
	}

	doc, err := parseDocument(source)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidDocument, err)
		return tstring.Template{}, ExitCodeInputError
	}

	args, kwargs, err := loadData(doc, cfg.dataYAML, cfg.dataFilePath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidData, err)
		return tstring.Template{}, ExitCodeInputError
	}

	tmpl, err := tstring.FromFormat(doc.body, args, kwargs)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgBuildFailed, err)
		return tstring.Template{}, ExitCodeError
	}

	return tmpl, ExitCodeSuccess
}
