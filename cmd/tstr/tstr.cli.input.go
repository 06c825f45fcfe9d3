package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// documentData is the YAML frontmatter of a template document.
type documentData struct {
	Args   []any          `yaml:"args"`
	Kwargs map[string]any `yaml:"kwargs"`
}

// document is a parsed template document: a format-string body plus its
// data.
type document struct {
	body string
	data documentData
}

// parseDocument splits an optional YAML frontmatter block from the
// format-string body. Frontmatter starts with a "---" line and ends at the
// next "---" line; everything after it is the body.
func parseDocument(source []byte) (*document, error) {
	text := string(source)
	doc := &document{body: text}

	rest, ok := strings.CutPrefix(text, FrontmatterDelimiter+"\n")
	if !ok {
		return doc, nil
	}
	front, body, found := strings.Cut(rest, "\n"+FrontmatterDelimiter+"\n")
	if !found {
		// Closing delimiter at end of input without trailing newline.
		front, ok = strings.CutSuffix(rest, "\n"+FrontmatterDelimiter)
		if !ok {
			return nil, errors.New(ErrMsgInvalidDocument)
		}
		body = ""
	}
	if err := yaml.Unmarshal([]byte(front), &doc.data); err != nil {
		return nil, err
	}
	doc.body = body
	return doc, nil
}

// loadData resolves the document's args and kwargs: frontmatter first, then
// a data file, then inline data, later sources overriding kwargs keys.
func loadData(doc *document, inlineYAML, filePath string) ([]any, map[string]any, error) {
	args := doc.data.Args
	kwargs := map[string]any{}
	for key, value := range doc.data.Kwargs {
		kwargs[key] = value
	}

	if filePath != "" {
		raw, err := os.ReadFile(filePath)
		if err != nil {
			return nil, nil, err
		}
		var data documentData
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, nil, err
		}
		if data.Args != nil {
			args = data.Args
		}
		for key, value := range data.Kwargs {
			kwargs[key] = value
		}
	}

	if inlineYAML != "" {
		var inline map[string]any
		if err := yaml.Unmarshal([]byte(inlineYAML), &inline); err != nil {
			return nil, nil, err
		}
		for key, value := range inline {
			kwargs[key] = value
		}
	}

	return args, kwargs, nil
}
