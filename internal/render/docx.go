// Package render rewrites placeholder text inside word-processor
// containers.
package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driven"
)

// Ensure DocxRenderer implements the interface.
var _ driven.TemplateRenderer = (*DocxRenderer)(nil)

// DocxRenderer replaces delimited placeholders in the XML parts of a
// docx container. The container structure is preserved entry for
// entry; only document, header and footer parts are rewritten.
type DocxRenderer struct{}

// NewDocx creates a new docx renderer.
func NewDocx() *DocxRenderer {
	return &DocxRenderer{}
}

// Render returns new container bytes with every occurrence of each
// delimited key replaced by its XML-escaped value, together with the
// set of keys whose placeholder was found.
func (r *DocxRenderer) Render(template []byte, values map[string]string, delims driven.Delimiters) ([]byte, map[string]bool, error) {
	reader, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, nil, fmt.Errorf("opening container: %w", domain.ErrInvalidInput)
	}

	out := new(bytes.Buffer)
	writer := zip.NewWriter(out)
	replaced := make(map[string]bool)

	for _, file := range reader.File {
		data, err := readEntry(file)
		if err != nil {
			return nil, nil, err
		}
		if isTextPart(file.Name) {
			data = replacePlaceholders(data, values, delims, replaced)
		}

		header := file.FileHeader
		entry, err := writer.CreateHeader(&header)
		if err != nil {
			return nil, nil, fmt.Errorf("writing container entry %s: %w", file.Name, err)
		}
		if _, err := entry.Write(data); err != nil {
			return nil, nil, fmt.Errorf("writing container entry %s: %w", file.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, nil, fmt.Errorf("closing container: %w", err)
	}
	return out.Bytes(), replaced, nil
}

func readEntry(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("opening container entry %s: %w", file.Name, domain.ErrInvalidInput)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading container entry %s: %w", file.Name, domain.ErrInvalidInput)
	}
	return data, nil
}

// isTextPart reports whether a container entry carries user-visible
// document text.
func isTextPart(name string) bool {
	if name == "word/document.xml" {
		return true
	}
	if !strings.HasPrefix(name, "word/") || !strings.HasSuffix(name, ".xml") {
		return false
	}
	base := strings.TrimPrefix(name, "word/")
	return strings.HasPrefix(base, "header") || strings.HasPrefix(base, "footer")
}

// replacePlaceholders substitutes each delimited key in raw part XML
// and records hits in replaced. Values are escaped so markup
// characters in a value cannot corrupt the part.
func replacePlaceholders(data []byte, values map[string]string, delims driven.Delimiters, replaced map[string]bool) []byte {
	for key, value := range values {
		placeholder := []byte(delims.Start + key + delims.End)
		if !bytes.Contains(data, placeholder) {
			continue
		}
		data = bytes.ReplaceAll(data, placeholder, escapeXML(value))
		replaced[key] = true
	}
	return data
}

func escapeXML(s string) []byte {
	var b bytes.Buffer
	// EscapeText only fails on a failing writer, which a Buffer is not.
	_ = xml.EscapeText(&b, []byte(s))
	return b.Bytes()
}
