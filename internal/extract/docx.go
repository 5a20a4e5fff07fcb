package extract

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

// documentXML mirrors the parts of word/document.xml the vault needs:
// body paragraphs and tables. Run formatting is ignored.
type documentXML struct {
	Body struct {
		Paragraphs []paragraphXML `xml:"p"`
		Tables     []tableXML     `xml:"tbl"`
	} `xml:"body"`
}

type paragraphXML struct {
	Runs []runXML `xml:"r"`
}

type runXML struct {
	Text []textXML `xml:"t"`
}

type textXML struct {
	Content string `xml:",chardata"`
}

type tableXML struct {
	Rows []tableRowXML `xml:"tr"`
}

type tableRowXML struct {
	Cells []tableCellXML `xml:"tc"`
}

type tableCellXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

// DocumentXML reads word/document.xml out of a docx container.
func DocumentXML(content []byte) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("opening container: %w", domain.ErrInvalidInput)
	}

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("opening document part: %w", domain.ErrInvalidInput)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading document part: %w", domain.ErrInvalidInput)
		}
		return data, nil
	}
	return nil, fmt.Errorf("word/document.xml missing: %w", domain.ErrInvalidInput)
}

// docxTables extracts every table of a docx container in document
// order. Each row's cells are joined paragraph texts.
func docxTables(content []byte) ([]driven.Table, error) {
	data, err := DocumentXML(content)
	if err != nil {
		return nil, err
	}

	var doc documentXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document xml: %w", domain.ErrInvalidInput)
	}

	var tables []driven.Table
	for _, tbl := range doc.Body.Tables {
		if len(tbl.Rows) == 0 {
			continue
		}
		t := driven.Table{Headers: cellTexts(tbl.Rows[0])}
		for _, row := range tbl.Rows[1:] {
			t.Rows = append(t.Rows, cellTexts(row))
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// docxText extracts the flowing text of a docx container: body
// paragraphs first, then table cell text, one line per paragraph.
func docxText(content []byte) (string, error) {
	data, err := DocumentXML(content)
	if err != nil {
		return "", err
	}

	var doc documentXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("parsing document xml: %w", domain.ErrInvalidInput)
	}

	var lines []string
	for _, para := range doc.Body.Paragraphs {
		lines = append(lines, paragraphText(para))
	}
	for _, tbl := range doc.Body.Tables {
		for _, row := range tbl.Rows {
			for _, cell := range row.Cells {
				for _, para := range cell.Paragraphs {
					lines = append(lines, paragraphText(para))
				}
			}
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func paragraphText(p paragraphXML) string {
	var b strings.Builder
	for _, run := range p.Runs {
		for _, t := range run.Text {
			b.WriteString(t.Content)
		}
	}
	return b.String()
}

func cellTexts(row tableRowXML) []string {
	cells := make([]string, 0, len(row.Cells))
	for _, cell := range row.Cells {
		var parts []string
		for _, para := range cell.Paragraphs {
			parts = append(parts, paragraphText(para))
		}
		cells = append(cells, strings.TrimSpace(strings.Join(parts, "\n")))
	}
	return cells
}
