package domain

import (
	"path/filepath"
	"strings"
)

// Format identifies the declared shape of a vault file, derived from
// its extension. It selects the parser and the substitution variant.
type Format string

// Recognised formats.
const (
	FormatJSON Format = "json"
	FormatTXT  Format = "txt"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatDOCX Format = "docx"
	FormatDOC  Format = "doc"
)

// FormatFromName derives the format from a file name.
// Returns ErrUnsupportedFormat for anything outside the recognised set.
func FormatFromName(name string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch f := Format(ext); f {
	case FormatJSON, FormatTXT, FormatCSV, FormatXLSX, FormatXLS, FormatDOCX, FormatDOC:
		return f, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// IsValid returns true if the format is recognised.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatTXT, FormatCSV, FormatXLSX, FormatXLS, FormatDOCX, FormatDOC:
		return true
	default:
		return false
	}
}

// IsSpreadsheet returns true for workbook formats.
func (f Format) IsSpreadsheet() bool {
	return f == FormatXLSX || f == FormatXLS
}

// IsWordDocument returns true for word-processor formats.
func (f Format) IsWordDocument() bool {
	return f == FormatDOCX || f == FormatDOC
}

// MIMEType returns the content type associated with the format.
func (f Format) MIMEType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatTXT:
		return "text/plain"
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatXLS:
		return "application/vnd.ms-excel"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatDOC:
		return "application/msword"
	default:
		return "application/octet-stream"
	}
}

// String returns the string representation.
func (f Format) String() string {
	return string(f)
}

// MergedName inserts a "_merged" suffix before the final extension of
// name. A name without an extension gets the suffix appended.
func MergedName(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return name + "_merged"
	}
	return strings.TrimSuffix(name, ext) + "_merged" + ext
}
