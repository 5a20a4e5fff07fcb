package services

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/extract"
	"github.com/stowage-labs/stowage-cli/internal/render"
)

func createTemplateDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	doc, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = doc.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func pair(key, value string) domain.IdentifierPair {
	return domain.IdentifierPair{ID: key, Key: key, Value: value, Status: domain.PairStatusUnset}
}

func TestSubstituter_Text(t *testing.T) {
	s := NewSubstituter(render.NewDocx())
	target := &domain.VaultFile{
		Name:     "letter.txt",
		MIMEType: "text/plain",
		Content:  []byte("Dear NAME, your NAME order ORDER shipped."),
	}

	result, err := s.Substitute(target, []domain.IdentifierPair{
		pair("NAME", "Ada"),
		pair("ORDER", "41"),
		pair("MISSING", "x"),
	})
	require.NoError(t, err)

	assert.Equal(t, "letter_merged.txt", result.Output.Name)
	assert.Equal(t, "text/plain", result.Output.MIMEType)
	assert.Equal(t, "Dear Ada, your Ada order 41 shipped.", string(result.Output.Content))
	assert.Equal(t, 3, result.Replacements)

	assert.Equal(t, domain.PairStatusReplaced, result.Pairs[0].Status)
	assert.Equal(t, domain.PairStatusReplaced, result.Pairs[1].Status)
	assert.Equal(t, domain.PairStatusNotFound, result.Pairs[2].Status)
}

func TestSubstituter_Text_RawKey(t *testing.T) {
	// The search pattern is the raw key itself, not a decorated wrapper.
	s := NewSubstituter(render.NewDocx())
	target := &domain.VaultFile{Name: "note.txt", Content: []byte("Hello NAME, welcome")}

	result, err := s.Substitute(target, []domain.IdentifierPair{pair("NAME", "Bob")})
	require.NoError(t, err)

	assert.Equal(t, "Hello Bob, welcome", string(result.Output.Content))
	assert.Equal(t, domain.PairStatusReplaced, result.Pairs[0].Status)
	assert.Equal(t, 1, result.Replacements)
}

func TestSubstituter_Text_DecoratedKeys(t *testing.T) {
	// A decorated key matches the decorated placeholder literally,
	// since the decoration is part of the raw key.
	s := NewSubstituter(render.NewDocx())
	target := &domain.VaultFile{Name: "a.txt", Content: []byte("x $%K%$ y")}

	result, err := s.Substitute(target, []domain.IdentifierPair{pair("$%K%$", "v")})
	require.NoError(t, err)
	assert.Equal(t, "x v y", string(result.Output.Content))
	assert.Equal(t, domain.PairStatusReplaced, result.Pairs[0].Status)
}

func TestSubstituter_Text_EmptyKey(t *testing.T) {
	s := NewSubstituter(render.NewDocx())
	target := &domain.VaultFile{Name: "a.txt", Content: []byte("body")}

	result, err := s.Substitute(target, []domain.IdentifierPair{pair("", "v")})
	require.NoError(t, err)
	assert.Equal(t, "body", string(result.Output.Content))
	assert.Equal(t, domain.PairStatusNotFound, result.Pairs[0].Status)
	assert.Equal(t, 0, result.Replacements)
}

func TestSubstituter_Docx(t *testing.T) {
	template := createTemplateDOCX(t, `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Device $%设备编号%$ / $%Absent%$</w:t></w:r></w:p></w:body></w:document>`)
	s := NewSubstituter(render.NewDocx())
	target := &domain.VaultFile{
		Name:     "report.docx",
		MIMEType: domain.FormatDOCX.MIMEType(),
		Content:  template,
	}

	result, err := s.Substitute(target, []domain.IdentifierPair{
		pair("$%设备编号%$", "D100"),
		pair("Absent2", "x"),
	})
	require.NoError(t, err)

	assert.Equal(t, "report_merged.docx", result.Output.Name)
	assert.Equal(t, domain.FormatDOCX.MIMEType(), result.Output.MIMEType)

	text, err := extract.New().Text(result.Output.Content, domain.FormatDOCX)
	require.NoError(t, err)
	assert.Contains(t, text, "Device D100")

	assert.Equal(t, domain.PairStatusReplaced, result.Pairs[0].Status)
	assert.Equal(t, domain.PairStatusNotFound, result.Pairs[1].Status)
}

func TestSubstituter_Docx_InvalidContainer(t *testing.T) {
	s := NewSubstituter(render.NewDocx())
	target := &domain.VaultFile{Name: "broken.docx", Content: []byte("not a zip")}

	_, err := s.Substitute(target, []domain.IdentifierPair{pair("K", "v")})
	assert.ErrorIs(t, err, domain.ErrSubstitutionFailed)
}

func TestSubstituter_LegacyDoc(t *testing.T) {
	s := NewSubstituter(render.NewDocx())
	target := &domain.VaultFile{Name: "old.doc", Content: []byte{0xD0, 0xCF}}

	_, err := s.Substitute(target, []domain.IdentifierPair{pair("K", "v")})
	assert.ErrorIs(t, err, domain.ErrMissingDependency)
}
