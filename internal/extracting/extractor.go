// Package extracting turns invoice documents into the normalized plain text
// the parser operates on.
package extracting

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// TextExtractor decodes a document into a single normalized string: UTF-8,
// with non-breaking spaces remapped to ordinary spaces.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// PDFExtractor implements TextExtractor for PDF files using MuPDF.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDF text extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText concatenates the text of every page in the document.
func (e *PDFExtractor) ExtractText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer doc.Close()

	var text strings.Builder
	for page := 0; page < doc.NumPage(); page++ {
		pageText, err := doc.Text(page)
		if err != nil {
			return "", fmt.Errorf("extracting text from page %d: %w", page+1, err)
		}
		text.WriteString(pageText)
	}

	return Normalize(text.String()), nil
}

// Normalize remaps non-breaking spaces (U+00A0, common in PDF-extracted
// text) to ordinary spaces so the parser's whitespace patterns apply.
func Normalize(text string) string {
	return strings.ReplaceAll(text, " ", " ")
}
