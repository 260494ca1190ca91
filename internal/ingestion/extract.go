package ingestion

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/career-insights/internal/fetch"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format is a supported upload format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
)

var extensionFormats = map[string]Format{
	".txt":      FormatText,
	".text":     FormatText,
	".md":       FormatMarkdown,
	".markdown": FormatMarkdown,
	".html":     FormatHTML,
	".htm":      FormatHTML,
	".pdf":      FormatPDF,
	".docx":     FormatDOCX,
}

// UnsupportedFormatError indicates a file type the extractor cannot read.
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s (expected .txt, .md, .html, .pdf or .docx)", e.Filename)
}

// ExtractionError indicates a file of a supported type could not be parsed.
type ExtractionError struct {
	Filename string
	Format   Format
	Cause    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s text from %s: %v", e.Format, e.Filename, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Document is cleaned text extracted from an upload.
type Document struct {
	Text     string
	Metadata *Metadata
}

// FormatFromFilename picks the format from the file extension.
func FormatFromFilename(filename string) (Format, error) {
	format, ok := extensionFormats[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return "", &UnsupportedFormatError{Filename: filename}
	}
	return format, nil
}

// ExtractText extracts and cleans the text of an uploaded file. The format
// is chosen by the filename extension.
func ExtractText(filename string, data []byte) (*Document, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}

	raw, err := extract(format, data)
	if err != nil {
		return nil, &ExtractionError{Filename: filename, Format: format, Cause: err}
	}

	text := CleanText(raw)
	return &Document{
		Text:     text,
		Metadata: NewMetadata(text, filepath.Base(filename), format, len(data)),
	}, nil
}

// ExtractFile reads a file from disk and extracts its text.
func ExtractFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ExtractText(path, data)
}

func extract(format Format, data []byte) (string, error) {
	switch format {
	case FormatText, FormatMarkdown:
		if !utf8.Valid(data) {
			return "", errors.New("file is not valid UTF-8 text")
		}
		return string(data), nil
	case FormatHTML:
		return fetch.HTMLToText(string(data))
	case FormatPDF:
		return extractPDFText(data)
	case FormatDOCX:
		return extractDocxText(data)
	}
	return "", fmt.Errorf("no extractor for format %q", format)
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return wordprocessingText(doc.Editable().GetContent())
}

// wordprocessingText pulls the text runs out of a WordprocessingML body,
// one paragraph per line.
func wordprocessingText(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))
	var sb strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document xml: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			case "br":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(el)
			}
		}
	}
	return sb.String(), nil
}
