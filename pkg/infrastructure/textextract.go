package infrastructure

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrMalformedDocument reports an upload the parser could not make sense of.
var ErrMalformedDocument = errors.New("malformed document")

// ExtractText returns the plain text of an uploaded job description. The
// format is chosen from the file extension: .pdf, .docx, .txt or .md.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md", "":
		return strings.TrimSpace(string(data)), nil
	case ".pdf":
		return extractPDFText(bytes.NewReader(data))
	case ".docx":
		return extractDocxText(bytes.NewReader(data))
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}

// extractPDFText concatenates the plain text of every page. Pages that fail
// to decode are skipped; the file is rejected only when no page yields text.
func extractPDFText(reader *bytes.Reader) (text string, err error) {
	// ledongthuc/pdf panics on some malformed object streams.
	defer recoverMalformed("pdf", &err)

	pdfReader, err := pdf.NewReader(reader, int64(reader.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var (
		textBuilder strings.Builder
		pageErr     error
	)
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			if pageErr == nil {
				pageErr = fmt.Errorf("page %d: %w", i, err)
			}
			continue
		}
		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n")
	}
	text = strings.TrimSpace(textBuilder.String())
	if text == "" && pageErr != nil {
		return "", fmt.Errorf("failed to read pdf: %w", pageErr)
	}
	return text, nil
}

// recoverMalformed turns a parser panic into an error on *err. It must be
// deferred directly.
func recoverMalformed(format string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %s: %v", ErrMalformedDocument, format, r)
	}
}

var (
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

func extractDocxText(reader *bytes.Reader) (text string, err error) {
	defer recoverMalformed("docx", &err)

	doc, err := docx.ReadDocxFromMemory(reader, int64(reader.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// GetContent returns the raw document.xml body
	content := doc.Editable().GetContent()
	content = paragraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	return strings.TrimSpace(unescapeXML(content)), nil
}

func unescapeXML(s string) string {
	r := strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'", "&amp;", "&")
	return r.Replace(s)
}
