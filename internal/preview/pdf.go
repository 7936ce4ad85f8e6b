package preview

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

const pdfPageSeparator = "\n\n"

type pdfProducer struct{}

func (pdfProducer) Handles(ext string) bool { return ext == ".pdf" }

func (pdfProducer) Produce(path string) Result {
	text, err := extractPDFText(path)
	if err != nil {
		return errorResult(path, "pdf", err)
	}
	return textResult(path, text)
}

// extractPDFText concatenates the plain text of every page, each followed by
// a blank-line separator. The pdf package panics on some malformed input, so
// panics are turned into errors here.
func extractPDFText(path string) (text string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(f, info.Size())
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return "", fmt.Errorf("document is encrypted")
		}
		return "", err
	}

	var b strings.Builder
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if !page.V.IsNull() {
			pageText, err := page.GetPlainText(nil)
			if err != nil {
				return "", fmt.Errorf("page %d: %w", i, err)
			}
			b.WriteString(pageText)
		}
		b.WriteString(pdfPageSeparator)
	}
	return b.String(), nil
}
