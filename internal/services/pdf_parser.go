package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var ErrNoPDFText = errors.New("no text content found in PDF")

type PDFParserService interface {
	ExtractText(filePath string) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
	FilePath  string
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText returns the job description text of a PDF, one cleaned block
// per readable page. Blank and unreadable pages are skipped.
func (p *pdfParserService) ExtractText(filePath string) (*PDFContent, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	pages := make([]string, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		if text := pageText(r.Page(i)); text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return nil, ErrNoPDFText
	}

	return &PDFContent{
		Text:      strings.Join(pages, "\n\n"),
		PageCount: pageCount,
		FilePath:  filePath,
	}, nil
}

func pageText(page pdf.Page) string {
	if page.V.IsNull() {
		return ""
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return CleanText(text)
}

// CleanText drops blank lines and collapses runs of whitespace inside each
// line, which PDF extraction leaves between columns and words.
func CleanText(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			lines = append(lines, strings.Join(fields, " "))
		}
	}
	return strings.Join(lines, "\n")
}
