package service

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/rs/zerolog/log"
)

// ExtractService converts a raw document file into plain text by format.
// Unsupported formats yield an empty string rather than an error, so
// ingestion never aborts on an unrecognized extension; the resulting
// zero-chunk document is handled downstream.
type ExtractService struct{}

func NewExtractService() *ExtractService {
	return &ExtractService{}
}

// Supported reports whether an extractor exists for the file's
// extension.
func (s *ExtractService) Supported(filePath string) bool {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf", ".docx", ".txt":
		return true
	}
	return false
}

func (s *ExtractService) Extract(filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".pdf":
		return s.extractPDF(filePath)
	case ".docx":
		return s.extractDOCX(filePath)
	case ".txt":
		return s.extractText(filePath)
	default:
		log.Warn().Str("file", filePath).Str("ext", ext).Msg("unsupported format, ingesting as empty document")
		return "", nil
	}
}

func (s *ExtractService) extractPDF(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(f, stat.Size())
	if err != nil {
		return "", err
	}

	var text strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Pages with no extractable text contribute nothing.
			log.Warn().Str("file", filePath).Int("page", i).Err(err).Msg("failed to extract page text")
			continue
		}
		text.WriteString(pageText)
	}
	return text.String(), nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]*>`)

func (s *ExtractService) extractDOCX(filePath string) (string, error) {
	r, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	content := r.Editable().GetContent()
	var text strings.Builder
	for _, paragraph := range strings.Split(content, "</w:p>") {
		plain := strings.TrimSpace(xmlTagPattern.ReplaceAllString(paragraph, ""))
		if plain == "" {
			continue
		}
		text.WriteString(plain)
		text.WriteString("\n")
	}
	return text.String(), nil
}

func (s *ExtractService) extractText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
