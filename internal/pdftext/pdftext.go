// Package pdftext implements the raw-document reader over PDF files:
// whole-document text extraction and folder listing.
package pdftext

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dslipak/pdf"
)

// Reader reads PDF documents from the filesystem.
type Reader struct{}

// DocumentText extracts the plain text of every page of the PDF at path,
// concatenated in page order.
func (Reader) DocumentText(path string) (string, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	content, err := doc.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract text %s: %w", path, err)
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("read text %s: %w", path, err)
	}
	return string(data), nil
}

// ListFilenames returns the names of the PDF files directly inside dir,
// in lexical order. The extension check is case-insensitive.
func (Reader) ListFilenames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list folder %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
