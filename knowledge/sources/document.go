package sources

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dslipak/pdf"
	"github.com/mudler/xlog"
)

// ExtractDocument reads an uploaded document and returns its plain text.
// Supported extensions: .pdf (text extraction), .txt and .md (read as-is).
func ExtractDocument(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", path)
	}

	extension := filepath.Ext(path)
	switch extension {
	case ".pdf":
		r, err := pdf.Open(path)
		if err != nil {
			return "", err
		}
		b, err := r.GetPlainText()
		if err != nil {
			return "", err
		}
		var buf bytes.Buffer
		buf.ReadFrom(b)
		return buf.String(), nil
	case ".txt", ".md":
		xlog.Debug("Reading text file", "path", path)
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	return "", fmt.Errorf("unsupported file type: %s", extension)
}
