package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"facture/internal/billing"
)

// DocumentID is the identifier printed on the document and used in the
// output filename: kind initial, a three-digit sequence number within the
// year directory and the issue date.
func DocumentID(kind billing.Kind, sequence int, date time.Time) string {
	initial := strings.ToUpper(string(kind)[:1])
	return fmt.Sprintf("%s%03d%s", initial, sequence, date.Format("20060102"))
}

// OutputPath decides where the rendered document goes. Documents are filed
// per year under outDir; the sequence number is one past the number of PDFs
// already present in the year directory. The year directory is created when
// missing.
func OutputPath(outDir string, inv *billing.Invoice, date time.Time) (id, path string, err error) {
	dir := filepath.Join(outDir, date.Format("2006"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	existing, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return "", "", fmt.Errorf("failed to list output directory %s: %w", dir, err)
	}

	id = DocumentID(inv.Kind(), len(existing)+1, date)
	client := strings.ReplaceAll(strings.ToLower(inv.Client().Summary), " ", "")
	return id, filepath.Join(dir, fmt.Sprintf("%s_%s.pdf", id, client)), nil
}
