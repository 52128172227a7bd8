package render

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facture/internal/billing"
)

func testInvoice(t *testing.T) *billing.Invoice {
	t.Helper()

	provider, err := billing.NewParty("Thibault Arnoul")
	require.NoError(t, err)
	client, err := billing.NewParty("Acme SARL")
	require.NoError(t, err)
	creator, err := billing.NewCreator("Thibault Arnoul")
	require.NoError(t, err)

	inv, err := billing.NewInvoice(provider, client, creator)
	require.NoError(t, err)
	return inv
}

func TestDocumentID(t *testing.T) {
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "I00120260828", DocumentID(billing.KindInvoice, 1, date))
	assert.Equal(t, "Q04220260828", DocumentID(billing.KindQuote, 42, date))
}

func TestOutputPath(t *testing.T) {
	outDir := t.TempDir()
	inv := testInvoice(t)
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	id, path, err := OutputPath(outDir, inv, date)
	require.NoError(t, err)
	assert.Equal(t, "I00120260828", id)
	assert.Equal(t, filepath.Join(outDir, "2026", "I00120260828_acmesarl.pdf"), path)

	// The sequence number counts existing PDFs in the year directory.
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o644))
	id, path, err = OutputPath(outDir, inv, date)
	require.NoError(t, err)
	assert.Equal(t, "I00220260828", id)
	assert.Equal(t, filepath.Join(outDir, "2026", "I00220260828_acmesarl.pdf"), path)
}

func TestPDF_Generate(t *testing.T) {
	outDir := t.TempDir()
	inv := testInvoice(t)
	inv.Date = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	inv.Subject = "Vente de droits"
	inv.SetMode(billing.ModeRoyalties)
	inv.Provider().Contributions = []billing.Contribution{
		{Label: "Cotisations sociales", Rate: dec("1")},
		{Label: "Contribution à la formation professionnelle", Rate: dec("0.10")},
	}

	item, err := billing.NewItem(dec("32"), dec("600"))
	require.NoError(t, err)
	item.SetDescription("Illustration de couverture\nlivraison numérique")
	require.NoError(t, inv.AddItem(item))

	taxed, err := billing.NewItem(dec("60"), dec("50"))
	require.NoError(t, err)
	require.NoError(t, taxed.SetTax(dec("21")))
	require.NoError(t, inv.AddItem(taxed))

	path, err := NewPDF(inv).Generate(outDir)
	require.NoError(t, err)

	// The invoice number was filled in from the generated id.
	assert.Equal(t, "I00120260828", inv.Number)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(1000), "PDF should not be empty")
}
