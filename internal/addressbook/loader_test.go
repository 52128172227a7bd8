package addressbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facture/internal/billing"
	"facture/pkg/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProvider(t *testing.T) {
	path := writeFile(t, "provider.yaml", `
name: Thibault Arnoul
address: 40 rue Oberlin
city: Strasbourg
zip_code: 67000
country: France
phone: "+33695736895"
email: thibault@example.org
bank_name: Boursobank
bank_account: FR76 4061 8803 6000 0408 3444 612
siret: 830 459 533 00014
ss: "1922077728837775"
contributions:
  - label: Cotisations sociales
    rate: 1
  - label: Contribution à la formation professionnelle
    rate: 0.10
`)

	provider, err := LoadProvider(path)
	require.NoError(t, err)
	assert.Equal(t, "Thibault Arnoul", provider.Summary)
	// Numeric-looking scalars stay literal text.
	assert.Equal(t, "67000", provider.ZipCode)
	assert.Equal(t, "Boursobank", provider.BankName)
	assert.Equal(t, []string{
		"SIRET: 830 459 533 00014",
		"SS: 1922077728837775",
	}, provider.RegistrationLines())

	require.Len(t, provider.Contributions, 2)
	assert.Equal(t, "Cotisations sociales", provider.Contributions[0].Label)
	assert.True(t, provider.Contributions[0].Rate.Equal(dec("1")))
	assert.True(t, provider.Contributions[1].Rate.Equal(dec("0.10")))
}

func TestLoadProvider_InvalidContribution(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"missing rate", "  - label: Cotisations sociales"},
		{"non-numeric rate", "  - rate: beaucoup"},
		{"negative rate", "  - rate: -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "provider.yaml",
				"name: Thibault Arnoul\ncontributions:\n"+tt.line+"\n")
			_, err := LoadProvider(path)
			require.Error(t, err)
			assert.True(t, billing.IsValidationError(err))
		})
	}
}

func TestLoadProvider_MissingFile(t *testing.T) {
	_, err := LoadProvider(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadProvider_MissingName(t *testing.T) {
	path := writeFile(t, "provider.yaml", "city: Strasbourg\n")
	_, err := LoadProvider(path)
	require.Error(t, err)
	assert.True(t, billing.IsValidationError(err))
}

func TestLoadClient(t *testing.T) {
	path := writeFile(t, "clients.yaml", `
acme:
  name: Acme SARL
  additional_name: Jean Dupont
  address: 1 rue de la Paix
  city: Paris
  zip_code: "75002"
  country: France
other:
  name: Other SA
`)

	client, err := LoadClient(path, "acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme SARL", client.Summary)
	assert.Equal(t, "Jean Dupont", client.AdditionalName)

	_, err = LoadClient(path, "unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadItemSet(t *testing.T) {
	path := writeFile(t, "items.yaml", `
acme:
  object: Vente de droits
  mode: 2
  commentaire: merci
  items:
    - quantity: 32
      unit_price: 600
      description: Item 1
    - quantity: 2.5
      unit_price: 19.99
      description: Item 2
      unit: h
      tax: 21
`)

	set, err := LoadItemSet(path, "acme")
	require.NoError(t, err)
	assert.Equal(t, "Vente de droits", set.Object)
	assert.Equal(t, 2, set.Mode)
	require.Len(t, set.Items, 2)

	items, err := BuildItems(set)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.True(t, items[0].Count().Equal(dec("32")))
	assert.True(t, items[0].Price().Equal(dec("600")))
	assert.True(t, items[0].Tax().IsZero())

	assert.True(t, items[1].Count().Equal(dec("2.5")))
	assert.True(t, items[1].Price().Equal(dec("19.99")))
	assert.True(t, items[1].Tax().Equal(dec("21")))
	assert.Equal(t, "h", items[1].Unit())
}

func TestItemFromRecord_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		record models.ItemRecord
	}{
		{"missing quantity", models.ItemRecord{UnitPrice: "10"}},
		{"missing price", models.ItemRecord{Quantity: "1"}},
		{"non-numeric quantity", models.ItemRecord{Quantity: "many", UnitPrice: "10"}},
		{"negative price", models.ItemRecord{Quantity: "1", UnitPrice: "-10"}},
		{"non-numeric tax", models.ItemRecord{Quantity: "1", UnitPrice: "10", Tax: "lots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ItemFromRecord(tt.record)
			require.Error(t, err)
			assert.True(t, billing.IsValidationError(err))
		})
	}
}
