package models

// PartyRecord is a provider or client entry as stored in the YAML address
// book files.
type PartyRecord struct {
	Name           string `yaml:"name"`            // Company or person name (required)
	AdditionalName string `yaml:"additional_name"` // Extra name line (e.g. contact person)
	Address        string `yaml:"address"`         // Street and house number
	City           string `yaml:"city"`            // City
	ZipCode        string `yaml:"zip_code"`        // Postal code
	Country        string `yaml:"country"`         // Country
	Phone          string `yaml:"phone"`           // Phone number
	Email          string `yaml:"email"`           // Email address
	BankName       string `yaml:"bank_name"`       // Bank name
	BankAccount    string `yaml:"bank_account"`    // Account number or IBAN
	BankCode       string `yaml:"bank_code"`       // Bank code, appended after a slash when set
	VATID          string `yaml:"vat_id"`          // VAT identification number
	VATNote        string `yaml:"vat_note"`        // VAT note printed on the document
	IR             string `yaml:"ir"`              // Taxpayer identification number
	SIRET          string `yaml:"siret"`           // French company registration number
	SS             string `yaml:"ss"`              // French social security number
	Logo           string `yaml:"logo"`            // Path to a logo image
	Note           string `yaml:"note"`            // Free-text note inside the address block

	// Contributions are the payer-side levies of the provider's social
	// regime, printed as an informational block on the document.
	Contributions []ContributionRecord `yaml:"contributions"`
}

// ContributionRecord is one payer-side levy declared in the provider file.
type ContributionRecord struct {
	Label string `yaml:"label"` // Display name of the levy
	Rate  string `yaml:"rate"`  // Decimal percentage of the pre-tax total (required, >= 0)
}

// ItemRecord is one invoice line as stored in the YAML items file.
// Quantity, unit price and tax accept YAML numbers or strings; they are
// parsed as exact decimals, never floats.
type ItemRecord struct {
	Quantity    string `yaml:"quantity"`    // Decimal quantity (required, >= 0)
	UnitPrice   string `yaml:"unit_price"`  // Decimal unit price (required, >= 0)
	Description string `yaml:"description"` // Free text, may span multiple lines
	Unit        string `yaml:"unit"`        // Unit label (pieces, kg, h, ...)
	Tax         string `yaml:"tax"`         // Decimal tax rate percentage (default 0)
}

// ItemSet is one named set of invoice lines plus the per-invoice attributes
// that travel with it in the items file.
type ItemSet struct {
	Object     string       `yaml:"object"`      // Subject line of the invoice
	Mode       int          `yaml:"mode"`        // Optional presentation mode override (1 or 2)
	Commentary string       `yaml:"commentaire"` // Free-text note below the items
	Items      []ItemRecord `yaml:"items"`       // Invoice lines in render order
}
