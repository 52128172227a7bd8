package billing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Party is an address-like entity appearing on an invoice, either as the
// provider (issuer) or the client (recipient). Summary is the only required
// field; every other field is optional and treated as absent when empty.
type Party struct {
	// Summary is the header line of the address block: the name of the
	// addressee or the company name.
	Summary string

	// AdditionalName is an extra name line below the summary (e.g. a
	// contact person inside a company).
	AdditionalName string

	// Address is the street line with house number.
	Address string

	// City, ZipCode and Country complete the postal address.
	City    string
	ZipCode string
	Country string

	// Contact information.
	Phone string
	Email string

	// Banking information. BankAccount and BankCode combine into a single
	// displayable identifier, see BankIdentifier.
	BankName    string
	BankAccount string
	BankCode    string

	// Legal and tax registration identifiers.
	VATID   string // value added tax identification number
	VATNote string
	IR      string // taxpayer identification number
	SIRET   string // French company registration number
	SS      string // French social security number

	// LogoPath is an optional path to a logo image rendered next to the
	// address block.
	LogoPath string

	// Note is free text printed inside the address block.
	Note string

	// Contributions are the payer-side levies tied to this party's social
	// regime (e.g. URSSAF cotisations for an author). They only matter on
	// the provider side.
	Contributions []Contribution
}

// Contribution is one payer-side levy declared as a percentage of the
// invoice's pre-tax total. The amounts are informational and never enter the
// invoice totals; the payer settles them directly with the collecting body.
type Contribution struct {
	// Label is the display name of the levy.
	Label string

	// Rate is the percentage applied to the pre-tax total.
	Rate decimal.Decimal
}

// NewParty creates a Party with the given summary line. The remaining fields
// are optional and can be assigned directly after construction.
func NewParty(summary string) (*Party, error) {
	if strings.TrimSpace(summary) == "" {
		return nil, NewValidationError("summary", summary, "summary must not be empty")
	}
	return &Party{Summary: summary}, nil
}

// BankIdentifier returns the bank account identifier, with the bank code
// appended after a slash when one is set.
func (p *Party) BankIdentifier() string {
	if p.BankCode == "" {
		return p.BankAccount
	}
	return fmt.Sprintf("%s/%s", p.BankAccount, p.BankCode)
}

// AddressLines returns the ordered display lines of the address block.
// Optional fields are omitted when empty, except the street line and the
// "zip city" line which are always present (possibly blank) to keep the
// block shape stable.
func (p *Party) AddressLines() []string {
	lines := []string{p.Summary}
	if p.AdditionalName != "" {
		lines = append(lines, p.AdditionalName)
	}
	lines = append(lines, p.Address, joinNonEmpty(" ", p.ZipCode, p.City))
	if p.Country != "" {
		lines = append(lines, p.Country)
	}
	if p.VATID != "" {
		lines = append(lines, fmt.Sprintf("VAT: %s", p.VATID))
	}
	if p.IR != "" {
		lines = append(lines, fmt.Sprintf("Tax ID: %s", p.IR))
	}
	return lines
}

// ContactLines returns the phone and email lines. Either may be an empty
// string; suppressing empties is the renderer's job.
func (p *Party) ContactLines() []string {
	return []string{p.Phone, p.Email}
}

// RegistrationLines returns the professional registration lines (SIRET, SS),
// each present only when the source field is set.
func (p *Party) RegistrationLines() []string {
	var lines []string
	if p.SIRET != "" {
		lines = append(lines, fmt.Sprintf("SIRET: %s", p.SIRET))
	}
	if p.SS != "" {
		lines = append(lines, fmt.Sprintf("SS: %s", p.SS))
	}
	return lines
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}

// Creator identifies who issued the invoice document, usually an accountant
// or the provider themselves.
type Creator struct {
	// Name of the issuer.
	Name string

	// StampPath is an optional path to a stamp or signature image.
	StampPath string
}

// NewCreator creates a Creator with the given name.
func NewCreator(name string) (*Creator, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("name", name, "creator name must not be empty")
	}
	return &Creator{Name: name}, nil
}
