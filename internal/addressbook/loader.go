// Package addressbook loads the YAML data files driving invoice generation:
// a provider file, a clients file keyed by short name and an items file
// keyed by short name. Records are parsed into plain models structs and then
// passed through the validating billing constructors, so malformed data
// fails before anything is rendered.
package addressbook

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"facture/internal/billing"
	"facture/pkg/models"
)

// LoadProvider reads the provider file and builds the issuing party.
func LoadProvider(path string) (*billing.Party, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider file %s: %w", path, err)
	}

	var record models.PartyRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse provider file %s: %w", path, err)
	}

	party, err := PartyFromRecord(record)
	if err != nil {
		return nil, fmt.Errorf("invalid provider in %s: %w", path, err)
	}
	return party, nil
}

// LoadClient reads the clients file and builds the party stored under name.
func LoadClient(path, name string) (*billing.Party, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read clients file %s: %w", path, err)
	}

	var records map[string]models.PartyRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse clients file %s: %w", path, err)
	}

	record, ok := records[name]
	if !ok {
		return nil, fmt.Errorf("client %q not found in %s", name, path)
	}

	party, err := PartyFromRecord(record)
	if err != nil {
		return nil, fmt.Errorf("invalid client %q in %s: %w", name, path, err)
	}
	return party, nil
}

// LoadItemSet reads the items file and returns the set stored under name.
func LoadItemSet(path, name string) (*models.ItemSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file %s: %w", path, err)
	}

	var sets map[string]models.ItemSet
	if err := yaml.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("failed to parse items file %s: %w", path, err)
	}

	set, ok := sets[name]
	if !ok {
		return nil, fmt.Errorf("item set %q not found in %s", name, path)
	}
	return &set, nil
}

// PartyFromRecord builds a validated billing.Party from a YAML record.
func PartyFromRecord(record models.PartyRecord) (*billing.Party, error) {
	party, err := billing.NewParty(record.Name)
	if err != nil {
		return nil, err
	}
	party.AdditionalName = record.AdditionalName
	party.Address = record.Address
	party.City = record.City
	party.ZipCode = record.ZipCode
	party.Country = record.Country
	party.Phone = record.Phone
	party.Email = record.Email
	party.BankName = record.BankName
	party.BankAccount = record.BankAccount
	party.BankCode = record.BankCode
	party.VATID = record.VATID
	party.VATNote = record.VATNote
	party.IR = record.IR
	party.SIRET = record.SIRET
	party.SS = record.SS
	party.LogoPath = record.Logo
	party.Note = record.Note

	for i, c := range record.Contributions {
		rate, err := parseDecimal("rate", c.Rate, true)
		if err != nil {
			return nil, fmt.Errorf("contribution %d: %w", i+1, err)
		}
		if rate.IsNegative() {
			return nil, fmt.Errorf("contribution %d: %w", i+1,
				billing.NewValidationError("rate", c.Rate, "rate must not be negative"))
		}
		party.Contributions = append(party.Contributions, billing.Contribution{
			Label: c.Label,
			Rate:  rate,
		})
	}
	return party, nil
}

// ItemFromRecord builds a validated billing.Item from a YAML record.
func ItemFromRecord(record models.ItemRecord) (*billing.Item, error) {
	count, err := parseDecimal("quantity", record.Quantity, true)
	if err != nil {
		return nil, err
	}
	price, err := parseDecimal("unit_price", record.UnitPrice, true)
	if err != nil {
		return nil, err
	}
	tax, err := parseDecimal("tax", record.Tax, false)
	if err != nil {
		return nil, err
	}

	item, err := billing.NewItem(count, price)
	if err != nil {
		return nil, err
	}
	if err := item.SetTax(tax); err != nil {
		return nil, err
	}
	item.SetUnit(record.Unit)
	item.SetDescription(record.Description)
	return item, nil
}

// BuildItems converts all records of a set, in order.
func BuildItems(set *models.ItemSet) ([]*billing.Item, error) {
	items := make([]*billing.Item, 0, len(set.Items))
	for i, record := range set.Items {
		item, err := ItemFromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// parseDecimal parses a YAML scalar as an exact decimal. An absent optional
// value means zero.
func parseDecimal(field, value string, required bool) (decimal.Decimal, error) {
	if value == "" {
		if required {
			return decimal.Zero, billing.NewValidationError(field, value, "value is required")
		}
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, billing.NewValidationError(field, value, "not a valid decimal number")
	}
	return d, nil
}
