package cmd

import (
	"fmt"

	"facture/internal/addressbook"
	"facture/internal/billing"
	"facture/internal/config"
)

// buildInvoice assembles a complete invoice for the named client/item set
// from the YAML address book files configured in cfg. The items file may
// carry a per-set mode that overrides the command-line value.
func buildInvoice(cfg *config.Config, name, kind string, mode int) (*billing.Invoice, error) {
	provider, err := addressbook.LoadProvider(cfg.ProviderFile)
	if err != nil {
		return nil, err
	}

	client, err := addressbook.LoadClient(cfg.ClientsFile, name)
	if err != nil {
		return nil, err
	}

	set, err := addressbook.LoadItemSet(cfg.ItemsFile, name)
	if err != nil {
		return nil, err
	}

	creator, err := billing.NewCreator(provider.Summary)
	if err != nil {
		return nil, err
	}

	invoice, err := billing.NewInvoice(provider, client, creator)
	if err != nil {
		return nil, err
	}

	invoice.Currency = cfg.Currency
	invoice.CurrencyLocale = cfg.CurrencyLocale
	invoice.Subject = set.Object
	invoice.Note = set.Commentary
	invoice.SetKind(billing.Kind(kind))
	if set.Mode != 0 {
		mode = set.Mode
	}
	invoice.SetMode(billing.Mode(mode))

	items, err := addressbook.BuildItems(set)
	if err != nil {
		return nil, fmt.Errorf("invalid items for %q: %w", name, err)
	}
	for _, item := range items {
		if err := invoice.AddItem(item); err != nil {
			return nil, err
		}
	}

	return invoice, nil
}
