package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParty_RequiresSummary(t *testing.T) {
	for _, summary := range []string{"", "   "} {
		_, err := NewParty(summary)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	}

	p, err := NewParty("Thibault Arnoul")
	require.NoError(t, err)
	assert.Equal(t, "Thibault Arnoul", p.Summary)
}

func TestParty_BankIdentifier(t *testing.T) {
	p, err := NewParty("Provider")
	require.NoError(t, err)

	p.BankAccount = "FR76 4061 8803 6000 0408 3444 612"
	assert.Equal(t, "FR76 4061 8803 6000 0408 3444 612", p.BankIdentifier())

	p.BankCode = "0300"
	assert.Equal(t, "FR76 4061 8803 6000 0408 3444 612/0300", p.BankIdentifier())
}

func TestParty_AddressLines(t *testing.T) {
	p, err := NewParty("Acme SARL")
	require.NoError(t, err)
	p.AdditionalName = "Jean Dupont"
	p.Address = "40 rue Oberlin"
	p.ZipCode = "67000"
	p.City = "Strasbourg"
	p.Country = "France"
	p.VATID = "FR123456789"
	p.IR = "830459533"

	assert.Equal(t, []string{
		"Acme SARL",
		"Jean Dupont",
		"40 rue Oberlin",
		"67000 Strasbourg",
		"France",
		"VAT: FR123456789",
		"Tax ID: 830459533",
	}, p.AddressLines())
}

func TestParty_AddressLines_MinimalKeepsShape(t *testing.T) {
	p, err := NewParty("Ets")
	require.NoError(t, err)

	// Street and zip/city lines stay in place even when empty, optional
	// lines disappear entirely.
	assert.Equal(t, []string{"Ets", "", ""}, p.AddressLines())

	p.City = "Strasbourg"
	assert.Equal(t, []string{"Ets", "", "Strasbourg"}, p.AddressLines())
}

func TestParty_ContactLines_KeepsEmptyStrings(t *testing.T) {
	p, err := NewParty("Ets")
	require.NoError(t, err)
	p.Email = "contact@example.org"

	// Suppressing empties is the renderer's responsibility.
	assert.Equal(t, []string{"", "contact@example.org"}, p.ContactLines())
}

func TestParty_RegistrationLines(t *testing.T) {
	p, err := NewParty("Ets")
	require.NoError(t, err)
	assert.Empty(t, p.RegistrationLines())

	p.SIRET = "830 459 533 00014"
	assert.Equal(t, []string{"SIRET: 830 459 533 00014"}, p.RegistrationLines())

	p.SS = "1922077728837775"
	assert.Equal(t, []string{
		"SIRET: 830 459 533 00014",
		"SS: 1922077728837775",
	}, p.RegistrationLines())
}

func TestNewCreator(t *testing.T) {
	_, err := NewCreator("")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	c, err := NewCreator("Thibault Arnoul")
	require.NoError(t, err)
	assert.Equal(t, "Thibault Arnoul", c.Name)
	assert.Empty(t, c.StampPath)
}
