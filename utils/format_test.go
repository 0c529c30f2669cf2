package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAddress(t *testing.T) {
	assert.Equal(t,
		"Rua das Flores, 123 - Jardins, São Paulo/SP",
		BuildAddress("Rua das Flores", "123", "Jardins", "São Paulo", "sp"),
	)
	assert.Equal(t, "Rua das Flores - Jardins", BuildAddress("Rua das Flores", "", "Jardins", "", ""))
	assert.Equal(t, "São Paulo/SP", BuildAddress("", "", "", "São Paulo", "SP"))
	assert.Equal(t, "", BuildAddress("", "", "", "", ""))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 9,90", FormatBRL(990))
	assert.Equal(t, "R$ 1.234,56", FormatBRL(123456))
	assert.Equal(t, "R$ 1.000.000,00", FormatBRL(100000000))
	assert.Equal(t, "-R$ 12,50", FormatBRL(-1250))
}

func TestParseOfferLine(t *testing.T) {
	offer, ok := ParseOfferLine("São Paulo -> Lisboa executiva R$ 8.990,00")
	require.True(t, ok)
	assert.Equal(t, "São Paulo", offer.Origin)
	assert.Equal(t, "Lisboa", offer.Destination)
	assert.EqualValues(t, 899000, offer.PriceCents)
}

func TestParseOfferLinePriceOnly(t *testing.T) {
	offer, ok := ParseOfferLine("promo imperdível R$ 2.500")
	require.True(t, ok)
	assert.Empty(t, offer.Origin)
	assert.EqualValues(t, 250000, offer.PriceCents)
}

func TestParseOfferLineNoMatch(t *testing.T) {
	_, ok := ParseOfferLine("sem dados utilizáveis aqui")
	assert.False(t, ok)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "casa-a-beira-mar", Slugify("Casa à Beira-Mar"))
	assert.Equal(t, "apartamento-sao-paulo", Slugify("  Apartamento São Paulo  "))
	assert.Equal(t, "chale-n-3", Slugify("Chalé nº 3"))
}
