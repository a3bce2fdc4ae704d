package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ampinho/churrasplit/internal/ledger"
)

func TestParseRowsSkipsPreambleAndBlanks(t *testing.T) {
	rows := [][]string{
		{"Churras do João", "", ""},
		{},
		{"Nome", "Valor", "Comprador", "Quem vai consumir"},
		{"Picanha", "R$ 120,00", "João", "João, Maria"},
		{""},
		{"Cerveja", "89,90", "Maria", "João, Maria, Pedro"},
	}

	records := ParseRows(rows)

	require.Len(t, records, 2)
	assert.Equal(t, "Picanha", records[0].Label)
	assert.Equal(t, "R$ 120,00", records[0].Amount)
	assert.Equal(t, "João", records[0].Payer)
	assert.Equal(t, []string{"João", " Maria"}, records[0].Consumers)
	assert.Equal(t, "4", records[0].ID)
	assert.Equal(t, "Cerveja", records[1].Label)
}

func TestParseRowsNoHeader(t *testing.T) {
	rows := [][]string{
		{"random", "noise"},
		{"Picanha", "120"},
	}

	assert.Nil(t, ParseRows(rows))
}

func TestParseRowsShortRows(t *testing.T) {
	rows := [][]string{
		{"Nome", "Valor"},
		{"Gelo"},
		{"Carvão", "25,00"},
	}

	records := ParseRows(rows)

	require.Len(t, records, 2)
	assert.Equal(t, "Gelo", records[0].Label)
	assert.Empty(t, records[0].Amount)
	assert.Empty(t, records[0].Payer)
	assert.Nil(t, records[0].Consumers)
}

func TestParseRowsFeedsNormalizer(t *testing.T) {
	rows := [][]string{
		{"Nome", "Valor", "Comprador", "Consumidores"},
		{"Picanha", "R$ 90,00", "Ana", "Ana, Bia, Caio"},
		{"Pagamento", "30,00", "Bia", "Ana"},
	}

	txs := ledger.Normalize(ParseRows(rows))

	require.Len(t, txs, 2)
	assert.False(t, txs[0].IsPayment)
	assert.InDelta(t, 90, txs[0].Amount, 0.001)
	assert.Equal(t, []string{"Ana", "Bia", "Caio"}, txs[0].Beneficiaries)

	assert.True(t, txs[1].IsPayment)
	assert.Equal(t, ledger.PaymentLabel, txs[1].Label)
	assert.Equal(t, []string{"Ana"}, txs[1].Beneficiaries)
}
