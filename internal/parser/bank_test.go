package parser

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/receipt-parser/internal/entity"
)

func TestExtractTransactions(t *testing.T) {
	p := newTestParser(t)
	lines := []string{
		"ACCOUNT STATEMENT",
		"06/10/2024  PUR TACO PALACE  $45.67",
		"06/12/2024  ACH UTILITY CO  250.00",
		"06/13  POS COFFEE SHOP  4.50", // yearless
		"not a transaction row",
	}

	txs := p.extractTransactions(lines)

	require.Len(t, txs, 3)
	assert.Equal(t, "TACO PALACE", txs[0].Merchant)
	assert.Equal(t, "45.67", txs[0].Amount.StringFixed(2))
	assert.Equal(t, "UTILITY CO", txs[1].Merchant)
	assert.Equal(t, "COFFEE SHOP", txs[2].Merchant)
	// yearless rows take the clock's year
	assert.Equal(t, "2024-06-13", txs[2].Date.Format(time.DateOnly))
}

func TestExtractTransactionsNegativeAmount(t *testing.T) {
	p := newTestParser(t)
	txs := p.extractTransactions([]string{"06/10/2024  REFUND DINER  -12.00"})
	require.Len(t, txs, 1)
	assert.Equal(t, "12.00", txs[0].Amount.StringFixed(2))
}

func TestStripBankPrefixes(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		in, want string
	}{
		{"PUR TACO PALACE", "TACO PALACE"},
		{"pos dbt COFFEE SHOP", "COFFEE SHOP"}, // stacked prefixes
		{"DEBIT CARD PURCHASE DINER", "DINER"},
		{"TACO PALACE", "TACO PALACE"},
		{"PURPLE ONION", "PURPLE ONION"}, // prefix must be a whole word
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, p.stripBankPrefixes(tt.in), tt.in)
	}
}

func TestScoreTransaction(t *testing.T) {
	p := newTestParser(t) // clock fixed at 2024-06-15

	score := func(merchant, amount, date string) float64 {
		d, err := time.Parse(time.DateOnly, date)
		require.NoError(t, err)
		amt, err := decimal.NewFromString(amount)
		require.NoError(t, err)
		return p.scoreTransaction(entity.Transaction{Merchant: merchant, Amount: amt, Date: d})
	}

	// recent restaurant meal collects all three bonuses
	assert.Equal(t, 3.0, score("TACO PALACE", "45.67", "2024-06-10"))
	// old, no keyword, oversized charge scores nothing
	assert.Equal(t, 0.0, score("UTILITY CO", "800.00", "2023-01-01"))
	// 31-90 days old earns the lesser recency bonus
	assert.Equal(t, 0.5+1.0, score("OFFICE SUPPLY", "45.00", "2024-04-20"))
	// large but plausible charge earns the half amount bonus
	assert.Equal(t, 1.0+0.5, score("BIG BOX", "350.00", "2024-06-14"))
}

func TestParseBankStatementPicksBestTransaction(t *testing.T) {
	p := newTestParser(t)
	lines := []string{
		"06/12/2024  ACH UTILITY CO  250.00",
		"06/10/2024  PUR TACO PALACE  45.67",
	}

	rec := p.parseBankStatement(lines)

	assert.Equal(t, "Taco Palace", rec.RestaurantName)
	require.NotNil(t, rec.Total)
	assert.Equal(t, "45.67", rec.Total.StringFixed(2))
	require.NotNil(t, rec.Amount)
	assert.True(t, rec.Amount.Equal(*rec.Total))
	require.NotNil(t, rec.Date)
	assert.Equal(t, "2024-06-10", rec.Date.Format(time.DateOnly))
	assert.Empty(t, rec.Items)
}

func TestParseBankStatementFallsBackToMostRecent(t *testing.T) {
	p := newTestParser(t)
	// both rows are old, keyword-free, and oversized: nothing scores
	lines := []string{
		"01/05/2023  WIRE OUT  900.00",
		"03/09/2023  EQUIPMENT CO  750.00",
	}

	rec := p.parseBankStatement(lines)

	assert.Equal(t, "Equipment Co", rec.RestaurantName)
	require.NotNil(t, rec.Date)
	assert.Equal(t, "2023-03-09", rec.Date.Format(time.DateOnly))
}

func TestParseBankStatementNoRows(t *testing.T) {
	p := newTestParser(t)
	rec := p.parseBankStatement([]string{"ACCOUNT STATEMENT", "nothing tabular"})
	assert.Empty(t, rec.RestaurantName)
	assert.Nil(t, rec.Total)
	assert.Nil(t, rec.Date)
}
