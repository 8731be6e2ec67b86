package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/joseph-ayodele/receipt-parser/internal/entity"
)

// Statement transaction row: date, merchant text, trailing amount.
var reBankTxLine = regexp.MustCompile(`^\s*(\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?)\s+(.+?)\s+\$?(-?\d{1,3}(?:,\d{3})*\.\d{2})\s*$`)

// Recency and amount scoring for statement transactions. Tuned for "which
// of these charges was the meal", not general classification.
const (
	recentDays        = 30
	recentScore       = 1.0
	somewhatDays      = 90
	somewhatScore     = 0.5
	mealAmountMin     = 5.0
	mealAmountMax     = 200.0
	mealAmountScore   = 1.0
	largeAmountMax    = 500.0
	largeAmountScore  = 0.5
	restaurantKwScore = 1.0
)

// extractTransactions scans statement lines for date...amount rows and
// returns them with bank-artifact prefixes (PUR/ACH/POS) stripped from the
// merchant text.
func (p *Parser) extractTransactions(lines []string) []entity.Transaction {
	var txs []entity.Transaction
	for i, raw := range lines {
		m := reBankTxLine.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		date, ok := parseBankDate(m[1], p.now())
		if !ok {
			continue
		}
		amt := parseAmount(strings.TrimPrefix(m[3], "-"))
		if amt == nil {
			continue
		}
		merchant := p.stripBankPrefixes(strings.TrimSpace(m[2]))
		if merchant == "" {
			continue
		}
		txs = append(txs, entity.Transaction{
			Date:     date,
			Merchant: merchant,
			Amount:   *amt,
			Line:     i,
		})
	}
	return txs
}

// parseBankDate tolerates rows with no year (common on statements); those
// take the current year.
func parseBankDate(tok string, now time.Time) (time.Time, bool) {
	if t, ok := parseDateToken(tok); ok {
		return t, true
	}
	for _, layout := range []string{"01/02", "1/2", "01-02", "1-2"} {
		if t, err := time.ParseInLocation(layout, tok, time.UTC); err == nil {
			return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func (p *Parser) stripBankPrefixes(merchant string) string {
	lower := strings.ToLower(merchant)
	for changed := true; changed; {
		changed = false
		for _, pre := range p.vocab.BankTxPrefixes {
			if strings.HasPrefix(lower, pre+" ") {
				merchant = strings.TrimSpace(merchant[len(pre)+1:])
				lower = strings.ToLower(merchant)
				changed = true
			}
		}
	}
	return merchant
}

// scoreTransaction rates how likely a statement row is the meal charge:
// restaurant keywords, recency, and a reasonable meal amount all add points.
func (p *Parser) scoreTransaction(tx entity.Transaction) float64 {
	score := 0.0
	if containsAny(strings.ToLower(tx.Merchant), p.vocab.RestaurantKeywords) {
		score += restaurantKwScore
	}
	age := p.now().Sub(tx.Date)
	switch {
	case age >= 0 && age <= recentDays*24*time.Hour:
		score += recentScore
	case age >= 0 && age <= somewhatDays*24*time.Hour:
		score += somewhatScore
	}
	f, _ := tx.Amount.Float64()
	switch {
	case f >= mealAmountMin && f <= mealAmountMax:
		score += mealAmountScore
	case f > mealAmountMax && f <= largeAmountMax:
		score += largeAmountScore
	}
	return score
}

// parseBankStatement picks the best-scoring transaction, falling back to the
// most recent one when nothing scores above zero, and maps it onto a partial
// record.
func (p *Parser) parseBankStatement(lines []string) *entity.Receipt {
	rec := &entity.Receipt{}
	txs := p.extractTransactions(lines)
	if len(txs) == 0 {
		return rec
	}

	var best *entity.Transaction
	bestScore := 0.0
	for i := range txs {
		if s := p.scoreTransaction(txs[i]); s > bestScore {
			bestScore = s
			best = &txs[i]
		}
	}
	if best == nil {
		// nothing scored: take the most recent
		best = &txs[0]
		for i := range txs {
			if txs[i].Date.After(best.Date) {
				best = &txs[i]
			}
		}
	}

	date := best.Date
	amt := best.Amount
	rec.Date = &date
	rec.Total = &amt
	rec.Amount = &amt
	rec.RestaurantName = p.properCase(best.Merchant)
	p.logger.Debug("parser.bank.selected",
		"merchant", rec.RestaurantName, "amount", amt.StringFixed(2),
		"date", date.Format(time.DateOnly), "score", bestScore, "transactions", len(txs))
	return rec
}
