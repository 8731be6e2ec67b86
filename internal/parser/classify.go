package parser

import (
	"regexp"
	"strings"
)

// Tabular statement row: a date token, then anything, then an amount.
var reTabularRow = regexp.MustCompile(`^\s*\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?\b.*\$?\d{1,3}(?:,\d{3})*\.\d{2}`)

// IsBankStatement classifies the document. Receipt evidence wins: two or
// more receipt indicators force "not a bank statement" no matter what else
// is present. Otherwise bank-statement evidence is tiered — two strong
// indicators, one strong plus tabular structure, or three weak plus tabular.
func (p *Parser) IsBankStatement(rawText string, lines []string) bool {
	text := strings.ToLower(rawText)

	receipt := countIndicators(text, p.vocab.ReceiptIndicators)
	if receipt >= 2 {
		return false
	}

	strong := countIndicators(text, p.vocab.StrongBankIndicators)
	weak := countIndicators(text, p.vocab.WeakBankIndicators)

	tabular := 0
	for i, ln := range lines {
		if i >= tabularWindow {
			break
		}
		if reTabularRow.MatchString(ln) {
			tabular++
		}
	}
	hasTabular := tabular >= tabularRowMin

	switch {
	case strong >= 2:
		return true
	case strong >= 1 && hasTabular:
		return true
	case weak >= 3 && hasTabular:
		return true
	}
	return false
}

// countIndicators counts every occurrence of every keyword in the text.
func countIndicators(lowerText string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		n += strings.Count(lowerText, kw)
	}
	return n
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
