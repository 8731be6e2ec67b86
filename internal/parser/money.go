package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Currency-shaped token, tolerant of OCR noise: optional $, optional
	// thousands commas, and spaces leaking in around the decimal point
	// ("870 . 16", "$ 3.29").
	reAmountToken = regexp.MustCompile(`\$?\s*\d{1,3}(?:,\d{3})*\s*\.\s*\d{2}\b|\$\s*\d+\b`)

	// Dollar-fragment pair split across lines by the OCR engine: "$3" + "29".
	reDollarFragment = regexp.MustCompile(`\$\s*(\d{1,3})$`)
	reCentsFragment  = regexp.MustCompile(`^(\d{2})\b`)

	// Integer-then-decimals split: "870" + ".16".
	reIntFragment      = regexp.MustCompile(`^\d{1,6}$`)
	reDecimalsFragment = regexp.MustCompile(`^\.\s*(\d{2})\b`)

	// Bare 3-digit integers are usually phone or street fragments.
	reBareThreeDigits = regexp.MustCompile(`^\d{3}$`)

	reSpacedDecimal = regexp.MustCompile(`(\d)\s*\.\s*(\d)`)
)

// parseAmount converts one currency-shaped token into an exact decimal.
// Returns nil for anything that does not parse, is negative, or looks like
// a phone-number fragment (a bare 3-digit integer with no decimal point).
func parseAmount(tok string) *decimal.Decimal {
	s := strings.TrimSpace(tok)
	hadDollar := strings.HasPrefix(s, "$")
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = reSpacedDecimal.ReplaceAllString(s, "$1.$2")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return nil
	}
	if !strings.Contains(s, ".") {
		// Integers are accepted only with an explicit $ prefix, and a
		// 3-digit integer is discarded as a likely phone fragment even then.
		if !hadDollar || reBareThreeDigits.MatchString(s) {
			return nil
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return nil
	}
	return &d
}

// firstAmount returns the first currency-shaped token on the line, parsed.
func firstAmount(line string) *decimal.Decimal {
	for _, tok := range reAmountToken.FindAllString(line, -1) {
		if d := parseAmount(tok); d != nil {
			return d
		}
	}
	return nil
}

// amountOnly reports whether the line holds nothing but one amount token
// (possibly a bare decimal like "9.99" with no label text around it).
func amountOnly(line string) (*decimal.Decimal, bool) {
	s := strings.TrimSpace(line)
	tok := reAmountToken.FindString(s)
	if tok == "" || strings.TrimSpace(strings.Replace(s, tok, "", 1)) != "" {
		// allow a plain unlabeled decimal that the token regex missed
		// only when the whole line is digits-dot-digits
		if d := parseAmount(s); d != nil && regexpBareDecimal.MatchString(s) {
			return d, true
		}
		return nil, false
	}
	d := parseAmount(tok)
	return d, d != nil
}

var regexpBareDecimal = regexp.MustCompile(`^\$?\s*\d+\s*\.\s*\d{2}$`)
