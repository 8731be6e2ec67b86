package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// amounts is the partial result of the monetary extractors.
type amounts struct {
	subtotal *decimal.Decimal
	tax      *decimal.Decimal
	tip      *decimal.Decimal
	total    *decimal.Decimal
}

// amountCandidate is one currency-shaped token found in the document.
type amountCandidate struct {
	value decimal.Decimal
	line  int
	text  string // the line it came from, lowercased
}

// extractAmounts runs the labeled search for subtotal/tax/tip/total over the
// given lines, falls back to the unlabeled heuristic for a missing total,
// and derives a missing subtotal from total - tax - tip.
func (p *Parser) extractAmounts(lines []string) amounts {
	a := amounts{
		subtotal: p.labeledAmount(lines, p.vocab.SubtotalLabels, nil),
		tax:      p.labeledAmount(lines, p.vocab.TaxLabels, p.vocab.SubtotalLabels),
		tip:      p.labeledAmount(lines, p.vocab.TipLabels, nil),
		total:    p.labeledAmount(lines, p.vocab.TotalLabels, p.vocab.SubtotalLabels),
	}
	if a.total == nil {
		a.total = p.fallbackTotal(lines)
	}
	deriveSubtotal(&a)
	return a
}

// labeledAmount searches same-line ("Tax: $0.82") and next-line ("Tax" then
// "0.82") placements for any label in the list. A next-line match always
// overrides a same-line match for the same field; receipts that wrap values
// onto their own line print them more reliably there. rejectLabels guards a
// generic label against a more specific one ("total" vs "subtotal").
func (p *Parser) labeledAmount(lines []string, labels, rejectLabels []string) *decimal.Decimal {
	var sameLine, nextLine *decimal.Decimal

	for i, raw := range lines {
		lower := strings.ToLower(strings.TrimSpace(raw))
		if !labelMatches(lower, labels) || labelMatches(lower, rejectLabels) {
			continue
		}
		if d := firstAmount(raw); d != nil {
			if sameLine == nil {
				sameLine = d
			}
			continue
		}
		// label with no amount on its own line: look one line down
		if nextLine == nil && i+1 < len(lines) {
			if d, ok := amountOnly(lines[i+1]); ok {
				nextLine = d
			}
		}
	}

	if nextLine != nil {
		return nextLine
	}
	return sameLine
}

func labelMatches(lower string, labels []string) bool {
	return len(labels) > 0 && containsAnyWord(lower, labels)
}

// collectAmounts gathers every plausible currency token, including amounts
// the OCR engine split across adjacent lines ("$3" + "29" -> 3.29) or broke
// with a space-for-decimal error ("870" + ".16" -> 870.16). Bare 3-digit
// integers are excluded as phone-number fragments.
func (p *Parser) collectAmounts(lines []string) []amountCandidate {
	var out []amountCandidate
	for i, raw := range lines {
		lower := strings.ToLower(strings.TrimSpace(raw))

		for _, tok := range reAmountToken.FindAllString(raw, -1) {
			if d := parseAmount(tok); d != nil {
				out = append(out, amountCandidate{value: *d, line: i, text: lower})
			}
		}

		if i+1 >= len(lines) {
			continue
		}
		next := strings.TrimSpace(lines[i+1])

		// "$3" at end of line, "29" starting the next: dollars/cents split
		if m := reDollarFragment.FindStringSubmatch(strings.TrimSpace(raw)); m != nil {
			if c := reCentsFragment.FindStringSubmatch(next); c != nil {
				if d := parseAmount(m[1] + "." + c[1]); d != nil {
					out = append(out, amountCandidate{value: *d, line: i, text: lower})
				}
			}
		}

		// "870" alone, ".16" next: decimal point promoted to its own line.
		// The decimals fragment is what makes the bare integer an amount,
		// so the 3-digit phone-fragment rule does not apply here.
		if reIntFragment.MatchString(strings.TrimSpace(raw)) {
			if c := reDecimalsFragment.FindStringSubmatch(next); c != nil {
				if d := parseAmount(strings.TrimSpace(raw) + "." + c[1]); d != nil {
					out = append(out, amountCandidate{value: *d, line: i, text: lower})
				}
			}
		}
	}
	return out
}

// fallbackTotal resolves a total with no label. Preference one: the largest
// amount among the trailing lines. Preference two: the best-scoring amount
// by position, total-keyword presence, and magnitude.
func (p *Parser) fallbackTotal(lines []string) *decimal.Decimal {
	cands := p.collectAmounts(lines)
	if len(cands) == 0 {
		return nil
	}

	cutoff := len(lines) - trailingAmountWindow
	var best *amountCandidate
	for i := range cands {
		c := &cands[i]
		if c.line < cutoff {
			continue
		}
		if best == nil || c.value.GreaterThan(best.value) {
			best = c
		}
	}
	if best != nil {
		v := best.value
		return &v
	}

	maxVal := 0.0
	for i := range cands {
		if f, _ := cands[i].value.Float64(); f > maxVal {
			maxVal = f
		}
	}
	bestScore := -1.0
	for i := range cands {
		c := &cands[i]
		score := float64(c.line) / float64(len(lines)) // near the end
		if containsAnyWord(c.text, p.vocab.TotalLabels) {
			score += 2.0
		}
		if maxVal > 0 {
			f, _ := c.value.Float64()
			score += 0.5 * f / maxVal
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	if best == nil {
		return nil
	}
	v := best.value
	return &v
}

// deriveSubtotal fills a missing subtotal from total - tax (- tip), only
// when the result is positive.
func deriveSubtotal(a *amounts) {
	if a.subtotal != nil || a.total == nil || a.tax == nil {
		return
	}
	d := a.total.Sub(*a.tax)
	if a.tip != nil {
		d = d.Sub(*a.tip)
	}
	if d.IsPositive() {
		a.subtotal = &d
	}
}
