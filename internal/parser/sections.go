package parser

import (
	"strings"

	"github.com/joseph-ayodele/receipt-parser/constants"
)

// Segment partitions lines into named zones. Every line lands in exactly one
// section, in original order, except email-header artifacts in the first
// lines, which are skipped outright. Once the totals or payment zone starts
// the machine never regresses to an earlier zone; the single carve-out is a
// price-only line directly after an item-like line, which stays with items
// so split name/price pairs are not torn apart.
func (p *Parser) Segment(lines []string) map[constants.Section][]string {
	sections := make(map[constants.Section][]string, len(constants.AllSections))

	current := constants.SectionHeader
	totalsStarted := false
	paymentStarted := false
	prevSection := constants.Section("")

	for i, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))

		if i < headerSkipWindow && containsAny(lower, p.vocab.EmailArtifacts) {
			continue
		}

		// Split name/price pair: keep the orphaned price with its item.
		if _, ok := amountOnly(line); ok && prevSection == constants.SectionItems {
			if !containsAnyWord(lower, p.vocab.TotalsKeywords) {
				sections[constants.SectionItems] = append(sections[constants.SectionItems], line)
				prevSection = constants.SectionItems
				continue
			}
		}

		switch {
		case containsAnyWord(lower, p.vocab.PaymentKeywords) && !isItemLine(line):
			current = constants.SectionPayment
			paymentStarted = true
		case !paymentStarted && containsAnyWord(lower, p.vocab.TotalsKeywords):
			current = constants.SectionTotals
			totalsStarted = true
		case containsAnyWord(lower, p.vocab.FooterKeywords) && current != constants.SectionHeader:
			current = constants.SectionFooter
		case !totalsStarted && !paymentStarted && current == constants.SectionHeader &&
			containsAnyWord(lower, p.vocab.OrderInfoKeywords):
			current = constants.SectionOrderInfo
		case !totalsStarted && !paymentStarted && isItemLine(line) &&
			(current == constants.SectionHeader || current == constants.SectionOrderInfo || current == constants.SectionItems):
			current = constants.SectionItems
		}

		sections[current] = append(sections[current], line)
		prevSection = current
	}

	return sections
}

// containsAnyWord matches single-word keywords on word boundaries (so "cash"
// does not fire on "cashier") and multi-word keywords as substrings.
func containsAnyWord(lower string, keywords []string) bool {
	var words []string
	for _, kw := range keywords {
		if strings.ContainsRune(kw, ' ') || strings.ContainsRune(kw, '-') {
			if strings.Contains(lower, kw) {
				return true
			}
			continue
		}
		if words == nil {
			words = strings.FieldsFunc(lower, func(r rune) bool {
				return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
			})
		}
		for _, w := range words {
			if w == kw {
				return true
			}
		}
	}
	return false
}
