package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/receipt-parser/internal/entity"
)

var (
	// NAME ... $X.XX at end of line.
	reItemPriceSuffix = regexp.MustCompile(`^(.+?)\s+\$?(\d{1,4}\.\d{2})\s*[FNT]?$`)
	// NAME - $X.XX.
	reItemDash = regexp.MustCompile(`^(.+?)\s*-+\s*\$?(\d{1,4}\.\d{2})$`)
	// QTY NAME ... $X.XX.
	reItemQty = regexp.MustCompile(`^(\d{1,2})\s*[xX@]?\s+(.+?)\s+\$?(\d{1,4}\.\d{2})\s*$`)

	reLeadingWS = regexp.MustCompile(`^[ \t]{2,}`)
	reLetters   = regexp.MustCompile(`[A-Za-z]`)
)

// isItemLine reports whether a line looks like a menu item (price-suffixed
// or dash-separated). Works on the trimmed text so section transitions do
// not depend on indentation.
func isItemLine(line string) bool {
	s := strings.TrimSpace(line)
	if !reLetters.MatchString(s) {
		return false
	}
	return reItemPriceSuffix.MatchString(s) || reItemDash.MatchString(s)
}

// extractItems pulls ordered line items out of the given lines, attaching
// modifier lines ("No onions", cheap or zero-priced short lines, indented
// lines) to the item above them. Extraction is capped at maxItems and lines
// echoing the restaurant's own name are dropped.
func (p *Parser) extractItems(lines []string, restaurantName string) []entity.LineItem {
	if tableFormatted(lines) {
		return p.extractTableItems(lines, restaurantName)
	}
	return p.extractLineItems(lines, restaurantName)
}

func (p *Parser) extractLineItems(lines []string, restaurantName string) []entity.LineItem {
	var items []entity.LineItem
	for _, raw := range lines {
		if len(items) >= maxItems {
			break
		}
		lower := strings.ToLower(strings.TrimSpace(raw))
		if containsAnyWord(lower, p.vocab.TotalsKeywords) || containsAnyWord(lower, p.vocab.PaymentKeywords) {
			continue
		}
		name, price, ok := splitItemLine(raw)
		if !ok {
			continue
		}
		if matchesRestaurantName(name, restaurantName) {
			continue
		}
		pf, _ := price.Float64()
		if pf < minItemPrice || pf > maxItemPrice {
			continue
		}

		if len(items) > 0 && p.isModifierLine(raw, name, price) {
			last := &items[len(items)-1]
			last.Modifiers = append(last.Modifiers, entity.Modifier{Name: name, Price: price})
			continue
		}
		items = append(items, entity.LineItem{Name: name, Price: price})
	}
	return items
}

// splitItemLine parses "name price" shapes, returning the cleaned name.
func splitItemLine(raw string) (string, decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	var name, priceStr string
	if m := reItemQty.FindStringSubmatch(s); m != nil {
		name, priceStr = strings.TrimSpace(m[2]), m[3]
	} else if m := reItemDash.FindStringSubmatch(s); m != nil {
		name, priceStr = strings.TrimSpace(m[1]), m[2]
	} else if m := reItemPriceSuffix.FindStringSubmatch(s); m != nil {
		name, priceStr = strings.TrimSpace(m[1]), m[2]
	} else {
		return "", decimal.Decimal{}, false
	}
	name = strings.Trim(name, ".,;:-_*#@ ")
	if name == "" || !reLetters.MatchString(name) {
		return "", decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(priceStr)
	if err != nil || d.IsNegative() {
		return "", decimal.Decimal{}, false
	}
	return name, d, true
}

// isModifierLine decides sub-item vs. new top-level item for a parsed line.
func (p *Parser) isModifierLine(raw, name string, price decimal.Decimal) bool {
	indented := reLeadingWS.MatchString(raw)
	words := len(strings.Fields(name))
	pf, _ := price.Float64()

	if indented {
		return true
	}
	if strings.HasPrefix(name, "No ") || strings.HasPrefix(name, "NO ") {
		return true
	}
	if pf > 0 && pf < modifierMaxPrice && words <= modifierMaxWords {
		return true
	}
	if price.IsZero() && words <= modifierMaxWords &&
		!containsAnyWord(strings.ToLower(name), p.vocab.ProductNameIndicators) {
		return true
	}
	return false
}

// tableFormatted detects |-delimited receipts.
func tableFormatted(lines []string) bool {
	n := 0
	for _, ln := range lines {
		if strings.Count(ln, "|") >= 2 {
			n++
		}
	}
	return n >= 2
}

func (p *Parser) extractTableItems(lines []string, restaurantName string) []entity.LineItem {
	var items []entity.LineItem
	for _, ln := range lines {
		if len(items) >= maxItems {
			break
		}
		if strings.Count(ln, "|") < 2 {
			continue
		}
		if containsAnyWord(strings.ToLower(ln), p.vocab.TotalsKeywords) {
			continue
		}
		cells := strings.Split(ln, "|")
		var fields []string
		for _, c := range cells {
			if c = strings.TrimSpace(c); c != "" {
				fields = append(fields, c)
			}
		}
		if len(fields) < 2 {
			continue
		}
		name := strings.Trim(fields[0], ".,;:-_*#@ ")
		price := parseAmount(fields[len(fields)-1])
		if price == nil || name == "" || !reLetters.MatchString(name) {
			continue
		}
		if matchesRestaurantName(name, restaurantName) {
			continue
		}
		items = append(items, entity.LineItem{Name: name, Price: *price})
	}
	return items
}

// matchesRestaurantName filters item candidates echoing the merchant name:
// exact match, substring either way, or two or more shared words.
func matchesRestaurantName(name, restaurantName string) bool {
	if restaurantName == "" {
		return false
	}
	n := strings.ToLower(name)
	r := strings.ToLower(restaurantName)
	if n == r || strings.Contains(n, r) || strings.Contains(r, n) {
		return true
	}
	shared := 0
	rWords := make(map[string]struct{})
	for _, w := range strings.Fields(r) {
		rWords[w] = struct{}{}
	}
	for _, w := range strings.Fields(n) {
		if _, ok := rWords[w]; ok {
			shared++
		}
	}
	return shared >= 2
}
