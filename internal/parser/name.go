package parser

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	reNameDate    = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b\d{4}-\d{2}-\d{2}\b`)
	reNameTime    = regexp.MustCompile(`\b\d{1,2}:\d{2}(:\d{2})?\s*(?i:am|pm)?\b`)
	reNameAmount  = regexp.MustCompile(`\$\s*\d|\d+\.\d{2}\b`)
	reNameEmail   = regexp.MustCompile(`\S+@\S+\.\S+`)
	reNameStreet  = regexp.MustCompile(`^\d{1,6}\s+\S+`)
	reNamePhone   = regexp.MustCompile(`\(\d{3}\)|\d{3}[-.]\d{3}[-.]\d{4}|\b\d{10}\b`)
	reNameURL     = regexp.MustCompile(`(?i)\b(?:https?://|www\.)\S+|\S+\.(?:com|net|org|io)\b`)
	reTrailingLoc = regexp.MustCompile(`\s+(#?\d+)$`)

	titleCaser = cases.Title(language.English)
)

// extractRestaurantName finds the merchant name in the top of the document
// and splits off a trailing location/store number ("#0033"). Three passes
// over the window: a line carrying a known food-business keyword, then any
// surviving candidate, then a bare final fallback.
func (p *Parser) extractRestaurantName(lines []string) (name, locationNumber string) {
	window := lines
	if len(window) > nameWindow {
		window = window[:nameWindow]
	}

	var candidates []string
	for _, raw := range window {
		s := strings.TrimSpace(raw)
		if s == "" || !reLetters.MatchString(s) {
			continue
		}
		if nameExcluded(s) || p.nameSkipped(s) {
			continue
		}
		candidates = append(candidates, s)
	}

	pick := ""
	for _, c := range candidates {
		if containsAnyWord(strings.ToLower(c), p.vocab.NameIndicators) {
			pick = c
			break
		}
	}
	if pick == "" && len(candidates) > 0 {
		pick = candidates[0]
	}
	if pick == "" {
		// final fallback: first line with letters, exclusions be damned
		for _, raw := range window {
			if s := strings.TrimSpace(raw); reLetters.MatchString(s) {
				pick = s
				break
			}
		}
	}
	if pick == "" {
		return "", ""
	}

	pick, locationNumber = splitLocationNumber(pick)
	return p.properCase(pick), locationNumber
}

// nameExcluded rejects lines shaped like dates, times, amounts, emails,
// street addresses, phone numbers, or URLs.
func nameExcluded(s string) bool {
	return reNameDate.MatchString(s) ||
		reNameTime.MatchString(s) ||
		reNameAmount.MatchString(s) ||
		reNameEmail.MatchString(s) ||
		reNameStreet.MatchString(s) ||
		reNamePhone.MatchString(s) ||
		reNameURL.MatchString(s)
}

// nameSkipped rejects generic receipt/email tokens as whole lines.
func (p *Parser) nameSkipped(s string) bool {
	lower := strings.ToLower(s)
	if containsAny(lower, p.vocab.EmailArtifacts) {
		return true
	}
	for _, w := range p.vocab.SkipWords {
		if lower == w || strings.HasPrefix(lower, w+" ") || strings.HasPrefix(lower, w+":") {
			return true
		}
	}
	return false
}

// splitLocationNumber strips a trailing 2-4 digit store number. Four-digit
// years and single digits are left on the name: "Pizzeria 1926" keeps its
// founding year, "Terminal 3" keeps its gate.
func splitLocationNumber(s string) (string, string) {
	m := reTrailingLoc.FindStringSubmatch(s)
	if m == nil {
		return s, ""
	}
	tok := m[1]
	digits := strings.TrimPrefix(tok, "#")
	if len(digits) < locationNumberMin || len(digits) > locationNumberMax {
		return s, ""
	}
	if !strings.HasPrefix(tok, "#") && len(digits) == 4 {
		if y, err := strconv.Atoi(digits); err == nil && y >= yearExclusionLow && y <= yearExclusionHigh {
			return s, ""
		}
	}
	name := strings.TrimSpace(strings.TrimSuffix(s, m[0]))
	if name == "" {
		return s, ""
	}
	return name, tok
}

// properCase converts ALL-CAPS names to title case, leaving recognized
// short abbreviations (BBQ, IHOP) uppercase.
func (p *Parser) properCase(s string) string {
	if s != strings.ToUpper(s) || !reLetters.MatchString(s) {
		return s
	}
	words := strings.Fields(s)
	for i, w := range words {
		keep := false
		for _, abbr := range p.vocab.Abbreviations {
			if w == abbr {
				keep = true
				break
			}
		}
		if !keep {
			words[i] = titleCaser.String(strings.ToLower(w))
		}
	}
	return strings.Join(words, " ")
}
