package parser

import (
	"regexp"
	"strings"
)

var (
	reStreetLine   = regexp.MustCompile(`^\d{1,6}\s+[A-Za-z0-9 .'#-]+$`)
	reCityStateZip = regexp.MustCompile(`^[A-Za-z .'-]+,\s*[A-Z]{2}\.?\s+\d{5}(?:-\d{4})?$`)
	rePOBox        = regexp.MustCompile(`(?i)^p\.?o\.?\s*box\s+\d+`)
	reSuiteLine    = regexp.MustCompile(`(?i)^(?:suite|ste|unit|apt)\.?\s*#?\w+$`)
	reWebsiteToken = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?[a-z0-9][a-z0-9-]*(?:\.[a-z0-9-]+)*\.(?:com|net|org|io|co|biz|us)\b`)
	reEmailToken   = regexp.MustCompile(`\S+@\S+`)
	rePhoneFormats = []*regexp.Regexp{
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-. ]?\d{4}`), // (972) 437-8440
		regexp.MustCompile(`\b\d{3}-\d{3}-\d{4}\b`),        // 972-437-8440
		regexp.MustCompile(`\b\d{3}\.\d{3}\.\d{4}\b`),      // 972.437.8440
		regexp.MustCompile(`\b1?\d{10}\b`),                 // 9724378440 / 19724378440
	}
	reNonDigit = regexp.MustCompile(`\D`)
)

// extractAddress collects street lines until a terminal "city, state zip"
// line or a menu-item-looking line. Items end the scan so the address never
// bleeds into the order body.
func (p *Parser) extractAddress(lines []string) string {
	window := lines
	if len(window) > addressWindow {
		window = window[:addressWindow]
	}

	var parts []string
	for _, raw := range window {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		if isItemLine(s) {
			break
		}
		switch {
		case reCityStateZip.MatchString(s):
			parts = append(parts, s)
			return strings.Join(parts, ", ")
		case len(parts) > 0 && (reSuiteLine.MatchString(s) || rePOBox.MatchString(s)):
			parts = append(parts, s)
		case reStreetLine.MatchString(s) && hasAddressIndicator(s, p.vocab.AddressIndicators):
			parts = append(parts, s)
		case len(parts) == 0 && rePOBox.MatchString(s):
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func hasAddressIndicator(s string, indicators []string) bool {
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ".,#")
		for _, ind := range indicators {
			if w == ind {
				return true
			}
		}
	}
	return false
}

// extractPhone tries formats in priority order and validates the digits:
// exactly 10 (or 11 with a leading country-code 1), area code not starting
// with 0/1, and not a run of one repeated digit. The matched text is
// returned as found so formatting survives.
func (p *Parser) extractPhone(lines []string) string {
	for _, re := range rePhoneFormats {
		for _, raw := range lines {
			m := re.FindString(raw)
			if m == "" {
				continue
			}
			if validPhoneDigits(reNonDigit.ReplaceAllString(m, "")) {
				return strings.TrimSpace(m)
			}
		}
	}
	return ""
}

func validPhoneDigits(digits string) bool {
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return false
	}
	if digits[0] == '0' || digits[0] == '1' {
		return false
	}
	same := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			same = false
			break
		}
	}
	return !same
}

// extractWebsite returns the first URL-shaped token that is not an email.
func (p *Parser) extractWebsite(lines []string) string {
	for _, raw := range lines {
		if reEmailToken.MatchString(raw) {
			continue
		}
		if m := reWebsiteToken.FindString(raw); m != "" {
			return m
		}
	}
	return ""
}
