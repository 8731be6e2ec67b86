package parser

import (
	"regexp"
	"strings"
)

var (
	reCheckNumber  = regexp.MustCompile(`(?i)\bch(?:ec)?k\s*(?:#|no\.?|:)?\s*(\d+)`)
	reTableNumber  = regexp.MustCompile(`(?i)\btable\s*(?:#|no\.?|:)?\s*([A-Za-z]?\d+|\d+[A-Za-z]?)`)
	reServerName   = regexp.MustCompile(`(?i)\b(?:server|srv|waiter|waitress)\s*:?\s+([A-Za-z][A-Za-z .'-]*)`)
	reCustomerName = regexp.MustCompile(`(?i)\b(?:customer|guest|name)\s*:?\s+([A-Za-z][A-Za-z .'-]*)`)
	reGuestCount   = regexp.MustCompile(`(?i)\bguests?\s*:?\s*\d+\s*$`)
)

// extractOrderInfo pulls check/table/server/customer metadata. Each field is
// independent; the first match wins.
func (p *Parser) extractOrderInfo(lines []string) (check, table, server, customer string) {
	for _, raw := range lines {
		s := strings.TrimSpace(raw)
		if check == "" {
			if m := reCheckNumber.FindStringSubmatch(s); m != nil {
				check = m[1]
			}
		}
		if table == "" {
			if m := reTableNumber.FindStringSubmatch(s); m != nil {
				table = m[1]
			}
		}
		if server == "" {
			if m := reServerName.FindStringSubmatch(s); m != nil {
				server = cleanPersonName(m[1])
			}
		}
		if customer == "" && !reGuestCount.MatchString(s) {
			if m := reCustomerName.FindStringSubmatch(s); m != nil {
				customer = cleanPersonName(m[1])
			}
		}
	}
	return check, table, server, customer
}

// cleanPersonName trims trailing label noise after a captured name
// ("Jessica Table 4" -> "Jessica").
func cleanPersonName(s string) string {
	s = strings.TrimSpace(s)
	for _, stop := range []string{" table", " check", " chk", " guest", " order"} {
		if i := strings.Index(strings.ToLower(s), stop); i >= 0 {
			s = s[:i]
		}
	}
	return strings.Trim(s, " .-:")
}
