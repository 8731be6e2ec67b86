package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date layouts tried in order. Two-digit years are lifted to the current
// century after parsing.
var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"01-02-2006",
	"1-2-2006",
	"01-02-06",
	"2006-01-02",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"02 Jan 2006",
	"01.02.2006",
}

var (
	reDateToken = regexp.MustCompile(`\b(?:\d{1,4}[/.-]\d{1,2}[/.-]\d{1,4}|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2},?\s+\d{4}|\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4})\b`)

	// A time adjacent to a date token is preferred over a standalone one.
	reTimeAfterDate  = regexp.MustCompile(`\b\d{1,4}[/.-]\d{1,2}[/.-]\d{1,4}\b[ ,@-]*(\d{1,2}):(\d{2})(?::\d{2})?\s*([AaPp][Mm])?`)
	reTimeStandalone = regexp.MustCompile(`\b(\d{1,2}):(\d{2})(?::\d{2})?\s*([AaPp][Mm])?\b`)
)

// extractDate finds the first token that parses under any known layout.
func (p *Parser) extractDate(lines []string) *time.Time {
	for _, raw := range lines {
		for _, tok := range reDateToken.FindAllString(raw, -1) {
			if t, ok := parseDateToken(tok); ok {
				return &t
			}
		}
	}
	return nil
}

func parseDateToken(tok string) (time.Time, bool) {
	tok = strings.ReplaceAll(strings.TrimSpace(tok), ".", "/")
	for _, layout := range dateLayouts {
		ly := strings.ReplaceAll(layout, ".", "/")
		t, err := time.ParseInLocation(ly, tok, time.UTC)
		if err != nil {
			continue
		}
		// two-digit years land in 1969-2068 under Go's mapping; assume
		// current century instead
		if t.Year() < 2000 {
			t = t.AddDate(100, 0, 0)
		}
		if t.Year() < yearExclusionLow || t.Year() > yearExclusionHigh {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// extractTime prefers a date-adjacent time and normalizes to "H:MM AM/PM".
func (p *Parser) extractTime(lines []string) string {
	var standalone string
	for _, raw := range lines {
		if m := reTimeAfterDate.FindStringSubmatch(raw); m != nil {
			if s := normalizeClock(m[1], m[2], m[3]); s != "" {
				return s
			}
		}
		if standalone == "" {
			if m := reTimeStandalone.FindStringSubmatch(raw); m != nil {
				standalone = normalizeClock(m[1], m[2], m[3])
			}
		}
	}
	return standalone
}

// normalizeClock renders a 12-hour clock string: hour 0 becomes 12 AM,
// hour 12 stays 12 PM, 13-23 shift down into PM.
func normalizeClock(hourStr, minStr, ampm string) string {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour > 23 {
		return ""
	}
	minute, err := strconv.Atoi(minStr)
	if err != nil || minute > 59 {
		return ""
	}

	if ampm != "" {
		if hour < 1 || hour > 12 {
			return ""
		}
		return fmt.Sprintf("%d:%02d %s", hour, minute, strings.ToUpper(ampm))
	}

	suffix := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		hour -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
}
