package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRestaurantName(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name     string
		lines    []string
		wantName string
		wantLoc  string
	}{
		{
			name:     "indicator line wins over earlier candidates",
			lines:    []string{"Order 5512", "Golden Wok", "123 Main St"},
			wantName: "Golden Wok",
		},
		{
			name:     "trailing store number split off",
			lines:    []string{"Hawaiian Bros #0033"},
			wantName: "Hawaiian Bros",
			wantLoc:  "#0033",
		},
		{
			name:     "bare store number without hash",
			lines:    []string{"Taco House 12"},
			wantName: "Taco House",
			wantLoc:  "12",
		},
		{
			name:     "founding year stays on the name",
			lines:    []string{"Pizzeria 1926"},
			wantName: "Pizzeria 1926",
		},
		{
			name:     "single digit stays on the name",
			lines:    []string{"Terminal 3 Grill"},
			wantName: "Terminal 3 Grill",
		},
		{
			name:     "all caps proper cased with abbreviation kept",
			lines:    []string{"JOE'S BBQ SHACK"},
			wantName: "Joe's BBQ Shack",
		},
		{
			name:     "date and phone lines excluded",
			lines:    []string{"06/14/2024 7:32 PM", "(972) 437-8440", "Sunrise Cafe"},
			wantName: "Sunrise Cafe",
		},
		{
			name:     "skip words rejected",
			lines:    []string{"Receipt", "Customer copy", "Burger Shack"},
			wantName: "Burger Shack",
		},
		{
			name: "empty window",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, loc := p.extractRestaurantName(tt.lines)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantLoc, loc)
		})
	}
}

func TestSplitLocationNumber(t *testing.T) {
	tests := []struct {
		in       string
		wantName string
		wantLoc  string
	}{
		{"Hawaiian Bros #0033", "Hawaiian Bros", "#0033"},
		{"Taco House 12", "Taco House", "12"},
		{"Pizzeria 1926", "Pizzeria 1926", ""},  // year, no hash
		{"Pizzeria #1926", "Pizzeria", "#1926"}, // hash defeats the year rule
		{"Terminal 3", "Terminal 3", ""},        // too few digits
		{"Depot 123456", "Depot 123456", ""},    // too many digits
		{"#0033", "#0033", ""},                  // nothing left for a name
		{"Sunrise Cafe", "Sunrise Cafe", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, loc := splitLocationNumber(tt.in)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantLoc, loc)
		})
	}
}

func TestProperCase(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		in   string
		want string
	}{
		{"HAWAIIAN BROS", "Hawaiian Bros"},
		{"JOE'S BBQ", "Joe's BBQ"},
		{"IHOP EXPRESS", "IHOP Express"},
		{"Mixed Case Stays", "Mixed Case Stays"},
		{"already lower", "already lower"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, p.properCase(tt.in), tt.in)
	}
}
