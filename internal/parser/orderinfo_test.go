package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractOrderInfo(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name     string
		lines    []string
		check    string
		table    string
		server   string
		customer string
	}{
		{
			name:   "labeled fields on separate lines",
			lines:  []string{"Check #1234", "Table 4", "Server: Jessica"},
			check:  "1234",
			table:  "4",
			server: "Jessica",
		},
		{
			name:   "abbreviated labels",
			lines:  []string{"Chk 567", "Table A12", "Srv Bob"},
			check:  "567",
			table:  "A12",
			server: "Bob",
		},
		{
			name:   "crowded line trims trailing labels from the name",
			lines:  []string{"Server: Jessica Table 4 Check 88"},
			check:  "88",
			table:  "4",
			server: "Jessica",
		},
		{
			name:     "customer name",
			lines:    []string{"Name: Bob Smith"},
			customer: "Bob Smith",
		},
		{
			name:  "guest count is not a customer name",
			lines: []string{"Guests: 4"},
		},
		{
			name:  "nothing labeled",
			lines: []string{"Plate Lunch $9.99"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check, table, server, customer := p.extractOrderInfo(tt.lines)
			assert.Equal(t, tt.check, check)
			assert.Equal(t, tt.table, table)
			assert.Equal(t, tt.server, server)
			assert.Equal(t, tt.customer, customer)
		})
	}
}

func TestCleanPersonName(t *testing.T) {
	assert.Equal(t, "Jessica", cleanPersonName("Jessica Table"))
	assert.Equal(t, "Bob Smith", cleanPersonName(" Bob Smith "))
	assert.Equal(t, "Amy", cleanPersonName("Amy - "))
}
