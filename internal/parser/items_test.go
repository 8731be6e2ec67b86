package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitItemLine(t *testing.T) {
	tests := []struct {
		line      string
		wantName  string
		wantPrice string
		ok        bool
	}{
		{"Plate Lunch $9.99", "Plate Lunch", "9.99", true},
		{"Plate Lunch 9.99", "Plate Lunch", "9.99", true},
		{"Fries - $3.25", "Fries", "3.25", true},
		{"2 x Tacos $6.00", "Tacos", "6.00", true},
		{"Burger $8.50 F", "Burger", "8.50", true}, // trailing tax-flag letter
		{"Plate Lunch", "", "", false},
		{"$9.99", "", "", false}, // price with no name
		{"........ 4.50", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, price, ok := splitItemLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.wantName, name)
				assert.Equal(t, tt.wantPrice, price.StringFixed(2))
			} else {
				assert.Empty(t, name)
			}
		})
	}
}

func TestExtractItemsModifierRules(t *testing.T) {
	p := newTestParser(t)

	t.Run("indented line is a modifier", func(t *testing.T) {
		items := p.extractItems([]string{
			"Cheeseburger $8.50",
			"   Extra cheese $1.00",
		}, "")
		require.Len(t, items, 1)
		require.Len(t, items[0].Modifiers, 1)
		assert.Equal(t, "Extra cheese", items[0].Modifiers[0].Name)
	})

	t.Run("No prefix is a modifier", func(t *testing.T) {
		items := p.extractItems([]string{
			"Cheeseburger $8.50",
			"No onions $0.00",
		}, "")
		require.Len(t, items, 1)
		require.Len(t, items[0].Modifiers, 1)
	})

	t.Run("cheap short line is a modifier", func(t *testing.T) {
		items := p.extractItems([]string{
			"Cheeseburger $8.50",
			"Extra sauce $0.50",
		}, "")
		require.Len(t, items, 1)
		require.Len(t, items[0].Modifiers, 1)
		assert.Equal(t, "0.50", items[0].Modifiers[0].Price.StringFixed(2))
	})

	t.Run("zero priced product name stays an item", func(t *testing.T) {
		items := p.extractItems([]string{
			"Cheeseburger $8.50",
			"Kids drink $0.00",
		}, "")
		require.Len(t, items, 2)
		assert.Equal(t, "Kids drink", items[1].Name)
	})

	t.Run("zero priced generic line is a modifier", func(t *testing.T) {
		items := p.extractItems([]string{
			"Cheeseburger $8.50",
			"Well done $0.00",
		}, "")
		require.Len(t, items, 1)
		require.Len(t, items[0].Modifiers, 1)
	})

	t.Run("first line is never a modifier", func(t *testing.T) {
		items := p.extractItems([]string{"   Side salad $1.50"}, "")
		require.Len(t, items, 1)
		assert.Empty(t, items[0].Modifiers)
	})
}

func TestExtractItemsFilters(t *testing.T) {
	p := newTestParser(t)

	t.Run("restaurant name echo dropped", func(t *testing.T) {
		items := p.extractItems([]string{
			"Hawaiian Bros Huli Huli $9.99",
			"Spam Musubi $3.50",
		}, "Hawaiian Bros")
		require.Len(t, items, 1)
		assert.Equal(t, "Spam Musubi", items[0].Name)
	})

	t.Run("totals and payment lines skipped", func(t *testing.T) {
		items := p.extractItems([]string{
			"Plate Lunch $9.99",
			"Subtotal 9.99",
			"Visa Payment 10.81",
		}, "")
		require.Len(t, items, 1)
	})

	t.Run("capped at the item limit", func(t *testing.T) {
		var lines []string
		for i := 1; i <= maxItems+5; i++ {
			lines = append(lines, fmt.Sprintf("Dish Number %d $%d.50", i, i+4))
		}
		items := p.extractItems(lines, "")
		assert.Len(t, items, maxItems)
	})

	t.Run("out of range price dropped", func(t *testing.T) {
		items := p.extractItems([]string{"Gold Bar 99999.99"}, "")
		assert.Empty(t, items)
	})
}

func TestExtractTableItems(t *testing.T) {
	p := newTestParser(t)
	lines := []string{
		"| Item         | Qty | Price |",
		"| Plate Lunch  | 1   | 9.99  |",
		"| Spam Musubi  | 2   | 7.00  |",
		"| Subtotal     |     | 16.99 |",
	}

	items := p.extractItems(lines, "")

	require.Len(t, items, 2)
	assert.Equal(t, "Plate Lunch", items[0].Name)
	assert.Equal(t, "9.99", items[0].Price.StringFixed(2))
	assert.Equal(t, "Spam Musubi", items[1].Name)
	assert.Equal(t, "7.00", items[1].Price.StringFixed(2))
}

func TestMatchesRestaurantName(t *testing.T) {
	tests := []struct {
		item, restaurant string
		want             bool
	}{
		{"Hawaiian Bros", "Hawaiian Bros", true},
		{"hawaiian bros austin", "Hawaiian Bros", true},  // substring
		{"Bros Hawaiian Special", "Hawaiian Bros", true}, // two shared words
		{"Spam Musubi", "Hawaiian Bros", false},
		{"Hawaiian Roll", "Hawaiian Bros", false}, // one shared word
		{"Anything", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesRestaurantName(tt.item, tt.restaurant))
		})
	}
}
