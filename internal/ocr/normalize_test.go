package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf to lf", "a\r\nb\rc", "a\nb\nc"},
		{"tabs become spaces", "a\tb", "a  b"},
		{"divider noise stripped", "a\n-----\nb", "a\n\nb"},
		{"blank runs collapsed", "a\n\n\n\n\nb", "a\n\nb"},
		{"trailing spaces trimmed", "a   \nb", "a\nb"},
		{"leading indentation kept", "a\n   modifier", "a\n   modifier"},
		{"outer newlines trimmed", "\n\na\n\n", "a"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestLines(t *testing.T) {
	got := Lines("Hawaiian Bros\r\n\n   No onions $0.00  \n\t\n")
	assert.Equal(t, []string{"Hawaiian Bros", "   No onions $0.00"}, got)

	assert.Nil(t, Lines(""))
	assert.Nil(t, Lines("  \n \t \n"))
}

func TestTextQuality(t *testing.T) {
	// all signals present
	long := "Receipt 06/14/2024 Total $10.81 " +
		"................................................................" +
		"................................................................"
	assert.InDelta(t, 0.8, TextQuality(long), 1e-6)

	// nothing receipt-like
	assert.InDelta(t, 0.2, TextQuality("hello"), 1e-6)

	// score never exceeds one
	assert.LessOrEqual(t, TextQuality(long+long), float32(1.0))
}
