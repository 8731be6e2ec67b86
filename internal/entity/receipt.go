package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the structured result of parsing one OCR document.
// Every field is independently optional: nil pointers and empty strings mean
// the extractor found nothing. Money fields are exact decimals, never floats.
type Receipt struct {
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Subtotal *decimal.Decimal `json:"subtotal,omitempty"`
	Tax      *decimal.Decimal `json:"tax,omitempty"`
	Tip      *decimal.Decimal `json:"tip,omitempty"`
	Total    *decimal.Decimal `json:"total,omitempty"`

	// Date and Time are kept separate because receipts often present them
	// independently; Time is preformatted as "H:MM AM/PM".
	Date *time.Time `json:"date,omitempty"`
	Time string     `json:"time,omitempty"`

	RestaurantName           string `json:"restaurant_name,omitempty"`
	RestaurantLocationNumber string `json:"restaurant_location_number,omitempty"`
	RestaurantAddress        string `json:"restaurant_address,omitempty"`
	RestaurantPhone          string `json:"restaurant_phone,omitempty"`
	RestaurantWebsite        string `json:"restaurant_website,omitempty"`

	ServerName   string `json:"server_name,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
	CheckNumber  string `json:"check_number,omitempty"`
	TableNumber  string `json:"table_number,omitempty"`

	Items []LineItem `json:"items,omitempty"`

	ConfidenceScores map[string]float64 `json:"confidence_scores,omitempty"`

	// RawText is the original OCR text, retained for diagnostics.
	RawText string `json:"raw_text,omitempty"`
}

// LineItem is one ordered item on the receipt.
type LineItem struct {
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Modifiers []Modifier      `json:"modifiers,omitempty"`
}

// Modifier is a sub-item nested under its parent item (e.g. "No onions").
type Modifier struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Transaction is one bank-statement line recovered by the statement path.
type Transaction struct {
	Date     time.Time
	Merchant string
	Amount   decimal.Decimal
	Line     int // source line index, for diagnostics
}
