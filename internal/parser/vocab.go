package parser

// Vocabulary holds the keyword tables every extractor consults. It is plain
// data: build one with DefaultVocabulary, substitute entries in tests, and
// treat the result as immutable once handed to New.
type Vocabulary struct {
	// Document classification tiers.
	StrongBankIndicators []string
	WeakBankIndicators   []string
	ReceiptIndicators    []string

	// Section transition triggers.
	OrderInfoKeywords []string
	TotalsKeywords    []string
	PaymentKeywords   []string
	FooterKeywords    []string

	// Email-client artifacts skipped entirely in the first lines.
	EmailArtifacts []string

	// Generic tokens a merchant-name candidate line may not start with.
	SkipWords []string

	// Domain indicators that promote a candidate line.
	NameIndicators    []string
	AddressIndicators []string

	// Tokens that mark a modifier-candidate as a real product.
	ProductNameIndicators []string

	// ALL-CAPS tokens kept uppercase when proper-casing merchant names.
	Abbreviations []string

	// Labeled amount searches, one list per field.
	SubtotalLabels []string
	TaxLabels      []string
	TipLabels      []string
	TotalLabels    []string

	// Bank-transaction scoring.
	RestaurantKeywords []string
	BankTxPrefixes     []string
}

// Heuristic thresholds. These were tuned against receipt samples; do not
// re-derive them without fixtures confirming current behavior.
const (
	maxItems             = 10   // cap on extracted line items
	nameWindow           = 10   // lines searched for the merchant name
	addressWindow        = 20   // lines searched for the address
	headerSkipWindow     = 10   // lines where email artifacts are skipped
	tabularWindow        = 20   // lines checked for date...amount structure
	tabularRowMin        = 2    // "repeated" tabular rows
	modifierMaxPrice     = 2.00 // below this a short line is a modifier
	modifierMaxWords     = 4
	minItemPrice         = 0.00
	maxItemPrice         = 9999.99
	trailingAmountWindow = 10 // last lines preferred for the total fallback
	locationNumberMin    = 2  // digits in a trailing location number
	locationNumberMax    = 4
	yearExclusionLow     = 1900 // 4-digit tokens in this range are years,
	yearExclusionHigh    = 2100 // not store numbers
)

// DefaultVocabulary returns the tuned keyword tables.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		StrongBankIndicators: []string{
			"account statement", "routing number", "account number",
			"statement period", "beginning balance", "ending balance",
			"available balance",
		},
		WeakBankIndicators: []string{
			"balance", "debit", "credit", "withdrawal", "deposit",
			"transaction", "transfer", "atm",
		},
		ReceiptIndicators: []string{
			"subtotal", "restaurant", "server", "gratuity", "tip",
			"table", "guest", "cashier", "change due",
		},
		OrderInfoKeywords: []string{
			"server", "table", "check", "order", "guest", "cashier", "host",
		},
		TotalsKeywords: []string{
			"subtotal", "sub total", "sub-total", "tax", "tip", "gratuity",
			"total", "amount due", "balance due",
		},
		PaymentKeywords: []string{
			"visa", "mastercard", "amex", "american express", "discover",
			"card", "credit", "debit", "cash", "change", "transaction",
			"approval", "auth code", "tender",
		},
		FooterKeywords: []string{
			"thank", "thanks", "visit", "come again", "survey", "feedback",
		},
		EmailArtifacts: []string{
			"from:", "to:", "subject:", "sent:", "cc:", "outlook", "forwarded message",
		},
		SkipWords: []string{
			"receipt", "invoice", "welcome", "order", "copy", "customer copy",
			"merchant copy", "duplicate", "reprint", "thank",
		},
		NameIndicators: []string{
			"restaurant", "cafe", "café", "grill", "kitchen", "pizza",
			"pizzeria", "bar", "bistro", "diner", "bakery", "coffee", "bros",
			"taco", "sushi", "deli", "house", "bbq", "burger", "steakhouse",
			"cantina", "tavern", "pub", "eatery", "buffet", "wok", "pho",
		},
		AddressIndicators: []string{
			"street", "st", "avenue", "ave", "road", "rd", "boulevard",
			"blvd", "drive", "dr", "lane", "ln", "highway", "hwy", "suite",
			"ste", "parkway", "pkwy", "way", "court", "ct", "plaza",
		},
		ProductNameIndicators: []string{
			"burger", "sandwich", "plate", "combo", "meal", "pizza", "salad",
			"wrap", "bowl", "taco", "burrito", "chicken", "beef", "steak",
			"fish", "shrimp", "pasta", "soup", "rice", "fries", "drink",
			"soda", "tea", "coffee", "juice", "beer", "wine",
		},
		Abbreviations: []string{
			"BBQ", "KFC", "IHOP", "TGI", "NYC", "LA", "USA", "II", "III", "JR",
		},
		SubtotalLabels: []string{"subtotal", "sub total", "sub-total"},
		TaxLabels:      []string{"sales tax", "tax", "hst", "gst", "pst", "vat"},
		TipLabels:      []string{"tip", "gratuity"},
		TotalLabels: []string{
			"grand total", "total due", "amount due", "balance due", "total",
		},
		RestaurantKeywords: []string{
			"restaurant", "grill", "cafe", "pizza", "taco", "sushi", "bbq",
			"burger", "diner", "kitchen", "bar ", "food", "eats", "chick",
			"wing", "pho", "thai", "mexican", "chinese",
		},
		BankTxPrefixes: []string{
			"pur", "ach", "pos", "dbt", "checkcard", "debit card purchase",
			"card purchase", "purchase",
		},
	}
}
