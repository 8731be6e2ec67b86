package constants

// Field keys used in Receipt.ConfidenceScores and in structured logs.
// The scorer writes exactly these five keys; absence of a key means the
// field was never evaluated, which is distinct from a zero score.
const (
	FieldAmount         = "amount"
	FieldDate           = "date"
	FieldRestaurantName = "restaurant_name"
	FieldTotal          = "total"
	FieldItems          = "items"
)
