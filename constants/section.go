package constants

// Section is the canonical name of a receipt zone produced by segmentation.
type Section string

// Stable values (these exact strings key the section map and appear in logs).
const (
	SectionHeader    Section = "header"     // merchant name, address, phone
	SectionOrderInfo Section = "order_info" // server, table, check, date/time
	SectionItems     Section = "items"      // line items and modifiers
	SectionTotals    Section = "totals"     // subtotal, tax, tip, total
	SectionPayment   Section = "payment"    // card/tender lines
	SectionFooter    Section = "footer"     // thank-you / visit-us trailer
)

// AllSections lists sections in document order.
var AllSections = []Section{
	SectionHeader,
	SectionOrderInfo,
	SectionItems,
	SectionTotals,
	SectionPayment,
	SectionFooter,
}
