// Package intent implements weighted keyword intent classification over a langpack
package intent

// Intent is the closed vocabulary of things a caller can ask for
type Intent string

const (
	// PriceInquiry asks what a service costs
	PriceInquiry Intent = "price_inquiry"
	// Scheduling books, moves or checks an appointment
	Scheduling Intent = "scheduling"
	// CustomerLookup finds a customer record
	CustomerLookup Intent = "customer_lookup"
	// StockInquiry checks parts availability
	StockInquiry Intent = "stock_inquiry"
	// WorkOrderStatus asks about an open work order
	WorkOrderStatus Intent = "work_order_status"
	// Greeting is small talk openers
	Greeting Intent = "greeting"
	// Help asks what the assistant can do
	Help Intent = "help"
	// Unknown is the fallback when nothing matched
	Unknown Intent = "unknown"
)

// Alternative is a runner-up intent with its score
type Alternative struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// Result is a ranked classification outcome
type Result struct {
	Intent       Intent        `json:"intent"`
	Confidence   float64       `json:"confidence"`
	Alternatives []Alternative `json:"alternatives"`
}
