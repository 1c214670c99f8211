package domain

// Booking is one confirmed reservation. Records are immutable after
// creation: the total is frozen at booking time, and the only mutation
// anywhere is removal on cancellation.
type Booking struct {
	ID           string   `json:"id"`
	CustomerName string   `json:"customer_name"`
	Category     Category `json:"category"`
	Nights       int      `json:"nights"`
	Total        float64  `json:"total"`
	CreatedAt    int64    `json:"created_at"` // Unix milliseconds
}
