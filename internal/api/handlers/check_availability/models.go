package check_availability

// CheckResponse HTTP response model. The answer is a snapshot: only
// the booking operation itself guarantees a slot.
type CheckResponse struct {
	CharterID int64  `json:"charterId"`
	Date      string `json:"date"`
	Slots     int    `json:"slots"`
	Available bool   `json:"available"`
}
