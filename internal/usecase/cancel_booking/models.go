package cancel_booking

// Request carries the cancellation intent.
type Request struct {
	UserID             int64  // caller identity, must own the booking
	CancellationReason string // optional, recorded on the booking
}
