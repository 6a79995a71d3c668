package domain

import "time"

// Service represents a bookable service offered by the business
type Service struct {
	ID              string
	Name            string
	Price           float64 // non-negative
	DurationMinutes int     // positive

	// Optional payment instructions. The service only displays them and
	// records the client's self-reported acknowledgment - no verification.
	PixKey    *string
	PixQRCode *string // opaque image reference (base64 or URL), never interpreted

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPaymentInfo returns true if the service has any payment instructions
// configured. Callers must handle the "no payment info" branch explicitly.
func (s *Service) HasPaymentInfo() bool {
	return (s.PixKey != nil && *s.PixKey != "") || (s.PixQRCode != nil && *s.PixQRCode != "")
}
