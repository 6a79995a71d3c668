package domain

import "time"

// Professional represents a staff member who performs services
type Professional struct {
	ID   string
	Name string

	// ServiceIDs is a membership set - insertion order carries no meaning
	ServiceIDs []string

	PhotoURL *string // opaque image reference, never interpreted

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Offers returns true if the professional performs the given service
func (p *Professional) Offers(serviceID string) bool {
	for _, id := range p.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
