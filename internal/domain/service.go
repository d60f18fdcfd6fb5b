package domain

import "fmt"

// ServiceCategory is the closed set of service categories offered by the
// provider. Unknown categories are rejected at configuration load time.
type ServiceCategory string

const (
	CategoryFace        ServiceCategory = "face"
	CategoryBody        ServiceCategory = "body"
	CategoryHairRemoval ServiceCategory = "hair_removal"
	CategoryNails       ServiceCategory = "nails"
)

// ParseServiceCategory validates a category string
func ParseServiceCategory(s string) (ServiceCategory, error) {
	switch ServiceCategory(s) {
	case CategoryFace, CategoryBody, CategoryHairRemoval, CategoryNails:
		return ServiceCategory(s), nil
	default:
		return "", fmt.Errorf("unknown service category %q", s)
	}
}

// ServiceDefinition describes one bookable service. Immutable, loaded
// from configuration.
type ServiceDefinition struct {
	ID              string
	Name            string
	Category        ServiceCategory
	DurationMinutes int
	Price           float64
}

// ServiceCatalog is the set of services loaded from configuration
type ServiceCatalog []ServiceDefinition

// ByID looks a service up by its identifier
func (c ServiceCatalog) ByID(id string) (*ServiceDefinition, bool) {
	for i := range c {
		if c[i].ID == id {
			return &c[i], true
		}
	}
	return nil, false
}
