package validation

import (
	"strings"
)

// ListingFields is the fixed set of text fields a listing submission must carry.
var ListingFields = []string{
	"title",
	"listing_type",
	"housing_type",
	"campus",
	"bedrooms",
	"bathrooms",
	"square_footage",
	"address",
	"postal_code",
	"property_description",
	"price",
	"agent_name",
	"agent_email",
	"agent_phone",
}

// MissingFields returns every required field that is absent or blank after
// trimming, in the canonical field order. Callers get the full list, not just
// the first offender.
func MissingFields(fields map[string]string, required []string) []string {
	var missing []string
	for _, name := range required {
		value, ok := fields[name]
		if !ok || strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
