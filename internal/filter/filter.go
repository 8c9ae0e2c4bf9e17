// Package filter implements the listing filter predicates shared by the
// browser and the /listings query parameters. All functions are pure: the
// input slice is never mutated and input order is preserved.
package filter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/D1Massacre007/York-Realty/internal/model"
)

// CountSentinel in a beds/baths filter means "this many or more".
const CountSentinel = "4+"

// Params holds one value per filter input. Empty values match everything.
type Params struct {
	Text        string // substring match over address, postal code, title, description
	ListingType string // exact case-insensitive match: sale | rent
	HousingType string // exact case-insensitive match
	Campus      string // exact case-insensitive match
	Beds        string // exact integer match, or "4+" for >= 4
	Baths       string // exact decimal match, or "4+" for >= 4
}

// IsZero reports whether no filter input is set.
func (p Params) IsZero() bool {
	return p == Params{}
}

// Apply returns the listings matching every set predicate, in their original
// order.
func Apply(listings []*model.Listing, p Params) []*model.Listing {
	text := strings.ToLower(strings.TrimSpace(p.Text))

	var matched []*model.Listing
	for _, l := range listings {
		if !matchesText(l, text) {
			continue
		}
		if p.ListingType != "" && !strings.EqualFold(l.ListingType, p.ListingType) {
			continue
		}
		if p.HousingType != "" && !strings.EqualFold(l.HousingType, p.HousingType) {
			continue
		}
		if p.Campus != "" && !strings.EqualFold(l.Campus, p.Campus) {
			continue
		}
		if !matchesCount(float64(l.Bedrooms), p.Beds) {
			continue
		}
		if !matchesCount(l.Bathrooms, p.Baths) {
			continue
		}
		matched = append(matched, l)
	}
	return matched
}

// Featured returns the n newest listings by creation time. The input slice is
// left untouched.
func Featured(listings []*model.Listing, n int) []*model.Listing {
	sorted := make([]*model.Listing, len(listings))
	copy(sorted, listings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

func matchesText(l *model.Listing, text string) bool {
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Address), text) ||
		strings.Contains(strings.ToLower(l.PostalCode), text) ||
		strings.Contains(strings.ToLower(l.Title), text) ||
		strings.Contains(strings.ToLower(l.PropertyDescription), text)
}

func matchesCount(have float64, want string) bool {
	if want == "" {
		return true
	}
	if want == CountSentinel {
		return have >= 4
	}
	n, err := strconv.ParseFloat(want, 64)
	if err != nil {
		// An unparseable filter value matches nothing rather than everything.
		return false
	}
	return have == n
}
