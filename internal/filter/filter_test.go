package filter

import (
	"testing"
	"time"

	"github.com/D1Massacre007/York-Realty/internal/model"
)

func sampleListings() []*model.Listing {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []*model.Listing{
		{ID: "a", Title: "Studio A", ListingType: "rent", HousingType: "apartment", Campus: "keele", Bedrooms: 1, Bathrooms: 1, Address: "12 Main St", PostalCode: "M3J 1P3", PropertyDescription: "Cozy studio", CreatedAt: base},
		{ID: "b", Title: "Family House", ListingType: "sale", HousingType: "house", Campus: "keele", Bedrooms: 4, Bathrooms: 2.5, Address: "34 Oak Ave", PostalCode: "M3J 2K1", PropertyDescription: "Spacious", CreatedAt: base.Add(1 * time.Hour)},
		{ID: "c", Title: "Condo Downtown", ListingType: "rent", HousingType: "condo", Campus: "glendon", Bedrooms: 2, Bathrooms: 2, Address: "56 King St", PostalCode: "M4N 3M6", PropertyDescription: "Near transit", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "d", Title: "Big House", ListingType: "sale", HousingType: "house", Campus: "markham", Bedrooms: 4, Bathrooms: 4, Address: "78 Elm Rd", PostalCode: "L6B 1A1", PropertyDescription: "Room for everyone", CreatedAt: base.Add(3 * time.Hour)},
		{ID: "e", Title: "Huge House", ListingType: "sale", HousingType: "house", Campus: "markham", Bedrooms: 5, Bathrooms: 4.5, Address: "90 Pine Ct", PostalCode: "L6B 2B2", PropertyDescription: "Very large", CreatedAt: base.Add(4 * time.Hour)},
	}
}

func ids(listings []*model.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyEmptyParamsMatchesAll(t *testing.T) {
	listings := sampleListings()
	got := Apply(listings, Params{})
	if len(got) != len(listings) {
		t.Fatalf("expected %d listings, got %d", len(listings), len(got))
	}
}

func TestApplyTextMatchesAcrossFields(t *testing.T) {
	listings := sampleListings()

	cases := []struct {
		text string
		want []string
	}{
		{"oak", []string{"b"}},     // address
		{"m4n", []string{"c"}},     // postal code, case-insensitive
		{"studio", []string{"a"}},  // title and description
		{"transit", []string{"c"}}, // description
		{"", []string{"a", "b", "c", "d", "e"}},
	}

	for _, tc := range cases {
		got := Apply(listings, Params{Text: tc.text})
		if !equalIDs(ids(got), tc.want...) {
			t.Errorf("text %q: got %v, want %v", tc.text, ids(got), tc.want)
		}
	}
}

func TestApplyBedsSentinel(t *testing.T) {
	listings := sampleListings()

	got := Apply(listings, Params{Beds: "4+"})
	if !equalIDs(ids(got), "b", "d", "e") {
		t.Fatalf("beds 4+: got %v, want [b d e] in original order", ids(got))
	}

	got = Apply(listings, Params{Beds: "2"})
	if !equalIDs(ids(got), "c") {
		t.Fatalf("beds 2: got %v, want [c]", ids(got))
	}
}

func TestApplyBathsDecimal(t *testing.T) {
	listings := sampleListings()

	got := Apply(listings, Params{Baths: "2.5"})
	if !equalIDs(ids(got), "b") {
		t.Fatalf("baths 2.5: got %v, want [b]", ids(got))
	}

	got = Apply(listings, Params{Baths: "4+"})
	if !equalIDs(ids(got), "d", "e") {
		t.Fatalf("baths 4+: got %v, want [d e]", ids(got))
	}
}

func TestApplyPredicatesAreANDed(t *testing.T) {
	listings := sampleListings()

	got := Apply(listings, Params{ListingType: "sale", Campus: "markham", Beds: "4+"})
	if !equalIDs(ids(got), "d", "e") {
		t.Fatalf("got %v, want [d e]", ids(got))
	}

	got = Apply(listings, Params{ListingType: "rent", Campus: "markham"})
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", ids(got))
	}
}

func TestApplyCaseInsensitiveCategories(t *testing.T) {
	listings := sampleListings()

	got := Apply(listings, Params{HousingType: "Condo", Campus: "GLENDON"})
	if !equalIDs(ids(got), "c") {
		t.Fatalf("got %v, want [c]", ids(got))
	}

	got = Apply(listings, Params{ListingType: "Rent"})
	if !equalIDs(ids(got), "a", "c") {
		t.Fatalf("got %v, want [a c]", ids(got))
	}

	got = Apply(listings, Params{ListingType: "SALE", HousingType: "House"})
	if !equalIDs(ids(got), "b", "d", "e") {
		t.Fatalf("got %v, want [b d e]", ids(got))
	}
}

func TestApplyIsIdempotentAndPure(t *testing.T) {
	listings := sampleListings()
	params := Params{ListingType: "sale", Beds: "4+"}

	first := Apply(listings, params)
	second := Apply(listings, params)

	if !equalIDs(ids(first), ids(second)...) {
		t.Fatalf("two runs differ: %v vs %v", ids(first), ids(second))
	}

	// Input order must be untouched.
	if !equalIDs(ids(listings), "a", "b", "c", "d", "e") {
		t.Fatalf("input slice mutated: %v", ids(listings))
	}
}

func TestFeaturedNewestThree(t *testing.T) {
	listings := sampleListings()

	got := Featured(listings, 3)
	if !equalIDs(ids(got), "e", "d", "c") {
		t.Fatalf("got %v, want [e d c]", ids(got))
	}

	// Input order unchanged.
	if !equalIDs(ids(listings), "a", "b", "c", "d", "e") {
		t.Fatalf("input slice mutated: %v", ids(listings))
	}
}

func TestFeaturedFewerThanN(t *testing.T) {
	listings := sampleListings()[:2]

	got := Featured(listings, 3)
	if len(got) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(got))
	}
}
