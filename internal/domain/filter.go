package domain

import (
	"slices"
	"strings"
)

type PriceRange struct {
	Min int
	Max int
}

// FilterOptions is a listing search query. Zero values of Location,
// GenderPreference and Amenities match every listing.
type FilterOptions struct {
	PriceRange       PriceRange
	Location         string
	GenderPreference GenderPreference
	Amenities        []string
}

// Matches reports whether l satisfies every criterion of f.
func (f FilterOptions) Matches(l *Listing) bool {
	if l.Price < f.PriceRange.Min || l.Price > f.PriceRange.Max {
		return false
	}

	if f.Location != "" &&
		!strings.Contains(strings.ToLower(l.Address), strings.ToLower(f.Location)) {
		return false
	}

	if f.GenderPreference != "" &&
		l.GenderPreference != f.GenderPreference &&
		l.GenderPreference != GenderAny {
		return false
	}

	for _, want := range f.Amenities {
		if !slices.Contains(l.Amenities, want) {
			return false
		}
	}

	return true
}

func FilterListings(listings []*Listing, f FilterOptions) []*Listing {
	res := make([]*Listing, 0, len(listings))
	for _, l := range listings {
		if f.Matches(l) {
			res = append(res, l)
		}
	}
	return res
}
