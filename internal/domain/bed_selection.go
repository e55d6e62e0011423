package domain

import "math/rand/v2"

// BedSelection lists the beds picked for a multi-bed request, in pick order.
type BedSelection struct {
	BedIDs     []string `json:"bed_ids"`
	BedNumbers []int    `json:"bed_numbers"`
}

// SelectAvailableBeds picks min(required, vacant) distinct vacant beds.
//
// The vacant subset is shuffled uniformly before taking the first beds so that
// low bed numbers are not always handed out first. A nil rnd uses the global
// source. The input slice is never modified and nothing is reserved: occupancy
// only changes when a booking is confirmed.
func SelectAvailableBeds(beds []Bed, required int, rnd *rand.Rand) BedSelection {
	sel := BedSelection{BedIDs: []string{}, BedNumbers: []int{}}
	if required < 1 {
		return sel
	}

	vacant := make([]Bed, 0, len(beds))
	for _, b := range beds {
		if !b.IsOccupied {
			vacant = append(vacant, b)
		}
	}

	swap := func(i, j int) { vacant[i], vacant[j] = vacant[j], vacant[i] }
	if rnd != nil {
		rnd.Shuffle(len(vacant), swap)
	} else {
		rand.Shuffle(len(vacant), swap)
	}

	n := min(required, len(vacant))
	for _, b := range vacant[:n] {
		sel.BedIDs = append(sel.BedIDs, b.ID)
		sel.BedNumbers = append(sel.BedNumbers, b.BedNumber)
	}

	return sel
}
