package domain

import "time"

type GenderPreference string

const (
	GenderMale   GenderPreference = "male"
	GenderFemale GenderPreference = "female"
	GenderAny    GenderPreference = "any"
)

func (g GenderPreference) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderAny:
		return true
	}
	return false
}

type Listing struct {
	ID               string           `json:"id"`
	OwnerID          string           `json:"owner_id"`
	Name             string           `json:"name"`
	Address          string           `json:"address"`
	Description      string           `json:"description"`
	Price            int              `json:"price"`
	GenderPreference GenderPreference `json:"gender_preference"`
	Amenities        []string         `json:"amenities"`
	ImageURL         string           `json:"image_url"`
	Availability     bool             `json:"availability"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type ListingDetails struct {
	Listing Listing        `json:"listing"`
	Rooms   []RoomWithBeds `json:"rooms"`
}

type ListingInput struct {
	Name             string
	Address          string
	Description      string
	Price            int
	GenderPreference GenderPreference
	Amenities        []string
	ImageURL         string
	Availability     *bool
}
