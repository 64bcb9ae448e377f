package model

import "time"

// Spot represents a listable rental property as stored in the `spots`
// table. A spot always belongs to one owner; the district is optional and
// only meaningful for spots in the one city the client groups by district.
//
// Fields:
//
//	ID          – primary key identifier.
//	UserID      – owner of the spot (users.id, cascade on owner delete).
//	DistrictID  – optional district grouping (nil when unassigned).
//	Address     – street address.
//	City        – city name.
//	State       – state or province.
//	Country     – country name.
//	Name        – listing title.
//	Description – free-form listing text.
//	Price       – nightly price, formatted as a decimal string.
//	Visible     – whether the spot appears in public listings.
//	CreatedAt   – timestamp of creation.
//	UpdatedAt   – timestamp of last update.
type Spot struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"userId"`
	DistrictID  *uint64   `json:"districtId"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Visible     bool      `json:"visible"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SpotSummary is the denormalized shape returned by list endpoints: the row
// itself plus its owner, district name, amenity ids, review count and one
// preview image. The embedded collections make a list renderable without
// further round trips.
type SpotSummary struct {
	Spot
	Owner        PublicUser `json:"owner"`
	DistrictName string     `json:"districtName,omitempty"`
	AmenityIDs   []uint64   `json:"amenityIds"`
	ReviewCount  int        `json:"reviewCount"`
	PreviewImage string     `json:"previewImage,omitempty"`
}

// SpotDetail extends the summary with full child collections for the single
// spot page.
type SpotDetail struct {
	SpotSummary
	Images   []Image   `json:"images"`
	Reviews  []Review  `json:"reviews"`
	Bookings []Booking `json:"bookings"`
}
