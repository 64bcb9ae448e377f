package model

// Amenity is a feature a spot can offer (wifi, parking, ...). Icon holds the
// client-side icon reference. Amenities relate to spots through the
// spot_amenities join table.
type Amenity struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
