package model

import "time"

// Image records the URL of a picture that the client already uploaded to
// object storage. The server never sees the binary; it only stores the
// resulting URL against the spot.
type Image struct {
	ID        uint64    `json:"id"`
	SpotID    uint64    `json:"spotId"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}
