package model

import "time"

// Review is a text review left by a user on a spot. The author is embedded
// as a public user so lists render without extra lookups.
type Review struct {
	ID        uint64     `json:"id"`
	SpotID    uint64     `json:"spotId"`
	Author    PublicUser `json:"author"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"createdAt"`
}
