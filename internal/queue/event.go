// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking is successfully stored.
// It carries enough information for downstream consumers to log or notify
// without querying the primary database.
type BookingCreatedEvent struct {
	BookingID uint64 `json:"booking_id"`
	SpotID    uint64 `json:"spot_id"`
	SpotName  string `json:"spot_name"`
	UserID    uint64 `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	CreatedAt string `json:"created_at"`
}
