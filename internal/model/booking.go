package model

import "time"

// Booking reserves a spot for a date range. Dates are stored as DATE columns
// and serialized in YYYY-MM-DD form.
type Booking struct {
	ID        uint64    `json:"id"`
	SpotID    uint64    `json:"spotId"`
	UserID    uint64    `json:"userId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingWithSpot pairs a booking with a short spot description for the
// caller's booking list.
type BookingWithSpot struct {
	Booking
	SpotName string `json:"spotName"`
	City     string `json:"city"`
	Country  string `json:"country"`
}
