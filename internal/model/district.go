package model

// District is a named sub-region used to group spots within one city. The
// server stores the assignment without checking the city; whether a district
// is shown is a client-side rule.
type District struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
