package model

import "testing"

func floatPtr(f float64) *float64 { return &f }

func TestSignupUsernameCannotBeEmail(t *testing.T) {
	errs := Validate(SignupInput{
		Username: "user@example.com",
		Email:    "real@example.com",
		Password: "secret123",
	})
	if errs["username"] != "Cannot be an email address." {
		t.Fatalf("username error = %q", errs["username"])
	}
}

func TestSignupUsernameLengthBounds(t *testing.T) {
	errs := Validate(SignupInput{Username: "abc", Email: "a@b.co", Password: "secret123"})
	if _, ok := errs["username"]; !ok {
		t.Fatal("3-char username accepted")
	}
	errs = Validate(SignupInput{
		Username: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", // 31 chars
		Email:    "a@b.co",
		Password: "secret123",
	})
	if _, ok := errs["username"]; !ok {
		t.Fatal("31-char username accepted")
	}
	if errs := Validate(SignupInput{Username: "traveler1", Email: "t@example.com", Password: "secret123"}); errs.Has() {
		t.Fatalf("valid signup rejected: %v", errs)
	}
}

func TestSpotInputRequiresPrice(t *testing.T) {
	errs := Validate(SpotInput{
		Address: "1 Main St",
		City:    "Lisbon",
		State:   "Lisboa",
		Country: "Portugal",
		Name:    "Cozy loft",
	})
	if _, ok := errs["price"]; !ok {
		t.Fatalf("missing price accepted, errs = %v", errs)
	}
}

func TestSpotInputValid(t *testing.T) {
	errs := Validate(SpotInput{
		Address:    "1 Main St",
		City:       "Lisbon",
		State:      "Lisboa",
		Country:    "Portugal",
		Name:       "Cozy loft",
		Price:      floatPtr(120),
		AmenityIDs: []uint64{1, 2},
	})
	if errs.Has() {
		t.Fatalf("valid spot rejected: %v", errs)
	}
}

func TestBookingInputDateShape(t *testing.T) {
	errs := Validate(BookingInput{StartDate: "2026-09-01", EndDate: "not-a-date"})
	if _, ok := errs["endDate"]; !ok {
		t.Fatalf("bad end date accepted, errs = %v", errs)
	}
	if errs := Validate(BookingInput{StartDate: "2026-09-01", EndDate: "2026-09-05"}); errs.Has() {
		t.Fatalf("valid booking rejected: %v", errs)
	}
}
