package model

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps an input field name to a user-correctable message. It is
// serialized as the `errors` object of a 400 response.
type FieldErrors map[string]string

func (e FieldErrors) Has() bool { return len(e) > 0 }

// emailShape matches anything that looks like an email address. Usernames
// matching it are rejected so a username can never be mistaken for a login
// email.
var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their json name so error keys line up with payloads.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("not_email", func(fl validator.FieldLevel) bool {
		return !emailShape.MatchString(fl.Field().String())
	})
	return v
}

// SignupInput carries the POST /api/users payload.
type SignupInput struct {
	Username string `json:"username" validate:"required,min=4,max=30,not_email"`
	Email    string `json:"email" validate:"required,min=3,max=256"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput carries the POST /api/session payload. Credential may be either
// a username or an email address.
type LoginInput struct {
	Credential string `json:"credential" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// SpotInput carries the create/update payload for a spot. AmenityIDs is the
// full replacement set for the spot's amenity links.
type SpotInput struct {
	DistrictID  *uint64  `json:"districtId"`
	Address     string   `json:"address" validate:"required"`
	City        string   `json:"city" validate:"required"`
	State       string   `json:"state" validate:"required"`
	Country     string   `json:"country" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	Visible     *bool    `json:"visible"`
	AmenityIDs  []uint64 `json:"amenityIds" validate:"dive,gt=0"`
}

// ReviewInput carries the POST /api/spots/:id/reviews payload.
type ReviewInput struct {
	Body string `json:"body" validate:"required"`
}

// BookingInput carries the POST /api/spots/:id/bookings payload. The
// end-after-start rule is checked by the handler after shape validation.
type BookingInput struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

// Validate runs struct validation and flattens the result into FieldErrors.
// A nil return means the input passed.
func Validate(in any) FieldErrors {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"body": "invalid request body"}
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue // keep the first failure per field
		}
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "not_email":
		return "Cannot be an email address."
	case "gt":
		return "must be greater than " + fe.Param()
	case "datetime":
		return "must be a date in YYYY-MM-DD form"
	default:
		return "is invalid"
	}
}
