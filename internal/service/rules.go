package service

import (
	"time"

	"github.com/Eursukkul/restaurant-service/internal/models"
	"github.com/Eursukkul/restaurant-service/internal/validation"
	"github.com/shopspring/decimal"
)

const MaxGuestsPerBooking = 20

const (
	msgGuestsPositive = "Number of guests must be greater than zero."
	msgGuestsMax      = "Maximum 20 guests per booking."
	msgDateInPast     = "Booking date cannot be in the past."
	msgSlotTaken      = "The fields booking_date, table_number must make a unique set."
	msgPricePositive  = "Price must be greater than zero."
	msgPricePlaces    = "Ensure that there are no more than 2 decimal places."
	msgPriceDigits    = "Ensure that there are no more than 10 digits in total."
	msgNameTaken      = "menu with this name already exists."
	msgUsernameTaken  = "A user with that username already exists."
)

var maxPrice = decimal.New(1, 8) // decimal(10,2) holds at most 99999999.99

// AdmitBooking decides whether b may be written. checkDate is false only for
// partial updates that leave booking_date untouched. Table collisions are
// left to the store's unique index.
func AdmitBooking(b *models.Booking, now time.Time, checkDate bool) error {
	errs := validation.Errors{}

	switch {
	case b.NoOfGuests <= 0:
		errs.Add("no_of_guests", msgGuestsPositive)
	case b.NoOfGuests > MaxGuestsPerBooking:
		errs.Add("no_of_guests", msgGuestsMax)
	}

	if checkDate && !b.BookingDate.After(now) {
		errs.Add("booking_date", msgDateInPast)
	}

	return errs.Err()
}

// ValidatePrice enforces a strictly positive decimal(10,2) price.
func ValidatePrice(price decimal.Decimal) error {
	switch {
	case !price.IsPositive():
		return validation.Field("price", msgPricePositive)
	case !price.Equal(price.Truncate(2)):
		return validation.Field("price", msgPricePlaces)
	case price.GreaterThanOrEqual(maxPrice):
		return validation.Field("price", msgPriceDigits)
	}
	return nil
}
