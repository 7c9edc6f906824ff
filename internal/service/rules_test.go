package service

import (
	"testing"
	"time"

	"github.com/Eursukkul/restaurant-service/internal/models"
	"github.com/Eursukkul/restaurant-service/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmitBooking(t *testing.T) {
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		guests    int
		date      time.Time
		checkDate bool
		want      validation.Errors
	}{
		{"valid", 4, now.Add(time.Hour), true, nil},
		{"one guest", 1, now.Add(time.Hour), true, nil},
		{"twenty guests", 20, now.Add(time.Hour), true, nil},
		{"zero guests", 0, now.Add(time.Hour), true, validation.Errors{"no_of_guests": {msgGuestsPositive}}},
		{"negative guests", -3, now.Add(time.Hour), true, validation.Errors{"no_of_guests": {msgGuestsPositive}}},
		{"too many guests", 21, now.Add(time.Hour), true, validation.Errors{"no_of_guests": {msgGuestsMax}}},
		{"past date", 2, now.Add(-time.Minute), true, validation.Errors{"booking_date": {msgDateInPast}}},
		{"exactly now", 2, now, true, validation.Errors{"booking_date": {msgDateInPast}}},
		{"past date unchecked", 2, now.Add(-time.Hour), false, nil},
		{"both wrong", 0, now.Add(-time.Hour), true, validation.Errors{
			"no_of_guests": {msgGuestsPositive},
			"booking_date": {msgDateInPast},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AdmitBooking(&models.Booking{NoOfGuests: tt.guests, BookingDate: tt.date}, now, tt.checkDate)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{"12.99", ""},
		{"0.01", ""},
		{"99999999.99", ""},
		{"0", msgPricePositive},
		{"-1.50", msgPricePositive},
		{"1.999", msgPricePlaces},
		{"100000000", msgPriceDigits},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			err := ValidatePrice(decimal.RequireFromString(tt.price))
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, []string{tt.want}, errs["price"])
		})
	}
}
