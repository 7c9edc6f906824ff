// Package seed loads the sample catalog, accounts and bookings used in
// development. Every record is matched by a natural key first, so running
// it repeatedly is harmless.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Eursukkul/restaurant-service/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const DefaultPassword = "temppass123"

type Summary struct {
	MenuItems int64
	Users     int64
	Bookings  int64
}

var menuItems = []models.MenuItem{
	{Name: "Greek Salad", Description: "Fresh vegetables with feta cheese, olives, and olive oil dressing", Price: decimal.RequireFromString("12.99"), Category: "Appetizers", Available: true, Featured: true},
	{Name: "Bruschetta", Description: "Grilled bread with tomatoes, garlic, and basil", Price: decimal.RequireFromString("9.99"), Category: "Appetizers", Available: true},
	{Name: "Grilled Salmon", Description: "Fresh Atlantic salmon with herbs and lemon", Price: decimal.RequireFromString("24.99"), Category: "Main Course", Available: true, Featured: true},
	{Name: "Chicken Parmigiana", Description: "Breaded chicken breast with marinara sauce and mozzarella", Price: decimal.RequireFromString("19.99"), Category: "Main Course", Available: true},
	{Name: "Margherita Pizza", Description: "Classic pizza with tomato sauce, mozzarella, and fresh basil", Price: decimal.RequireFromString("16.99"), Category: "Pizza", Available: true, Featured: true},
	{Name: "Tiramisu", Description: "Classic Italian dessert with coffee-soaked ladyfingers", Price: decimal.RequireFromString("7.99"), Category: "Desserts", Available: true},
	{Name: "Lemon Tart", Description: "Fresh lemon curd in a buttery pastry shell", Price: decimal.RequireFromString("6.99"), Category: "Desserts", Available: true, Featured: true},
}

var users = []models.User{
	{Username: "john_doe", Email: "john@example.com", FirstName: "John", LastName: "Doe", IsActive: true},
	{Username: "jane_smith", Email: "jane@example.com", FirstName: "Jane", LastName: "Smith", IsActive: true},
}

type sampleBooking struct {
	booking models.Booking
	daysOut int
	owner   string
}

func sampleBookings() []sampleBooking {
	return []sampleBooking{
		{models.Booking{CustomerName: "John Doe", CustomerEmail: "john@example.com", CustomerPhone: "555-0101", NoOfGuests: 4, TableNumber: intPtr(5), SpecialRequests: "Window seat please"}, 1, "john_doe"},
		{models.Booking{CustomerName: "Jane Smith", CustomerEmail: "jane@example.com", CustomerPhone: "555-0102", NoOfGuests: 2, TableNumber: intPtr(3), SpecialRequests: "Vegetarian options"}, 2, "jane_smith"},
		{models.Booking{CustomerName: "Bob Wilson", CustomerEmail: "bob@example.com", CustomerPhone: "555-0103", NoOfGuests: 6, TableNumber: intPtr(8), SpecialRequests: "Birthday celebration"}, 3, ""},
	}
}

func intPtr(v int) *int { return &v }

// Run seeds db. Booking dates are placed whole days after now.
func Run(ctx context.Context, db *gorm.DB, now time.Time) (Summary, error) {
	db = db.WithContext(ctx)

	for _, item := range menuItems {
		var existing models.MenuItem
		res := db.Where(models.MenuItem{Name: item.Name}).Attrs(item).FirstOrCreate(&existing)
		if res.Error != nil {
			return Summary{}, fmt.Errorf("seed menu item %q: %w", item.Name, res.Error)
		}
		logOutcome("menu item", item.Name, res.RowsAffected)
	}

	owners := make(map[string]uint, len(users))
	for _, u := range users {
		if err := u.SetPassword(DefaultPassword); err != nil {
			return Summary{}, err
		}
		var existing models.User
		res := db.Where(models.User{Username: u.Username}).Attrs(u).FirstOrCreate(&existing)
		if res.Error != nil {
			return Summary{}, fmt.Errorf("seed user %q: %w", u.Username, res.Error)
		}
		owners[u.Username] = existing.ID
		logOutcome("user", u.Username, res.RowsAffected)
	}

	for _, sb := range sampleBookings() {
		b := sb.booking
		b.BookingDate = now.UTC().AddDate(0, 0, sb.daysOut).Truncate(time.Second)
		if id, ok := owners[sb.owner]; ok {
			b.UserID = &id
		}

		var existing models.Booking
		res := db.Where("customer_email = ? AND table_number = ?", b.CustomerEmail, *b.TableNumber).
			Attrs(b).
			FirstOrCreate(&existing)
		if res.Error != nil {
			return Summary{}, fmt.Errorf("seed booking for %s: %w", b.CustomerName, res.Error)
		}
		logOutcome("booking", b.CustomerName, res.RowsAffected)
	}

	var sum Summary
	if err := db.Model(&models.MenuItem{}).Count(&sum.MenuItems).Error; err != nil {
		return Summary{}, err
	}
	if err := db.Model(&models.User{}).Count(&sum.Users).Error; err != nil {
		return Summary{}, err
	}
	if err := db.Model(&models.Booking{}).Count(&sum.Bookings).Error; err != nil {
		return Summary{}, err
	}
	return sum, nil
}

func logOutcome(kind, name string, created int64) {
	if created > 0 {
		slog.Info("seeded "+kind, slog.String("name", name))
		return
	}
	slog.Info(kind+" already exists", slog.String("name", name))
}
