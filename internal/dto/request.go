package dto

import (
	"time"

	"github.com/Eursukkul/restaurant-service/internal/models"
	"github.com/Eursukkul/restaurant-service/internal/service"
	"github.com/shopspring/decimal"
)

type MenuItemRequest struct {
	Name        string           `json:"name" validate:"required,max=255"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Category    string           `json:"category" validate:"required,max=100"`
	Available   bool             `json:"available"`
	Featured    bool             `json:"featured"`
}

// NewMenuItemRequest returns a request carrying the field defaults applied
// when the client omits them.
func NewMenuItemRequest() MenuItemRequest {
	return MenuItemRequest{Available: true}
}

// MenuItemRequestFrom prefills a request from a stored item so that a
// partial update only overwrites the fields present in the body.
func MenuItemRequestFrom(item *models.MenuItem) MenuItemRequest {
	price := item.Price
	return MenuItemRequest{
		Name:        item.Name,
		Description: item.Description,
		Price:       &price,
		Category:    item.Category,
		Available:   item.Available,
		Featured:    item.Featured,
	}
}

func (r MenuItemRequest) Input() service.MenuInput {
	in := service.MenuInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Available:   r.Available,
		Featured:    r.Featured,
	}
	if r.Price != nil {
		in.Price = *r.Price
	}
	return in
}

type BookingRequest struct {
	CustomerName    string     `json:"customer_name" validate:"required,max=255"`
	CustomerEmail   string     `json:"customer_email" validate:"required,email,max=254"`
	CustomerPhone   string     `json:"customer_phone" validate:"max=20"`
	NoOfGuests      *int       `json:"no_of_guests" validate:"required"`
	BookingDate     *time.Time `json:"booking_date" validate:"required"`
	TableNumber     *int       `json:"table_number" validate:"omitempty,gt=0"`
	SpecialRequests string     `json:"special_requests"`
}

func BookingRequestFrom(b *models.Booking) BookingRequest {
	guests := b.NoOfGuests
	date := b.BookingDate
	req := BookingRequest{
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		NoOfGuests:      &guests,
		BookingDate:     &date,
		SpecialRequests: b.SpecialRequests,
	}
	if b.TableNumber != nil {
		table := *b.TableNumber
		req.TableNumber = &table
	}
	return req
}

func (r BookingRequest) Input() service.BookingInput {
	in := service.BookingInput{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		TableNumber:     r.TableNumber,
		SpecialRequests: r.SpecialRequests,
	}
	if r.NoOfGuests != nil {
		in.NoOfGuests = *r.NoOfGuests
	}
	if r.BookingDate != nil {
		in.BookingDate = *r.BookingDate
	}
	return in
}

type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}
