package models

import "time"

type Booking struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CustomerName    string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail   string    `gorm:"type:varchar(254);not null" json:"customer_email"`
	CustomerPhone   string    `gorm:"type:varchar(20);not null;default:''" json:"customer_phone"`
	NoOfGuests      int       `gorm:"not null" json:"no_of_guests"`
	BookingDate     time.Time `gorm:"not null;uniqueIndex:idx_booking_date_table" json:"booking_date"`
	TableNumber     *int      `gorm:"uniqueIndex:idx_booking_date_table" json:"table_number"`
	SpecialRequests string    `gorm:"type:text;not null;default:''" json:"special_requests"`
	UserID          *uint     `gorm:"index" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// OwnedBy reports whether the booking belongs to the given user.
func (b *Booking) OwnedBy(userID uint) bool {
	return b.UserID != nil && *b.UserID == userID
}
