package repository

import (
	"context"

	"github.com/Eursukkul/restaurant-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, scope Scope, id uint) (*models.Booking, error)
	FindAll(ctx context.Context, scope Scope, page Page) ([]models.Booking, int64, error)
	Update(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, scope Scope, id uint) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create relies on idx_booking_date_table to reject a second booking for
// the same table at the same instant; concurrent writers get ErrDuplicate.
func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(booking).Error; err != nil {
		return translate(err)
	}
	return r.loadOwner(ctx, booking)
}

func (r *bookingRepository) FindByID(ctx context.Context, scope Scope, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Scopes(scope).
		Preload("User").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, scope Scope, page Page) ([]models.Booking, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Booking{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Scopes(scope, page.apply).
		Preload("User").
		Order("booking_date ASC, id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(booking).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, scope Scope, id uint) error {
	res := r.db.WithContext(ctx).Scopes(scope).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookingRepository) loadOwner(ctx context.Context, booking *models.Booking) error {
	if booking.UserID == nil || booking.User != nil {
		return nil
	}
	var owner models.User
	if err := r.db.WithContext(ctx).First(&owner, *booking.UserID).Error; err != nil {
		return err
	}
	booking.User = &owner
	return nil
}
