package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Eursukkul/restaurant-service/internal/auth"
	"github.com/Eursukkul/restaurant-service/internal/models"
	"github.com/Eursukkul/restaurant-service/internal/repository"
	"github.com/Eursukkul/restaurant-service/internal/validation"
	"gorm.io/gorm"
)

type BookingInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	NoOfGuests      int
	BookingDate     time.Time
	TableNumber     *int
	SpecialRequests string
}

type BookingService interface {
	CreateBooking(ctx context.Context, caller auth.Identity, in BookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, caller auth.Identity, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, caller auth.Identity, page repository.Page) ([]models.Booking, int64, error)
	UpdateBooking(ctx context.Context, caller auth.Identity, id uint, in BookingInput, partial bool) (*models.Booking, error)
	DeleteBooking(ctx context.Context, caller auth.Identity, id uint) error
}

type bookingService struct {
	repo repository.BookingRepository
	now  func() time.Time
}

func NewBookingService(repo repository.BookingRepository) BookingService {
	return &bookingService{repo: repo, now: time.Now}
}

// visibleTo is the query predicate for every booking read path: staff see
// everything, everyone else only what they own. Bookings outside the scope
// are reported as not found.
func visibleTo(caller auth.Identity) repository.Scope {
	if caller.Staff {
		return repository.Everything
	}
	return repository.OwnedBy(caller.UserID)
}

func (s *bookingService) CreateBooking(ctx context.Context, caller auth.Identity, in BookingInput) (*models.Booking, error) {
	booking := &models.Booking{}
	in.applyTo(booking)
	if err := AdmitBooking(booking, s.now(), true); err != nil {
		return nil, err
	}

	owner := caller.UserID
	booking.UserID = &owner

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, bookingWriteError(err)
	}
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, caller auth.Identity, id uint) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, visibleTo(caller), id)
	if err != nil {
		return nil, bookingLookupError(err)
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, caller auth.Identity, page repository.Page) ([]models.Booking, int64, error) {
	return s.repo.FindAll(ctx, visibleTo(caller), page)
}

// UpdateBooking replaces the editable fields of a visible booking. For a
// partial update the date rule only runs when booking_date actually changes.
func (s *bookingService) UpdateBooking(ctx context.Context, caller auth.Identity, id uint, in BookingInput, partial bool) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, visibleTo(caller), id)
	if err != nil {
		return nil, bookingLookupError(err)
	}

	checkDate := !partial || !booking.BookingDate.Equal(in.BookingDate)
	in.applyTo(booking)
	if err := AdmitBooking(booking, s.now(), checkDate); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, bookingWriteError(err)
	}
	return booking, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, caller auth.Identity, id uint) error {
	if err := s.repo.Delete(ctx, visibleTo(caller), id); err != nil {
		return bookingLookupError(err)
	}
	return nil
}

func (in BookingInput) applyTo(b *models.Booking) {
	b.CustomerName = in.CustomerName
	b.CustomerEmail = in.CustomerEmail
	b.CustomerPhone = in.CustomerPhone
	b.NoOfGuests = in.NoOfGuests
	b.BookingDate = in.BookingDate.UTC()
	b.TableNumber = in.TableNumber
	b.SpecialRequests = in.SpecialRequests
}

func bookingLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBookingNotFound
	}
	return err
}

func bookingWriteError(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return validation.Field(validation.NonFieldErrors, msgSlotTaken)
	}
	return fmt.Errorf("save booking: %w", err)
}
