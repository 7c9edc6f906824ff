package service

import (
	"context"

	"github.com/Eursukkul/restaurant-service/internal/models"
	"github.com/Eursukkul/restaurant-service/internal/repository"
	"gorm.io/gorm"
)

// --- Mock MenuRepository ---

type mockMenuRepo struct {
	createFn     func(ctx context.Context, item *models.MenuItem) error
	findByIDFn   func(ctx context.Context, id uint) (*models.MenuItem, error)
	findAllFn    func(ctx context.Context, page repository.Page) ([]models.MenuItem, int64, error)
	updateFn     func(ctx context.Context, item *models.MenuItem) error
	deleteFn     func(ctx context.Context, id uint) error
	upsertFn     func(ctx context.Context, item *models.MenuItem) error
	categoriesFn func(ctx context.Context) ([]string, error)
}

func (m *mockMenuRepo) Create(ctx context.Context, item *models.MenuItem) error {
	if m.createFn != nil {
		return m.createFn(ctx, item)
	}
	item.ID = 1
	return nil
}
func (m *mockMenuRepo) FindByID(ctx context.Context, id uint) (*models.MenuItem, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockMenuRepo) FindAll(ctx context.Context, page repository.Page) ([]models.MenuItem, int64, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, page)
	}
	return nil, 0, nil
}
func (m *mockMenuRepo) FindFeatured(ctx context.Context) ([]models.MenuItem, error) {
	return nil, nil
}
func (m *mockMenuRepo) FindByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	return nil, nil
}
func (m *mockMenuRepo) Categories(ctx context.Context) ([]string, error) {
	if m.categoriesFn != nil {
		return m.categoriesFn(ctx)
	}
	return nil, nil
}
func (m *mockMenuRepo) Update(ctx context.Context, item *models.MenuItem) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, item)
	}
	return nil
}
func (m *mockMenuRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}
func (m *mockMenuRepo) UpsertByName(ctx context.Context, item *models.MenuItem) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, item)
	}
	return nil
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn   func(ctx context.Context, b *models.Booking) error
	findByIDFn func(ctx context.Context, scope repository.Scope, id uint) (*models.Booking, error)
	findAllFn  func(ctx context.Context, scope repository.Scope, page repository.Page) ([]models.Booking, int64, error)
	updateFn   func(ctx context.Context, b *models.Booking) error
	deleteFn   func(ctx context.Context, scope repository.Scope, id uint) error
}

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	if m.createFn != nil {
		return m.createFn(ctx, b)
	}
	b.ID = 1
	return nil
}
func (m *mockBookingRepo) FindByID(ctx context.Context, scope repository.Scope, id uint) (*models.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, scope, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) FindAll(ctx context.Context, scope repository.Scope, page repository.Page) ([]models.Booking, int64, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, scope, page)
	}
	return nil, 0, nil
}
func (m *mockBookingRepo) Update(ctx context.Context, b *models.Booking) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, b)
	}
	return nil
}
func (m *mockBookingRepo) Delete(ctx context.Context, scope repository.Scope, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, scope, id)
	}
	return nil
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn         func(ctx context.Context, u *models.User) error
	findByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*models.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	u.ID = 1
	return nil
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

// --- Mock Publisher ---

type published struct {
	key     string
	payload any
}

type mockPublisher struct {
	err  error
	sent []published
}

func (m *mockPublisher) Publish(routingKey string, payload any) error {
	m.sent = append(m.sent, published{key: routingKey, payload: payload})
	return m.err
}
