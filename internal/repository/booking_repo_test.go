package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Eursukkul/restaurant-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func newBooking(owner *models.User, at time.Time, table *int) *models.Booking {
	b := &models.Booking{
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
		NoOfGuests:    4,
		BookingDate:   at,
		TableNumber:   table,
	}
	if owner != nil {
		b.UserID = &owner.ID
	}
	return b
}

func TestBookingRepository_SameTableSameInstantConflicts(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()
	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)
	at := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)

	require.NoError(t, repo.Create(ctx, newBooking(alice, at, intPtr(5))))
	err := repo.Create(ctx, newBooking(bob, at, intPtr(5)))
	assert.ErrorIs(t, err, ErrDuplicate)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestBookingRepository_NoOverlapModelling(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()
	at := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)

	require.NoError(t, repo.Create(ctx, newBooking(nil, at, intPtr(5))))
	require.NoError(t, repo.Create(ctx, newBooking(nil, at.Add(time.Minute), intPtr(5))))
	require.NoError(t, repo.Create(ctx, newBooking(nil, at, intPtr(6))))
	// bookings without a table never collide
	require.NoError(t, repo.Create(ctx, newBooking(nil, at, nil)))
	require.NoError(t, repo.Create(ctx, newBooking(nil, at, nil)))
}

func TestBookingRepository_CreateLoadsOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	alice := createUser(t, db, "alice", false)

	b := newBooking(alice, time.Now().UTC().Add(time.Hour), intPtr(1))
	require.NoError(t, repo.Create(context.Background(), b))

	require.NotNil(t, b.User)
	assert.Equal(t, "alice", b.User.Username)
}

func TestBookingRepository_OwnedByScope(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()
	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)
	base := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)

	aliceBooking := newBooking(alice, base, intPtr(1))
	bobBooking := newBooking(bob, base, intPtr(2))
	anonymous := newBooking(nil, base, intPtr(3))
	for _, b := range []*models.Booking{aliceBooking, bobBooking, anonymous} {
		require.NoError(t, repo.Create(ctx, b))
	}

	mine, total, err := repo.FindAll(ctx, OwnedBy(alice.ID), Page{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, mine, 1)
	assert.Equal(t, aliceBooking.ID, mine[0].ID)
	require.NotNil(t, mine[0].User)
	assert.Equal(t, "alice", mine[0].User.Username)

	all, total, err := repo.FindAll(ctx, Everything, Page{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)

	_, err = repo.FindByID(ctx, OwnedBy(alice.ID), bobBooking.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := repo.FindByID(ctx, Everything, bobBooking.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.User.Username)
}

func TestBookingRepository_FindAllOrderedByDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()
	base := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)

	later := newBooking(nil, base.Add(2*time.Hour), intPtr(1))
	sooner := newBooking(nil, base, intPtr(1))
	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, sooner))

	bookings, _, err := repo.FindAll(ctx, Everything, Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, sooner.ID, bookings[0].ID)
	assert.Equal(t, later.ID, bookings[1].ID)
}

func TestBookingRepository_ScopedDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()
	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)

	b := newBooking(alice, time.Now().UTC().Add(time.Hour), intPtr(4))
	require.NoError(t, repo.Create(ctx, b))

	assert.ErrorIs(t, repo.Delete(ctx, OwnedBy(bob.ID), b.ID), gorm.ErrRecordNotFound)
	require.NoError(t, repo.Delete(ctx, OwnedBy(alice.ID), b.ID))
	_, err := repo.FindByID(ctx, Everything, b.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookingRepository_UpdateIntoConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()
	at := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)

	first := newBooking(nil, at, intPtr(5))
	second := newBooking(nil, at, intPtr(6))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	second.TableNumber = intPtr(5)
	assert.ErrorIs(t, repo.Update(ctx, second), ErrDuplicate)

	second.TableNumber = intPtr(7)
	second.NoOfGuests = 8
	require.NoError(t, repo.Update(ctx, second))
	got, err := repo.FindByID(ctx, Everything, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.NoOfGuests)
	assert.Equal(t, 7, *got.TableNumber)
}
