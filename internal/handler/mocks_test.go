package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/Eursukkul/restaurant-service/internal/auth"
	"github.com/Eursukkul/restaurant-service/internal/jsonutil"
	"github.com/Eursukkul/restaurant-service/internal/middleware"
	"github.com/Eursukkul/restaurant-service/internal/models"
	"github.com/Eursukkul/restaurant-service/internal/repository"
	"github.com/Eursukkul/restaurant-service/internal/service"
	"github.com/Eursukkul/restaurant-service/internal/validation"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// --- Mock MenuService ---

type mockMenuService struct {
	createFn     func(ctx context.Context, in service.MenuInput) (*models.MenuItem, error)
	getFn        func(ctx context.Context, id uint) (*models.MenuItem, error)
	listFn       func(ctx context.Context, page repository.Page) ([]models.MenuItem, int64, error)
	featuredFn   func(ctx context.Context) ([]models.MenuItem, error)
	byCategoryFn func(ctx context.Context, category string) ([]models.MenuItem, error)
	categoriesFn func(ctx context.Context) ([]string, error)
	updateFn     func(ctx context.Context, id uint, in service.MenuInput) (*models.MenuItem, error)
	deleteFn     func(ctx context.Context, id uint) error
}

func (m *mockMenuService) CreateMenuItem(ctx context.Context, in service.MenuInput) (*models.MenuItem, error) {
	return m.createFn(ctx, in)
}
func (m *mockMenuService) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	return m.getFn(ctx, id)
}
func (m *mockMenuService) ListMenuItems(ctx context.Context, page repository.Page) ([]models.MenuItem, int64, error) {
	return m.listFn(ctx, page)
}
func (m *mockMenuService) FeaturedItems(ctx context.Context) ([]models.MenuItem, error) {
	return m.featuredFn(ctx)
}
func (m *mockMenuService) ItemsByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	return m.byCategoryFn(ctx, category)
}
func (m *mockMenuService) Categories(ctx context.Context) ([]string, error) {
	return m.categoriesFn(ctx)
}
func (m *mockMenuService) UpdateMenuItem(ctx context.Context, id uint, in service.MenuInput) (*models.MenuItem, error) {
	return m.updateFn(ctx, id, in)
}
func (m *mockMenuService) DeleteMenuItem(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockMenuService) ImportMenuItem(ctx context.Context, in service.MenuInput) error {
	return nil
}

// --- Mock BookingService ---

type mockBookingService struct {
	createFn func(ctx context.Context, caller auth.Identity, in service.BookingInput) (*models.Booking, error)
	getFn    func(ctx context.Context, caller auth.Identity, id uint) (*models.Booking, error)
	listFn   func(ctx context.Context, caller auth.Identity, page repository.Page) ([]models.Booking, int64, error)
	updateFn func(ctx context.Context, caller auth.Identity, id uint, in service.BookingInput, partial bool) (*models.Booking, error)
	deleteFn func(ctx context.Context, caller auth.Identity, id uint) error
}

func (m *mockBookingService) CreateBooking(ctx context.Context, caller auth.Identity, in service.BookingInput) (*models.Booking, error) {
	return m.createFn(ctx, caller, in)
}
func (m *mockBookingService) GetBooking(ctx context.Context, caller auth.Identity, id uint) (*models.Booking, error) {
	return m.getFn(ctx, caller, id)
}
func (m *mockBookingService) ListBookings(ctx context.Context, caller auth.Identity, page repository.Page) ([]models.Booking, int64, error) {
	return m.listFn(ctx, caller, page)
}
func (m *mockBookingService) UpdateBooking(ctx context.Context, caller auth.Identity, id uint, in service.BookingInput, partial bool) (*models.Booking, error) {
	return m.updateFn(ctx, caller, id, in, partial)
}
func (m *mockBookingService) DeleteBooking(ctx context.Context, caller auth.Identity, id uint) error {
	return m.deleteFn(ctx, caller, id)
}

// --- Mock AuthService ---

type mockAuthService struct {
	loginFn   func(ctx context.Context, username, password string) (auth.TokenPair, error)
	refreshFn func(ctx context.Context, refresh string) (string, error)
	profileFn func(ctx context.Context, userID uint) (*models.User, error)
	// tokens maps bearer tokens to identities for Authenticate.
	tokens map[string]auth.Identity
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (auth.TokenPair, error) {
	return m.loginFn(ctx, username, password)
}
func (m *mockAuthService) Refresh(ctx context.Context, refresh string) (string, error) {
	return m.refreshFn(ctx, refresh)
}
func (m *mockAuthService) Authenticate(ctx context.Context, token string) (auth.Identity, error) {
	id, ok := m.tokens[token]
	if !ok {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	return id, nil
}
func (m *mockAuthService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	return m.profileFn(ctx, userID)
}
func (m *mockAuthService) CreateUser(ctx context.Context, in service.UserInput) (*models.User, error) {
	return nil, nil
}

// --- Test server ---

var (
	alice   = auth.Identity{UserID: 1, Username: "alice"}
	bob     = auth.Identity{UserID: 2, Username: "bob"}
	manager = auth.Identity{UserID: 9, Username: "manager", Staff: true}
)

func testTokens() map[string]auth.Identity {
	return map[string]auth.Identity{
		"alice-token":   alice,
		"bob-token":     bob,
		"manager-token": manager,
	}
}

// newTestServer wires the handlers the way main does.
func newTestServer(menu service.MenuService, bookings service.BookingService, authSvc *mockAuthService) *echo.Echo {
	if authSvc == nil {
		authSvc = &mockAuthService{}
	}
	if authSvc.tokens == nil {
		authSvc.tokens = testTokens()
	}

	e := echo.New()
	e.JSONSerializer = jsonutil.Serializer{}
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Pre(echomw.AddTrailingSlash())
	e.Use(middleware.Authenticate(authSvc))

	RegisterRootRoutes(e)
	NewAuthHandler(authSvc).RegisterRoutes(e)
	if menu != nil {
		NewMenuHandler(menu, 2).RegisterRoutes(e)
	}
	if bookings != nil {
		NewBookingHandler(bookings, 2).RegisterRoutes(e)
	}
	return e
}

func doRequest(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
