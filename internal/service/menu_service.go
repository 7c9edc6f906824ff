package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Eursukkul/restaurant-service/internal/models"
	"github.com/Eursukkul/restaurant-service/internal/repository"
	"github.com/Eursukkul/restaurant-service/internal/validation"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Routing keys for catalog change notifications.
const (
	MenuCreatedKey = "menu.created"
	MenuUpdatedKey = "menu.updated"
	MenuDeletedKey = "menu.deleted"
)

// Publisher delivers catalog change notifications to the message broker.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

type MenuInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Available   bool
	Featured    bool
}

type MenuService interface {
	CreateMenuItem(ctx context.Context, in MenuInput) (*models.MenuItem, error)
	GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error)
	ListMenuItems(ctx context.Context, page repository.Page) ([]models.MenuItem, int64, error)
	FeaturedItems(ctx context.Context) ([]models.MenuItem, error)
	ItemsByCategory(ctx context.Context, category string) ([]models.MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	UpdateMenuItem(ctx context.Context, id uint, in MenuInput) (*models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id uint) error
	ImportMenuItem(ctx context.Context, in MenuInput) error
}

type menuService struct {
	repo      repository.MenuRepository
	publisher Publisher
}

// NewMenuService wires the catalog. publisher may be nil, in which case no
// change notifications are sent.
func NewMenuService(repo repository.MenuRepository, publisher Publisher) MenuService {
	return &menuService{repo: repo, publisher: publisher}
}

func (s *menuService) CreateMenuItem(ctx context.Context, in MenuInput) (*models.MenuItem, error) {
	if err := ValidatePrice(in.Price); err != nil {
		return nil, err
	}

	item := &models.MenuItem{}
	in.applyTo(item)
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, menuWriteError(err)
	}

	s.notify(MenuCreatedKey, item)
	return item, nil
}

func (s *menuService) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, menuLookupError(err)
	}
	return item, nil
}

func (s *menuService) ListMenuItems(ctx context.Context, page repository.Page) ([]models.MenuItem, int64, error) {
	return s.repo.FindAll(ctx, page)
}

func (s *menuService) FeaturedItems(ctx context.Context) ([]models.MenuItem, error) {
	return s.repo.FindFeatured(ctx)
}

func (s *menuService) ItemsByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	return s.repo.FindByCategory(ctx, category)
}

func (s *menuService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *menuService) UpdateMenuItem(ctx context.Context, id uint, in MenuInput) (*models.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, menuLookupError(err)
	}
	if err := ValidatePrice(in.Price); err != nil {
		return nil, err
	}

	in.applyTo(item)
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, menuWriteError(err)
	}

	s.notify(MenuUpdatedKey, item)
	return item, nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return menuLookupError(err)
	}
	s.notify(MenuDeletedKey, map[string]uint{"id": id})
	return nil
}

// ImportMenuItem upserts a catalog entry by name. It is the entry point for
// items arriving from the catalog feed rather than the HTTP API.
func (s *menuService) ImportMenuItem(ctx context.Context, in MenuInput) error {
	if in.Name == "" {
		return validation.Field("name", "This field is required.")
	}
	if err := ValidatePrice(in.Price); err != nil {
		return err
	}

	item := &models.MenuItem{}
	in.applyTo(item)
	if err := s.repo.UpsertByName(ctx, item); err != nil {
		return fmt.Errorf("upsert menu item %q: %w", in.Name, err)
	}
	return nil
}

func (s *menuService) notify(routingKey string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(routingKey, payload); err != nil {
		slog.Warn("menu change not published", slog.String("routing_key", routingKey), slog.Any("error", err))
	}
}

func (in MenuInput) applyTo(item *models.MenuItem) {
	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.Category = in.Category
	item.Available = in.Available
	item.Featured = in.Featured
}

func menuLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMenuItemNotFound
	}
	return err
}

func menuWriteError(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return validation.Field("name", msgNameTaken)
	}
	return fmt.Errorf("save menu item: %w", err)
}
