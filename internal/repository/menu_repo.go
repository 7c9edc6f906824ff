package repository

import (
	"context"

	"github.com/Eursukkul/restaurant-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MenuRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	FindByID(ctx context.Context, id uint) (*models.MenuItem, error)
	FindAll(ctx context.Context, page Page) ([]models.MenuItem, int64, error)
	FindFeatured(ctx context.Context) ([]models.MenuItem, error)
	FindByCategory(ctx context.Context, category string) ([]models.MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, id uint) error
	UpsertByName(ctx context.Context, item *models.MenuItem) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

const menuOrder = "category ASC, name ASC"

func (r *menuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	return translate(r.db.WithContext(ctx).Create(item).Error)
}

func (r *menuRepository) FindByID(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) FindAll(ctx context.Context, page Page) ([]models.MenuItem, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.MenuItem{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.MenuItem
	if err := r.db.WithContext(ctx).Scopes(page.apply).Order(menuOrder).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindFeatured lists items that are both featured and available.
func (r *menuRepository) FindFeatured(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).
		Where("featured = ? AND available = ?", true, true).
		Order(menuOrder).
		Find(&items).Error
	return items, err
}

// FindByCategory matches the category case-insensitively and skips unavailable items.
func (r *menuRepository) FindByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).
		Where("LOWER(category) = LOWER(?) AND available = ?", category, true).
		Order(menuOrder).
		Find(&items).Error
	return items, err
}

func (r *menuRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *menuRepository) Update(ctx context.Context, item *models.MenuItem) error {
	return translate(r.db.WithContext(ctx).Save(item).Error)
}

func (r *menuRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpsertByName inserts the item or overwrites the catalog fields of the
// existing item with the same name.
func (r *menuRepository) UpsertByName(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "price", "category", "available", "featured", "updated_at"}),
	}).Create(item).Error
}
