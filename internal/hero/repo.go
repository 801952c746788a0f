package hero

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
)

// Repository handles hero banner and settings persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to hero operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBanner inserts a new banner row.
func (r *Repository) CreateBanner(ctx context.Context, banner *models.HeroBanner) (*models.HeroBanner, error) {
	if err := r.db.WithContext(ctx).Create(banner).Error; err != nil {
		return nil, err
	}
	return banner, nil
}

// UpdateBanner saves the provided banner.
func (r *Repository) UpdateBanner(ctx context.Context, banner *models.HeroBanner) (*models.HeroBanner, error) {
	if err := r.db.WithContext(ctx).Save(banner).Error; err != nil {
		return nil, err
	}
	return banner, nil
}

// DeleteBanner removes a banner by ID.
func (r *Repository) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.HeroBanner{}).Error
}

// FindBannerByID loads a banner by its UUID.
func (r *Repository) FindBannerByID(ctx context.Context, id uuid.UUID) (*models.HeroBanner, error) {
	var banner models.HeroBanner
	if err := r.db.WithContext(ctx).First(&banner, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

// ListBanners returns every banner in carousel order.
func (r *Repository) ListBanners(ctx context.Context) ([]models.HeroBanner, error) {
	var rows []models.HeroBanner
	err := r.db.WithContext(ctx).
		Order("position ASC").
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// ListActiveBanners returns the active banners in carousel order.
func (r *Repository) ListActiveBanners(ctx context.Context) ([]models.HeroBanner, error) {
	var rows []models.HeroBanner
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("position ASC").
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// ReorderBanners rewrites banner positions to match the provided ID order.
func (r *Repository) ReorderBanners(ctx context.Context, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			result := tx.Model(&models.HeroBanner{}).
				Where("id = ?", id).
				UpdateColumn("position", position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}

// GetSettings loads the singleton settings row.
func (r *Repository) GetSettings(ctx context.Context) (*models.HeroSettings, error) {
	var settings models.HeroSettings
	if err := r.db.WithContext(ctx).First(&settings, "id = ?", models.HeroSettingsID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings persists the singleton settings row.
func (r *Repository) SaveSettings(ctx context.Context, settings *models.HeroSettings) (*models.HeroSettings, error) {
	settings.ID = models.HeroSettingsID
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
