package cms

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	dbtypes "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/types"
)

// Repository handles page content and legal page persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to CMS operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetPageContent loads the CMS document stored under the key.
func (r *Repository) GetPageContent(ctx context.Context, key string) (*models.PageContent, error) {
	var row models.PageContent
	if err := r.db.WithContext(ctx).First(&row, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// UpsertPageContent stores the CMS document under the key, replacing any
// previous content.
func (r *Repository) UpsertPageContent(ctx context.Context, key string, content dbtypes.JSONDocument) (*models.PageContent, error) {
	row := models.PageContent{Key: key, Content: content}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListPageContentKeys returns all stored page keys.
func (r *Repository) ListPageContentKeys(ctx context.Context) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).
		Model(&models.PageContent{}).
		Order("key ASC").
		Pluck("key", &keys).Error
	return keys, err
}

// CreateLegalPage inserts a new legal page.
func (r *Repository) CreateLegalPage(ctx context.Context, page *models.LegalPage) (*models.LegalPage, error) {
	if err := r.db.WithContext(ctx).Create(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// UpdateLegalPage saves the provided legal page.
func (r *Repository) UpdateLegalPage(ctx context.Context, page *models.LegalPage) (*models.LegalPage, error) {
	if err := r.db.WithContext(ctx).Save(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// DeleteLegalPage removes a legal page by ID.
func (r *Repository) DeleteLegalPage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.LegalPage{}).Error
}

// FindLegalPageByID loads a legal page by its UUID.
func (r *Repository) FindLegalPageByID(ctx context.Context, id uuid.UUID) (*models.LegalPage, error) {
	var page models.LegalPage
	if err := r.db.WithContext(ctx).First(&page, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// FindLegalPageBySlug loads a legal page by slug.
func (r *Repository) FindLegalPageBySlug(ctx context.Context, slug string) (*models.LegalPage, error) {
	var page models.LegalPage
	if err := r.db.WithContext(ctx).First(&page, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// ListLegalPages returns all legal pages ordered by title.
func (r *Repository) ListLegalPages(ctx context.Context) ([]models.LegalPage, error) {
	var rows []models.LegalPage
	err := r.db.WithContext(ctx).Order("title ASC").Find(&rows).Error
	return rows, err
}
