package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/config"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	dbtypes "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/types"
	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
)

const pageContentCacheScope = "page_content"

type cmsRepository interface {
	GetPageContent(ctx context.Context, key string) (*models.PageContent, error)
	UpsertPageContent(ctx context.Context, key string, content dbtypes.JSONDocument) (*models.PageContent, error)
	ListPageContentKeys(ctx context.Context) ([]string, error)

	CreateLegalPage(ctx context.Context, page *models.LegalPage) (*models.LegalPage, error)
	UpdateLegalPage(ctx context.Context, page *models.LegalPage) (*models.LegalPage, error)
	DeleteLegalPage(ctx context.Context, id uuid.UUID) error
	FindLegalPageByID(ctx context.Context, id uuid.UUID) (*models.LegalPage, error)
	FindLegalPageBySlug(ctx context.Context, slug string) (*models.LegalPage, error)
	ListLegalPages(ctx context.Context) ([]models.LegalPage, error)
}

type cacheStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CacheKey(scope, id string) string
}

// LegalPageDTO is the legal page payload returned to clients.
type LegalPageDTO struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	BodyHTML  string    `json:"body_html"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateLegalPageInput is the admin payload for a new legal page.
type CreateLegalPageInput struct {
	Slug     string `json:"slug" validate:"required"`
	Title    string `json:"title" validate:"required"`
	BodyHTML string `json:"body_html" validate:"required"`
}

// UpdateLegalPageInput is the admin payload for a partial legal page update.
type UpdateLegalPageInput struct {
	Slug     *string `json:"slug,omitempty"`
	Title    *string `json:"title,omitempty"`
	BodyHTML *string `json:"body_html,omitempty"`
}

// SetPageFieldInput addresses one field inside a CMS document.
type SetPageFieldInput struct {
	Path  string `json:"path" validate:"required"`
	Value any    `json:"value"`
}

// Service exposes CMS copy blocks and legal pages.
type Service interface {
	GetPage(ctx context.Context, key string) (map[string]any, error)
	UpdatePage(ctx context.Context, key string, content map[string]any) (map[string]any, error)
	SetPageField(ctx context.Context, key string, input SetPageFieldInput) (map[string]any, error)
	ListPageKeys(ctx context.Context) ([]string, error)

	GetLegalPage(ctx context.Context, slug string) (*LegalPageDTO, error)
	ListLegalPages(ctx context.Context) ([]LegalPageDTO, error)
	CreateLegalPage(ctx context.Context, input CreateLegalPageInput) (*LegalPageDTO, error)
	UpdateLegalPage(ctx context.Context, id uuid.UUID, input UpdateLegalPageInput) (*LegalPageDTO, error)
	DeleteLegalPage(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  cmsRepository
	cache cacheStore
	cfg   config.CMSConfig
}

// NewService constructs a CMS service. The cache is optional; without it every
// read goes to Postgres.
func NewService(repo cmsRepository, cache cacheStore, cfg config.CMSConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cms repository is required")
	}
	return &service{repo: repo, cache: cache, cfg: cfg}, nil
}

// GetPage returns the stored document, or an empty object for a key that has
// never been written so the storefront can render its defaults.
func (s *service) GetPage(ctx context.Context, key string) (map[string]any, error) {
	key, err := normalizePageKey(key)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cacheGet(ctx, key); ok {
		return cached, nil
	}

	row, err := s.repo.GetPageContent(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return map[string]any{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load page content")
	}

	doc := row.Content.Clone()
	if doc == nil {
		doc = map[string]any{}
	}
	s.cacheSet(ctx, key, doc)
	return doc, nil
}

func (s *service) UpdatePage(ctx context.Context, key string, content map[string]any) (map[string]any, error) {
	key, err := normalizePageKey(key)
	if err != nil {
		return nil, err
	}
	if content == nil {
		content = map[string]any{}
	}

	row, err := s.repo.UpsertPageContent(ctx, key, dbtypes.JSONDocument(content))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store page content")
	}

	s.cacheInvalidate(ctx, key)
	return row.Content.Clone(), nil
}

func (s *service) SetPageField(ctx context.Context, key string, input SetPageFieldInput) (map[string]any, error) {
	key, err := normalizePageKey(key)
	if err != nil {
		return nil, err
	}

	doc := map[string]any{}
	row, err := s.repo.GetPageContent(ctx, key)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load page content")
	}
	if err == nil {
		doc = row.Content.Clone()
		if doc == nil {
			doc = map[string]any{}
		}
	}

	if err := SetPath(doc, input.Path, input.Value); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpsertPageContent(ctx, key, dbtypes.JSONDocument(doc))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store page content")
	}

	s.cacheInvalidate(ctx, key)
	return updated.Content.Clone(), nil
}

func (s *service) ListPageKeys(ctx context.Context) ([]string, error) {
	keys, err := s.repo.ListPageContentKeys(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list page keys")
	}
	return keys, nil
}

func (s *service) GetLegalPage(ctx context.Context, slug string) (*LegalPageDTO, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	}
	page, err := s.repo.FindLegalPageBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "legal page not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load legal page")
	}
	return legalPageFromModel(page), nil
}

func (s *service) ListLegalPages(ctx context.Context) ([]LegalPageDTO, error) {
	rows, err := s.repo.ListLegalPages(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list legal pages")
	}
	out := make([]LegalPageDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *legalPageFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) CreateLegalPage(ctx context.Context, input CreateLegalPageInput) (*LegalPageDTO, error) {
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	title := strings.TrimSpace(input.Title)
	if slug == "" || title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug and title are required")
	}

	page, err := s.repo.CreateLegalPage(ctx, &models.LegalPage{
		Slug:     slug,
		Title:    title,
		BodyHTML: input.BodyHTML,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "slug already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create legal page")
	}
	return legalPageFromModel(page), nil
}

func (s *service) UpdateLegalPage(ctx context.Context, id uuid.UUID, input UpdateLegalPageInput) (*LegalPageDTO, error) {
	page, err := s.repo.FindLegalPageByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "legal page not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load legal page")
	}

	if input.Slug != nil {
		slug := strings.ToLower(strings.TrimSpace(*input.Slug))
		if slug == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
		}
		page.Slug = slug
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
		}
		page.Title = title
	}
	if input.BodyHTML != nil {
		page.BodyHTML = *input.BodyHTML
	}

	updated, err := s.repo.UpdateLegalPage(ctx, page)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "slug already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update legal page")
	}
	return legalPageFromModel(updated), nil
}

func (s *service) DeleteLegalPage(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindLegalPageByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "legal page not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load legal page")
	}
	if err := s.repo.DeleteLegalPage(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete legal page")
	}
	return nil
}

func (s *service) cacheGet(ctx context.Context, key string) (map[string]any, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, s.cache.CacheKey(pageContentCacheScope, key))
	if err != nil {
		// a miss and a cache failure both fall through to Postgres
		return nil, false
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, false
	}
	return doc, true
}

func (s *service) cacheSet(ctx context.Context, key string, doc map[string]any) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, s.cache.CacheKey(pageContentCacheScope, key), payload, s.cfg.PageContentCacheTTL)
}

func (s *service) cacheInvalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, s.cache.CacheKey(pageContentCacheScope, key))
}

func legalPageFromModel(p *models.LegalPage) *LegalPageDTO {
	if p == nil {
		return nil
	}
	return &LegalPageDTO{
		ID:        p.ID,
		Slug:      p.Slug,
		Title:     p.Title,
		BodyHTML:  p.BodyHTML,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func normalizePageKey(key string) (string, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "page key is required")
	}
	return key, nil
}
