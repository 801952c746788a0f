package hero

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/config"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
)

type heroRepository interface {
	CreateBanner(ctx context.Context, banner *models.HeroBanner) (*models.HeroBanner, error)
	UpdateBanner(ctx context.Context, banner *models.HeroBanner) (*models.HeroBanner, error)
	DeleteBanner(ctx context.Context, id uuid.UUID) error
	FindBannerByID(ctx context.Context, id uuid.UUID) (*models.HeroBanner, error)
	ListBanners(ctx context.Context) ([]models.HeroBanner, error)
	ListActiveBanners(ctx context.Context) ([]models.HeroBanner, error)
	ReorderBanners(ctx context.Context, ids []uuid.UUID) error
	GetSettings(ctx context.Context) (*models.HeroSettings, error)
	SaveSettings(ctx context.Context, settings *models.HeroSettings) (*models.HeroSettings, error)
}

// Service exposes the hero carousel to the storefront and the admin panel.
type Service interface {
	// Carousel returns the active banners with resolved styles plus the
	// global settings, ready for the storefront to render.
	Carousel(ctx context.Context) (*CarouselDTO, error)

	ListBanners(ctx context.Context) ([]BannerDTO, error)
	GetBanner(ctx context.Context, id uuid.UUID) (*BannerDTO, error)
	CreateBanner(ctx context.Context, input CreateBannerInput) (*BannerDTO, error)
	UpdateBanner(ctx context.Context, id uuid.UUID, input UpdateBannerInput) (*BannerDTO, error)
	DeleteBanner(ctx context.Context, id uuid.UUID) error
	ReorderBanners(ctx context.Context, ids []uuid.UUID) error

	GetSettings(ctx context.Context) (*SettingsDTO, error)
	UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*SettingsDTO, error)
}

type service struct {
	repo heroRepository
	cfg  config.HeroConfig
}

// ServiceParams carries the dependencies for NewService.
type ServiceParams struct {
	Repository heroRepository
	Config     config.HeroConfig
}

// NewService builds the hero service after validating its dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repository == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "hero repository is required")
	}
	return &service{repo: params.Repository, cfg: params.Config}, nil
}

func (s *service) Carousel(ctx context.Context) (*CarouselDTO, error) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	banners, err := s.repo.ListActiveBanners(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list hero banners")
	}

	out := make([]BannerDTO, 0, len(banners))
	slides := make([]Slide, 0, len(banners))
	for i := range banners {
		out = append(out, *bannerFromModel(&banners[i], settings))
		slides = append(slides, Slide{
			MediaKind:         banners[i].MediaKind,
			AdvanceOnVideoEnd: banners[i].AdvanceOnVideoEnd,
		})
	}

	controller := NewController(s.cfg, settings, slides)
	return &CarouselDTO{
		Banners:  out,
		Settings: settingsFromModel(settings),
		Playback: controller.Playback(),
	}, nil
}

func (s *service) ListBanners(ctx context.Context) ([]BannerDTO, error) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	banners, err := s.repo.ListBanners(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list hero banners")
	}

	out := make([]BannerDTO, 0, len(banners))
	for i := range banners {
		out = append(out, *bannerFromModel(&banners[i], settings))
	}
	return out, nil
}

func (s *service) GetBanner(ctx context.Context, id uuid.UUID) (*BannerDTO, error) {
	banner, err := s.findBanner(ctx, id)
	if err != nil {
		return nil, err
	}
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	return bannerFromModel(banner, settings), nil
}

func (s *service) CreateBanner(ctx context.Context, input CreateBannerInput) (*BannerDTO, error) {
	input.MediaURL = strings.TrimSpace(input.MediaURL)
	if input.MediaURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "media url is required")
	}
	if !input.MediaKind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid media kind")
	}
	if err := validateAlignments(input.VerticalAlign, input.HorizontalAlign, input.HeadingAlign, input.SubheadingAlign, input.ButtonAlign); err != nil {
		return nil, err
	}
	if input.AdvanceOnVideoEnd && input.MediaKind != enums.HeroMediaVideo {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "advance on video end applies to video banners only")
	}

	banner := &models.HeroBanner{
		MediaURL:          input.MediaURL,
		MediaKind:         input.MediaKind,
		Title:             input.Title,
		Subtitle:          input.Subtitle,
		ButtonLabel:       input.ButtonLabel,
		ButtonURL:         input.ButtonURL,
		TextColor:         input.TextColor,
		HeadingSize:       input.HeadingSize,
		VerticalAlign:     input.VerticalAlign,
		HorizontalAlign:   input.HorizontalAlign,
		HeadingAlign:      input.HeadingAlign,
		SubheadingAlign:   input.SubheadingAlign,
		ButtonAlign:       input.ButtonAlign,
		Animation:         input.Animation,
		AdvanceOnVideoEnd: input.AdvanceOnVideoEnd,
		IsActive:          true,
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	if input.Position != nil {
		banner.Position = *input.Position
	} else {
		existing, err := s.repo.ListBanners(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list hero banners")
		}
		banner.Position = len(existing)
	}

	created, err := s.repo.CreateBanner(ctx, banner)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to create hero banner")
	}

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	return bannerFromModel(created, settings), nil
}

func (s *service) UpdateBanner(ctx context.Context, id uuid.UUID, input UpdateBannerInput) (*BannerDTO, error) {
	banner, err := s.findBanner(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateAlignments(input.VerticalAlign, input.HorizontalAlign, input.HeadingAlign, input.SubheadingAlign, input.ButtonAlign); err != nil {
		return nil, err
	}

	if input.MediaURL != nil {
		trimmed := strings.TrimSpace(*input.MediaURL)
		if trimmed == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "media url is required")
		}
		banner.MediaURL = trimmed
	}
	if input.MediaKind != nil {
		if !input.MediaKind.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid media kind")
		}
		banner.MediaKind = *input.MediaKind
	}
	if input.Title != nil {
		banner.Title = clearableString(input.Title)
	}
	if input.Subtitle != nil {
		banner.Subtitle = clearableString(input.Subtitle)
	}
	if input.ButtonLabel != nil {
		banner.ButtonLabel = clearableString(input.ButtonLabel)
	}
	if input.ButtonURL != nil {
		banner.ButtonURL = clearableString(input.ButtonURL)
	}
	if input.TextColor != nil {
		banner.TextColor = clearableString(input.TextColor)
	}
	if input.HeadingSize != nil {
		banner.HeadingSize = clearableString(input.HeadingSize)
	}
	if input.VerticalAlign != nil {
		banner.VerticalAlign = clearableVertical(input.VerticalAlign)
	}
	if input.HorizontalAlign != nil {
		banner.HorizontalAlign = clearableHorizontal(input.HorizontalAlign)
	}
	if input.HeadingAlign != nil {
		banner.HeadingAlign = clearableHorizontal(input.HeadingAlign)
	}
	if input.SubheadingAlign != nil {
		banner.SubheadingAlign = clearableHorizontal(input.SubheadingAlign)
	}
	if input.ButtonAlign != nil {
		banner.ButtonAlign = clearableHorizontal(input.ButtonAlign)
	}
	if input.Animation != nil {
		banner.Animation = clearableString(input.Animation)
	}
	if input.AdvanceOnVideoEnd != nil {
		banner.AdvanceOnVideoEnd = *input.AdvanceOnVideoEnd
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	if input.Position != nil {
		banner.Position = *input.Position
	}
	if banner.AdvanceOnVideoEnd && banner.MediaKind != enums.HeroMediaVideo {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "advance on video end applies to video banners only")
	}

	updated, err := s.repo.UpdateBanner(ctx, banner)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to update hero banner")
	}

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	return bannerFromModel(updated, settings), nil
}

func (s *service) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findBanner(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteBanner(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to delete hero banner")
	}
	return nil
}

func (s *service) ReorderBanners(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "banner order is required")
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return pkgerrors.New(pkgerrors.CodeValidation, "banner order contains duplicates")
		}
		seen[id] = struct{}{}
	}

	if err := s.repo.ReorderBanners(ctx, ids); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "banner not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to reorder hero banners")
	}
	return nil
}

func (s *service) GetSettings(ctx context.Context) (*SettingsDTO, error) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	dto := settingsFromModel(settings)
	return &dto, nil
}

func (s *service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*SettingsDTO, error) {
	if input.IntervalMS != nil && *input.IntervalMS < 1000 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "interval must be at least 1000ms")
	}
	if err := validateAlignments(input.VerticalAlign, input.HorizontalAlign, input.HeadingAlign, input.SubheadingAlign, input.ButtonAlign); err != nil {
		return nil, err
	}

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &models.HeroSettings{
			ID:           models.HeroSettingsID,
			Autoplay:     true,
			IntervalMS:   5000,
			PauseOnHover: true,
			ShowArrows:   true,
			ShowDots:     true,
		}
	}

	if input.Autoplay != nil {
		settings.Autoplay = *input.Autoplay
	}
	if input.IntervalMS != nil {
		settings.IntervalMS = *input.IntervalMS
	}
	if input.PauseOnHover != nil {
		settings.PauseOnHover = *input.PauseOnHover
	}
	if input.ShowArrows != nil {
		settings.ShowArrows = *input.ShowArrows
	}
	if input.ShowDots != nil {
		settings.ShowDots = *input.ShowDots
	}
	if input.VerticalAlign != nil {
		settings.VerticalAlign = clearableVertical(input.VerticalAlign)
	}
	if input.HorizontalAlign != nil {
		settings.HorizontalAlign = clearableHorizontal(input.HorizontalAlign)
	}
	if input.HeadingAlign != nil {
		settings.HeadingAlign = clearableHorizontal(input.HeadingAlign)
	}
	if input.SubheadingAlign != nil {
		settings.SubheadingAlign = clearableHorizontal(input.SubheadingAlign)
	}
	if input.ButtonAlign != nil {
		settings.ButtonAlign = clearableHorizontal(input.ButtonAlign)
	}

	saved, err := s.repo.SaveSettings(ctx, settings)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to save hero settings")
	}
	dto := settingsFromModel(saved)
	return &dto, nil
}

func (s *service) findBanner(ctx context.Context, id uuid.UUID) (*models.HeroBanner, error) {
	banner, err := s.repo.FindBannerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "banner not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load hero banner")
	}
	return banner, nil
}

// loadSettings treats a missing settings row as nil so resolution falls back
// to the hardcoded defaults.
func (s *service) loadSettings(ctx context.Context) (*models.HeroSettings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load hero settings")
	}
	return settings, nil
}

// validateAlignments rejects any provided, non-empty alignment outside the
// allowed value set. Empty strings are clears, handled by the clearable helpers.
func validateAlignments(vertical *enums.VerticalAlign, horizontals ...*enums.HorizontalAlign) error {
	if vertical != nil && *vertical != "" && !vertical.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid vertical alignment")
	}
	for _, h := range horizontals {
		if h != nil && *h != "" && !h.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, "invalid horizontal alignment")
		}
	}
	return nil
}

func clearableString(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}

func clearableVertical(v *enums.VerticalAlign) *enums.VerticalAlign {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

func clearableHorizontal(v *enums.HorizontalAlign) *enums.HorizontalAlign {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
