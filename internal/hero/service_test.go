package hero

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/config"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
)

type fakeHeroRepo struct {
	banners  []models.HeroBanner
	settings *models.HeroSettings
}

func (f *fakeHeroRepo) CreateBanner(_ context.Context, banner *models.HeroBanner) (*models.HeroBanner, error) {
	if banner.ID == uuid.Nil {
		banner.ID = uuid.New()
	}
	f.banners = append(f.banners, *banner)
	return banner, nil
}

func (f *fakeHeroRepo) UpdateBanner(_ context.Context, banner *models.HeroBanner) (*models.HeroBanner, error) {
	for i := range f.banners {
		if f.banners[i].ID == banner.ID {
			f.banners[i] = *banner
			return banner, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeHeroRepo) DeleteBanner(_ context.Context, id uuid.UUID) error {
	for i := range f.banners {
		if f.banners[i].ID == id {
			f.banners = append(f.banners[:i], f.banners[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeHeroRepo) FindBannerByID(_ context.Context, id uuid.UUID) (*models.HeroBanner, error) {
	for i := range f.banners {
		if f.banners[i].ID == id {
			banner := f.banners[i]
			return &banner, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeHeroRepo) ListBanners(_ context.Context) ([]models.HeroBanner, error) {
	return append([]models.HeroBanner(nil), f.banners...), nil
}

func (f *fakeHeroRepo) ListActiveBanners(_ context.Context) ([]models.HeroBanner, error) {
	var active []models.HeroBanner
	for _, b := range f.banners {
		if b.IsActive {
			active = append(active, b)
		}
	}
	return active, nil
}

func (f *fakeHeroRepo) ReorderBanners(_ context.Context, ids []uuid.UUID) error {
	for position, id := range ids {
		found := false
		for i := range f.banners {
			if f.banners[i].ID == id {
				f.banners[i].Position = position
				found = true
				break
			}
		}
		if !found {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

func (f *fakeHeroRepo) GetSettings(_ context.Context) (*models.HeroSettings, error) {
	if f.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	settings := *f.settings
	return &settings, nil
}

func (f *fakeHeroRepo) SaveSettings(_ context.Context, settings *models.HeroSettings) (*models.HeroSettings, error) {
	settings.ID = models.HeroSettingsID
	copied := *settings
	f.settings = &copied
	return settings, nil
}

func newHeroService(t *testing.T, repo *fakeHeroRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repository: repo,
		Config: config.HeroConfig{
			ResumeDebounce:  400 * time.Millisecond,
			DefaultInterval: 5 * time.Second,
		},
	})
	require.NoError(t, err)
	return svc
}

func TestCarouselReturnsActiveBannersWithResolvedStyles(t *testing.T) {
	repo := &fakeHeroRepo{
		banners: []models.HeroBanner{
			{ID: uuid.New(), MediaURL: "https://cdn.example.com/a.jpg", MediaKind: enums.HeroMediaImage, IsActive: true},
			{ID: uuid.New(), MediaURL: "https://cdn.example.com/b.jpg", MediaKind: enums.HeroMediaImage, IsActive: false},
		},
		settings: &models.HeroSettings{
			ID:            models.HeroSettingsID,
			Autoplay:      true,
			IntervalMS:    7000,
			PauseOnHover:  true,
			VerticalAlign: vAlign(enums.VerticalAlignBottom),
		},
	}
	svc := newHeroService(t, repo)

	carousel, err := svc.Carousel(context.Background())
	require.NoError(t, err)
	require.Len(t, carousel.Banners, 1)
	assert.Equal(t, enums.VerticalAlignBottom, carousel.Banners[0].Style.VerticalAlign)
	assert.Equal(t, 7000, carousel.Settings.IntervalMS)
}

func TestCarouselResolvesPlayback(t *testing.T) {
	settings := &models.HeroSettings{
		ID:           models.HeroSettingsID,
		Autoplay:     true,
		IntervalMS:   7000,
		PauseOnHover: true,
	}

	t.Run("multi-slide carousel autoplays", func(t *testing.T) {
		repo := &fakeHeroRepo{
			banners: []models.HeroBanner{
				{ID: uuid.New(), MediaURL: "https://cdn.example.com/a.jpg", MediaKind: enums.HeroMediaImage, IsActive: true},
				{ID: uuid.New(), MediaURL: "https://cdn.example.com/b.jpg", MediaKind: enums.HeroMediaImage, IsActive: true},
			},
			settings: settings,
		}
		svc := newHeroService(t, repo)

		carousel, err := svc.Carousel(context.Background())
		require.NoError(t, err)
		assert.Equal(t, PlaybackDTO{
			Autoplay:         true,
			IntervalMS:       7000,
			PauseOnHover:     true,
			ResumeDebounceMS: 400,
		}, carousel.Playback)
	})

	t.Run("single slide disables autoplay", func(t *testing.T) {
		repo := &fakeHeroRepo{
			banners: []models.HeroBanner{
				{ID: uuid.New(), MediaURL: "https://cdn.example.com/a.jpg", MediaKind: enums.HeroMediaImage, IsActive: true},
			},
			settings: settings,
		}
		svc := newHeroService(t, repo)

		carousel, err := svc.Carousel(context.Background())
		require.NoError(t, err)
		assert.False(t, carousel.Playback.Autoplay)
		assert.Equal(t, 7000, carousel.Playback.IntervalMS)
	})
}

func TestCarouselWithoutSettingsRowFallsBackToDefaults(t *testing.T) {
	repo := &fakeHeroRepo{
		banners: []models.HeroBanner{
			{ID: uuid.New(), MediaURL: "https://cdn.example.com/a.jpg", MediaKind: enums.HeroMediaImage, IsActive: true},
		},
	}
	svc := newHeroService(t, repo)

	carousel, err := svc.Carousel(context.Background())
	require.NoError(t, err)
	assert.True(t, carousel.Settings.Autoplay)
	assert.Equal(t, 5000, carousel.Settings.IntervalMS)
	assert.Equal(t, enums.VerticalAlignCenter, carousel.Banners[0].Style.VerticalAlign)
}

func TestCreateBannerAppendsAtEnd(t *testing.T) {
	repo := &fakeHeroRepo{
		banners: []models.HeroBanner{
			{ID: uuid.New(), MediaURL: "https://cdn.example.com/a.jpg", MediaKind: enums.HeroMediaImage, IsActive: true},
		},
	}
	svc := newHeroService(t, repo)

	created, err := svc.CreateBanner(context.Background(), CreateBannerInput{
		MediaURL:  "https://cdn.example.com/b.jpg",
		MediaKind: enums.HeroMediaImage,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Position)
	assert.True(t, created.IsActive)
}

func TestCreateBannerValidation(t *testing.T) {
	svc := newHeroService(t, &fakeHeroRepo{})

	cases := []struct {
		name  string
		input CreateBannerInput
	}{
		{
			name:  "missing media url",
			input: CreateBannerInput{MediaKind: enums.HeroMediaImage},
		},
		{
			name:  "bad media kind",
			input: CreateBannerInput{MediaURL: "https://cdn.example.com/a.jpg", MediaKind: "gif"},
		},
		{
			name: "advance on end for an image",
			input: CreateBannerInput{
				MediaURL:          "https://cdn.example.com/a.jpg",
				MediaKind:         enums.HeroMediaImage,
				AdvanceOnVideoEnd: true,
			},
		},
		{
			name: "bogus alignment",
			input: CreateBannerInput{
				MediaURL:     "https://cdn.example.com/a.jpg",
				MediaKind:    enums.HeroMediaImage,
				HeadingAlign: hAlign("diagonal"),
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBanner(context.Background(), tc.input)
			require.Error(t, err)
			require.NotNil(t, pkgerrors.As(err))
			assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
		})
	}
}

func TestUpdateBannerClearsOptionalFields(t *testing.T) {
	id := uuid.New()
	repo := &fakeHeroRepo{
		banners: []models.HeroBanner{
			{
				ID:            id,
				MediaURL:      "https://cdn.example.com/a.jpg",
				MediaKind:     enums.HeroMediaImage,
				Title:         strPtr("Summer sale"),
				VerticalAlign: vAlign(enums.VerticalAlignTop),
				IsActive:      true,
			},
		},
	}
	svc := newHeroService(t, repo)

	empty := ""
	clearAlign := enums.VerticalAlign("")
	updated, err := svc.UpdateBanner(context.Background(), id, UpdateBannerInput{
		Title:         &empty,
		VerticalAlign: &clearAlign,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Title)
	assert.Nil(t, updated.VerticalAlign)
	// cleared override falls back to the default
	assert.Equal(t, enums.VerticalAlignCenter, updated.Style.VerticalAlign)
}

func TestUpdateBannerUnknownID(t *testing.T) {
	svc := newHeroService(t, &fakeHeroRepo{})

	_, err := svc.UpdateBanner(context.Background(), uuid.New(), UpdateBannerInput{})
	require.Error(t, err)
	require.NotNil(t, pkgerrors.As(err))
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestReorderBanners(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	repo := &fakeHeroRepo{
		banners: []models.HeroBanner{
			{ID: first, MediaURL: "https://cdn.example.com/a.jpg", MediaKind: enums.HeroMediaImage, Position: 0},
			{ID: second, MediaURL: "https://cdn.example.com/b.jpg", MediaKind: enums.HeroMediaImage, Position: 1},
		},
	}
	svc := newHeroService(t, repo)

	require.NoError(t, svc.ReorderBanners(context.Background(), []uuid.UUID{second, first}))
	assert.Equal(t, 1, repo.banners[0].Position)
	assert.Equal(t, 0, repo.banners[1].Position)
}

func TestReorderBannersRejectsDuplicatesAndUnknownIDs(t *testing.T) {
	id := uuid.New()
	repo := &fakeHeroRepo{
		banners: []models.HeroBanner{
			{ID: id, MediaURL: "https://cdn.example.com/a.jpg", MediaKind: enums.HeroMediaImage},
		},
	}
	svc := newHeroService(t, repo)

	err := svc.ReorderBanners(context.Background(), []uuid.UUID{id, id})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	err = svc.ReorderBanners(context.Background(), []uuid.UUID{uuid.New()})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestUpdateSettingsCreatesSingletonOnFirstWrite(t *testing.T) {
	repo := &fakeHeroRepo{}
	svc := newHeroService(t, repo)

	interval := 8000
	autoplay := false
	updated, err := svc.UpdateSettings(context.Background(), UpdateSettingsInput{
		IntervalMS: &interval,
		Autoplay:   &autoplay,
	})
	require.NoError(t, err)
	assert.Equal(t, 8000, updated.IntervalMS)
	assert.False(t, updated.Autoplay)
	require.NotNil(t, repo.settings)
	assert.Equal(t, models.HeroSettingsID, repo.settings.ID)
}

func TestUpdateSettingsRejectsShortInterval(t *testing.T) {
	svc := newHeroService(t, &fakeHeroRepo{})

	interval := 200
	_, err := svc.UpdateSettings(context.Background(), UpdateSettingsInput{IntervalMS: &interval})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestDeleteBannerUnknownID(t *testing.T) {
	svc := newHeroService(t, &fakeHeroRepo{})

	err := svc.DeleteBanner(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
