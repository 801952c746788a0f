package hero

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/config"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
)

func testHeroConfig() config.HeroConfig {
	return config.HeroConfig{
		ResumeDebounce:  400 * time.Millisecond,
		DefaultInterval: 5 * time.Second,
	}
}

func imageSlides(n int) []Slide {
	slides := make([]Slide, n)
	for i := range slides {
		slides[i] = Slide{MediaKind: enums.HeroMediaImage}
	}
	return slides
}

func defaultSettings() *models.HeroSettings {
	return &models.HeroSettings{
		ID:           models.HeroSettingsID,
		Autoplay:     true,
		IntervalMS:   5000,
		PauseOnHover: true,
	}
}

func TestControllerStaysIdleWithSingleSlide(t *testing.T) {
	c := NewController(testHeroConfig(), defaultSettings(), imageSlides(1))
	c.Start(time.Now())
	assert.Equal(t, StateIdle, c.State())
}

func TestControllerStaysIdleWhenAutoplayDisabled(t *testing.T) {
	settings := defaultSettings()
	settings.Autoplay = false
	c := NewController(testHeroConfig(), settings, imageSlides(3))
	c.Start(time.Now())
	assert.Equal(t, StateIdle, c.State())
}

func TestControllerAdvancesOnInterval(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewController(testHeroConfig(), defaultSettings(), imageSlides(3))
	c.Start(now)
	assert.Equal(t, StateAutoplaying, c.State())
	assert.Equal(t, 0, c.Current())

	c.Tick(now.Add(4 * time.Second))
	assert.Equal(t, 0, c.Current())

	c.Tick(now.Add(5 * time.Second))
	assert.Equal(t, 1, c.Current())

	c.Tick(now.Add(10 * time.Second))
	assert.Equal(t, 2, c.Current())

	// wraps around
	c.Tick(now.Add(15 * time.Second))
	assert.Equal(t, 0, c.Current())
}

func TestControllerHoverPauseAndResume(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewController(testHeroConfig(), defaultSettings(), imageSlides(3))
	c.Start(now)

	c.HoverEnter(now.Add(time.Second))
	assert.Equal(t, StatePausedByHover, c.State())

	// no advance while hovered
	c.Tick(now.Add(10 * time.Second))
	assert.Equal(t, 0, c.Current())

	c.HoverLeave(now.Add(11 * time.Second))
	assert.Equal(t, StateAutoplaying, c.State())

	// interval restarts from the hover leave
	c.Tick(now.Add(15 * time.Second))
	assert.Equal(t, 0, c.Current())
	c.Tick(now.Add(16 * time.Second))
	assert.Equal(t, 1, c.Current())
}

func TestControllerHoverIgnoredWhenDisabled(t *testing.T) {
	settings := defaultSettings()
	settings.PauseOnHover = false
	now := time.Unix(0, 0)
	c := NewController(testHeroConfig(), settings, imageSlides(3))
	c.Start(now)

	c.HoverEnter(now.Add(time.Second))
	assert.Equal(t, StateAutoplaying, c.State())
}

func TestControllerPointerPauseDebouncedResume(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewController(testHeroConfig(), defaultSettings(), imageSlides(3))
	c.Start(now)

	c.PointerDown(now.Add(time.Second))
	assert.Equal(t, StatePausedByPointer, c.State())

	c.PointerUp(now.Add(2 * time.Second))
	// still paused inside the debounce window
	c.Tick(now.Add(2*time.Second + 200*time.Millisecond))
	assert.Equal(t, StatePausedByPointer, c.State())

	// debounce elapsed
	c.Tick(now.Add(2*time.Second + 500*time.Millisecond))
	assert.Equal(t, StateAutoplaying, c.State())
}

func TestControllerPointerDownCancelsPendingResume(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewController(testHeroConfig(), defaultSettings(), imageSlides(3))
	c.Start(now)

	c.PointerDown(now.Add(time.Second))
	c.PointerUp(now.Add(2 * time.Second))
	c.PointerDown(now.Add(2*time.Second + 100*time.Millisecond))

	// the old deadline must not fire
	c.Tick(now.Add(3 * time.Second))
	assert.Equal(t, StatePausedByPointer, c.State())
}

func TestControllerVideoAdvanceOnEnd(t *testing.T) {
	now := time.Unix(0, 0)
	slides := []Slide{
		{MediaKind: enums.HeroMediaVideo, AdvanceOnVideoEnd: true},
		{MediaKind: enums.HeroMediaImage},
	}
	c := NewController(testHeroConfig(), defaultSettings(), slides)
	c.Start(now)

	// the timer never advances an advance-on-end video
	c.Tick(now.Add(time.Minute))
	assert.Equal(t, 0, c.Current())

	c.VideoEnded(now.Add(time.Minute))
	assert.Equal(t, 1, c.Current())
}

func TestControllerLoopingVideoIgnoresEndedEvent(t *testing.T) {
	now := time.Unix(0, 0)
	slides := []Slide{
		{MediaKind: enums.HeroMediaVideo, AdvanceOnVideoEnd: false},
		{MediaKind: enums.HeroMediaImage},
	}
	c := NewController(testHeroConfig(), defaultSettings(), slides)
	c.Start(now)

	c.VideoEnded(now.Add(time.Second))
	assert.Equal(t, 0, c.Current())

	// looping videos still advance on the interval
	c.Tick(now.Add(5 * time.Second))
	assert.Equal(t, 1, c.Current())
}

func TestControllerManualNavigation(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewController(testHeroConfig(), defaultSettings(), imageSlides(3))
	c.Start(now)

	assert.Equal(t, 1, c.Next(now.Add(time.Second)))
	assert.Equal(t, 0, c.Prev(now.Add(2*time.Second)))
	assert.Equal(t, 2, c.GoTo(now.Add(3*time.Second), 2))

	// manual navigation restarts the interval
	c.Tick(now.Add(7 * time.Second))
	assert.Equal(t, 2, c.Current())
	c.Tick(now.Add(8 * time.Second))
	assert.Equal(t, 0, c.Current())
}

func TestControllerStop(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewController(testHeroConfig(), defaultSettings(), imageSlides(3))
	c.Start(now)
	c.Stop()
	assert.Equal(t, StateIdle, c.State())

	c.Tick(now.Add(time.Minute))
	assert.Equal(t, 0, c.Current())
}
