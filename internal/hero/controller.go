package hero

import (
	"sync"
	"time"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/config"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/db/models"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
)

// State names the carousel playback states.
type State string

const (
	StateIdle            State = "idle"
	StateAutoplaying     State = "autoplaying"
	StatePausedByPointer State = "paused_by_pointer"
	StatePausedByHover   State = "paused_by_hover"
)

// Slide is the per-banner playback behavior the controller needs.
type Slide struct {
	MediaKind         enums.HeroMediaKind
	AdvanceOnVideoEnd bool
}

// Controller drives carousel playback. All transitions are event-driven with
// caller-supplied timestamps, so behavior is deterministic under test. Callers
// pump Tick on their render cadence.
type Controller struct {
	mu sync.Mutex

	cfg          config.HeroConfig
	autoplay     bool
	pauseOnHover bool
	interval     time.Duration

	slides []Slide
	index  int

	state          State
	nextAdvanceAt  time.Time
	resumeDeadline time.Time
}

// NewController builds a controller from the stored settings and slide list.
func NewController(cfg config.HeroConfig, settings *models.HeroSettings, slides []Slide) *Controller {
	interval := cfg.DefaultInterval
	autoplay := true
	pauseOnHover := true
	if settings != nil {
		autoplay = settings.Autoplay
		pauseOnHover = settings.PauseOnHover
		if settings.IntervalMS > 0 {
			interval = time.Duration(settings.IntervalMS) * time.Millisecond
		}
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}

	return &Controller{
		cfg:          cfg,
		autoplay:     autoplay,
		pauseOnHover: pauseOnHover,
		interval:     interval,
		slides:       append([]Slide(nil), slides...),
		state:        StateIdle,
	}
}

// Playback reports the parameters the controller resolved from settings and
// the slide list. Autoplay here is effective: disabled settings or fewer than
// two slides turn it off.
func (c *Controller) Playback() PlaybackDTO {
	c.mu.Lock()
	defer c.mu.Unlock()
	return PlaybackDTO{
		Autoplay:         c.autoplay && len(c.slides) > 1,
		IntervalMS:       int(c.interval / time.Millisecond),
		PauseOnHover:     c.pauseOnHover,
		ResumeDebounceMS: int(c.cfg.ResumeDebounce / time.Millisecond),
	}
}

// State reports the current playback state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Current reports the active slide index.
func (c *Controller) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Start begins autoplay. Single-slide and autoplay-disabled carousels stay idle.
func (c *Controller) Start(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.autoplay || len(c.slides) < 2 {
		c.state = StateIdle
		return
	}
	c.state = StateAutoplaying
	c.scheduleNext(now)
}

// Stop halts playback entirely.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateIdle
	c.nextAdvanceAt = time.Time{}
	c.resumeDeadline = time.Time{}
}

// PointerDown pauses playback while the user is dragging or touching.
func (c *Controller) PointerDown(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateAutoplaying || c.state == StatePausedByHover {
		c.state = StatePausedByPointer
		c.resumeDeadline = time.Time{}
	}
}

// PointerUp arms the debounced resume. Playback restarts once the debounce
// window elapses without another pointer-down.
func (c *Controller) PointerUp(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StatePausedByPointer {
		return
	}
	c.resumeDeadline = now.Add(c.cfg.ResumeDebounce)
}

// HoverEnter pauses playback when the settings allow hover-pausing.
func (c *Controller) HoverEnter(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pauseOnHover && c.state == StateAutoplaying {
		c.state = StatePausedByHover
	}
}

// HoverLeave resumes playback after a hover pause.
func (c *Controller) HoverLeave(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StatePausedByHover {
		c.state = StateAutoplaying
		c.scheduleNext(now)
	}
}

// Next moves to the following slide manually and restarts the interval.
func (c *Controller) Next(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advance(now)
	return c.index
}

// Prev moves to the previous slide manually and restarts the interval.
func (c *Controller) Prev(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.slides) > 0 {
		c.index = (c.index - 1 + len(c.slides)) % len(c.slides)
	}
	c.scheduleNext(now)
	return c.index
}

// GoTo jumps to the slide at the provided index (dot navigation).
func (c *Controller) GoTo(now time.Time, index int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index >= 0 && index < len(c.slides) {
		c.index = index
	}
	c.scheduleNext(now)
	return c.index
}

// VideoEnded advances past a video slide configured to advance on end. Video
// slides without the flag loop in place, so the event is a no-op for them.
func (c *Controller) VideoEnded(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAutoplaying {
		return
	}
	slide := c.currentSlide()
	if slide == nil || slide.MediaKind != enums.HeroMediaVideo || !slide.AdvanceOnVideoEnd {
		return
	}
	c.advance(now)
}

// Tick processes time-based transitions: the debounced pointer resume and the
// interval advance. Video slides that advance on end never advance on the
// timer; the two behaviors are mutually exclusive.
func (c *Controller) Tick(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StatePausedByPointer && !c.resumeDeadline.IsZero() && !now.Before(c.resumeDeadline) {
		c.state = StateAutoplaying
		c.resumeDeadline = time.Time{}
		c.scheduleNext(now)
		return
	}

	if c.state != StateAutoplaying {
		return
	}
	if c.nextAdvanceAt.IsZero() || now.Before(c.nextAdvanceAt) {
		return
	}
	slide := c.currentSlide()
	if slide != nil && slide.MediaKind == enums.HeroMediaVideo && slide.AdvanceOnVideoEnd {
		// wait for VideoEnded instead
		return
	}
	c.advance(now)
}

func (c *Controller) currentSlide() *Slide {
	if c.index < 0 || c.index >= len(c.slides) {
		return nil
	}
	return &c.slides[c.index]
}

func (c *Controller) advance(now time.Time) {
	if len(c.slides) > 0 {
		c.index = (c.index + 1) % len(c.slides)
	}
	c.scheduleNext(now)
}

func (c *Controller) scheduleNext(now time.Time) {
	c.nextAdvanceAt = now.Add(c.interval)
}
