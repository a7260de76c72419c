// Package playback keeps the user's playback intent in sync with the media
// element.
package playback

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/llehouerou/onestop/internal/catalog"
	"github.com/llehouerou/onestop/internal/player"
	"github.com/llehouerou/onestop/internal/playlist"
)

// DefaultVolume is the initial volume on a 0-100 scale.
const DefaultVolume = 50

// Controller owns the media element and the playback state.
//
// Every mutation, whether it comes from user input or from an element
// signal, happens under one mutex. Exactly one tracking session is attached
// to the element at any time, and only signals from that session's load are
// applied.
type Controller struct {
	mu sync.Mutex

	element player.Interface
	catalog catalog.Catalog
	cursor  *playlist.Cursor
	active  *tracking

	playing  bool
	phase    Phase
	fraction float64
	volume   float64
	position time.Duration
	duration time.Duration
	loaded   int64
	total    int64
	info     *player.TrackInfo
	lastErr  error

	subs       []*Subscription
	subsMu     sync.RWMutex
	subsClosed bool

	closed bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithVolume sets the initial volume (0-100). Out of range values are clamped.
func WithVolume(v float64) Option {
	return func(c *Controller) {
		if !math.IsNaN(v) {
			c.volume = clamp(v, 0, 100)
		}
	}
}

// New creates a controller driving element. The catalog starts empty.
func New(element player.Interface, opts ...Option) *Controller {
	c := &Controller{
		element: element,
		cursor:  playlist.NewCursor(0),
		volume:  DefaultVolume,
	}
	for _, opt := range opts {
		opt(c)
	}
	element.SetVolume(c.volume / 100)
	return c
}

// LoadCatalog replaces the catalog and moves to its first track. The track
// is loaded but only starts if the user intends to play. An empty catalog
// releases the element and turns transport operations into no-ops.
func (c *Controller) LoadCatalog(tracks []catalog.Track) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	prev := c.statusLocked()
	prevIndex := c.cursor.Index()

	c.catalog = catalog.New(tracks)
	c.cursor.Reset(c.catalog.Len())
	c.fraction = 0
	c.broadcastCatalog(CatalogChange{Len: c.catalog.Len()})

	if c.cursor.IsEmpty() {
		c.stopTrackingLocked()
		c.element.Stop()
		c.resetMediaLocked()
		c.playing = false
		c.phase = PhaseIdle
		c.broadcastTrack(TrackChange{PreviousIndex: prevIndex, Index: -1})
		c.publishStatusLocked(prev)
		return
	}

	c.changeTrackLocked(prevIndex)
	c.publishStatusLocked(prev)
}

// SelectTrack makes index the current track and loads it.
func (c *Controller) SelectTrack(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if !c.cursor.Valid(index) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, c.cursor.Len())
	}

	prev := c.statusLocked()
	prevIndex := c.cursor.Index()
	c.cursor.JumpTo(index)
	c.changeTrackLocked(prevIndex)
	c.publishStatusLocked(prev)
	return nil
}

// Next moves to the following track, wrapping from last to first.
func (c *Controller) Next() {
	c.step((*playlist.Cursor).Next)
}

// Prev moves to the preceding track, wrapping from first to last.
func (c *Controller) Prev() {
	c.step((*playlist.Cursor).Prev)
}

func (c *Controller) step(move func(*playlist.Cursor) int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.cursor.IsEmpty() {
		return
	}
	prev := c.statusLocked()
	prevIndex := c.cursor.Index()
	move(c.cursor)
	c.changeTrackLocked(prevIndex)
	c.publishStatusLocked(prev)
}

// TogglePlayPause flips the play intent.
//
// Pausing is immediate. Playing starts the element if the track is ready,
// waits for the load to finish if it is still loading, and retries the
// load if it failed. A play request rejected by the element leaves the
// intent at not playing and returns the element's error.
func (c *Controller) TogglePlayPause() error {
	return c.setIntent(func(playing bool) bool { return !playing })
}

// Play sets the play intent. It does nothing if already playing.
func (c *Controller) Play() error {
	return c.setIntent(func(bool) bool { return true })
}

// Pause clears the play intent. It does nothing if already paused.
func (c *Controller) Pause() error {
	return c.setIntent(func(bool) bool { return false })
}

// setIntent reads and changes the play intent in one critical section.
func (c *Controller) setIntent(next func(playing bool) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.cursor.IsEmpty() {
		return nil
	}
	want := next(c.playing)
	if want == c.playing {
		return nil
	}

	prev := c.statusLocked()
	defer c.publishStatusLocked(prev)

	if !want {
		c.playing = false
		c.element.Pause()
		return nil
	}

	c.playing = true
	switch c.phase {
	case PhaseLoading:
		// Started by the can-play signal.
		return nil
	case PhaseIdle:
		c.swapLocked()
		return nil
	case PhaseReady, PhasePlaying, PhasePaused, PhaseEnded:
	}
	return c.startLocked()
}

// SeekTo moves playback to fraction of the track duration. Values outside
// [0,1] are clamped. Does nothing until the duration is known.
func (c *Controller) SeekTo(fraction float64) error {
	if math.IsNaN(fraction) {
		return ErrInvalidFraction
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	return c.seekLocked(fraction)
}

// SeekBy moves the seek fraction by delta.
func (c *Controller) SeekBy(delta float64) error {
	if math.IsNaN(delta) {
		return ErrInvalidFraction
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	return c.seekLocked(c.fraction + delta)
}

func (c *Controller) seekLocked(fraction float64) error {
	if c.cursor.IsEmpty() || c.duration <= 0 {
		return nil
	}
	fraction = clamp(fraction, 0, 1)
	pos := time.Duration(fraction * float64(c.duration))

	if err := c.element.SeekTo(pos); err != nil {
		c.broadcastError(c.errorEventLocked(OpSeek, err))
		return err
	}
	c.fraction = fraction
	c.position = pos
	c.broadcastPosition(PositionChange{Position: pos, Duration: c.duration, Fraction: fraction})
	return nil
}

// SetVolume sets the volume on a 0-100 scale. Values outside the range are
// clamped. Applies even when no track is loaded.
func (c *Controller) SetVolume(v float64) error {
	if math.IsNaN(v) {
		return ErrInvalidVolume
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.setVolumeLocked(v)
	return nil
}

// AdjustVolume changes the volume by delta.
func (c *Controller) AdjustVolume(delta float64) error {
	if math.IsNaN(delta) {
		return ErrInvalidVolume
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.setVolumeLocked(c.volume + delta)
	return nil
}

func (c *Controller) setVolumeLocked(v float64) {
	v = clamp(v, 0, 100)
	c.volume = v
	c.element.SetVolume(v / 100)
	c.broadcastVolume(VolumeChange{Volume: v})
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{
		CurrentIndex: c.cursor.Index(),
		IsPlaying:    c.playing,
		SeekFraction: c.fraction,
		Volume:       c.volume,
		Phase:        c.phase,
		Track:        c.catalog.At(c.cursor.Index()),
		Position:     c.position,
		Duration:     c.duration,
		Loaded:       c.loaded,
		Total:        c.total,
		CatalogLen:   c.catalog.Len(),
		Err:          c.lastErr,
	}
	if c.info != nil {
		info := *c.info
		s.Info = &info
	}
	return s
}

// Catalog returns the loaded catalog.
func (c *Controller) Catalog() catalog.Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	if c.subsClosed {
		sub.close()
		return sub
	}
	c.subs = append(c.subs, sub)
	return sub
}

// Close detaches from and closes the element, then ends all subscriptions.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.stopTrackingLocked()
	c.mu.Unlock()

	err := c.element.Close()

	c.subsMu.Lock()
	c.subsClosed = true
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()

	return err
}

// changeTrackLocked swaps to the cursor's track and announces it.
func (c *Controller) changeTrackLocked(prevIndex int) {
	c.swapLocked()
	c.broadcastTrack(TrackChange{
		PreviousIndex: prevIndex,
		Index:         c.cursor.Index(),
		Track:         c.catalog.At(c.cursor.Index()),
	})
}

// swapLocked points the element at the current track:
// the old session is detached, a new one attached, the source assigned and
// its generation recorded. Signals are handled under c.mu, so none can be
// applied between attaching and recording the generation.
func (c *Controller) swapLocked() {
	c.stopTrackingLocked()

	track := c.catalog.At(c.cursor.Index())
	if track == nil {
		return
	}

	t := &tracking{}
	t.unsubscribe = c.element.Subscribe(func(e player.Event) {
		c.handleSignal(t, e)
	})
	t.gen = c.element.Load(track.AudioURL)
	c.active = t

	c.resetMediaLocked()
	c.lastErr = nil
	c.phase = PhaseLoading
}

func (c *Controller) stopTrackingLocked() {
	c.active.stop()
	c.active = nil
}

func (c *Controller) resetMediaLocked() {
	c.fraction = 0
	c.position = 0
	c.duration = 0
	c.loaded = 0
	c.total = 0
	c.info = nil
}

// startLocked asks the element to play and reconciles a rejection.
func (c *Controller) startLocked() error {
	if err := c.element.Play(); err != nil {
		c.playing = false
		c.lastErr = err
		c.broadcastError(c.errorEventLocked(OpPlay, err))
		return err
	}
	return nil
}

// handleSignal applies an element signal to the controller state.
func (c *Controller) handleSignal(t *tracking, e player.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || t != c.active || !t.accepts(e.Generation) {
		return
	}

	prev := c.statusLocked()
	defer func() { c.publishStatusLocked(prev) }()

	switch e.Type {
	case player.EventLoadStart:
	case player.EventProgress:
		c.loaded, c.total = e.Loaded, e.Total
		c.broadcastProgress(ProgressChange{Loaded: e.Loaded, Total: e.Total})
	case player.EventCanPlay:
		c.duration = e.Duration
		c.info = e.Info
		c.phase = PhaseReady
		if c.playing {
			_ = c.startLocked()
		}
	case player.EventPlaying:
		c.playing = true
		c.phase = PhasePlaying
	case player.EventPause:
		c.playing = false
		c.phase = PhasePaused
	case player.EventTimeUpdate, player.EventSeeked:
		c.updatePositionLocked(e.Position, e.Duration)
	case player.EventEnded:
		c.updatePositionLocked(e.Position, e.Duration)
		c.phase = PhaseEnded
		c.publishStatusLocked(prev)
		prev = c.statusLocked()

		prevIndex := c.cursor.Index()
		c.cursor.Next()
		c.changeTrackLocked(prevIndex)
	case player.EventError:
		c.playing = false
		c.phase = PhaseIdle
		c.lastErr = e.Err
		c.broadcastError(c.errorEventLocked(OpLoad, e.Err))
	}
}

func (c *Controller) updatePositionLocked(pos, dur time.Duration) {
	c.position = pos
	if dur > 0 {
		c.duration = dur
	}
	if c.duration > 0 {
		c.fraction = clamp(float64(pos)/float64(c.duration), 0, 1)
	}
	c.broadcastPosition(PositionChange{Position: pos, Duration: c.duration, Fraction: c.fraction})
}

func (c *Controller) errorEventLocked(op string, err error) ErrorEvent {
	return ErrorEvent{
		Operation: op,
		Index:     c.cursor.Index(),
		Track:     c.catalog.At(c.cursor.Index()),
		Err:       err,
	}
}

type status struct {
	phase   Phase
	playing bool
}

func (c *Controller) statusLocked() status {
	return status{phase: c.phase, playing: c.playing}
}

// publishStatusLocked emits a StateChange if the phase or the intent
// differs from prev.
func (c *Controller) publishStatusLocked(prev status) {
	if prev == c.statusLocked() {
		return
	}
	c.broadcastState(StateChange{Previous: prev.phase, Current: c.phase, Playing: c.playing})
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
