package player

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// DefaultTimeUpdateInterval is how often EventTimeUpdate fires while playing.
const DefaultTimeUpdateInterval = 250 * time.Millisecond

// Player is a media element that streams remote audio resources.
//
// A source is fetched in full over HTTP, decoded in memory and played
// through an Output. All methods are safe for concurrent use and never call
// listeners directly.
type Player struct {
	out       Output
	client    *http.Client
	userAgent string
	interval  time.Duration
	events    *dispatcher

	mu          sync.Mutex
	state       State
	gen         uint64
	src         string
	cancelFetch context.CancelFunc
	streamer    beep.StreamSeekCloser
	format      beep.Format
	info        *TrackInfo
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	volumeLevel float64
	stopMonitor chan struct{}
	closed      bool
}

// Option configures a Player.
type Option func(*Player)

// WithOutput sets the audio sink. Defaults to the system speaker.
func WithOutput(out Output) Option {
	return func(p *Player) { p.out = out }
}

// WithHTTPClient sets the client used to fetch sources.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Player) { p.client = c }
}

// WithUserAgent sets the User-Agent header of source requests.
func WithUserAgent(ua string) Option {
	return func(p *Player) { p.userAgent = ua }
}

// WithTimeUpdateInterval sets the EventTimeUpdate period.
func WithTimeUpdateInterval(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.interval = d
		}
	}
}

// New creates a Player.
func New(opts ...Option) *Player {
	p := &Player{
		client:      http.DefaultClient,
		interval:    DefaultTimeUpdateInterval,
		volumeLevel: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.out == nil {
		p.out = NewSpeakerOutput()
	}
	p.events = newDispatcher()
	return p
}

// Subscribe registers fn to receive events.
func (p *Player) Subscribe(fn func(Event)) func() {
	return p.events.subscribe(fn)
}

// ListenerCount returns the number of registered listeners.
func (p *Player) ListenerCount() int {
	return p.events.listenerCount()
}

// Load releases the current source and starts fetching src.
func (p *Player) Load(src string) uint64 {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	if p.closed {
		p.mu.Unlock()
		return gen
	}
	p.releaseLocked()
	p.state = Loading
	p.src = src
	ctx, cancel := context.WithCancel(context.Background())
	p.cancelFetch = cancel
	p.mu.Unlock()

	p.events.emit(Event{Type: EventLoadStart, Generation: gen})
	go p.fetch(ctx, gen, src)
	return gen
}

func (p *Player) fetch(ctx context.Context, gen uint64, src string) {
	data, err := download(ctx, p.client, p.userAgent, src, func(loaded, total int64) {
		p.events.emit(Event{Type: EventProgress, Generation: gen, Loaded: loaded, Total: total})
	})
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		p.fail(gen, err)
		return
	}

	streamer, format, kind, err := decodeAudio(data)
	if err != nil {
		p.fail(gen, err)
		return
	}
	info := readTrackInfo(data, kind, format, streamer.Len())

	p.mu.Lock()
	if p.gen != gen || p.closed {
		p.mu.Unlock()
		_ = streamer.Close()
		return
	}
	p.streamer = streamer
	p.format = format
	p.info = info
	p.state = Ready
	p.cancelFetch = nil
	p.mu.Unlock()

	p.events.emit(Event{Type: EventCanPlay, Generation: gen, Duration: info.Duration, Info: info})
}

func (p *Player) fail(gen uint64, err error) {
	p.mu.Lock()
	if p.gen != gen {
		p.mu.Unlock()
		return
	}
	p.state = Stopped
	p.cancelFetch = nil
	p.mu.Unlock()

	p.events.emit(Event{Type: EventError, Generation: gen, Err: err})
}

// Play starts or resumes output of the loaded source. The audio device is
// opened on the first call; an error there rejects the play request.
func (p *Player) Play() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	switch p.state {
	case Playing:
		p.mu.Unlock()
		return nil
	case Stopped:
		hasSource := p.src != ""
		p.mu.Unlock()
		if !hasSource {
			return ErrNoSource
		}
		return ErrNotReady
	case Loading:
		p.mu.Unlock()
		return ErrNotReady
	case Ready, Paused, Ended:
	}

	if err := p.startLocked(); err != nil {
		p.mu.Unlock()
		return err
	}
	p.state = Playing
	gen := p.gen
	pos := p.positionLocked()
	dur := p.durationLocked()
	p.mu.Unlock()

	p.events.emit(Event{Type: EventPlaying, Generation: gen, Position: pos, Duration: dur})
	return nil
}

// startLocked resumes the output chain, building it if needed.
func (p *Player) startLocked() error {
	if p.ctrl != nil {
		p.out.Lock()
		p.ctrl.Paused = false
		p.out.Unlock()
		return nil
	}

	if err := p.out.Init(p.format.SampleRate); err != nil {
		return err
	}

	if p.state == Ended {
		p.out.Lock()
		err := p.streamer.Seek(0)
		p.out.Unlock()
		if err != nil {
			return err
		}
	}

	var s beep.Streamer = p.streamer
	if rate := p.out.SampleRate(); rate != p.format.SampleRate {
		s = beep.Resample(4, p.format.SampleRate, rate, s)
	}
	p.ctrl = &beep.Ctrl{Streamer: s}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.volumeLevel <= 0,
	}

	ended := make(chan struct{}, 1)
	stop := make(chan struct{})
	p.stopMonitor = stop
	go p.monitor(p.gen, ended, stop)

	// The callback runs under the output lock and must not touch p.mu.
	p.out.Play(beep.Seq(p.volume, beep.Callback(func() {
		select {
		case ended <- struct{}{}:
		default:
		}
	})))
	return nil
}

// monitor emits time updates while playing and handles end of stream.
func (p *Player) monitor(gen uint64, ended <-chan struct{}, stop <-chan struct{}) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.mu.Lock()
			if p.gen != gen || p.state != Playing {
				p.mu.Unlock()
				continue
			}
			pos := p.positionLocked()
			dur := p.durationLocked()
			p.mu.Unlock()
			p.events.emit(Event{Type: EventTimeUpdate, Generation: gen, Position: pos, Duration: dur})
		case <-ended:
			p.mu.Lock()
			if p.gen != gen {
				p.mu.Unlock()
				return
			}
			dur := p.durationLocked()
			p.state = Ended
			p.ctrl = nil
			p.volume = nil
			p.stopMonitor = nil
			p.mu.Unlock()
			p.events.emit(Event{Type: EventTimeUpdate, Generation: gen, Position: dur, Duration: dur})
			p.events.emit(Event{Type: EventEnded, Generation: gen, Position: dur, Duration: dur})
			return
		}
	}
}

// Pause pauses output. No-op unless playing.
func (p *Player) Pause() {
	p.mu.Lock()
	if p.state != Playing || p.ctrl == nil {
		p.mu.Unlock()
		return
	}
	p.out.Lock()
	p.ctrl.Paused = true
	p.out.Unlock()
	p.state = Paused
	gen := p.gen
	pos := p.positionLocked()
	p.mu.Unlock()

	p.events.emit(Event{Type: EventPause, Generation: gen, Position: pos})
}

// Stop releases the current source. Pending events of the released source
// carry an outdated generation.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	p.releaseLocked()
	p.src = ""
	p.state = Stopped
}

// releaseLocked cancels any fetch and tears down the output chain.
func (p *Player) releaseLocked() {
	if p.cancelFetch != nil {
		p.cancelFetch()
		p.cancelFetch = nil
	}
	if p.stopMonitor != nil {
		close(p.stopMonitor)
		p.stopMonitor = nil
	}
	if p.ctrl != nil {
		p.out.Clear()
	}
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.info = nil
	p.format = beep.Format{}
}

// SeekTo moves playback to pos, clamped to the source bounds.
func (p *Player) SeekTo(pos time.Duration) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if p.streamer == nil {
		p.mu.Unlock()
		return ErrNotReady
	}

	length := p.streamer.Len()
	n := max(0, min(p.format.SampleRate.N(pos), length))

	p.out.Lock()
	err := p.streamer.Seek(n)
	p.out.Unlock()
	if err != nil {
		p.mu.Unlock()
		return err
	}
	if p.state == Ended && n < length {
		// The output chain was consumed by the end of stream; Play rebuilds
		// it from the new position.
		p.state = Paused
	}
	gen := p.gen
	actual := p.format.SampleRate.D(n)
	dur := p.durationLocked()
	p.mu.Unlock()

	p.events.emit(Event{Type: EventSeeked, Generation: gen, Position: actual, Duration: dur})
	return nil
}

// State returns the element state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// TrackInfo returns metadata of the decoded source, or nil.
func (p *Player) TrackInfo() *TrackInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.info == nil {
		return nil
	}
	info := *p.info
	return &info
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.positionLocked()
}

func (p *Player) positionLocked() time.Duration {
	if p.streamer == nil {
		return 0
	}
	if p.state == Ended {
		return p.durationLocked()
	}
	p.out.Lock()
	n := p.streamer.Position()
	p.out.Unlock()
	return p.format.SampleRate.D(n)
}

// Duration returns the length of the decoded source, or 0 if unknown.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.durationLocked()
}

func (p *Player) durationLocked() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// Close releases the source, the output and all listeners.
func (p *Player) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.gen++
	p.releaseLocked()
	p.state = Stopped
	p.mu.Unlock()

	p.out.Close()
	p.events.close()
	return nil
}
