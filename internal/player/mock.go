// internal/player/mock.go
package player

import (
	"sync"
	"time"
)

// Mock is a test double for the media element.
//
// Commands only record calls and update the reported state. Events are
// never produced on their own: tests drive them with Emit and the Emit*
// helpers, which call listeners synchronously on the calling goroutine.
type Mock struct {
	mu         sync.Mutex
	state      State
	gen        uint64
	src        string
	position   time.Duration
	duration   time.Duration
	volume     float64
	playErr    error
	seekErr    error
	loadCalls  []string
	playCalls  int
	pauseCalls int
	stopCalls  int
	seekCalls  []time.Duration
	listeners  []listener
	nextID     int
	closed     bool
}

// NewMock creates a new mock element.
func NewMock() *Mock {
	return &Mock{state: Stopped, volume: 1}
}

func (m *Mock) Load(src string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.src = src
	m.state = Loading
	m.position = 0
	m.duration = 0
	m.loadCalls = append(m.loadCalls, src)
	return m.gen
}

func (m *Mock) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalls++
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.stopCalls++
	m.src = ""
	m.state = Stopped
}

func (m *Mock) SeekTo(pos time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, pos)
	if m.seekErr != nil {
		return m.seekErr
	}
	m.position = pos
	return nil
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = level
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Subscribe(fn func(Event)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := m.nextID
	m.listeners = append(m.listeners, listener{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			for i, l := range m.listeners {
				if l.id == id {
					m.listeners = append(m.listeners[:i:i], m.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.listeners = nil
	return nil
}

// Test helpers

func (m *Mock) SetState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

func (m *Mock) SetSeekError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekErr = err
}

func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = d
}

// Generation returns the generation of the latest Load or Stop.
func (m *Mock) Generation() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gen
}

// Source returns the currently assigned source.
func (m *Mock) Source() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.src
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) StopCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopCalls
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

// ListenerCount returns the number of registered listeners.
func (m *Mock) ListenerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listeners)
}

// Emit delivers e to all listeners on the calling goroutine.
func (m *Mock) Emit(e Event) {
	m.mu.Lock()
	fns := make([]func(Event), len(m.listeners))
	for i, l := range m.listeners {
		fns[i] = l.fn
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}

// EmitCanPlay marks the current source decoded with duration d and emits
// EventCanPlay for the current generation.
func (m *Mock) EmitCanPlay(d time.Duration) {
	m.mu.Lock()
	m.duration = d
	if m.state == Loading {
		m.state = Ready
	}
	gen := m.gen
	m.mu.Unlock()
	m.Emit(Event{Type: EventCanPlay, Generation: gen, Duration: d})
}

// EmitTimeUpdate moves the position to pos and emits EventTimeUpdate.
func (m *Mock) EmitTimeUpdate(pos time.Duration) {
	m.mu.Lock()
	m.position = pos
	gen, dur := m.gen, m.duration
	m.mu.Unlock()
	m.Emit(Event{Type: EventTimeUpdate, Generation: gen, Position: pos, Duration: dur})
}

// EmitEnded emits EventEnded for generation gen.
func (m *Mock) EmitEnded(gen uint64) {
	m.mu.Lock()
	if gen == m.gen {
		m.state = Ended
		m.position = m.duration
	}
	dur := m.duration
	m.mu.Unlock()
	m.Emit(Event{Type: EventEnded, Generation: gen, Position: dur, Duration: dur})
}

// EmitError emits EventError for the current generation.
func (m *Mock) EmitError(err error) {
	m.mu.Lock()
	m.state = Stopped
	gen := m.gen
	m.mu.Unlock()
	m.Emit(Event{Type: EventError, Generation: gen, Err: err})
}

// EmitType emits a bare event of type t for the current generation.
func (m *Mock) EmitType(t EventType) {
	m.Emit(Event{Type: t, Generation: m.Generation()})
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
