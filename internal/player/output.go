package player

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Output is the audio sink the element plays into.
//
// Streamers passed to Play are pulled from the output's own goroutine while
// its lock is held; Lock and Unlock guard any mutation of those streamers.
type Output interface {
	// Init opens the device. Only the first successful call has an effect.
	Init(sr beep.SampleRate) error
	// SampleRate returns the rate chosen at Init, or 0 before.
	SampleRate() beep.SampleRate
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
	Close()
}

// speakerOutput plays through the system audio device.
type speakerOutput struct {
	mu          sync.Mutex
	initialized bool
	sampleRate  beep.SampleRate
}

// NewSpeakerOutput returns an Output backed by beep's speaker package.
// The device is opened lazily at the first Init call.
func NewSpeakerOutput() Output {
	return &speakerOutput{}
}

func (o *speakerOutput) Init(sr beep.SampleRate) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.initialized {
		return nil
	}
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return err
	}
	o.initialized = true
	o.sampleRate = sr
	return nil
}

func (o *speakerOutput) SampleRate() beep.SampleRate {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sampleRate
}

func (o *speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }

func (o *speakerOutput) Clear() {
	if o.isInitialized() {
		speaker.Clear()
	}
}

func (o *speakerOutput) Lock()   { speaker.Lock() }
func (o *speakerOutput) Unlock() { speaker.Unlock() }

func (o *speakerOutput) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.initialized {
		speaker.Close()
		o.initialized = false
	}
}

func (o *speakerOutput) isInitialized() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.initialized
}

// NullOutput is a device-less Output. Audio only advances when Advance is
// called, which makes playback deterministic in tests.
type NullOutput struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	initErr    error
	inits      int
	streamers  []beep.Streamer
	buf        [][2]float64
}

// NewNullOutput creates a NullOutput.
func NewNullOutput() *NullOutput {
	return &NullOutput{}
}

// SetInitError makes subsequent Init calls fail with err.
func (o *NullOutput) SetInitError(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.initErr = err
}

// Inits returns how many times Init succeeded in opening the output.
func (o *NullOutput) Inits() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.inits
}

func (o *NullOutput) Init(sr beep.SampleRate) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.initErr != nil {
		return o.initErr
	}
	if o.sampleRate == 0 {
		o.sampleRate = sr
		o.inits++
	}
	return nil
}

func (o *NullOutput) SampleRate() beep.SampleRate {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sampleRate
}

func (o *NullOutput) Play(s beep.Streamer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.streamers = append(o.streamers, s)
}

func (o *NullOutput) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.streamers = nil
}

func (o *NullOutput) Lock()   { o.mu.Lock() }
func (o *NullOutput) Unlock() { o.mu.Unlock() }
func (o *NullOutput) Close()  { o.Clear() }

// Active returns the number of streamers still playing.
func (o *NullOutput) Active() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.streamers)
}

// Advance pulls d worth of samples from every playing streamer and discards
// them. Drained streamers are removed.
func (o *NullOutput) Advance(d time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.sampleRate == 0 {
		return
	}
	n := o.sampleRate.N(d)
	if cap(o.buf) < n {
		o.buf = make([][2]float64, n)
	}
	buf := o.buf[:n]

	kept := o.streamers[:0]
	for _, s := range o.streamers {
		if drain(s, buf) {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(o.streamers); i++ {
		o.streamers[i] = nil
	}
	o.streamers = kept
}

// drain fills buf from s and reports whether s can produce more.
func drain(s beep.Streamer, buf [][2]float64) bool {
	filled := 0
	for filled < len(buf) {
		n, ok := s.Stream(buf[filled:])
		filled += n
		if !ok {
			return false
		}
		if n == 0 {
			return true
		}
	}
	return true
}
