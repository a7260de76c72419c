package player

import "math"

// SetVolume sets the volume level (0.0 to 1.0).
// The level is kept across loads and applied to every new source.
func (p *Player) SetVolume(level float64) {
	level = max(0, min(level, 1))

	p.mu.Lock()
	defer p.mu.Unlock()
	p.volumeLevel = level
	if p.volume != nil {
		p.out.Lock()
		p.volume.Volume = levelToVolume(level)
		p.volume.Silent = level <= 0
		p.out.Unlock()
	}
}

// Volume returns the current volume level (0.0 to 1.0).
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volumeLevel
}

// levelToVolume converts a 0.0-1.0 level to beep's Volume value.
// beep uses a logarithmic scale with base 2: 0 means unchanged, -1 half,
// -2 quarter. 0.0 maps to -10, which is effectively silent.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
