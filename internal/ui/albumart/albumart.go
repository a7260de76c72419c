// Package albumart turns downloaded cover images into terminal graphics.
package albumart

import (
	"bytes"
	"container/list"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder for cover art
	_ "image/png"  // PNG decoder for cover art
	"sync"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp" // WebP decoder for cover art

	"github.com/llehouerou/onestop/internal/ui/kittyimg"
)

// Approximate terminal cell size in pixels.
const (
	cellWidth  = 8
	cellHeight = 16
)

// DefaultCacheSize is the number of rendered covers kept in memory.
const DefaultCacheSize = 32

// ErrNoImage is returned when there is no image data to render.
var ErrNoImage = errors.New("no image data")

type cacheKey struct {
	url        string
	cols, rows int
}

type entry struct {
	key cacheKey
	seq string
}

// Renderer renders cover images as Kitty escape sequences and keeps the
// most recently used results in memory.
type Renderer struct {
	enabled bool

	mu    sync.Mutex
	max   int
	order *list.List
	items map[cacheKey]*list.Element
}

// New creates a renderer. A disabled renderer never produces images.
func New(enabled bool, cacheSize int) *Renderer {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &Renderer{
		enabled: enabled,
		max:     cacheSize,
		order:   list.New(),
		items:   make(map[cacheKey]*list.Element),
	}
}

// Enabled reports whether the terminal can show images.
func (r *Renderer) Enabled() bool {
	return r != nil && r.enabled
}

// Cached returns the rendered sequence for url at the given size, if any.
func (r *Renderer) Cached(url string, cols, rows int) (string, bool) {
	if !r.Enabled() {
		return "", false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	el, ok := r.items[cacheKey{url, cols, rows}]
	if !ok {
		return "", false
	}
	r.order.MoveToFront(el)
	return el.Value.(*entry).seq, true
}

// Render decodes data, resizes it to fit cols x rows cells and returns the
// escape sequence that displays it. Results are cached by url and size.
func (r *Renderer) Render(url string, data []byte, cols, rows int) (string, error) {
	if !r.Enabled() {
		return "", nil
	}
	if seq, ok := r.Cached(url, cols, rows); ok {
		return seq, nil
	}
	if len(data) == 0 {
		return "", ErrNoImage
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode cover: %w", err)
	}

	seq := kittyimg.Encode(Fit(img, cols, rows), cols, rows)
	if seq == "" {
		return "", fmt.Errorf("encode cover: %w", ErrNoImage)
	}
	r.store(cacheKey{url, cols, rows}, seq)
	return seq, nil
}

// Len returns the number of cached covers.
func (r *Renderer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.Len()
}

func (r *Renderer) store(k cacheKey, seq string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if el, ok := r.items[k]; ok {
		el.Value.(*entry).seq = seq
		r.order.MoveToFront(el)
		return
	}
	r.items[k] = r.order.PushFront(&entry{key: k, seq: seq})
	for r.order.Len() > r.max {
		oldest := r.order.Back()
		r.order.Remove(oldest)
		delete(r.items, oldest.Value.(*entry).key)
	}
}

// Fit scales img down to the pixel box of cols x rows cells, keeping its
// aspect ratio.
func Fit(img image.Image, cols, rows int) image.Image {
	w := uint(max(cols*cellWidth, 64))  //nolint:gosec // dimensions are small
	h := uint(max(rows*cellHeight, 64)) //nolint:gosec // dimensions are small
	return resize.Thumbnail(w, h, img, resize.Lanczos3)
}
