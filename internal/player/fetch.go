package player

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	progressInterval = 100 * time.Millisecond
	maxAudioSize     = 256 << 20
)

// download fetches the whole resource at src into memory, calling progress
// as bytes arrive. progress is called at most every progressInterval, plus
// once at the end.
func download(
	ctx context.Context,
	client *http.Client,
	userAgent, src string,
	progress func(loaded, total int64),
) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	total := resp.ContentLength
	if total > maxAudioSize {
		return nil, fmt.Errorf("resource too large: %d bytes", total)
	}

	var buf bytes.Buffer
	if total > 0 {
		buf.Grow(int(total))
	}

	pr := &progressReader{
		r:        io.LimitReader(resp.Body, maxAudioSize+1),
		total:    total,
		progress: progress,
	}
	if _, err := buf.ReadFrom(pr); err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if buf.Len() > maxAudioSize {
		return nil, fmt.Errorf("resource larger than %d bytes", maxAudioSize)
	}
	pr.report(true)

	return buf.Bytes(), nil
}

type progressReader struct {
	r        io.Reader
	loaded   int64
	total    int64
	last     time.Time
	progress func(loaded, total int64)
}

func (pr *progressReader) Read(b []byte) (int, error) {
	n, err := pr.r.Read(b)
	pr.loaded += int64(n)
	if n > 0 {
		pr.report(false)
	}
	return n, err
}

func (pr *progressReader) report(final bool) {
	if pr.progress == nil {
		return
	}
	now := time.Now()
	if !final && now.Sub(pr.last) < progressInterval {
		return
	}
	pr.last = now
	pr.progress(pr.loaded, pr.total)
}
