//go:build !windows

// Package stderr captures output that C audio backends (ALSA through oto)
// write directly to file descriptor 2, bypassing Go's os.Stderr.
// Captured lines are handed to the application instead of corrupting the TUI.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"syscall"
)

const bufferSize = 100

type capture struct {
	mu       sync.Mutex
	origFD   int
	read     *os.File
	write    *os.File
	lines    chan string
	started  bool
	readDone chan struct{}
}

var c = &capture{lines: make(chan string, bufferSize)}

// Lines receives stderr lines captured after Start.
// The channel is closed by Stop.
func Lines() <-chan string {
	return c.lines
}

// Start begins capturing stderr output.
// Call it early in main, before the audio device is opened.
// On error the program can continue; output then goes to the real stderr.
func Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	c.origFD = orig
	c.read = r
	c.write = w
	c.started = true
	c.readDone = make(chan struct{})

	go c.scan(r, c.readDone)
	return nil
}

func (c *capture) scan(r *os.File, done chan struct{}) {
	defer close(done)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case c.lines <- line:
		default:
			// full: drop rather than block the writer
		}
	}
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
func WriteOriginal(msg string) {
	c.mu.Lock()
	fd := c.origFD
	c.mu.Unlock()
	if fd > 0 {
		_, _ = syscall.Write(fd, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores the original stderr and closes Lines.
func Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return
	}

	_ = syscall.Dup2(c.origFD, int(os.Stderr.Fd()))
	_ = syscall.Close(c.origFD)
	c.origFD = 0

	c.write.Close()
	<-c.readDone
	c.read.Close()

	close(c.lines)
	c.started = false
}
