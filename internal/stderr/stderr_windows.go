//go:build windows

// Package stderr is a no-op on Windows, where the audio backend does not
// write to file descriptor 2.
package stderr

import "os"

var lines = make(chan string)

// Lines never receives on Windows.
func Lines() <-chan string {
	return lines
}

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func Stop() {}
