package player

import (
	"bytes"
	"fmt"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"
)

// Audio container formats recognised by sniffFormat.
const (
	formatMP3  = "MP3"
	formatFLAC = "FLAC"
	formatWAV  = "WAV"
)

// sniffFormat identifies the container from the leading bytes of data.
// Remote sources rarely carry a reliable extension, so the content decides.
func sniffFormat(data []byte) (string, error) {
	body := data[id3v2Size(data):]

	switch {
	case bytes.HasPrefix(body, []byte("fLaC")):
		return formatFLAC, nil
	case len(body) >= 12 && string(body[0:4]) == "RIFF" && string(body[8:12]) == "WAVE":
		return formatWAV, nil
	case len(body) >= 2 && body[0] == 0xFF && body[1]&0xE0 == 0xE0:
		return formatMP3, nil
	case len(body) < len(data):
		// ID3 tag followed by something other than FLAC: MP3 decoders skip
		// leading junk on their own.
		return formatMP3, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// id3v2Size returns the length of an ID3v2 tag at the start of data,
// including its 10 byte header, or 0 if there is none.
func id3v2Size(data []byte) int {
	if len(data) < 10 || string(data[0:3]) != "ID3" {
		return 0
	}
	// Size is a syncsafe integer: 7 bits per byte.
	size := int(data[6])<<21 | int(data[7])<<14 | int(data[8])<<7 | int(data[9])
	total := 10 + size
	if data[5]&0x10 != 0 {
		total += 10 // footer
	}
	if total > len(data) {
		return len(data)
	}
	return total
}

// decodeAudio decodes a fully downloaded resource.
func decodeAudio(data []byte) (beep.StreamSeekCloser, beep.Format, string, error) {
	kind, err := sniffFormat(data)
	if err != nil {
		return nil, beep.Format{}, "", err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch kind {
	case formatMP3:
		streamer, format, err = decodeGoMP3(bytes.NewReader(data))
	case formatFLAC:
		// The FLAC decoder does not handle prepended ID3v2 tags.
		streamer, format, err = flac.Decode(bytes.NewReader(data[id3v2Size(data):]))
	case formatWAV:
		streamer, format, err = wav.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, beep.Format{}, "", fmt.Errorf("decode %s: %w", kind, err)
	}
	return streamer, format, kind, nil
}
