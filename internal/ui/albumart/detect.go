package albumart

import (
	"os"
	"strings"
)

// EnvProtocol overrides terminal detection: "kitty" or "none".
const EnvProtocol = "ONESTOP_IMAGE_PROTOCOL"

// Detect reports whether cover art can be displayed in this terminal.
func Detect() bool {
	switch os.Getenv(EnvProtocol) {
	case "kitty":
		return true
	case "none":
		return false
	}
	return IsKittySupported()
}

// IsKittySupported checks if the terminal supports Kitty graphics protocol.
func IsKittySupported() bool {
	// Contour sets CONTOUR_PROFILE but does not implement the protocol, and
	// can inherit variables from a Kitty-capable parent terminal.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if os.Getenv("TERM") == "xterm-kitty" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	// KONSOLE_VERSION is like "220401" for 22.04.01
	if version := os.Getenv("KONSOLE_VERSION"); len(version) >= 4 && version[:4] >= "2204" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}
