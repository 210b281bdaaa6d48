package gui

import (
	"os"
	"runtime"
)

// Hover capability is fixed for the lifetime of the process: touch-only
// platforms never grow a pointer mid-run.
var hoverSupported = detectHover(runtime.GOOS, os.Getenv("NATTER_FORCE_HOVER"))

// HoverSupported reports whether the platform delivers pointer hover events.
func HoverSupported() bool { return hoverSupported }

// detectHover treats touch-first platforms as hoverless. force accepts "1"
// or "0" to override either way when developing on mismatched hardware.
func detectHover(goos, force string) bool {
	switch force {
	case "1":
		return true
	case "0":
		return false
	}
	switch goos {
	case "android", "ios":
		return false
	}
	return true
}
