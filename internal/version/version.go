package version

import "strings"

// Version is stamped by the release build:
// -ldflags "-X github.com/wrenware/natter/internal/version.Version=vX.Y.Z"
var Version string

// Current returns the stamped version, or "dev" for unstamped builds.
func Current() string {
	if v := strings.TrimSpace(Version); v != "" {
		return v
	}
	return "dev"
}
