package common

import (
	"github.com/ternarybob/banner"
)

// Version is the CLI version, overridable at build time via -ldflags.
var Version = "0.1.0"

// PrintBanner displays the application banner.
func PrintBanner() {
	banner.PrintSimple("PlaceSearch", Version)
}
