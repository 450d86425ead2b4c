package app

import "fmt"

// Set with -ldflags "-X github.com/ranajunaid001/second-braind-junaid/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version line printed at startup and by brainctl.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
