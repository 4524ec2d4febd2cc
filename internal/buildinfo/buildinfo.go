// Package buildinfo carries the firmware build identity, set at build time:
//
//	-ldflags "-X bitdog/internal/buildinfo.Version=v1.2.0 -X bitdog/internal/buildinfo.Commit=abc123"
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// shortMax is what fits the splash line next to "build ".
const shortMax = 12

// Short returns a compact build identifier for the splash and window title.
func Short() string {
	id := "dev"
	switch {
	case Version != "" && Version != "dev":
		id = Version
	case Commit != "" && Commit != "unknown":
		id = Commit
	}
	if len(id) > shortMax {
		id = id[:shortMax]
	}
	return id
}

// Describe returns the full identity for the boot log.
func Describe() string {
	return Version + " commit=" + Commit + " date=" + Date
}
