// Package buildinfo reports the version baked into a waypoint binary.
//
// The variables are overwritten at link time:
//
//	go build -ldflags "-X github.com/matzehuels/waypoint/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/waypoint/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/waypoint/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/waypoint
package buildinfo

import "fmt"

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"

	// Commit is the abbreviated git revision.
	Commit = "none"

	// Date is the UTC build time.
	Date = "unknown"
)

// Info is the build metadata in a form suitable for JSON.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build metadata.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String returns the build metadata as three lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, %s)\n", Version, Commit, Date)
}
