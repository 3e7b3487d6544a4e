package version

import "strings"

// Build variables to be set via ldflags during compilation
// These variables are injected by GoReleaser with consistent paths:
// -X 'github.com/ironbus-io/ironbus-core/pkg/version.Version=v1.0.0'
// -X 'github.com/ironbus-io/ironbus-core/pkg/version.CommitHash=abc123'
// -X 'github.com/ironbus-io/ironbus-core/pkg/version.BuildDate=2024-01-01T00:00:00Z'
var (
	// Version is the semantic version of the library (e.g., "v1.0.0")
	Version = "unknown"
	// CommitHash is the git commit hash used to build the binary
	CommitHash = "unknown"
	// BuildDate is the timestamp when the binary was built (RFC3339 format)
	BuildDate = "unknown"
)

// Info returns build information in a structured format
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildDate  string `json:"build_date"`
}

// Get returns the current build information
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildDate:  BuildDate,
	}
}

// CompatibilityTag returns the version component processes stamp into the
// resources they share. Shared-memory layouts may change between minor
// releases, so the tag is the major.minor pair; two processes interoperate
// only when their tags match. Builds without an injected version report
// the raw Version string, which still only matches itself.
func CompatibilityTag() string {
	raw := strings.TrimPrefix(Version, "v")
	parts := strings.SplitN(raw, ".", 3)
	if len(parts) < 2 {
		return Version
	}
	return parts[0] + "." + parts[1]
}
