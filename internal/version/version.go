// Package version carries the build identity stamped in by the linker.
package version

import "fmt"

// Populated via -ldflags at build time; see the Build mage target.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String returns the one-line form printed by `zush version`.
func String() string {
	return fmt.Sprintf("zush %s (%s, built %s)", Version, CommitHash, BuildDate)
}
