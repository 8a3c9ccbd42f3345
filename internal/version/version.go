package version

import (
	"fmt"
	"runtime"
)

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/symmetrysyndicate/symfetch/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/symmetrysyndicate/symfetch/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/symmetrysyndicate/symfetch/internal/version.Date={{.Date}}
)

// Detailed renders the multi-line output of `symfetch version`
func Detailed() string {
	return fmt.Sprintf("symfetch version %s\n  commit: %s\n  built:  %s\n  go:     %s %s/%s\n",
		Version, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
