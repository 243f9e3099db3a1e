package version

// Set with -ldflags "-X github.com/curtis3389/advent-2023/pkg/version.Version=..."
var (
	Version   = "UNKNOWN"
	GitCommit = "UNKNOWN"
)
