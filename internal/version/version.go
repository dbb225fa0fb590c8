package version

// Set at build time with -ldflags "-X github.com/hamed0406/healthchecker/internal/version.Version=...".
var (
	Version = "1.0"
	Commit  = "none"
)
