package version

// Build metadata, set with -ldflags "-X"
var (
	GitSource   string
	GitTag      string
	GitBranch   string
	GitHash     string
	GoBuildTime string
)
