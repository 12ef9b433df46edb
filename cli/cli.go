package cli

// Version, Commit and Date are an alternate ldflags target kept for external
// build scripts, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/demo/cli.Version=1.2.3' -X 'github.com/flarebyte/demo/cli.Date=2026-02-09'"
//
// buildinfo consults them only when its own variables are empty.
var (
	Version string
	Commit  string
	Date    string
)
