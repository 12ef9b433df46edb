package testutil

import (
	"runtime/debug"
	"testing"

	"github.com/flarebyte/demo/cli"
	"github.com/flarebyte/demo/internal/buildinfo"
)

// ClearBuildInfo blanks every build metadata source for the duration of the
// test, so the binary looks like it runs from unpackaged source.
func ClearBuildInfo(t *testing.T) {
	t.Helper()
	StubToolchain(t, nil)
	oldVersion, oldCommit, oldDate, oldBuiltBy := buildinfo.Version, buildinfo.Commit, buildinfo.Date, buildinfo.BuiltBy
	oldCLIVersion, oldCLICommit, oldCLIDate := cli.Version, cli.Commit, cli.Date
	t.Cleanup(func() {
		buildinfo.Version, buildinfo.Commit, buildinfo.Date, buildinfo.BuiltBy = oldVersion, oldCommit, oldDate, oldBuiltBy
		cli.Version, cli.Commit, cli.Date = oldCLIVersion, oldCLICommit, oldCLIDate
	})
	buildinfo.Version, buildinfo.Commit, buildinfo.Date, buildinfo.BuiltBy = "", "", "", ""
	cli.Version, cli.Commit, cli.Date = "", "", ""
}

// StubToolchain makes buildinfo see bi as the toolchain-embedded metadata.
// A nil bi reports none.
func StubToolchain(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	old := buildinfo.ReadToolchain
	t.Cleanup(func() { buildinfo.ReadToolchain = old })
	buildinfo.ReadToolchain = func() (*debug.BuildInfo, bool) {
		return bi, bi != nil
	}
}
