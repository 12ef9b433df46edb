// Package buildinfo exposes version metadata for the CLI. Values are injected at
// build time via -ldflags. The package also honors values set in the cli package
// (cli.Version/cli.Commit/cli.Date) for compatibility with external build scripts,
// and finally falls back to what the Go toolchain recorded in the binary.
package buildinfo

import (
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/flarebyte/demo/cli"
)

// NoVersion is reported when no build metadata carries a version.
const NoVersion = "No version information available"

var (
	// Version is the release version, e.g. 1.2.3. Empty when running from source.
	Version = ""
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 or similar (optional).
	Date = ""
	// BuiltBy is an optional builder identifier (optional).
	BuiltBy = ""
)

// ReadToolchain reads the metadata the Go toolchain embedded in the binary.
// Tests replace it: binaries built by go test carry no stable module version.
var ReadToolchain = debug.ReadBuildInfo

// Source names where a version string came from.
type Source string

const (
	SourceLdflags   Source = "ldflags"
	SourceLegacy    Source = "cli"
	SourceToolchain Source = "toolchain"
	SourceNone      Source = "none"
)

// Info is the resolved build metadata.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	BuiltBy   string `json:"built_by"`
	Modified  bool   `json:"modified"`
	GoVersion string `json:"go"`
	GOOS      string `json:"go_os"`
	GOARCH    string `json:"go_arch"`
	Source    Source `json:"-"`
}

// Read resolves build metadata. Missing values stay empty; Read never fails.
func Read() Info {
	info := Info{
		GoVersion: runtime.Version(),
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		BuiltBy:   BuiltBy,
		Source:    SourceNone,
	}

	var settings map[string]string
	var mainVersion string
	if bi, ok := ReadToolchain(); ok && bi != nil {
		mainVersion = bi.Main.Version
		if bi.GoVersion != "" {
			info.GoVersion = bi.GoVersion
		}
		settings = make(map[string]string, len(bi.Settings))
		for _, s := range bi.Settings {
			settings[s.Key] = s.Value
		}
	}

	switch {
	case Version != "":
		info.Version, info.Source = Version, SourceLdflags
	case cli.Version != "":
		info.Version, info.Source = cli.Version, SourceLegacy
	case mainVersion != "" && mainVersion != "(devel)":
		info.Version, info.Source = mainVersion, SourceToolchain
	}

	info.Commit = firstNonEmpty(Commit, cli.Commit, settings["vcs.revision"])
	info.Date = firstNonEmpty(Date, cli.Date, settings["vcs.time"])
	info.Modified = settings["vcs.modified"] == "true"
	return info
}

// ImplementationVersion returns the version injected by the packaging step, or
// NoVersion when the binary carries none.
func ImplementationVersion() string {
	if v := Read().Version; v != "" {
		return v
	}
	return NoVersion
}

// Summary returns a concise single-line version string.
func Summary() string {
	return Read().Summary()
}

// Summary renders i as "<version> (commit=abc1234, date=...)". An unknown
// version renders as "dev".
func (i Info) Summary() string {
	v := i.Version
	if v == "" {
		v = "dev"
	}

	parts := make([]string, 0, 2)
	if i.Commit != "" {
		c := i.Commit
		if len(c) > 7 {
			c = c[:7]
		}
		if i.Modified {
			c += "-dirty"
		}
		parts = append(parts, "commit="+c)
	}
	if i.Date != "" {
		parts = append(parts, "date="+i.Date)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
