package version

import (
	"bytes"
	"encoding/json"
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/flarebyte/demo/internal/buildinfo"
	"github.com/flarebyte/demo/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func runVersion(t *testing.T, args ...string) (string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{}, args...))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("run: %v", err)
	}
	return stdout.String(), stderr.String()
}

func TestVersionDefaultOutputStable(t *testing.T) {
	testutil.ClearBuildInfo(t)

	stdout, stderr := runVersion(t)
	if stdout != "demo dev\n" {
		t.Fatalf("unexpected output: %q", stdout)
	}
	if stderr != "" {
		t.Fatalf("unexpected stderr: %q", stderr)
	}
}

func TestVersionShortWinsOverJSON(t *testing.T) {
	testutil.ClearBuildInfo(t)
	buildinfo.Version = "1.2.3"
	buildinfo.Commit = "0123456789"

	stdout, _ := runVersion(t, "--short", "--json")
	if stdout != "demo 1.2.3 (commit=0123456)\n" {
		t.Fatalf("unexpected output: %q", stdout)
	}
}

func TestVersionJSON(t *testing.T) {
	testutil.ClearBuildInfo(t)
	testutil.StubToolchain(t, &debug.BuildInfo{
		GoVersion: "go1.24.1",
		Main:      debug.Module{Version: "(devel)"},
		Settings:  []debug.BuildSetting{{Key: "vcs.modified", Value: "true"}},
	})
	buildinfo.Version = "1.2.3"
	buildinfo.Date = "2026-02-09"
	buildinfo.BuiltBy = "release"

	stdout, stderr := runVersion(t, "--json")
	if stderr != "demo version: 1.2.3 (date=2026-02-09)\n" {
		t.Fatalf("unexpected stderr: %q", stderr)
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, stdout)
	}
	want := map[string]any{
		"version":  "1.2.3",
		"commit":   "",
		"date":     "2026-02-09",
		"built_by": "release",
		"modified": true,
		"go":       "go1.24.1",
		"go_os":    runtime.GOOS,
		"go_arch":  runtime.GOARCH,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected JSON (-want +got):\n%s", diff)
	}

	again, _ := runVersion(t, "--json")
	if again != stdout {
		t.Fatalf("JSON output not stable:\n%s\n%s", stdout, again)
	}
}
