package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_UnknownConfigVersion(t *testing.T) {
	d := t.TempDir()
	for _, tc := range []struct{ file, content string }{
		{"unknown_version.cue", "{\n  configVersion: \"2\"\n  name: \"x\"\n}\n"},
		{"unknown_version.yaml", "configVersion: \"2\"\nname: x\n"},
	} {
		cfg := filepath.Join(d, tc.file)
		if err := os.WriteFile(cfg, []byte(tc.content), 0o644); err != nil {
			t.Fatalf("write cfg: %v", err)
		}
		_, err := Load(cfg)
		if err == nil {
			t.Fatalf("%s: expected error", tc.file)
		}
		want := "unsupported configVersion: \"2\" (supported: 1)"
		if err.Error() != want {
			t.Fatalf("%s: unexpected error\nwant: %s\n got: %s", tc.file, want, err.Error())
		}
	}
}

func TestIsSupportedConfigVersion(t *testing.T) {
	if !IsSupportedConfigVersion(CurrentConfigVersion) {
		t.Fatalf("current version must be supported")
	}
	if IsSupportedConfigVersion("") {
		t.Fatalf("empty version must not be supported")
	}
}
