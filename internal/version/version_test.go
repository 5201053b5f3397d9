package version

import (
	"encoding/json"
	"strings"
	"testing"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	orig := Version
	Version = v
	t.Cleanup(func() { Version = orig })
}

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if got := Pretty(false); got != Version {
		t.Errorf("Pretty(false) = %q, want %q", got, Version)
	}
}

func TestVersion_PrettyColorsComponents(t *testing.T) {
	tests := []struct {
		version string
		suffix  string
	}{
		{"0.1.0", ""},
		{"1.2.3", ""},
		{"0.1.0-dev", "-dev"},
		{"1.2.3-rc.1+build.123", "-rc.1+build.123"},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			withVersion(t, tt.version)
			got := Pretty(true)
			if !strings.Contains(got, "\x1b[") {
				t.Errorf("Pretty(true) = %q has no colour codes", got)
			}
			if !strings.HasSuffix(got, tt.suffix) {
				t.Errorf("Pretty(true) = %q lost suffix %q", got, tt.suffix)
			}
		})
	}
}

func TestVersion_PrettyLeavesNonSemver(t *testing.T) {
	for _, v := range []string{"dev", "1.2", "nightly-2024"} {
		withVersion(t, v)
		if got := Pretty(true); got != v {
			t.Errorf("Pretty(true) = %q, want %q unchanged", got, v)
		}
	}
}

func TestVersion_CurrentJSON(t *testing.T) {
	withVersion(t, "1.2.3")
	origCommit, origDate := GitCommit, BuildDate
	t.Cleanup(func() { GitCommit, BuildDate = origCommit, origDate })
	GitCommit = "1234567890abcdef1234567890abcdef12345678"
	BuildDate = ""

	data, err := json.Marshal(Current())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"version":"1.2.3","git_commit":"1234567890abcdef1234567890abcdef12345678"}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
	if got := ShortCommit(); got != "1234567890ab" {
		t.Errorf("ShortCommit() = %q", got)
	}
}

func TestVersion_ShortCommitKeepsShortHashes(t *testing.T) {
	orig := GitCommit
	t.Cleanup(func() { GitCommit = orig })
	for _, c := range []string{"", "abc123", "a1b2c3d4e5f6"} {
		GitCommit = c
		if got := ShortCommit(); got != c {
			t.Errorf("ShortCommit() = %q, want %q", got, c)
		}
	}
}
