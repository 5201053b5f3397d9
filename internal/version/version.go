package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Build metadata for the tjc CLI. Override at build time with
//
//	-ldflags "-X tinyjava/internal/version.Version=0.2.0 -X tinyjava/internal/version.GitCommit=$(git rev-parse HEAD)"
var (
	// Version is the semantic version, without a leading "v".
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Info is the machine-readable form printed by "tjc version --format json".
type Info struct {
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

// Current snapshots the build metadata.
func Current() Info {
	return Info{
		Version:    Version,
		GitCommit:  GitCommit,
		GitMessage: GitMessage,
		BuildDate:  BuildDate,
	}
}

// Pretty renders Version with each semver component in its own colour.
// Versions that are not major.minor.patch are returned unchanged.
func Pretty(colored bool) string {
	core, suffix := Version, ""
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core, suffix = core[:i], core[i:]
	}
	parts := strings.Split(core, ".")
	if len(parts) != 3 || !colored {
		return Version
	}
	return fmt.Sprintf("%s.%s.%s%s",
		paint(majorColor, parts[0]),
		paint(minorColor, parts[1]),
		paint(patchColor, parts[2]),
		suffix,
	)
}

func paint(c *color.Color, s string) string {
	c.EnableColor()
	return c.Sprint(s)
}

// ShortCommit returns the first 12 characters of GitCommit.
func ShortCommit() string {
	if len(GitCommit) > 12 {
		return GitCommit[:12]
	}
	return GitCommit
}
