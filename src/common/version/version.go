// Package version provides build info and version strings
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// ProjectName is the binary name shown in banners and version output
const ProjectName = "employee-tracker"

// Build-time variables, set via ldflags
var (
	// Version is the semantic version (e.g., "1.0.0")
	Version = "dev"

	// Commit is the git commit hash
	Commit = "unknown"

	// BuildDate is the build timestamp
	BuildDate = "unknown"
)

// Info contains all version information
type Info struct {
	Version   string `yaml:"version"`
	Commit    string `yaml:"commit"`
	BuildDate string `yaml:"build_date"`
	GoVersion string `yaml:"go_version"`
	OS        string `yaml:"os"`
	Arch      string `yaml:"arch"`
}

// Get returns the current version info
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// String returns "employee-tracker 1.0.0 (linux/amd64)"
func (i Info) String() string {
	return fmt.Sprintf("%s %s (%s/%s)", ProjectName, i.Version, i.OS, i.Arch)
}

// Full returns a detailed multi-line version string
func (i Info) Full() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", ProjectName, i.Version)
	if i.IsDev() {
		sb.WriteString(" (development build)")
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Commit:     %s\n", ShortCommit(i.Commit))
	fmt.Fprintf(&sb, "Build Date: %s\n", i.BuildDate)
	fmt.Fprintf(&sb, "Go Version: %s\n", i.GoVersion)
	fmt.Fprintf(&sb, "OS/Arch:    %s/%s", i.OS, i.Arch)
	return sb.String()
}

// ShortCommit returns the first 7 characters of a commit hash
func ShortCommit(commit string) string {
	if len(commit) >= 7 {
		return commit[:7]
	}
	return commit
}

// IsDev returns true if this is a development build
func (i Info) IsDev() bool {
	return i.Version == "dev" || i.Version == "" || strings.HasSuffix(i.Version, "-dev")
}
