// Package version reports the folioshell build: the semantic version injected at link time and
// the VCS details the go tool records in the binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information that can be set at compile time via -ldflags
var (
	// Version is the semantic version of the application
	Version = "1.2.0"

	// GitCommit overrides the VCS revision recorded by the go tool
	GitCommit = ""

	// BuildDate overrides the VCS commit time recorded by the go tool
	BuildDate = ""
)

// Channel classifies a build.
type Channel string

const (
	// ChannelStable is a tagged release built from a clean tree.
	ChannelStable Channel = "stable"
	// ChannelPrerelease is a build whose version carries a prerelease suffix.
	ChannelPrerelease Channel = "prerelease"
	// ChannelDevelopment is a build without VCS information, from a modified tree, or with an
	// unparsable version.
	ChannelDevelopment Channel = "development"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	Built     string
	Modified  bool
	GoVersion string
	Platform  string

	semver *semver.Version
}

// Current collects the build information. Values injected with -ldflags take precedence over
// the build info recorded by the go tool.
func Current() Info {
	info := Info{
		Version:   strings.TrimPrefix(Version, "v"),
		Commit:    GitCommit,
		Built:     BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.Built == "" {
					info.Built = s.Value
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	if sv, err := semver.NewVersion(info.Version); err == nil {
		info.semver = sv
	}
	return info
}

// Valid reports whether Version parses as a semantic version.
func (i Info) Valid() bool {
	return i.semver != nil
}

// Base returns major.minor.patch, or the raw version when it does not parse.
func (i Info) Base() string {
	if i.semver == nil {
		return i.Version
	}
	return fmt.Sprintf("%d.%d.%d", i.semver.Major(), i.semver.Minor(), i.semver.Patch())
}

// Channel classifies the build.
func (i Info) Channel() Channel {
	switch {
	case i.semver == nil, i.Commit == "", i.Modified:
		return ChannelDevelopment
	case i.semver.Prerelease() != "":
		return ChannelPrerelease
	default:
		return ChannelStable
	}
}

// ShortCommit returns the first seven characters of the commit, marked when the tree was dirty.
func (i Info) ShortCommit() string {
	c := i.Commit
	if len(c) > 7 {
		c = c[:7]
	}
	if c != "" && i.Modified {
		c += "-dirty"
	}
	return c
}

// Short is the one-line form printed by the version command.
func (i Info) Short() string {
	var notes []string
	if c := i.ShortCommit(); c != "" {
		notes = append(notes, c)
	}
	if ch := i.Channel(); ch != ChannelStable {
		notes = append(notes, string(ch))
	}

	s := "folioshell v" + i.Version
	if len(notes) > 0 {
		s += " (" + strings.Join(notes, ", ") + ")"
	}
	return s
}

// Detailed is the multi-line form printed by `folio version`.
func (i Info) Detailed() string {
	lines := []string{
		"folioshell v" + i.Version,
		"Channel:  " + string(i.Channel()),
		"Commit:   " + orUnknown(i.Commit),
		"Built:    " + orUnknown(i.Built),
		"Go:       " + i.GoVersion,
		"Platform: " + i.Platform,
	}
	return strings.Join(lines, "\n")
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
