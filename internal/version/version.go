// Package version reports build metadata, injected with
//
//	go build -ldflags "-X github.com/katalvlaran/constellation/internal/version.VersionTag=v0.3.0 \
//	  -X github.com/katalvlaran/constellation/internal/version.CommitHash=$(git rev-parse HEAD) \
//	  -X github.com/katalvlaran/constellation/internal/version.BuildTime=$(date -u +%FT%TZ)"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at link time.
var (
	VersionTag = "dev"
	CommitHash = ""
	BuildTime  = ""
)

// Info is the reported build metadata.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	Platform  string `json:"platform"`
	GoVersion string `json:"goVersion"`
}

// Get collects build metadata. Without ldflags the commit falls back to the
// VCS stamp the Go toolchain embeds.
func Get() Info {
	info := Info{
		Version:   VersionTag,
		Commit:    CommitHash,
		BuildTime: BuildTime,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion: runtime.Version(),
	}
	if info.Commit == "" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				switch s.Key {
				case "vcs.revision":
					info.Commit = s.Value
				case "vcs.time":
					if info.BuildTime == "" {
						info.BuildTime = s.Value
					}
				}
			}
		}
	}
	return info
}

// Short is the abbreviated commit hash.
func (i Info) Short() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

func (i Info) String() string {
	s := "constellation " + i.Version
	if c := i.Short(); c != "" {
		s += fmt.Sprintf(" (%s)", c)
	}
	if i.BuildTime != "" {
		s += " built " + i.BuildTime
	}
	return s
}
