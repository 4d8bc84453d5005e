// based on https://github.com/kubernetes-sigs/cluster-api/version/version.go

// Package version implements version handling code.
package version

import (
	"fmt"
	"io"
	"runtime"
)

var (
	gitVersion = "devel" // semantic version, derived by build scripts
	gitCommit  string    // sha1 from git, output of $(git rev-parse HEAD)
)

// Info exposes information about the version used for the current running code.
type Info struct {
	GitVersion string `json:"gitVersion,omitempty"`
	GitCommit  string `json:"gitCommit,omitempty"`
	GoVersion  string `json:"goVersion,omitempty"`
	Platform   string `json:"platform,omitempty"`
}

// Get returns an Info object with all the information about the current running code.
func Get() *Info {
	return &Info{
		GitVersion: gitVersion,
		GitCommit:  gitCommit,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (i *Info) String() string {
	return fmt.Sprintf("version: %s, commit: %s, go: %s, platform: %s", i.GitVersion, i.GitCommit, i.GoVersion, i.Platform)
}

func (i *Info) Print(w io.Writer, name string) {
	fmt.Fprintf(w, "%s info - %s\n", name, i)
}
