package version

import (
	"fmt"
	"runtime"
)

// Overridden via -ldflags at build time.
var (
	gitVersion = "v0.0.0-master"
	gitCommit  = ""
	buildDate  = "1970-01-01T00:00:00Z"
)

// Info holds the version information reported by the --version flag.
type Info struct {
	GitVersion string
	GitCommit  string
	BuildDate  string
	GoVersion  string
	Compiler   string
	Platform   string
}

func (i Info) String() string {
	return fmt.Sprintf("GitVersion: %s, GitCommit: %s, BuildDate: %s, GoVersion: %s, Compiler: %s, Platform: %s",
		i.GitVersion, i.GitCommit, i.BuildDate, i.GoVersion, i.Compiler, i.Platform)
}

// Get returns the version information of this build.
func Get() Info {
	return Info{
		GitVersion: gitVersion,
		GitCommit:  gitCommit,
		BuildDate:  buildDate,
		GoVersion:  runtime.Version(),
		Compiler:   runtime.Compiler,
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
