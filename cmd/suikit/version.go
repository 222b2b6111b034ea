package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set at release time with
//
//	go build -ldflags "-X main.version=v1.0.0 -X main.commit=$(git rev-parse --short HEAD) -X main.date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/suikit
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, c, d := resolveBuildInfo(debug.ReadBuildInfo())
			fmt.Fprintf(cmd.OutOrStdout(), "suikit %s\ncommit: %s\nbuilt: %s\n", v, c, d)
			return nil
		},
	}

	return cmd
}

// resolveBuildInfo fills whatever the linker left at its default from the
// module version and VCS stamp the toolchain embeds, so `go install` builds
// still report where they came from.
func resolveBuildInfo(info *debug.BuildInfo, ok bool) (string, string, string) {
	v, c, d := version, commit, date
	if !ok || info == nil {
		return v, c, d
	}
	if v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if c == "none" {
				c = setting.Value
			}
		case "vcs.time":
			if d == "unknown" {
				d = setting.Value
			}
		}
	}
	return v, c, d
}
