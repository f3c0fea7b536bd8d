package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

// VersionInfo contains build information for the version command.
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version:   Version,
				Commit:    BuildCommit,
				Date:      BuildDate,
				GoVersion: runtime.Version(),
				OS:        runtime.GOOS,
				Arch:      runtime.GOARCH,
			}
			if a.jsonOutput {
				return a.out.JSON(info)
			}
			a.out.Info("charkit %s", info.Version)
			a.out.Info("  Commit:     %s", info.Commit)
			a.out.Info("  Built:      %s", info.Date)
			a.out.Info("  Go version: %s", info.GoVersion)
			a.out.Info("  OS/Arch:    %s/%s", info.OS, info.Arch)
			return nil
		},
	}
}
