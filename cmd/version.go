package cmd

import (
	cmdutil "github.com/puppetlabs/dateto/cmd/util"
	"github.com/puppetlabs/dateto/cmd/version"
	"github.com/spf13/cobra"
)

func versionCommand() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print dateto version",
		Args:  cobra.NoArgs,
		RunE:  toRunE(versionMain),
	}
	return versionCmd
}

func versionMain(cmd *cobra.Command, args []string) exitCode {
	cmdutil.Println(version.BuildVersion)
	return exitCode{0}
}
