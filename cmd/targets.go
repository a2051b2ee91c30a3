package cmd

import (
	"strings"

	cmdutil "github.com/puppetlabs/dateto/cmd/util"
	"github.com/puppetlabs/dateto/config"
	"github.com/puppetlabs/dateto/munge"
	"github.com/spf13/cobra"
)

func targetsCommand() *cobra.Command {
	targetsCmd := &cobra.Command{
		Use:   "targets",
		Short: "Lists the conversion targets and their aliases",
		Long: `Lists the conversion targets. Any alias can be passed to convert's --to
flag; aliases are case-insensitive.`,
		Args:   cobra.NoArgs,
		PreRun: bindTargetsArgs,
		RunE:   toRunE(targetsMain),
	}
	targetsCmd.Flags().StringP("output", "o", cmdutil.Text, "Set the output format (text, json, or yaml)")
	return targetsCmd
}

func bindTargetsArgs(cmd *cobra.Command, args []string) {
	bindFlag(config.OutputKey, cmd.Flags().Lookup("output"))
}

type targetListing struct {
	Target      string   `json:"target"`
	Aliases     []string `json:"aliases"`
	Description string   `json:"description"`
}

func targetsMain(cmd *cobra.Command, args []string) exitCode {
	marshaller, err := cmdutil.NewMarshaller(config.Output())
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}

	var listings []targetListing
	for _, info := range munge.Targets() {
		listings = append(listings, targetListing{
			Target:      info.Target.String(),
			Aliases:     info.Aliases,
			Description: info.Description,
		})
	}

	if marshaller == nil {
		headers := []cmdutil.ColumnHeader{
			{ShortName: "target", FullName: "TARGET"},
			{ShortName: "aliases", FullName: "ALIASES"},
			{ShortName: "description", FullName: "DESCRIPTION"},
		}
		rows := make([][]string, len(listings))
		for i, l := range listings {
			rows[i] = []string{l.Target, strings.Join(l.Aliases, ", "), l.Description}
		}
		cmdutil.Print(cmdutil.FormatTable(headers, rows))
		return exitCode{0}
	}

	marshalled, err := marshaller.Marshal(listings)
	if err != nil {
		cmdutil.ErrPrintf("error marshalling the targets: %v\n", err)
		return exitCode{1}
	}
	cmdutil.Println(strings.TrimRight(marshalled, "\n"))
	return exitCode{0}
}
