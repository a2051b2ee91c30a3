// Package cmd implements dateto's CLI using https://github.com/spf13/cobra.
package cmd

import (
	"os"

	cmdutil "github.com/puppetlabs/dateto/cmd/util"
	"github.com/puppetlabs/dateto/cmd/version"
	"github.com/puppetlabs/dateto/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Unfortunately, cobra.Command.Execute() can only return error objects.
// Thus, the only way for us to let each command configure its own exit
// code is to wrap that value in an error object. This should be OK since
// we want the commands to handle their own errors.
type exitCode struct {
	value int
}

// Required to implement the error interface
func (e exitCode) Error() string {
	return ""
}

// This munging's necessary to ensure that all commandMain functions return
// an exit code while also letting them be used as RunE functions that can
// be passed into Cobra. Otherwise, Go's type-checker will complain even though
// exitCode is an error object.
type commandMain func(cmd *cobra.Command, args []string) exitCode
type runE func(cmd *cobra.Command, args []string) error

func toRunE(main commandMain) runE {
	return func(cmd *cobra.Command, args []string) error {
		return main(cmd, args)
	}
}

func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dateto",
		Short: "Normalizes dates to UTC epoch seconds, datetimes or ISO-8601 strings",
		Long: `Normalizes date values to one of three UTC representations, rounded down
to whole seconds: epoch seconds, a calendar datetime, or an ISO-8601 string.
Input can be free-form date text, epoch seconds (integer or fractional) or
an ISO-8601 datetime.`,
		PersistentPreRunE: initRoot,
		// Need to set these so that Cobra will not output the usage +
		// error object when Execute() returns an error, which will always
		// happen in our case because the exitCode object is technically
		// an error.
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.BuildVersion,
	}

	rootCmd.PersistentFlags().String("config", config.DefaultFile(), "Read defaults from this YAML file")
	rootCmd.PersistentFlags().String("loglevel", "warn", "Set the logging level (warn, info, debug, or trace)")
	bindFlag(config.LogLevelKey, rootCmd.PersistentFlags().Lookup("loglevel"))

	rootCmd.AddCommand(convertCommand())
	rootCmd.AddCommand(targetsCommand())
	rootCmd.AddCommand(versionCommand())

	return rootCmd
}

func initRoot(cmd *cobra.Command, args []string) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		panic(err.Error())
	}
	if err := config.ReadFrom(configFile); err != nil {
		return err
	}
	if err := cmdutil.InitLogger(config.LogLevel()); err != nil {
		return errors.Wrap(err, "invalid --loglevel")
	}
	return nil
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err.Error())
	}
}

// Execute executes the root command, returning the exit code
func Execute() int {
	return run(os.Args[1:])
}

func run(args []string) int {
	rootCmd := rootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOutput(cmdutil.Stdout)

	err := rootCmd.Execute()
	if err == nil {
		// This can happen if the user invokes `dateto` without any
		// arguments, or if they invoke a help command.
		return 0
	}

	exitCode, ok := err.(exitCode)
	if !ok {
		// err is something Cobra-related, like e.g. a malformed
		// flag. Print the error, then return.
		cmdutil.ErrPrintf("Error: %v\n", err)
		return 1
	}

	return exitCode.value
}
