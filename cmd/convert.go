package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	cmdutil "github.com/puppetlabs/dateto/cmd/util"
	"github.com/puppetlabs/dateto/config"
	"github.com/puppetlabs/dateto/munge"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func convertCommand() *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert [<value>]...",
		Short: "Converts the given date values",
		Long: `Converts each value to the --to target and prints the results in order.

Values are read from stdin, one per line, when none are given and stdin is
not a terminal. By default each value is read as an integer if it is one,
then as a float, and otherwise as date text; use --as to force a kind.
Integers with more than 10 digits are assumed to be over-precise epoch
seconds and have their trailing digits dropped.

Empty values and zeros are printed back unchanged. Negative epochs look
like flags, so pass them after a -- separator.`,
		Example: `  dateto convert --to epoch 2021-01-01
  dateto convert 1609459200 1609459200123
  dateto convert -t datetime -- -86400
  echo "2021-01-01 12:30" | dateto convert -t datetime -o json`,
		PreRun: bindConvertArgs,
		RunE:   toRunE(convertMain),
	}
	convertCmd.Flags().StringP("to", "t", "string", "Set the target. Run dateto targets to list them")
	convertCmd.Flags().StringP("output", "o", cmdutil.Text, "Set the output format (text, json, or yaml)")
	convertCmd.Flags().IntP("parallel", "p", 4, "Set how many values are converted at once")
	convertCmd.Flags().StringP("as", "a", "auto", "Read values as auto, text, int, or float")
	return convertCmd
}

// Flags are bound when the command runs rather than when it's built, since
// targets binds its own --output to the same key.
func bindConvertArgs(cmd *cobra.Command, args []string) {
	bindFlag(config.TargetKey, cmd.Flags().Lookup("to"))
	bindFlag(config.OutputKey, cmd.Flags().Lookup("output"))
	bindFlag(config.ParallelKey, cmd.Flags().Lookup("parallel"))
}

type conversion struct {
	Input  string      `json:"input"`
	Kind   string      `json:"kind"`
	Result interface{} `json:"result"`
	value  munge.Value
	err    error
}

type classifier func(s string) (munge.Value, error)

var classifiers = map[string]classifier{
	"auto": func(s string) (munge.Value, error) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return munge.Epoch(n), nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return munge.Float(f), nil
		}
		return munge.Text(s), nil
	},
	"text": func(s string) (munge.Value, error) {
		return munge.Text(s), nil
	},
	"int": func(s string) (munge.Value, error) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return munge.Value{}, fmt.Errorf("%q is not an integer", s)
		}
		return munge.Epoch(n), nil
	},
	"float": func(s string) (munge.Value, error) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return munge.Value{}, fmt.Errorf("%q is not a number", s)
		}
		return munge.Float(f), nil
	},
}

func convertMain(cmd *cobra.Command, args []string) exitCode {
	as, err := cmd.Flags().GetString("as")
	if err != nil {
		panic(err.Error())
	}
	classify, ok := classifiers[as]
	if !ok {
		cmdutil.ErrPrintf("%v is not a valid --as value. Valid values are auto, text, int, or float\n", as)
		return exitCode{1}
	}

	target, err := munge.ParseTarget(config.Target())
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}

	marshaller, err := cmdutil.NewMarshaller(config.Output())
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}

	inputs := args
	if len(inputs) == 0 {
		if cmdutil.StdinIsTerminal() {
			cmdutil.ErrPrintf("no values were given. Pass them as arguments or pipe them in on stdin\n")
			return exitCode{1}
		}
		inputs, err = readValues(cmdutil.Stdin)
		if err != nil {
			cmdutil.ErrPrintf("%v\n", err)
			return exitCode{1}
		}
	}

	converter, err := cmdutil.NewConverter()
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}

	log.Debugf("Converting %v value(s) to %v", len(inputs), target)
	results := make([]conversion, len(inputs))
	pool := cmdutil.NewPool(config.Parallel())
	for i, input := range inputs {
		i, input := i, input
		pool.Submit(func() {
			results[i] = convert(converter, classify, input, target)
		})
	}
	pool.Finish()

	ec := 0
	var succeeded []conversion
	for _, r := range results {
		if r.err != nil {
			ec = 1
			cmdutil.ErrPrintf("%v: %v\n", r.Input, r.err)
			continue
		}
		succeeded = append(succeeded, r)
	}

	if marshaller == nil {
		for _, r := range succeeded {
			cmdutil.Println(r.value.String())
		}
		return exitCode{ec}
	}

	if len(succeeded) == 0 {
		return exitCode{ec}
	}
	var toMarshal interface{} = succeeded
	if len(inputs) == 1 {
		toMarshal = succeeded[0]
	}
	marshalled, err := marshaller.Marshal(toMarshal)
	if err != nil {
		cmdutil.ErrPrintf("error marshalling the conversion results: %v\n", err)
		return exitCode{1}
	}
	cmdutil.Println(strings.TrimRight(marshalled, "\n"))
	return exitCode{ec}
}

func convert(converter cmdutil.Converter, classify classifier, input string, target munge.Target) conversion {
	r := conversion{Input: input}
	v, err := classify(input)
	if err != nil {
		r.err = err
		return r
	}
	log.Tracef("Read %q as %v", input, v.Kind())

	r.value, r.err = converter.Convert(v, target)
	if r.err != nil {
		return r
	}
	r.Kind = r.value.Kind().String()
	if r.value.Kind() == munge.KindTime {
		r.Result = r.value.String()
	} else {
		r.Result = r.value.Interface()
	}
	return r
}

func readValues(r io.Reader) ([]string, error) {
	var values []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		values = append(values, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read values from stdin")
	}
	if len(values) == 0 {
		return nil, errors.New("no values were read from stdin")
	}
	return values, nil
}
