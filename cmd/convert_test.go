package cmd

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/puppetlabs/dateto/cmd/internal/cmdtest"
	"github.com/puppetlabs/dateto/munge"
	"github.com/stretchr/testify/suite"
)

type ConvertTestSuite struct {
	*cmdtest.Suite
}

func (s *ConvertTestSuite) TestConvert_ToEpoch() {
	s.Equal(0, run([]string{"convert", "--to", "epoch", "2021-01-01"}))
	s.Equal("1609459200\n", s.Stdout())
	s.Empty(s.Stderr())
}

func (s *ConvertTestSuite) TestConvert_DefaultTargetIsString() {
	s.Equal(0, run([]string{"convert", "1609459200"}))
	s.Equal("2021-01-01T00:00:00+00:00\n", s.Stdout())
}

func (s *ConvertTestSuite) TestConvert_TargetFromEnvironment() {
	os.Setenv("DATETO_TARGET", "Unix")
	defer os.Unsetenv("DATETO_TARGET")

	s.Equal(0, run([]string{"convert", "1609459200.7"}))
	s.Equal("1609459200\n", s.Stdout())
}

func (s *ConvertTestSuite) TestConvert_TruncatesLongEpochs() {
	s.Equal(0, run([]string{"convert", "-t", "timestamp", "16000000000", "1609459200123"}))
	s.Equal("1600000000\n1609459200\n", s.Stdout())
}

func (s *ConvertTestSuite) TestConvert_PreservesInputOrder() {
	s.Equal(0, run([]string{"convert", "-p", "3", "-t", "epoch", "3", "2021-01-01", "1", "2.5", "2021-02"}))
	s.Equal("3\n1609459200\n1\n2\n1612137600\n", s.Stdout())
}

func (s *ConvertTestSuite) TestConvert_EmptyValuesAreUnchanged() {
	s.Equal(0, run([]string{"convert", "-t", "datetime", "0", "0.0"}))
	s.Equal("0\n0\n", s.Stdout())
}

func (s *ConvertTestSuite) TestConvert_NegativeEpochAfterSeparator() {
	s.Equal(0, run([]string{"convert", "-t", "datetime", "--", "-86400"}))
	s.Equal("1969-12-31T00:00:00+00:00\n", s.Stdout())
}

func (s *ConvertTestSuite) TestConvert_OutputFlagOverridesEnvironment() {
	os.Setenv("DATETO_OUTPUT", "json")
	defer os.Unsetenv("DATETO_OUTPUT")

	s.Equal(0, run([]string{"convert", "-o", "text", "-t", "epoch", "2021-01-01"}))
	s.Equal("1609459200\n", s.Stdout())
}

func (s *ConvertTestSuite) TestConvert_NaN() {
	s.Equal(1, run([]string{"convert", "-t", "epoch", "NaN", "1"}))
	s.Equal("1\n", s.Stdout())
	s.Regexp("^NaN: .*not a finite number", s.Stderr())
}

func (s *ConvertTestSuite) TestConvert_InvalidTarget() {
	s.Equal(1, run([]string{"convert", "--to", "banana", "2021-01-01"}))
	s.Regexp(`"banana" is not a valid target`, s.Stderr())
	s.Empty(s.Stdout())
}

func (s *ConvertTestSuite) TestConvert_InvalidOutput() {
	s.Equal(1, run([]string{"convert", "-o", "xml", "2021-01-01"}))
	s.Regexp("xml format is not supported", s.Stderr())
}

func (s *ConvertTestSuite) TestConvert_InvalidAs() {
	s.Equal(1, run([]string{"convert", "--as", "bool", "2021-01-01"}))
	s.Regexp("bool is not a valid --as value", s.Stderr())
}

func (s *ConvertTestSuite) TestConvert_PartialFailure() {
	s.Equal(1, run([]string{"convert", "-t", "epoch", "not a date at all", "2021-01-01"}))
	s.Equal("1609459200\n", s.Stdout())
	s.Regexp("^not a date at all: ", s.Stderr())
}

func (s *ConvertTestSuite) TestConvert_AsInt() {
	s.Equal(1, run([]string{"convert", "--as", "int", "-t", "epoch", "2021-01-01", "1609459200"}))
	s.Equal("1609459200\n", s.Stdout())
	s.Regexp(`2021-01-01: "2021-01-01" is not an integer`, s.Stderr())
}

func (s *ConvertTestSuite) TestConvert_AsFloat() {
	s.Equal(0, run([]string{"convert", "--as", "float", "-t", "string", "1609459200"}))
	s.Equal("2021-01-01T00:00:00+00:00\n", s.Stdout())
}

func (s *ConvertTestSuite) TestConvert_ReadsStdin() {
	s.SetStdin("2021-01-01\n\n  1609459200  \n", false)
	s.Equal(0, run([]string{"convert", "-t", "epoch"}))
	s.Equal("1609459200\n1609459200\n", s.Stdout())
}

func (s *ConvertTestSuite) TestConvert_EmptyStdin() {
	s.SetStdin("\n\n", false)
	s.Equal(1, run([]string{"convert"}))
	s.Regexp("no values were read from stdin", s.Stderr())
}

func (s *ConvertTestSuite) TestConvert_NoValuesOnTerminal() {
	s.Equal(1, run([]string{"convert"}))
	s.Regexp("no values were given", s.Stderr())
}

func (s *ConvertTestSuite) TestConvert_JSON() {
	s.Equal(0, run([]string{"convert", "-o", "json", "-t", "datetime", "1609459200"}))
	s.Equal(`{
  "input": "1609459200",
  "kind": "time",
  "result": "2021-01-01T00:00:00+00:00"
}
`, s.Stdout())
}

func (s *ConvertTestSuite) TestConvert_YAML() {
	s.Equal(0, run([]string{"convert", "-o", "yaml", "-t", "epoch", "2021-01-01", "1609459200.7"}))
	s.Regexp(`(?m)^- input: "?2021-01-01"?\n  kind: epoch\n  result: 1609459200\n`, s.Stdout())
	s.Regexp(`(?m)^- input: "1609459200\.7"\n  kind: epoch\n  result: 1609459200\n`, s.Stdout())
}

func (s *ConvertTestSuite) TestConvert_ConverterError() {
	converter := &cmdtest.MockConverter{}
	converter.On("Convert", munge.Epoch(5), munge.TargetEpoch).Return(munge.Value{}, errors.New("boom"))
	converter.On("Convert", munge.Text("later"), munge.TargetEpoch).Return(munge.Epoch(10), nil)
	s.UseConverter(converter)

	s.Equal(1, run([]string{"convert", "-t", "epoch", "5", "later"}))
	s.Equal("10\n", s.Stdout())
	s.Equal("5: boom\n", s.Stderr())
	converter.AssertExpectations(s.T())
}

func (s *ConvertTestSuite) TestRoot_InvalidLogLevel() {
	s.Equal(1, run([]string{"--loglevel", "loud", "version"}))
	s.Regexp("invalid --loglevel: loud is not a valid level", s.Stderr())
}

func (s *ConvertTestSuite) TestRoot_MissingConfigFile() {
	s.Equal(1, run([]string{"--config", "/nonexistent/dateto.yaml", "version"}))
	s.Regexp("could not read the config from /nonexistent/dateto.yaml", s.Stderr())
}

func (s *ConvertTestSuite) TestTargets() {
	s.Equal(0, run([]string{"targets"}))
	s.Regexp(`^TARGET\s+ALIASES\s+DESCRIPTION`, s.Stdout())
	s.Regexp(`\ntimestamp\s+timestamp, epoch, int, unix\s+UTC epoch seconds`, s.Stdout())
	s.Regexp(`\ndatetime\s+datetime, datetime\.time, date\s+UTC calendar datetime`, s.Stdout())
	s.Regexp(`\nstr\s+str, string\s+ISO-8601`, s.Stdout())
}

func (s *ConvertTestSuite) TestTargets_JSON() {
	s.Equal(0, run([]string{"targets", "-o", "json"}))
	s.Regexp(`"target": "timestamp"`, s.Stdout())
	s.Regexp(`"datetime\.time"`, s.Stdout())
}

func (s *ConvertTestSuite) TestTargets_OutputFromEnvironment() {
	os.Setenv("DATETO_OUTPUT", "json")
	defer os.Unsetenv("DATETO_OUTPUT")

	s.Equal(0, run([]string{"targets"}))
	s.Regexp(`^\[\n  \{\n    "target": "timestamp"`, s.Stdout())
}

func (s *ConvertTestSuite) TestTargets_OutputFromConfigFile() {
	dir, err := ioutil.TempDir("", "dateto-targets")
	s.Require().NoError(err)
	defer os.RemoveAll(dir)
	file := filepath.Join(dir, "dateto.yaml")
	s.Require().NoError(ioutil.WriteFile(file, []byte("output: yaml\n"), 0600))

	s.Equal(0, run([]string{"--config", file, "targets"}))
	s.Regexp(`(?m)^- aliases:\n  - timestamp\n`, s.Stdout())
}

func (s *ConvertTestSuite) TestVersion() {
	s.Equal(0, run([]string{"version"}))
	s.Equal("unknown\n", s.Stdout())
}

func TestConvert(t *testing.T) {
	suite.Run(t, &ConvertTestSuite{Suite: new(cmdtest.Suite)})
}
