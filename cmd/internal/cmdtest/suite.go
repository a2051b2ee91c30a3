package cmdtest

import (
	"bytes"
	"io"
	"strings"

	"github.com/fatih/color"
	cmdutil "github.com/puppetlabs/dateto/cmd/util"
	"github.com/puppetlabs/dateto/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

// Suite represents a type that tests dateto subcommands
type Suite struct {
	suite.Suite
	stdout             *bytes.Buffer
	stderr             *bytes.Buffer
	oldStdout          io.Writer
	oldStderr          io.Writer
	oldColoredStderr   io.Writer
	oldStdin           io.Reader
	oldStdinIsTerminal func() bool
	oldNewConverter    func() (cmdutil.Converter, error)
	oldNoColor         bool
}

// SetupTest mocks Stdout/Stderr/ColoredStderr/Stdin and resets the config.
// Stdin starts out as an empty terminal.
func (s *Suite) SetupTest() {
	viper.Reset()
	s.Require().NoError(config.Load())

	s.oldNoColor, color.NoColor = color.NoColor, true
	s.stdout, s.stderr = &bytes.Buffer{}, &bytes.Buffer{}
	s.oldStdout, s.oldStderr, s.oldColoredStderr = cmdutil.Stdout, cmdutil.Stderr, cmdutil.ColoredStderr
	cmdutil.Stdout, cmdutil.Stderr, cmdutil.ColoredStderr = s.stdout, s.stderr, s.stderr

	s.oldStdin, s.oldStdinIsTerminal = cmdutil.Stdin, cmdutil.StdinIsTerminal
	s.SetStdin("", true)

	s.oldNewConverter = cmdutil.NewConverter
}

// TearDownTest resets everything SetupTest mocked
func (s *Suite) TearDownTest() {
	color.NoColor = s.oldNoColor
	s.stdout, s.stderr = nil, nil
	cmdutil.Stdout, cmdutil.Stderr, cmdutil.ColoredStderr = s.oldStdout, s.oldStderr, s.oldColoredStderr
	s.oldStdout, s.oldStderr, s.oldColoredStderr = nil, nil, nil

	cmdutil.Stdin, cmdutil.StdinIsTerminal = s.oldStdin, s.oldStdinIsTerminal
	s.oldStdin, s.oldStdinIsTerminal = nil, nil

	cmdutil.NewConverter = s.oldNewConverter
	s.oldNewConverter = nil
	viper.Reset()
}

// SetStdin replaces Stdin's content
func (s *Suite) SetStdin(content string, isTerminal bool) {
	cmdutil.Stdin = strings.NewReader(content)
	cmdutil.StdinIsTerminal = func() bool {
		return isTerminal
	}
}

// UseConverter makes the subcommands use c
func (s *Suite) UseConverter(c cmdutil.Converter) {
	cmdutil.NewConverter = func() (cmdutil.Converter, error) {
		return c, nil
	}
}

// Stdout returns stdout's content
func (s *Suite) Stdout() string {
	return s.stdout.String()
}

// Stderr returns stderr's content
func (s *Suite) Stderr() string {
	return s.stderr.String()
}
