package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	viper.Reset()
	dir, err := ioutil.TempDir("", "dateto-config")
	s.Require().NoError(err)
	s.dir = dir
	s.Require().NoError(Load())
}

func (s *ConfigTestSuite) TearDownTest() {
	viper.Reset()
	os.RemoveAll(s.dir)
}

func (s *ConfigTestSuite) TestDefaults() {
	s.Equal("string", Target())
	s.Equal("text", Output())
	s.Equal(4, Parallel())
	s.Equal("warn", LogLevel())
}

func (s *ConfigTestSuite) TestEnvironmentOverridesDefaults() {
	os.Setenv("DATETO_TARGET", "epoch")
	defer os.Unsetenv("DATETO_TARGET")
	s.Equal("epoch", Target())
}

func (s *ConfigTestSuite) TestReadFrom() {
	file := filepath.Join(s.dir, "dateto.yaml")
	s.Require().NoError(ioutil.WriteFile(file, []byte("target: datetime\nparallel: 2\n"), 0600))

	s.NoError(ReadFrom(file))
	s.Equal("datetime", Target())
	s.Equal(2, Parallel())
	s.Equal("text", Output())
}

func (s *ConfigTestSuite) TestReadFrom_MissingFile() {
	err := ReadFrom(filepath.Join(s.dir, "missing.yaml"))
	s.Regexp("could not read the config from .*missing.yaml", err)
}

func (s *ConfigTestSuite) TestReadFrom_InvalidYAML() {
	file := filepath.Join(s.dir, "dateto.yaml")
	s.Require().NoError(ioutil.WriteFile(file, []byte("target: [unterminated"), 0600))
	s.Regexp("could not read the config from", ReadFrom(file))
}

func TestConfig(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
