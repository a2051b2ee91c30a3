// Package config implements configuration for the dateto executable using
// https://github.com/spf13/viper.
package config

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Contains all the keys for dateto's shared config
const (
	TargetKey   = "target"
	OutputKey   = "output"
	ParallelKey = "parallel"
	LogLevelKey = "loglevel"
)

var defaultFileSuffix = filepath.Join(".dateto", "dateto.yaml")
var defaultFileRel = filepath.Join("~", defaultFileSuffix)
var defaultFileAbs string

// Load sets dateto's defaults and tells viper where to find overrides.
func Load() error {
	viper.SetDefault(TargetKey, "string")
	viper.SetDefault(OutputKey, "text")
	viper.SetDefault(ParallelKey, 4)
	viper.SetDefault(LogLevelKey, "warn")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return errors.Wrap(err, "could not determine the home directory")
	}
	defaultFileAbs = filepath.Join(homeDir, defaultFileSuffix)

	// Tell viper that the config. can be read from DATETO_<entry>
	// environment variables
	viper.SetEnvPrefix("DATETO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigType("yaml")
	return nil
}

// DefaultFile returns the default config file's path
func DefaultFile() string {
	return defaultFileRel
}

// ReadFrom reads the config from the specified file.
// If file == DefaultFile(), then ReadFrom wil not return
// an error if file does not exist.
func ReadFrom(file string) error {
	if file == DefaultFile() {
		if defaultFileAbs == "" {
			panic("config.ReadFrom: default file not set. Please call config.Load()")
		}
		if _, err := os.Stat(defaultFileAbs); os.IsNotExist(err) {
			return nil
		}
		file = defaultFileAbs
	}
	content, err := ioutil.ReadFile(file)
	if err != nil {
		return errors.Wrapf(err, "could not read the config from %v", file)
	}
	if err := viper.ReadConfig(bytes.NewReader(content)); err != nil {
		return errors.Wrapf(err, "could not read the config from %v", file)
	}
	return nil
}

// Target returns the default conversion target alias.
func Target() string {
	return viper.GetString(TargetKey)
}

// Output returns the default output format.
func Output() string {
	return viper.GetString(OutputKey)
}

// Parallel returns how many values are converted at once.
func Parallel() int {
	return viper.GetInt(ParallelKey)
}

// LogLevel returns the logging level.
func LogLevel() string {
	return viper.GetString(LogLevelKey)
}
