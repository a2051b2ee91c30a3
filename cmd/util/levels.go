package cmdutil

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

var levelMap = map[string]log.Level{
	"warn":  log.WarnLevel,
	"info":  log.InfoLevel,
	"debug": log.DebugLevel,
	"trace": log.TraceLevel,
}

// ParseLevel maps a --loglevel value to a logrus level.
func ParseLevel(s string) (log.Level, error) {
	if level, ok := levelMap[s]; ok {
		return level, nil
	}

	var allLevels []string
	for level := range levelMap {
		allLevels = append(allLevels, level)
	}
	sort.Strings(allLevels)

	return log.FatalLevel,
		fmt.Errorf("%v is not a valid level. Valid levels are %v", s, strings.Join(allLevels, ", "))
}

// InitLogger configures logrus to emit simple text on Stderr at the
// given level.
func InitLogger(levelStr string) error {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return err
	}
	log.SetOutput(Stderr)
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	return nil
}
