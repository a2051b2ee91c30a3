package munge

import (
	"fmt"
	"strings"
)

// Target is the representation a date value is converted into.
type Target int

// The supported targets.
const (
	TargetEpoch Target = iota + 1
	TargetTime
	TargetString
)

// TargetInfo describes a Target and the aliases that resolve to it.
type TargetInfo struct {
	Target      Target
	Aliases     []string
	Description string
}

var targets = []TargetInfo{
	{TargetEpoch, []string{"timestamp", "epoch", "int", "unix"}, "UTC epoch seconds"},
	{TargetTime, []string{"datetime", "datetime.time", "date"}, "UTC calendar datetime"},
	{TargetString, []string{"str", "string"}, "ISO-8601 string with UTC offset"},
}

var targetAliases = func() map[string]Target {
	m := make(map[string]Target)
	for _, info := range targets {
		for _, alias := range info.Aliases {
			m[alias] = info.Target
		}
	}
	return m
}()

// Targets returns every supported target along with its aliases.
func Targets() []TargetInfo {
	infos := make([]TargetInfo, len(targets))
	for i, info := range targets {
		info.Aliases = append([]string(nil), info.Aliases...)
		infos[i] = info
	}
	return infos
}

// Aliases returns every accepted target alias.
func Aliases() []string {
	var aliases []string
	for _, info := range targets {
		aliases = append(aliases, info.Aliases...)
	}
	return aliases
}

// ParseTarget resolves a target alias. Aliases are case-insensitive.
func ParseTarget(alias string) (Target, error) {
	if t, ok := targetAliases[strings.ToLower(alias)]; ok {
		return t, nil
	}
	return 0, &InvalidTargetError{Alias: alias}
}

func (t Target) String() string {
	for _, info := range targets {
		if info.Target == t {
			return info.Aliases[0]
		}
	}
	return fmt.Sprintf("Target(%d)", int(t))
}

func (t Target) valid() bool {
	return t >= TargetEpoch && t <= TargetString
}
