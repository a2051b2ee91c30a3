package munge

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
)

// DayPreference picks the day used when date text omits one.
type DayPreference int

// PreferFirstDay is currently the only supported DayPreference. It
// matches dateparse, which fills a missing day with the 1st.
const (
	PreferFirstDay DayPreference = iota
)

// ParserSettings configures a Parser.
type ParserSettings struct {
	// Location is assumed for text without an explicit zone, and is the
	// zone parsed times are returned in. Nil means UTC.
	Location         *time.Location
	PreferDayOfMonth DayPreference
	// ReturnTimezoneAware converts parsed times into Location. When false,
	// the parsed wall clock is kept and labeled with Location instead.
	ReturnTimezoneAware bool
}

// DefaultParserSettings are the settings used by the package-level
// conversion functions.
var DefaultParserSettings = ParserSettings{
	Location:            time.UTC,
	PreferDayOfMonth:    PreferFirstDay,
	ReturnTimezoneAware: true,
}

// Parser turns date text into a time.Time.
type Parser struct {
	settings ParserSettings
}

// NewParser returns a Parser configured with settings.
func NewParser(settings ParserSettings) (Parser, error) {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.PreferDayOfMonth != PreferFirstDay {
		return Parser{}, errors.Errorf("unsupported day-of-month preference %v", settings.PreferDayOfMonth)
	}
	return Parser{settings: settings}, nil
}

// Settings returns p's settings.
func (p Parser) Settings() ParserSettings {
	return p.settings
}

// Parse parses s. Errors from dateparse are returned as-is.
func (p Parser) Parse(s string) (time.Time, error) {
	loc := p.settings.Location
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)

	// RFC3339 is the common case (it's what time.Time marshals to), so try
	// it before handing off to dateparse.
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = dateparse.ParseIn(s, loc)
		if err != nil {
			return time.Time{}, err
		}
	}

	if !p.settings.ReturnTimezoneAware {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc), nil
	}
	return t.In(loc), nil
}
