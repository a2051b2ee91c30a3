package munge

import (
	"fmt"
	"time"
)

// TimestampDigits is the number of digits in an epoch-seconds timestamp
// for any date between 2001-09-09 and 2286-11-20.
const TimestampDigits = 10

// ISOLayout is the layout used for string output. Unlike time.RFC3339 it
// renders UTC as +00:00 rather than Z.
const ISOLayout = "2006-01-02T15:04:05-07:00"

// Converter converts date values between their representations. The zero
// Converter is not usable; use NewConverter.
type Converter struct {
	parser Parser
}

// NewConverter returns a Converter that parses date text with p.
func NewConverter(p Parser) Converter {
	return Converter{parser: p}
}

var defaultConverter = func() Converter {
	p, err := NewParser(DefaultParserSettings)
	if err != nil {
		panic(fmt.Sprintf("munge: invalid default parser settings: %v", err))
	}
	return NewConverter(p)
}()

// Convert converts v to target using the default parser settings. See
// Converter.Convert.
func Convert(v Value, target Target) (Value, error) {
	return defaultConverter.Convert(v, target)
}

// ToEpoch converts v to UTC epoch seconds with the default parser settings.
func ToEpoch(v Value) (int64, error) {
	return defaultConverter.ToEpoch(v)
}

// ToTime converts v to a UTC time.Time with the default parser settings.
func ToTime(v Value) (time.Time, error) {
	return defaultConverter.ToTime(v)
}

// ToISO converts v to an ISO-8601 string with the default parser settings.
func ToISO(v Value) (string, error) {
	return defaultConverter.ToISO(v)
}

// DateTo converts value to target. value is anything ValueOf accepts and
// target is either a Target or one of the aliases accepted by ParseTarget.
// The result is an int64, a time.Time or a string. Empty values are
// returned unchanged.
func DateTo(value interface{}, target interface{}) (interface{}, error) {
	var t Target
	switch tt := target.(type) {
	case Target:
		t = tt
	case string:
		var err error
		if t, err = ParseTarget(tt); err != nil {
			return nil, err
		}
	default:
		return nil, &InvalidTargetError{Alias: fmt.Sprint(target)}
	}

	v, err := ValueOf(value)
	if err != nil {
		return nil, err
	}
	if v.IsEmpty() {
		return value, nil
	}
	result, err := Convert(v, t)
	if err != nil {
		return nil, err
	}
	return result.Interface(), nil
}

// Convert converts v to target. The result is always in UTC and rounded
// down to whole seconds. Empty values are returned unchanged.
//
// Epoch inputs are first passed through TruncateEpoch. Float inputs that
// are not finite or don't fit in an int64 are rejected with an
// InvalidValueError.
func (c Converter) Convert(v Value, target Target) (Value, error) {
	if !target.valid() {
		return Value{}, &InvalidTargetError{Alias: target.String()}
	}
	if v.IsEmpty() {
		return v, nil
	}
	switch v.Kind() {
	case KindEpoch:
		v = Epoch(TruncateEpoch(v.Epoch()))
	case KindFloat:
		if err := checkFloat(v.Float()); err != nil {
			return Value{}, err
		}
	}

	switch target {
	case TargetTime:
		t, err := c.toTime(v)
		if err != nil {
			return Value{}, err
		}
		return Time(t), nil
	case TargetEpoch:
		switch v.Kind() {
		case KindText:
			n, err := c.epochFromText(v.Text())
			if err != nil {
				return Value{}, err
			}
			return Epoch(n), nil
		case KindTime:
			return Epoch(epochFromTime(v.Time())), nil
		case KindFloat:
			return Epoch(int64(v.Float())), nil
		default:
			return v, nil
		}
	default:
		t, err := c.toTime(v)
		if err != nil {
			return Value{}, err
		}
		return Text(FormatISO(t)), nil
	}
}

// ToEpoch converts v to UTC epoch seconds. It returns 0 for empty values.
func (c Converter) ToEpoch(v Value) (int64, error) {
	r, err := c.Convert(v, TargetEpoch)
	if err != nil || r.IsEmpty() {
		return 0, err
	}
	return r.Epoch(), nil
}

// ToTime converts v to a UTC time.Time. It returns the zero time.Time for
// empty values.
func (c Converter) ToTime(v Value) (time.Time, error) {
	r, err := c.Convert(v, TargetTime)
	if err != nil || r.IsEmpty() {
		return time.Time{}, err
	}
	return r.Time(), nil
}

// ToISO converts v to an ISO-8601 string. It returns "" for empty values.
func (c Converter) ToISO(v Value) (string, error) {
	r, err := c.Convert(v, TargetString)
	if err != nil || r.IsEmpty() {
		return "", err
	}
	return r.Text(), nil
}

// FormatISO formats t as an ISO-8601 string with second precision.
func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// TruncateEpoch drops the trailing digits of n when it has more than
// TimestampDigits digits, so that a millisecond or nanosecond timestamp
// passed in as seconds lands back on seconds. This is a digit-count
// heuristic, not a unit conversion: a legitimate timestamp past the year
// 2286 is truncated too.
func TruncateEpoch(n int64) int64 {
	digits := numDigits(n)
	if digits <= TimestampDigits {
		return n
	}
	divisor := int64(1)
	for i := 0; i < digits-TimestampDigits; i++ {
		divisor *= 10
	}
	return n / divisor
}

func numDigits(n int64) int {
	var u uint64
	if n < 0 {
		// -(n+1)+1 avoids overflowing on math.MinInt64
		u = uint64(-(n + 1)) + 1
	} else {
		u = uint64(n)
	}
	digits := 1
	for u >= 10 {
		u /= 10
		digits++
	}
	return digits
}

func (c Converter) toTime(v Value) (time.Time, error) {
	switch v.Kind() {
	case KindEpoch:
		return time.Unix(v.Epoch(), 0).UTC(), nil
	case KindFloat:
		return time.Unix(int64(v.Float()), 0).UTC(), nil
	case KindText:
		t, err := c.parser.Parse(v.Text())
		if err != nil {
			return time.Time{}, err
		}
		// Round trip through epoch seconds to drop sub-second precision and
		// whatever zone the parser attached.
		return time.Unix(epochFromTime(t), 0).UTC(), nil
	case KindTime:
		return time.Unix(epochFromTime(v.Time()), 0).UTC(), nil
	default:
		return time.Time{}, &InvalidValueError{Value: v.Interface()}
	}
}

// epochFromTime reads t's wall clock as UTC, ignoring t's zone, and
// returns the seconds elapsed since the Unix epoch. Callers are expected
// to pass times that are already UTC.
func epochFromTime(t time.Time) int64 {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC).Unix()
}

func (c Converter) epochFromText(s string) (int64, error) {
	t, err := c.toTime(Text(s))
	if err != nil {
		return 0, err
	}
	return epochFromTime(t), nil
}
