package munge

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind identifies which variant a Value holds.
type Kind int

// The supported Value variants. KindNone is the zero Value.
const (
	KindNone Kind = iota
	KindText
	KindEpoch
	KindFloat
	KindTime
)

var kindNames = map[Kind]string{
	KindNone:  "none",
	KindText:  "text",
	KindEpoch: "epoch",
	KindFloat: "float",
	KindTime:  "time",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a date value in one of its accepted input (or output) forms.
// Only the field matching kind is meaningful.
type Value struct {
	kind  Kind
	text  string
	epoch int64
	float float64
	time  time.Time
}

// Text returns a Value holding free-form date text.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Epoch returns a Value holding epoch seconds.
func Epoch(n int64) Value {
	return Value{kind: KindEpoch, epoch: n}
}

// Float returns a Value holding fractional epoch seconds.
func Float(f float64) Value {
	return Value{kind: KindFloat, float: f}
}

// Time returns a Value holding a calendar datetime.
func Time(t time.Time) Value {
	return Value{kind: KindTime, time: t}
}

// Kind returns v's variant.
func (v Value) Kind() Kind {
	return v.kind
}

// Text returns v's text. It is only meaningful for KindText.
func (v Value) Text() string {
	return v.text
}

// Epoch returns v's epoch seconds. It is only meaningful for KindEpoch.
func (v Value) Epoch() int64 {
	return v.epoch
}

// Float returns v's float seconds. It is only meaningful for KindFloat.
func (v Value) Float() float64 {
	return v.float
}

// Time returns v's datetime. It is only meaningful for KindTime.
func (v Value) Time() time.Time {
	return v.time
}

// IsEmpty reports whether v is the zero Value or holds an empty string,
// a zero number or the zero time.Time. Empty values are never converted.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindText:
		return v.text == ""
	case KindEpoch:
		return v.epoch == 0
	case KindFloat:
		return v.float == 0
	case KindTime:
		return v.time.IsZero()
	default:
		return true
	}
}

// Interface returns the Go value held by v, or nil for the zero Value.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindText:
		return v.text
	case KindEpoch:
		return v.epoch
	case KindFloat:
		return v.float
	case KindTime:
		return v.time
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindEpoch:
		return strconv.FormatInt(v.epoch, 10)
	case KindFloat:
		return strconv.FormatFloat(v.float, 'f', -1, 64)
	case KindTime:
		return FormatISO(v.time)
	default:
		return ""
	}
}

// ValueOf converts v to a Value. v can be nil, a Value, a string, any
// integer type, a float32/float64 or a time.Time.
func ValueOf(v interface{}) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return t, nil
	case string:
		return Text(t), nil
	case int:
		return Epoch(int64(t)), nil
	case int8:
		return Epoch(int64(t)), nil
	case int16:
		return Epoch(int64(t)), nil
	case int32:
		return Epoch(int64(t)), nil
	case int64:
		return Epoch(t), nil
	case uint:
		return epochFromUint(uint64(t))
	case uint8:
		return Epoch(int64(t)), nil
	case uint16:
		return Epoch(int64(t)), nil
	case uint32:
		return Epoch(int64(t)), nil
	case uint64:
		return epochFromUint(t)
	case float32:
		return floatValue(float64(t))
	case float64:
		return floatValue(t)
	case time.Time:
		return Time(t), nil
	case *time.Time:
		if t == nil {
			return Value{}, nil
		}
		return Time(*t), nil
	default:
		return Value{}, &InvalidValueError{Value: v}
	}
}

func epochFromUint(n uint64) (Value, error) {
	if n > math.MaxInt64 {
		return Value{}, &InvalidValueError{Value: n, Reason: "it overflows an int64"}
	}
	return Epoch(int64(n)), nil
}

func floatValue(f float64) (Value, error) {
	if err := checkFloat(f); err != nil {
		return Value{}, err
	}
	return Float(f), nil
}

// checkFloat rejects floats that have no int64 second: NaN, the
// infinities, and anything outside [-2^63, 2^63).
func checkFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return &InvalidValueError{Value: f, Reason: "it is not a finite number"}
	}
	if f < -(1<<63) || f >= 1<<63 {
		return &InvalidValueError{Value: f, Reason: "it overflows an int64"}
	}
	return nil
}
