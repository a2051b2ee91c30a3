package munge

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValueOf(t *testing.T) {
	now := time.Now()
	cases := []struct {
		input    interface{}
		expected Value
	}{
		{nil, Value{}},
		{"2021-01-01", Text("2021-01-01")},
		{10, Epoch(10)},
		{int32(10), Epoch(10)},
		{uint64(10), Epoch(10)},
		{float32(1.5), Float(1.5)},
		{10.5, Float(10.5)},
		{now, Time(now)},
		{&now, Time(now)},
		{Epoch(3), Epoch(3)},
		{uint64(math.MaxInt64), Epoch(math.MaxInt64)},
		{-9223372036854775808.0, Float(-9223372036854775808.0)},
	}
	for _, c := range cases {
		v, err := ValueOf(c.input)
		if assert.NoError(t, err, "Input was %v", c.input) {
			assert.Equal(t, c.expected, v, "Input was %v", c.input)
		}
	}

	_, err := ValueOf(struct{}{})
	assert.True(t, IsInvalidValue(err))

	for _, input := range []interface{}{
		uint64(math.MaxUint64),
		uint64(math.MaxInt64) + 1,
		math.NaN(),
		math.Inf(1),
		float32(math.Inf(-1)),
		1e30,
		-1e30,
		9223372036854775808.0,
	} {
		_, err := ValueOf(input)
		assert.True(t, IsInvalidValue(err), "Input was %v", input)
	}
}

func TestValueIsEmpty(t *testing.T) {
	assert.True(t, Value{}.IsEmpty())
	assert.True(t, Text("").IsEmpty())
	assert.True(t, Epoch(0).IsEmpty())
	assert.True(t, Float(0).IsEmpty())
	assert.True(t, Time(time.Time{}).IsEmpty())

	assert.False(t, Text(" ").IsEmpty())
	assert.False(t, Epoch(-1).IsEmpty())
	assert.False(t, Float(0.1).IsEmpty())
	assert.False(t, Time(time.Unix(0, 0)).IsEmpty())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "", Value{}.String())
	assert.Equal(t, "foo", Text("foo").String())
	assert.Equal(t, "1609459200", Epoch(1609459200).String())
	assert.Equal(t, "1609459200.7", Float(1609459200.7).String())
	assert.Equal(t, "2021-01-01T00:00:00+00:00", Time(time.Unix(1609459200, 0).UTC()).String())
	assert.Equal(t, "epoch", Epoch(1).Kind().String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
