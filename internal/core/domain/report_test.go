package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDuration(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		expected Clock
		text     string
	}{
		{"sum of 3661 and 59", 3720, Clock{Hours: 1, Minutes: 2, Seconds: 0}, "1h 2m 0s"},
		{"mean of 3661 and 59", 1860, Clock{Hours: 0, Minutes: 31, Seconds: 0}, "0h 31m 0s"},
		{"zero", 0, Clock{}, "0h 0m 0s"},
		{"fractional seconds round down", 61.4, Clock{Minutes: 1, Seconds: 1}, "0h 1m 1s"},
		{"half rounds to even", 62.5, Clock{Minutes: 1, Seconds: 2}, "0h 1m 2s"},
		{"seconds are not carried", 119.7, Clock{Minutes: 1, Seconds: 60}, "0h 1m 60s"},
		{"many hours", 90061, Clock{Hours: 25, Minutes: 1, Seconds: 1}, "25h 1m 1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := SplitDuration(tt.total)
			assert.Equal(t, tt.expected, c)
			assert.Equal(t, tt.text, c.String())
		})
	}
}

func TestSplitDuration_RecomposesWithinRounding(t *testing.T) {
	for _, total := range []float64{0, 1, 59, 60, 3599, 3600, 3661.2, 7322.49, 123456.789} {
		c := SplitDuration(total)
		assert.LessOrEqual(t, math.Abs(float64(c.TotalSeconds())-total), 0.5, total)
		assert.GreaterOrEqual(t, c.Minutes, 0)
		assert.Less(t, c.Minutes, 60)
	}
}

func TestDurationReport_Clocks(t *testing.T) {
	r := DurationReport{Rows: 2, Total: 3720, Mean: 1860}

	assert.Equal(t, "1h 2m 0s", r.TotalClock().String())
	assert.Equal(t, "0h 31m 0s", r.MeanClock().String())
}

func TestStationPair_String(t *testing.T) {
	p := StationPair{Start: "Canal St", End: "Clark St"}
	assert.Equal(t, "Canal St and Clark St", p.String())
}

func TestMode_Found(t *testing.T) {
	assert.False(t, Mode[int]{}.Found())
	assert.True(t, Mode[int]{Value: 0, Count: 1}.Found())
}
