package output

import (
	"math"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestFormatMinutesHMS(t *testing.T) {
	tests := []struct {
		input    *float64
		expected string
	}{
		{f(0.65), "00:00:39"},
		{f(2.5), "00:02:30"},
		{f(90), "01:30:00"},
		{f(-3), "00:00:00"},
		{f(math.NaN()), "-"},
		{nil, "-"},
	}

	for _, tt := range tests {
		if got := FormatMinutesHMS(tt.input); got != tt.expected {
			t.Errorf("FormatMinutesHMS(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatMinutesCompact(t *testing.T) {
	tests := []struct {
		input    *float64
		expected string
	}{
		{f(0.65), "39s"},
		{f(2 + 5.0/60), "02:05"},
		{f(61), "01:01:00"},
		{f(0), "0s"},
		{nil, "-"},
	}

	for _, tt := range tests {
		if got := FormatMinutesCompact(tt.input); got != tt.expected {
			t.Errorf("FormatMinutesCompact(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		input    *float64
		expected string
	}{
		{f(88.33), "88,3%"},
		{f(100), "100,0%"},
		{nil, "-"},
	}

	for _, tt := range tests {
		if got := FormatPercent(tt.input); got != tt.expected {
			t.Errorf("FormatPercent(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
