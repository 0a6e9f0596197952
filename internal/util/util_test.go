package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "default image limit", bytes: 5 << 20, expected: "5 MB"},
		{name: "rounded to one decimal", bytes: 1100, expected: "1.1 KB"},
		{name: "gigabyte", bytes: 5 << 30, expected: "5 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "seconds", duration: 45 * time.Second, expected: "45s"},
		{name: "rounds to seconds", duration: 1499 * time.Millisecond, expected: "1s"},
		{name: "minutes", duration: 5*time.Minute + 10*time.Second, expected: "5m10s"},
		{name: "reset token lifetime", duration: time.Hour, expected: "1h"},
		{name: "hours and seconds", duration: time.Hour + 5*time.Second, expected: "1h5s"},
		{name: "zero", duration: 0, expected: "0s"},
		{name: "session lifetime", duration: 24 * time.Hour, expected: "24h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}
