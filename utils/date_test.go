package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBanglaDate(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC), "১৯/১০/২০২৬"},
		{time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "৫/১/২০২৪"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BanglaDate(tt.in))
	}
}

func TestISOTime(t *testing.T) {
	dhaka := time.FixedZone("BST", 6*60*60)
	got := ISOTime(time.Date(2024, 1, 15, 16, 30, 0, 250_000_000, dhaka))
	assert.Equal(t, "2024-01-15T10:30:00.250Z", got)

	_, err := time.Parse(time.RFC3339, got)
	assert.NoError(t, err)
}

func TestNewLogger(t *testing.T) {
	buf := bytes.Buffer{}
	l := NewLogger(false, &buf)
	l.Logf("INFO hello %s", "world")
	l.Logf("DEBUG hidden")
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "hello world")
	assert.NotContains(t, buf.String(), "hidden")
}
