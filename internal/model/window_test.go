package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewWindow(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)

	tests := []struct {
		name    string
		anchor  time.Time
		loc     *time.Location
		wantEnd time.Time
	}{
		{
			name:    "mid month",
			anchor:  time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC),
			wantEnd: time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name:    "year rollover",
			anchor:  time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC),
			wantEnd: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "jan 31 rolls into may",
			anchor:  time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
			wantEnd: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "nov 30 leap year",
			anchor:  time.Date(2023, time.November, 30, 0, 0, 0, 0, time.UTC),
			wantEnd: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "nov 30 common year",
			anchor:  time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC),
			wantEnd: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "month arithmetic in window zone",
			anchor:  time.Date(2025, time.January, 31, 20, 0, 0, 0, time.UTC),
			loc:     wib,
			wantEnd: time.Date(2025, time.May, 1, 3, 0, 0, 0, wib),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow(tt.anchor, tt.loc)

			assert.True(t, w.Start.Equal(tt.anchor))
			assert.True(
				t,
				w.End.Equal(tt.wantEnd),
				"end %s, want %s", w.End, tt.wantEnd,
			)
		})
	}
}

func TestWindow_Contains(t *testing.T) {
	start := time.Date(2025, time.February, 10, 8, 30, 0, 0, time.UTC)
	w := NewWindow(start, nil)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "start", at: w.Start, want: true},
		{name: "inside", at: start.Add(30 * 24 * time.Hour), want: true},
		{name: "end", at: w.End, want: true},
		{name: "after end", at: w.End.Add(time.Microsecond), want: false},
		{name: "before start", at: w.Start.Add(-time.Microsecond), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Contains(tt.at))
		})
	}
}

func TestWindowFor(t *testing.T) {
	assert.Nil(t, WindowFor(nil, nil))

	first := &Payment{ID: 1, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	w := WindowFor(first, nil)
	if assert.NotNil(t, w) {
		assert.True(t, w.Start.Equal(first.CreatedAt))
	}
}
