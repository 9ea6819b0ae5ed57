package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"10 days future", now.Add(10 * 24 * time.Hour), "In 10d"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months future", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"2 weeks past", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestDueStyled_KeepsRelativeText(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	assert.Contains(t, DueStyled(now.AddDate(0, 0, -2), now), "2d ago")
	assert.Contains(t, DueStyled(now.AddDate(0, 0, 5), now), "In 5d")
	assert.Contains(t, DueStyled(now.AddDate(0, 0, 30), now), "In 4w")
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Sep 30, 2022", HumanDate(time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC)))
}

func TestTruncID(t *testing.T) {
	assert.Contains(t, TruncID("12345678-aaaa-bbbb"), "12345678")
	assert.NotContains(t, TruncID("12345678-aaaa-bbbb"), "aaaa")
	assert.Contains(t, TruncID("abc"), "abc")
}

func TestKeyValue_AlignsValues(t *testing.T) {
	out := KeyValue([][2]string{{"Room", "Kitchen"}, {"Watering", "weekly"}})
	assert.Contains(t, out, "Room      Kitchen")
	assert.Contains(t, out, "Watering  weekly")
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 plant", Plural(1, "plant"))
	assert.Equal(t, "0 plants", Plural(0, "plant"))
	assert.Equal(t, "3 days", Plural(3, "day"))
}
