package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotForHour(t *testing.T) {
	cases := []struct {
		hour  int
		label string
		ok    bool
	}{
		{8, "", false},
		{9, SlotMorning, true},
		{10, SlotMorning, true},
		{11, SlotMidday, true},
		{12, SlotMidday, true},
		{13, SlotAfternoon, true},
		{14, SlotAfternoon, true},
		{15, SlotLate, true},
		{16, SlotLate, true},
		{17, "", false}, // upper edge excluded
		{0, "", false},
		{23, "", false},
	}
	for _, tc := range cases {
		label, ok := SlotForHour(tc.hour)
		assert.Equal(t, tc.ok, ok, "hour %d", tc.hour)
		assert.Equal(t, tc.label, label, "hour %d", tc.hour)
	}
}

func TestValidSlotLabel(t *testing.T) {
	for _, label := range SlotLabels {
		assert.True(t, ValidSlotLabel(label), label)
	}
	assert.False(t, ValidSlotLabel("09:00-11:00"), "spacing is part of the vocabulary")
	assert.False(t, ValidSlotLabel("17:00 - 19:00"))
	assert.False(t, ValidSlotLabel(""))
}

func TestSlotStart(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	start := SlotStart(day, SlotAfternoon)
	assert.Equal(t, 13, start.Hour())
	assert.Equal(t, day.Year(), start.Year())
	assert.Equal(t, day.Location(), start.Location())
}

func TestDateKeyUsesInstantLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	// 23:30 local is already the next day in UTC; the key follows local time.
	late := time.Date(2026, 9, 1, 23, 30, 0, 0, loc)
	assert.Equal(t, "2026-09-01", DateKey(late))
	assert.Equal(t, "2026-09-02", DateKey(late.Add(time.Hour)))
}
