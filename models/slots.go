package models

import "time"

// The four bookable windows of a business day. Label text is part of the
// stored vocabulary and must not change.
const (
	SlotMorning   = "09:00 - 11:00"
	SlotMidday    = "11:00 - 13:00"
	SlotAfternoon = "13:00 - 15:00"
	SlotLate      = "15:00 - 17:00"
)

// SlotLabels lists the windows in canonical display order.
var SlotLabels = []string{SlotMorning, SlotMidday, SlotAfternoon, SlotLate}

// slotStartHours maps each label to its inclusive start hour.
var slotStartHours = map[string]int{
	SlotMorning:   9,
	SlotMidday:    11,
	SlotAfternoon: 13,
	SlotLate:      15,
}

// SlotForHour buckets an hour-of-day into the two-hour window containing it.
// Hours outside 09..16 belong to no window; the upper edge (17:00) is excluded.
func SlotForHour(hour int) (string, bool) {
	for _, label := range SlotLabels {
		start := slotStartHours[label]
		if hour >= start && hour < start+2 {
			return label, true
		}
	}
	return "", false
}

// ValidSlotLabel reports whether label is one of the four fixed windows.
func ValidSlotLabel(label string) bool {
	_, ok := slotStartHours[label]
	return ok
}

// SlotStart returns the local wall-clock start of a slot on the given day.
func SlotStart(day time.Time, label string) time.Time {
	start := slotStartHours[label]
	return time.Date(day.Year(), day.Month(), day.Day(), start, 0, 0, 0, day.Location())
}

// DateKey formats an instant as the store's YYYY-MM-DD day key, in the
// instant's own location rather than UTC.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
