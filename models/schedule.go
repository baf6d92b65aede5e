package models

import "time"

// ScheduleBlock records the slots a technician has manually marked
// unavailable for one calendar day. The document is keyed by
// (technician, date) and is created on first toggle; an empty Slots set is
// equivalent to the document being absent.
type ScheduleBlock struct {
	ID           string    `bson:"id" json:"id"`
	TechnicianID string    `bson:"technicianId" json:"technicianId"`
	Date         string    `bson:"date" json:"date"` // YYYY-MM-DD
	Slots        []string  `bson:"slots" json:"slots"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ScheduleBlockID builds the deterministic document key for a technician/day.
func ScheduleBlockID(technicianID, date string) string {
	return technicianID + "_" + date
}
