package models

// ReminderPayload is the queued task body for a scheduled reminder push.
type ReminderPayload struct {
	RequestID string `json:"requestId"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
