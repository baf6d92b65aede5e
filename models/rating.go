package models

import "time"

// RaterRole identifies which side of a request submitted a rating.
type RaterRole string

const (
	RaterCustomer   RaterRole = "customer"
	RaterTechnician RaterRole = "technician"
)

// Rating is one star rating with an optional comment, attached to a request.
type Rating struct {
	Stars     int       `bson:"stars" json:"stars" binding:"required,min=1,max=5"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
