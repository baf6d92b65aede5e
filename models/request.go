package models

import "time"

// Urgency grades how quickly the customer needs the job done.
type Urgency string

const (
	UrgencyNormal    Urgency = "NORMAL"
	UrgencyHigh      Urgency = "HIGH"
	UrgencyEmergency Urgency = "EMERGENCY"
)

// RequestStatus is the lifecycle state of a service request.
type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusAccepted  RequestStatus = "ACCEPTED"
	StatusEnRoute   RequestStatus = "EN_ROUTE"
	StatusCompleted RequestStatus = "COMPLETED"
	StatusCancelled RequestStatus = "CANCELLED"
)

// PaymentStatus tracks the invoice lifecycle on a request.
type PaymentStatus string

const (
	PaymentNone    PaymentStatus = "none"
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// TechnicianSnapshot is the denormalized technician info stamped onto a
// request at acceptance, so listings render without a profile join.
type TechnicianSnapshot struct {
	ID        string   `bson:"id" json:"id"`
	Name      string   `bson:"name" json:"name"`
	AvatarURL string   `bson:"avatarUrl" json:"avatarUrl,omitempty"`
	Skills    []string `bson:"skills,omitempty" json:"skills,omitempty"`
}

// Invoice is attached to a request once payment has been initiated.
type Invoice struct {
	ID              string    `bson:"id" json:"id"`
	Amount          int64     `bson:"amount" json:"amount"` // smallest currency unit
	Currency        string    `bson:"currency" json:"currency"`
	PaymentIntentID string    `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	IssuedAt        time.Time `bson:"issuedAt" json:"issuedAt"`
}

// ServiceRequest is a customer's job posting. Technician is non-nil iff the
// request has progressed to ACCEPTED or beyond.
type ServiceRequest struct {
	ID               string              `bson:"id" json:"id"`
	CustomerID       string              `bson:"customerId" json:"customerId"`
	CustomerName     string              `bson:"customerName" json:"customerName"`
	CustomerAvatar   string              `bson:"customerAvatar,omitempty" json:"customerAvatar,omitempty"`
	Category         string              `bson:"category" json:"category"`
	Description      string              `bson:"description" json:"description"`
	Location         string              `bson:"location" json:"location"`
	Urgency          Urgency             `bson:"urgency" json:"urgency"`
	RequestedAt      time.Time           `bson:"requestedAt" json:"requestedAt"`
	Status           RequestStatus       `bson:"status" json:"status"`
	Technician       *TechnicianSnapshot `bson:"technician,omitempty" json:"technician,omitempty"`
	PaymentStatus    PaymentStatus       `bson:"paymentStatus" json:"paymentStatus"`
	Invoice          *Invoice            `bson:"invoice,omitempty" json:"invoice,omitempty"`
	PhotoURL         string              `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	CustomerRating   *Rating             `bson:"customerRating,omitempty" json:"customerRating,omitempty"`
	TechnicianRating *Rating             `bson:"technicianRating,omitempty" json:"technicianRating,omitempty"`
	CreatedAt        time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time           `bson:"updatedAt" json:"updatedAt"`
}
