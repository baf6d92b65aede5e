package models

import "time"

// Role distinguishes the two kinds of platform accounts.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleTechnician Role = "technician"
)

// RatingAggregate is the running rating summary stored on a profile.
// The raw sum is never stored; the mean is folded incrementally.
type RatingAggregate struct {
	Count   int     `bson:"count" json:"count"`
	Average float64 `bson:"average" json:"average"`
}

// Fold returns the aggregate after absorbing one more star value.
func (ra RatingAggregate) Fold(stars int) RatingAggregate {
	next := RatingAggregate{Count: ra.Count + 1}
	next.Average = (ra.Average*float64(ra.Count) + float64(stars)) / float64(next.Count)
	return next
}

// UserProfile represents a platform account, customer or technician.
// Skills is only populated for technicians and drives directory lookups.
type UserProfile struct {
	ID        string          `bson:"id" json:"id"`
	Role      Role            `bson:"role" json:"role"`
	FullName  string          `bson:"fullName" json:"fullName"`
	AvatarURL string          `bson:"avatarUrl" json:"avatarUrl,omitempty"`
	Skills    []string        `bson:"skills,omitempty" json:"skills,omitempty"`
	Rating    RatingAggregate `bson:"rating" json:"rating"`
	FCMToken  string          `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time       `bson:"updatedAt" json:"updatedAt"`
}
