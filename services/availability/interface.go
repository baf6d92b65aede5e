package availability

import (
	"context"

	requestRepo "fixify/database/repository/request"
	scheduleRepo "fixify/database/repository/schedule"
	userRepo "fixify/database/repository/user"

	"github.com/go-redis/redis/v8"
)

// BusySet is the set of technicians unavailable for one slot.
type BusySet map[string]struct{}

// AvailabilityService resolves, for a capability tag and date, which of the
// four daily slots still have at least one qualified technician free.
type AvailabilityService interface {
	// FindQualified returns the IDs of technicians whose skill set contains
	// the capability tag.
	FindQualified(ctx context.Context, category string) ([]string, error)
	// BusySets computes, per slot label, which of the given technicians are
	// already committed or blacked out on the date (YYYY-MM-DD).
	BusySets(ctx context.Context, technicianIDs []string, date string) (map[string]BusySet, error)
	// OpenSlots returns the open slot labels for a category and date, in
	// canonical slot order.
	OpenSlots(ctx context.Context, category, date string) ([]string, error)
}

// DefaultAvailabilityService is the production implementation. Cache is
// optional; when set, resolved open-slot answers are held briefly in Redis.
type DefaultAvailabilityService struct {
	Users    userRepo.UserRepository
	Requests requestRepo.RequestRepository
	Schedule scheduleRepo.ScheduleRepository
	Cache    *redis.Client
}
