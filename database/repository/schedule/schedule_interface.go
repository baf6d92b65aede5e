package scheduleRepo

import (
	"context"

	"fixify/models"
)

// ScheduleRepository defines data access for manual blackout blocks. A block
// document is keyed by (technician, date) and merged on first toggle; slot
// adds and removes are idempotent.
type ScheduleRepository interface {
	// GetBlock returns the block for one technician/day, or nil if absent.
	GetBlock(ctx context.Context, technicianID, date string) (*models.ScheduleBlock, error)
	// GetBlocksForDate returns the blocks on a date for any of the given
	// technicians.
	GetBlocksForDate(ctx context.Context, technicianIDs []string, date string) ([]models.ScheduleBlock, error)
	// AddSlot marks one slot unavailable, creating the block if needed.
	AddSlot(ctx context.Context, technicianID, date, slot string) error
	// RemoveSlot marks one slot available again.
	RemoveSlot(ctx context.Context, technicianID, date, slot string) error
}
