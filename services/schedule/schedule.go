package schedule

import (
	"context"
	"errors"
	"fmt"

	scheduleRepo "fixify/database/repository/schedule"
	"fixify/models"
)

// ErrInvalidSlot is returned for labels outside the fixed slot set.
var ErrInvalidSlot = errors.New("unknown slot label")

// ScheduleService manages a technician's manual blackout slots.
type ScheduleService interface {
	// BlockedSlots returns the slots blacked out for a day; empty when the
	// day has never been toggled.
	BlockedSlots(ctx context.Context, technicianID, date string) ([]string, error)
	// BlockSlot marks a slot unavailable. Idempotent.
	BlockSlot(ctx context.Context, technicianID, date, slot string) error
	// UnblockSlot marks a slot available again. Idempotent.
	UnblockSlot(ctx context.Context, technicianID, date, slot string) error
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Schedule scheduleRepo.ScheduleRepository
}

func (s *DefaultScheduleService) BlockedSlots(ctx context.Context, technicianID, date string) ([]string, error) {
	block, err := s.Schedule.GetBlock(ctx, technicianID, date)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return []string{}, nil
	}
	return block.Slots, nil
}

func (s *DefaultScheduleService) BlockSlot(ctx context.Context, technicianID, date, slot string) error {
	if !models.ValidSlotLabel(slot) {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	return s.Schedule.AddSlot(ctx, technicianID, date, slot)
}

func (s *DefaultScheduleService) UnblockSlot(ctx context.Context, technicianID, date, slot string) error {
	if !models.ValidSlotLabel(slot) {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	return s.Schedule.RemoveSlot(ctx, technicianID, date, slot)
}
