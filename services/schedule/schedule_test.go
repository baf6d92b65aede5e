package schedule

import (
	"context"
	"testing"

	"fixify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleStore struct {
	blocks map[string]*models.ScheduleBlock
}

func newFakeScheduleStore() *fakeScheduleStore {
	return &fakeScheduleStore{blocks: make(map[string]*models.ScheduleBlock)}
}

func (f *fakeScheduleStore) GetBlock(ctx context.Context, technicianID, date string) (*models.ScheduleBlock, error) {
	return f.blocks[models.ScheduleBlockID(technicianID, date)], nil
}
func (f *fakeScheduleStore) GetBlocksForDate(ctx context.Context, technicianIDs []string, date string) ([]models.ScheduleBlock, error) {
	var out []models.ScheduleBlock
	for _, id := range technicianIDs {
		if b, ok := f.blocks[models.ScheduleBlockID(id, date)]; ok {
			out = append(out, *b)
		}
	}
	return out, nil
}
func (f *fakeScheduleStore) AddSlot(ctx context.Context, technicianID, date, slot string) error {
	key := models.ScheduleBlockID(technicianID, date)
	block, ok := f.blocks[key]
	if !ok {
		block = &models.ScheduleBlock{ID: key, TechnicianID: technicianID, Date: date}
		f.blocks[key] = block
	}
	for _, s := range block.Slots {
		if s == slot {
			return nil
		}
	}
	block.Slots = append(block.Slots, slot)
	return nil
}
func (f *fakeScheduleStore) RemoveSlot(ctx context.Context, technicianID, date, slot string) error {
	block, ok := f.blocks[models.ScheduleBlockID(technicianID, date)]
	if !ok {
		return nil
	}
	kept := block.Slots[:0]
	for _, s := range block.Slots {
		if s != slot {
			kept = append(kept, s)
		}
	}
	block.Slots = kept
	return nil
}

const day = "2026-09-01"

func TestBlockedSlotsUntouchedDayIsEmpty(t *testing.T) {
	svc := &DefaultScheduleService{Schedule: newFakeScheduleStore()}

	slots, err := svc.BlockedSlots(context.Background(), "tech-1", day)
	require.NoError(t, err)
	assert.Equal(t, []string{}, slots)
}

func TestBlockSlotIsIdempotent(t *testing.T) {
	store := newFakeScheduleStore()
	svc := &DefaultScheduleService{Schedule: store}

	require.NoError(t, svc.BlockSlot(context.Background(), "tech-1", day, models.SlotMorning))
	require.NoError(t, svc.BlockSlot(context.Background(), "tech-1", day, models.SlotMorning))

	slots, err := svc.BlockedSlots(context.Background(), "tech-1", day)
	require.NoError(t, err)
	assert.Equal(t, []string{models.SlotMorning}, slots)
}

func TestUnblockSlotKeepsOtherSlots(t *testing.T) {
	store := newFakeScheduleStore()
	svc := &DefaultScheduleService{Schedule: store}

	require.NoError(t, svc.BlockSlot(context.Background(), "tech-1", day, models.SlotMorning))
	require.NoError(t, svc.BlockSlot(context.Background(), "tech-1", day, models.SlotLate))
	require.NoError(t, svc.UnblockSlot(context.Background(), "tech-1", day, models.SlotMorning))

	slots, err := svc.BlockedSlots(context.Background(), "tech-1", day)
	require.NoError(t, err)
	assert.Equal(t, []string{models.SlotLate}, slots)
}

func TestBlockSlotRejectsUnknownLabel(t *testing.T) {
	svc := &DefaultScheduleService{Schedule: newFakeScheduleStore()}

	err := svc.BlockSlot(context.Background(), "tech-1", day, "17:00 - 19:00")
	assert.ErrorIs(t, err, ErrInvalidSlot)

	err = svc.UnblockSlot(context.Background(), "tech-1", day, "09:00-11:00")
	assert.ErrorIs(t, err, ErrInvalidSlot)
}
