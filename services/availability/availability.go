package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fixify/models"
	"fixify/utils"

	"go.uber.org/zap"
)

// FindQualified returns the IDs of technicians qualified for the capability
// tag. An empty tag or no matches yields an empty result; callers must
// short-circuit rather than issue busy-set queries with no technicians.
func (s *DefaultAvailabilityService) FindQualified(ctx context.Context, category string) ([]string, error) {
	if category == "" {
		return nil, nil
	}

	technicians, err := s.Users.GetQualifiedTechnicians(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("directory lookup for %q failed: %w", category, err)
	}

	ids := make([]string, 0, len(technicians))
	for _, t := range technicians {
		ids = append(ids, t.ID)
	}
	return ids, nil
}

// BusySets merges the two commitment sources into one set per slot label:
// accepted jobs bucketed by the hour of their requested time, and manual
// blackout blocks. The merge is a union, never an intersection, so a
// technician in both sources counts once and blackouts always reduce
// availability.
func (s *DefaultAvailabilityService) BusySets(ctx context.Context, technicianIDs []string, date string) (map[string]BusySet, error) {
	busy := make(map[string]BusySet, len(models.SlotLabels))
	for _, label := range models.SlotLabels {
		busy[label] = make(BusySet)
	}
	if len(technicianIDs) == 0 {
		return busy, nil
	}

	dayStart, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	jobs, err := s.Requests.ListAssignedInWindow(ctx, technicianIDs, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("committed-jobs query failed: %w", err)
	}
	for _, job := range jobs {
		if job.Technician == nil {
			continue
		}
		// A job hour outside all four windows books no slot.
		label, ok := models.SlotForHour(job.RequestedAt.In(time.Local).Hour())
		if !ok {
			continue
		}
		busy[label][job.Technician.ID] = struct{}{}
	}

	blocks, err := s.Schedule.GetBlocksForDate(ctx, technicianIDs, date)
	if err != nil {
		return nil, fmt.Errorf("blackout query failed: %w", err)
	}
	for _, block := range blocks {
		for _, label := range block.Slots {
			if set, ok := busy[label]; ok {
				set[block.TechnicianID] = struct{}{}
			}
		}
	}

	return busy, nil
}

// OpenSlots resolves the open slot labels for a category and date. A slot is
// open iff strictly fewer technicians are busy than are qualified, so at
// least one remains free. No technician is reserved here; a concurrent
// acceptance can still win the last free slot and the booking step tolerates
// that race.
func (s *DefaultAvailabilityService) OpenSlots(ctx context.Context, category, date string) ([]string, error) {
	logger := utils.GetLogger()

	cacheKey := utils.SlotCachePrefix + category + ":" + date
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached []string
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	qualified, err := s.FindQualified(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(qualified) == 0 {
		logger.Debug("no qualified technicians", zap.String("category", category))
		return []string{}, nil
	}

	busy, err := s.BusySets(ctx, qualified, date)
	if err != nil {
		return nil, err
	}

	open := make([]string, 0, len(models.SlotLabels))
	for _, label := range models.SlotLabels {
		if len(busy[label]) < len(qualified) {
			open = append(open, label)
		}
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(open); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, raw, utils.SlotCacheTTL).Err(); err != nil {
				logger.Warn("open-slot cache write failed", zap.Error(err))
			}
		}
	}

	logger.Debug("resolved open slots",
		zap.String("category", category),
		zap.String("date", date),
		zap.Int("qualified", len(qualified)),
		zap.Strings("open", open),
	)
	return open, nil
}
