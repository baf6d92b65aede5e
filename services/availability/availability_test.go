package availability

import (
	"context"
	"testing"
	"time"

	"fixify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	technicians []models.UserProfile
	lookups     int
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	for i := range f.technicians {
		if f.technicians[i].ID == id {
			return &f.technicians[i], nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) Create(ctx context.Context, user *models.UserProfile) error { return nil }
func (f *fakeUserRepo) Update(ctx context.Context, user *models.UserProfile) error { return nil }
func (f *fakeUserRepo) UpdateFCMToken(ctx context.Context, id, token string) error { return nil }
func (f *fakeUserRepo) GetQualifiedTechnicians(ctx context.Context, skill string) ([]models.UserProfile, error) {
	f.lookups++
	if skill == "" {
		return nil, nil
	}
	var out []models.UserProfile
	for _, t := range f.technicians {
		for _, s := range t.Skills {
			if s == skill {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}
func (f *fakeUserRepo) GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.UserProfile, error) {
	return f.GetByID(ctx, id)
}
func (f *fakeUserRepo) GetAll(ctx context.Context) ([]models.UserProfile, error) {
	return f.technicians, nil
}

type fakeRequestRepo struct {
	jobs        []models.ServiceRequest
	windowCalls int
}

func (f *fakeRequestRepo) Create(ctx context.Context, req *models.ServiceRequest) error { return nil }
func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (*models.ServiceRequest, error) {
	return nil, nil
}
func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) error {
	return nil
}
func (f *fakeRequestRepo) UpdatePayment(ctx context.Context, id string, status models.PaymentStatus, invoice *models.Invoice) error {
	return nil
}
func (f *fakeRequestRepo) SetPhoto(ctx context.Context, id, photoURL string) error { return nil }
func (f *fakeRequestRepo) ListPending(ctx context.Context) ([]models.ServiceRequest, error) {
	return nil, nil
}
func (f *fakeRequestRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.ServiceRequest, error) {
	return nil, nil
}
func (f *fakeRequestRepo) ListByTechnician(ctx context.Context, technicianID string) ([]models.ServiceRequest, error) {
	return nil, nil
}
func (f *fakeRequestRepo) ListAssignedInWindow(ctx context.Context, technicianIDs []string, from, to time.Time) ([]models.ServiceRequest, error) {
	f.windowCalls++
	ids := make(map[string]struct{}, len(technicianIDs))
	for _, id := range technicianIDs {
		ids[id] = struct{}{}
	}
	var out []models.ServiceRequest
	for _, job := range f.jobs {
		if job.Technician == nil {
			continue
		}
		if _, ok := ids[job.Technician.ID]; !ok {
			continue
		}
		if job.RequestedAt.Before(from) || !job.RequestedAt.Before(to) {
			continue
		}
		out = append(out, job)
	}
	return out, nil
}
func (f *fakeRequestRepo) ListAll(ctx context.Context) ([]models.ServiceRequest, error) {
	return nil, nil
}
func (f *fakeRequestRepo) AcceptTransactionally(ctx context.Context, requestID string, snap models.TechnicianSnapshot, conv *models.Conversation, msg *models.Message) error {
	return nil
}
func (f *fakeRequestRepo) RecordRatingTransactionally(ctx context.Context, requestID string, role models.RaterRole, rating models.Rating, ratedUserID string) error {
	return nil
}

type fakeScheduleRepo struct {
	blocks     []models.ScheduleBlock
	blockCalls int
}

func (f *fakeScheduleRepo) GetBlock(ctx context.Context, technicianID, date string) (*models.ScheduleBlock, error) {
	for i := range f.blocks {
		if f.blocks[i].TechnicianID == technicianID && f.blocks[i].Date == date {
			return &f.blocks[i], nil
		}
	}
	return nil, nil
}
func (f *fakeScheduleRepo) GetBlocksForDate(ctx context.Context, technicianIDs []string, date string) ([]models.ScheduleBlock, error) {
	f.blockCalls++
	ids := make(map[string]struct{}, len(technicianIDs))
	for _, id := range technicianIDs {
		ids[id] = struct{}{}
	}
	var out []models.ScheduleBlock
	for _, b := range f.blocks {
		if b.Date != date {
			continue
		}
		if _, ok := ids[b.TechnicianID]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}
func (f *fakeScheduleRepo) AddSlot(ctx context.Context, technicianID, date, slot string) error {
	return nil
}
func (f *fakeScheduleRepo) RemoveSlot(ctx context.Context, technicianID, date, slot string) error {
	return nil
}

func technician(id string, skills ...string) models.UserProfile {
	return models.UserProfile{ID: id, Role: models.RoleTechnician, Skills: skills}
}

func assignedJob(techID string, at time.Time) models.ServiceRequest {
	return models.ServiceRequest{
		ID:          "job-" + techID + at.Format("15:04"),
		Status:      models.StatusAccepted,
		Technician:  &models.TechnicianSnapshot{ID: techID},
		RequestedAt: at,
	}
}

func newService(users *fakeUserRepo, requests *fakeRequestRepo, schedules *fakeScheduleRepo) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{Users: users, Requests: requests, Schedule: schedules}
}

const testDate = "2026-09-01"

func localTime(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.Local)
}

func TestOpenSlotsEmptyDirectoryShortCircuits(t *testing.T) {
	users := &fakeUserRepo{}
	requests := &fakeRequestRepo{}
	schedules := &fakeScheduleRepo{}
	svc := newService(users, requests, schedules)

	open, err := svc.OpenSlots(context.Background(), "plumbing", testDate)
	require.NoError(t, err)
	assert.Equal(t, []string{}, open)
	assert.Zero(t, requests.windowCalls, "no busy-set query when nobody is qualified")
	assert.Zero(t, schedules.blockCalls)
}

func TestFindQualifiedEmptyCategory(t *testing.T) {
	users := &fakeUserRepo{technicians: []models.UserProfile{technician("t1", "plumbing")}}
	svc := newService(users, &fakeRequestRepo{}, &fakeScheduleRepo{})

	ids, err := svc.FindQualified(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Zero(t, users.lookups)
}

func TestOpenSlotsAllFree(t *testing.T) {
	users := &fakeUserRepo{technicians: []models.UserProfile{technician("t1", "plumbing")}}
	svc := newService(users, &fakeRequestRepo{}, &fakeScheduleRepo{})

	open, err := svc.OpenSlots(context.Background(), "plumbing", testDate)
	require.NoError(t, err)
	assert.Equal(t, models.SlotLabels, open, "a fully free technician opens every window in order")
}

func TestBusySetsJobBucketsByHour(t *testing.T) {
	users := &fakeUserRepo{technicians: []models.UserProfile{technician("t1", "plumbing")}}
	requests := &fakeRequestRepo{jobs: []models.ServiceRequest{
		assignedJob("t1", localTime(10, 30)),
	}}
	svc := newService(users, requests, &fakeScheduleRepo{})

	busy, err := svc.BusySets(context.Background(), []string{"t1"}, testDate)
	require.NoError(t, err)
	assert.Len(t, busy[models.SlotMorning], 1)
	assert.Empty(t, busy[models.SlotMidday])
	assert.Empty(t, busy[models.SlotAfternoon])
	assert.Empty(t, busy[models.SlotLate])

	open, err := svc.OpenSlots(context.Background(), "plumbing", testDate)
	require.NoError(t, err)
	assert.Equal(t, []string{models.SlotMidday, models.SlotAfternoon, models.SlotLate}, open)
}

func TestBusySetsJobOutsideWindowsBooksNothing(t *testing.T) {
	users := &fakeUserRepo{technicians: []models.UserProfile{technician("t1", "plumbing")}}
	requests := &fakeRequestRepo{jobs: []models.ServiceRequest{
		assignedJob("t1", localTime(17, 0)),
		assignedJob("t1", localTime(8, 59)),
	}}
	svc := newService(users, requests, &fakeScheduleRepo{})

	busy, err := svc.BusySets(context.Background(), []string{"t1"}, testDate)
	require.NoError(t, err)
	for _, label := range models.SlotLabels {
		assert.Empty(t, busy[label], label)
	}
}

func TestOpenSlotsClosesOnlyWhenAllQualifiedBusy(t *testing.T) {
	users := &fakeUserRepo{technicians: []models.UserProfile{
		technician("t1", "plumbing"),
		technician("t2", "plumbing"),
	}}
	requests := &fakeRequestRepo{jobs: []models.ServiceRequest{
		assignedJob("t1", localTime(9, 30)),
	}}
	schedules := &fakeScheduleRepo{}
	svc := newService(users, requests, schedules)

	open, err := svc.OpenSlots(context.Background(), "plumbing", testDate)
	require.NoError(t, err)
	assert.Contains(t, open, models.SlotMorning, "one of two technicians is still free")

	schedules.blocks = []models.ScheduleBlock{{
		ID:           models.ScheduleBlockID("t2", testDate),
		TechnicianID: "t2",
		Date:         testDate,
		Slots:        []string{models.SlotMorning},
	}}
	open, err = svc.OpenSlots(context.Background(), "plumbing", testDate)
	require.NoError(t, err)
	assert.NotContains(t, open, models.SlotMorning, "job plus blackout exhausts the pool")
	assert.Equal(t, []string{models.SlotMidday, models.SlotAfternoon, models.SlotLate}, open)
}

func TestBusySetsUnionIsIdempotent(t *testing.T) {
	users := &fakeUserRepo{technicians: []models.UserProfile{
		technician("t1", "plumbing"),
		technician("t2", "plumbing"),
	}}
	// t1 is committed twice over in the morning: an accepted job and a
	// manual blackout. The union must count t1 once.
	requests := &fakeRequestRepo{jobs: []models.ServiceRequest{
		assignedJob("t1", localTime(9, 0)),
	}}
	schedules := &fakeScheduleRepo{blocks: []models.ScheduleBlock{{
		ID:           models.ScheduleBlockID("t1", testDate),
		TechnicianID: "t1",
		Date:         testDate,
		Slots:        []string{models.SlotMorning},
	}}}
	svc := newService(users, requests, schedules)

	busy, err := svc.BusySets(context.Background(), []string{"t1", "t2"}, testDate)
	require.NoError(t, err)
	assert.Len(t, busy[models.SlotMorning], 1)

	open, err := svc.OpenSlots(context.Background(), "plumbing", testDate)
	require.NoError(t, err)
	assert.Contains(t, open, models.SlotMorning)
}

func TestBusySetsInvalidDate(t *testing.T) {
	users := &fakeUserRepo{technicians: []models.UserProfile{technician("t1", "plumbing")}}
	svc := newService(users, &fakeRequestRepo{}, &fakeScheduleRepo{})

	_, err := svc.BusySets(context.Background(), []string{"t1"}, "01-09-2026")
	assert.Error(t, err)
}
