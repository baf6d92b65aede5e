package rating

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"fixify/models"
	"fixify/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRatingStore mimics the isolated transaction of the Mongo repo: the
// request write and the aggregate fold happen under one lock, so concurrent
// ratings serialize instead of losing updates.
type fakeRatingStore struct {
	mu       sync.Mutex
	requests map[string]*models.ServiceRequest
	profiles map[string]*models.UserProfile
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{
		requests: make(map[string]*models.ServiceRequest),
		profiles: make(map[string]*models.UserProfile),
	}
}

func (f *fakeRatingStore) Create(ctx context.Context, req *models.ServiceRequest) error {
	f.requests[req.ID] = req
	return nil
}
func (f *fakeRatingStore) GetByID(ctx context.Context, id string) (*models.ServiceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[id]
	if !ok {
		return nil, fmt.Errorf("request %s: %w", id, utils.ErrNotFound)
	}
	cp := *req
	return &cp, nil
}
func (f *fakeRatingStore) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) error {
	return nil
}
func (f *fakeRatingStore) UpdatePayment(ctx context.Context, id string, status models.PaymentStatus, invoice *models.Invoice) error {
	return nil
}
func (f *fakeRatingStore) SetPhoto(ctx context.Context, id, photoURL string) error { return nil }
func (f *fakeRatingStore) ListPending(ctx context.Context) ([]models.ServiceRequest, error) {
	return nil, nil
}
func (f *fakeRatingStore) ListByCustomer(ctx context.Context, customerID string) ([]models.ServiceRequest, error) {
	return nil, nil
}
func (f *fakeRatingStore) ListByTechnician(ctx context.Context, technicianID string) ([]models.ServiceRequest, error) {
	return nil, nil
}
func (f *fakeRatingStore) ListAssignedInWindow(ctx context.Context, technicianIDs []string, from, to time.Time) ([]models.ServiceRequest, error) {
	return nil, nil
}
func (f *fakeRatingStore) ListAll(ctx context.Context) ([]models.ServiceRequest, error) {
	return nil, nil
}
func (f *fakeRatingStore) AcceptTransactionally(ctx context.Context, requestID string, snap models.TechnicianSnapshot, conv *models.Conversation, msg *models.Message) error {
	return nil
}
func (f *fakeRatingStore) RecordRatingTransactionally(ctx context.Context, requestID string, role models.RaterRole, rating models.Rating, ratedUserID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	req, ok := f.requests[requestID]
	if !ok {
		return fmt.Errorf("request %s: %w", requestID, utils.ErrNotFound)
	}
	profile, ok := f.profiles[ratedUserID]
	if !ok {
		return fmt.Errorf("profile %s: %w", ratedUserID, utils.ErrNotFound)
	}

	switch role {
	case models.RaterCustomer:
		req.CustomerRating = &rating
	case models.RaterTechnician:
		req.TechnicianRating = &rating
	}
	profile.Rating = profile.Rating.Fold(rating.Stars)
	return nil
}

func completedRequest() *models.ServiceRequest {
	return &models.ServiceRequest{
		ID:         "req-1",
		CustomerID: "cust-1",
		Status:     models.StatusCompleted,
		Technician: &models.TechnicianSnapshot{ID: "tech-1", Name: "Amina Otieno"},
	}
}

func setup() (*fakeRatingStore, *DefaultRatingAggregator) {
	store := newFakeRatingStore()
	store.requests["req-1"] = completedRequest()
	store.profiles["tech-1"] = &models.UserProfile{ID: "tech-1", Role: models.RoleTechnician}
	store.profiles["cust-1"] = &models.UserProfile{ID: "cust-1", Role: models.RoleCustomer}
	return store, &DefaultRatingAggregator{Requests: store}
}

func TestAddRatingFirstRating(t *testing.T) {
	store, agg := setup()

	err := agg.AddRating(context.Background(), "req-1", models.RaterCustomer, models.Rating{Stars: 5})
	require.NoError(t, err)

	tech := store.profiles["tech-1"]
	assert.Equal(t, 1, tech.Rating.Count)
	assert.InDelta(t, 5.0, tech.Rating.Average, 1e-9)
	require.NotNil(t, store.requests["req-1"].CustomerRating)
	assert.Equal(t, 5, store.requests["req-1"].CustomerRating.Stars)
}

func TestAddRatingFoldsIntoRunningAverage(t *testing.T) {
	store, agg := setup()
	store.profiles["tech-1"].Rating = models.RatingAggregate{Count: 1, Average: 5}
	store.requests["req-2"] = &models.ServiceRequest{
		ID:         "req-2",
		CustomerID: "cust-1",
		Status:     models.StatusCompleted,
		Technician: &models.TechnicianSnapshot{ID: "tech-1"},
	}

	err := agg.AddRating(context.Background(), "req-2", models.RaterCustomer, models.Rating{Stars: 3})
	require.NoError(t, err)

	tech := store.profiles["tech-1"]
	assert.Equal(t, 2, tech.Rating.Count)
	assert.InDelta(t, 4.0, tech.Rating.Average, 1e-9)
}

func TestAddRatingConcurrentRatingsNeverLoseUpdates(t *testing.T) {
	store, agg := setup()
	store.requests["req-2"] = &models.ServiceRequest{
		ID:         "req-2",
		CustomerID: "cust-2",
		Status:     models.StatusCompleted,
		Technician: &models.TechnicianSnapshot{ID: "tech-1"},
	}
	store.profiles["cust-2"] = &models.UserProfile{ID: "cust-2", Role: models.RoleCustomer}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		err := agg.AddRating(context.Background(), "req-1", models.RaterCustomer, models.Rating{Stars: 5})
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		err := agg.AddRating(context.Background(), "req-2", models.RaterCustomer, models.Rating{Stars: 3})
		assert.NoError(t, err)
	}()
	wg.Wait()

	tech := store.profiles["tech-1"]
	assert.Equal(t, 2, tech.Rating.Count, "both ratings must land")
	assert.InDelta(t, 4.0, tech.Rating.Average, 1e-9)
}

func TestAddRatingTechnicianRatesCustomer(t *testing.T) {
	store, agg := setup()

	err := agg.AddRating(context.Background(), "req-1", models.RaterTechnician, models.Rating{Stars: 4})
	require.NoError(t, err)

	cust := store.profiles["cust-1"]
	assert.Equal(t, 1, cust.Rating.Count)
	assert.InDelta(t, 4.0, cust.Rating.Average, 1e-9)
	require.NotNil(t, store.requests["req-1"].TechnicianRating)
}

func TestAddRatingUnassignedRequest(t *testing.T) {
	store, agg := setup()
	store.requests["req-1"].Technician = nil

	err := agg.AddRating(context.Background(), "req-1", models.RaterCustomer, models.Rating{Stars: 5})
	assert.ErrorIs(t, err, utils.ErrMissingParty)

	tech := store.profiles["tech-1"]
	assert.Zero(t, tech.Rating.Count, "no aggregate change on failure")
}

func TestAddRatingStarsOutOfRange(t *testing.T) {
	_, agg := setup()

	assert.Error(t, agg.AddRating(context.Background(), "req-1", models.RaterCustomer, models.Rating{Stars: 0}))
	assert.Error(t, agg.AddRating(context.Background(), "req-1", models.RaterCustomer, models.Rating{Stars: 6}))
}

func TestAddRatingUnknownRequest(t *testing.T) {
	_, agg := setup()

	err := agg.AddRating(context.Background(), "ghost", models.RaterCustomer, models.Rating{Stars: 5})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
