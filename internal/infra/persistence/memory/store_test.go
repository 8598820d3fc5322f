package memory

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"autoconnect/internal/domain/entity"
	"autoconnect/internal/domain/query"
	"autoconnect/internal/domain/repository"
	"autoconnect/internal/domain/service"
	"autoconnect/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenRequest(vehicleID, addedBy uuid.UUID, purpose entity.Purpose) *entity.AddedVehicleRequest {
	return &entity.AddedVehicleRequest{
		ID:        uuid.New(),
		VehicleID: vehicleID,
		AddedBy:   addedBy,
		Purpose:   purpose,
		Status:    entity.StatusPending,
		Priority:  entity.PriorityMedium,
		IsActive:  true,
		Version:   1,
	}
}

func TestRequestRepository_CreateRejectsSecondOpenRequest(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Requests()
	vehicleID, actorID := uuid.New(), uuid.New()

	require.NoError(t, repo.Create(ctx, newOpenRequest(vehicleID, actorID, entity.PurposeRental)))

	err := repo.Create(ctx, newOpenRequest(vehicleID, actorID, entity.PurposeRental))
	assert.True(t, errors.Is(err, repository.ErrDuplicateActiveRequest))

	// another purpose or another actor is a different tuple
	assert.NoError(t, repo.Create(ctx, newOpenRequest(vehicleID, actorID, entity.PurposeInsuranceClaim)))
	assert.NoError(t, repo.Create(ctx, newOpenRequest(vehicleID, uuid.New(), entity.PurposeRental)))
}

func TestRequestRepository_ClosedRequestsDoNotBlock(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Requests()
	vehicleID, actorID := uuid.New(), uuid.New()

	first := newOpenRequest(vehicleID, actorID, entity.PurposeRental)
	require.NoError(t, repo.Create(ctx, first))

	first.Status = entity.StatusCompleted
	require.NoError(t, repo.UpdateByID(ctx, first, 1))
	assert.Equal(t, int64(2), first.Version)

	exists, err := repo.ExistsOpen(ctx, vehicleID, actorID, entity.PurposeRental, nil)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, repo.Create(ctx, newOpenRequest(vehicleID, actorID, entity.PurposeRental)))
}

func TestRequestRepository_UpdateByIDChecksVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Requests()

	req := newOpenRequest(uuid.New(), uuid.New(), entity.PurposeOther)
	require.NoError(t, repo.Create(ctx, req))

	stale := req.Clone()
	req.Notes = "first"
	require.NoError(t, repo.UpdateByID(ctx, req, 1))

	stale.Notes = "second"
	err := repo.UpdateByID(ctx, stale, 1)
	assert.True(t, errors.Is(err, repository.ErrVersionConflict))

	stored, err := repo.FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", stored.Notes)
	assert.Equal(t, int64(2), stored.Version)
}

func TestRequestRepository_UpdateByIDKeepsImmutableFields(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Requests()

	req := newOpenRequest(uuid.New(), uuid.New(), entity.PurposeOther)
	req.OwnerNIC = "856789012V"
	require.NoError(t, repo.Create(ctx, req))

	changed := req.Clone()
	changed.AddedBy = uuid.New()
	changed.OwnerNIC = "000000000V"
	require.NoError(t, repo.UpdateByID(ctx, changed, req.Version))

	stored, err := repo.FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, req.AddedBy, stored.AddedBy)
	assert.Equal(t, "856789012V", stored.OwnerNIC)
}

func TestRequestRepository_FindReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Requests()

	req := newOpenRequest(uuid.New(), uuid.New(), entity.PurposeOther)
	require.NoError(t, repo.Create(ctx, req))

	found, err := repo.FindByID(ctx, req.ID)
	require.NoError(t, err)
	found.Notes = "mutated"

	again, err := repo.FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Notes)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrAddedVehicleRequestNotFound))
}

func TestRequestRepository_FindPagesAgreeWithCount(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.Requests()
	actorID := uuid.New()
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	for i := range 7 {
		req := newOpenRequest(uuid.New(), actorID, entity.PurposeOther)
		req.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(ctx, req))
	}
	require.NoError(t, repo.Create(ctx, newOpenRequest(uuid.New(), uuid.New(), entity.PurposeOther)))

	filter := query.ForScope(query.SelfScope(actorID))
	total, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)

	seen := make(map[uuid.UUID]struct{})
	var previous time.Time
	for page := 1; page <= 3; page++ {
		items, err := repo.Find(ctx, filter, query.DefaultSort(), query.Page{Number: page, Size: 3})
		require.NoError(t, err)
		for _, it := range items {
			if !previous.IsZero() {
				assert.True(t, it.CreatedAt.Before(previous), "newest first")
			}
			previous = it.CreatedAt
			seen[it.ID] = struct{}{}
		}
	}
	assert.Len(t, seen, 7)

	items, err := repo.Find(ctx, filter, query.DefaultSort(), query.Page{Number: 4, Size: 3})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRequestRepository_GroupCounts(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Requests()
	actorID := uuid.New()

	rental := newOpenRequest(uuid.New(), actorID, entity.PurposeRental)
	other := newOpenRequest(uuid.New(), actorID, entity.PurposeOther)
	done := newOpenRequest(uuid.New(), actorID, entity.PurposeOther)
	done.Status = entity.StatusCompleted
	gone := newOpenRequest(uuid.New(), actorID, entity.PurposeRental)
	gone.Status = entity.StatusCancelled
	gone.IsActive = false
	for _, r := range []*entity.AddedVehicleRequest{rental, other, done, gone} {
		require.NoError(t, repo.Create(ctx, r))
	}

	filter := query.ForScope(query.SelfScope(actorID))

	byStatus, err := repo.CountByStatus(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, map[entity.RequestStatus]int64{entity.StatusPending: 2, entity.StatusCompleted: 1}, byStatus)

	byPurpose, err := repo.CountByPurpose(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, map[entity.Purpose]int64{entity.PurposeRental: 1, entity.PurposeOther: 2}, byPurpose)
}

func TestStore_ConcurrentCreateKeepsOneOpenRequest(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	vehicleID, actorID := uuid.New(), uuid.New()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.Execute(ctx, func(f repository.RepositoryFactory) error {
				return f.NewAddedVehicleRepository().Create(ctx, newOpenRequest(vehicleID, actorID, entity.PurposeRental))
			})
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++

			continue
		}
		assert.True(t, errors.Is(err, repository.ErrDuplicateActiveRequest))
	}
	assert.Equal(t, 1, succeeded)
}

func TestDirectory_Lookups(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	vehicle := &entity.VehicleSummary{ID: uuid.New(), OwnerNIC: " 856789012v "}
	user := &entity.UserSummary{ID: uuid.New(), NIC: "856789012v", Role: "Admin"}
	store.PutVehicle(vehicle)
	store.PutUser(user)

	dir := store.Directory()

	v, err := dir.GetVehicleByID(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, "856789012V", v.OwnerNIC)

	u, err := dir.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, u.Role)

	_, err = dir.GetVehicleByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, service.ErrVehicleNotFound))
	_, err = dir.GetUserByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, service.ErrUserNotFound))

	vehicles, err := dir.GetVehiclesByIDs(ctx, []uuid.UUID{vehicle.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, vehicles, 1)
	assert.Contains(t, vehicles, vehicle.ID)

	users, err := dir.GetUsersByIDs(ctx, []uuid.UUID{user.ID})
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `users:
  - id: 6b7f8c2e-4d1a-4f3b-9a2e-1c5d7e9f0a11
    name: Nimal Perera
    nicNumber: "199012345678"
    role: admin
vehicles:
  - id: 3f2e1d0c-9b8a-4c7d-8e6f-5a4b3c2d1e44
    registrationNumber: CAB-1234
    year: 2016
    ownerId: 6b7f8c2e-4d1a-4f3b-9a2e-1c5d7e9f0a11
    ownerNIC: "199012345678"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, seed.Users, 1)
	require.Len(t, seed.Vehicles, 1)
	assert.Equal(t, uuid.MustParse("6b7f8c2e-4d1a-4f3b-9a2e-1c5d7e9f0a11"), seed.Users[0].ID)
	assert.Equal(t, 2016, seed.Vehicles[0].Year)

	store := NewStore()
	store.Apply(seed)

	u, err := store.Directory().GetUserByID(context.Background(), seed.Users[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.Equal(t, "Nimal Perera", u.Name)
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
