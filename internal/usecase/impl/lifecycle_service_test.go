package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"autoconnect/internal/domain/entity"
	domainerrors "autoconnect/internal/domain/errors"
	"autoconnect/internal/domain/repository"
	"autoconnect/internal/domain/service"
	"autoconnect/internal/errors"
	"autoconnect/internal/infra/persistence/memory"
	"autoconnect/internal/infra/qrcode"
	mockRepo "autoconnect/internal/mocks/repository"
	mockService "autoconnect/internal/mocks/service"
	"autoconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestLifecycleService_Create_Success(t *testing.T) {
	f := createAddedVehicleFixtures(t)
	ctx := context.Background()

	input := &usecase.CreateAddedVehicleInput{
		VehicleID: f.vehicle.ID,
		Status:    entity.StatusActive,
		Notes:     "Oil change",
	}

	record, err := f.lifecycle.Create(ctx, f.owner, input, entity.RequestMetadata{IPAddress: "10.0.0.1"})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPending, record.Status, "caller status is ignored")
	assert.Equal(t, entity.PurposeServiceBooking, record.Purpose)
	assert.Equal(t, entity.PriorityMedium, record.Priority)
	assert.Equal(t, f.owner.ID, record.AddedBy)
	assert.Equal(t, f.owner.ID, record.VehicleOwner)
	assert.Equal(t, f.owner.NIC, record.OwnerNIC)
	assert.Equal(t, f.owner.Phone, record.ContactInfo.Phone)
	assert.Equal(t, f.owner.Email, record.ContactInfo.Email)
	assert.Equal(t, entity.ContactPhone, record.ContactInfo.PreferredContactMethod)
	assert.Equal(t, entity.SourceWeb, record.Metadata.Source)
	assert.Equal(t, "10.0.0.1", record.Metadata.IPAddress)
	assert.Equal(t, testNow, record.Tracking.SubmittedAt)
	assert.Equal(t, testNow, record.Tracking.LastUpdated)
	assert.True(t, record.IsActive)
	require.NotNil(t, record.Vehicle)
	assert.Equal(t, "CAB-1234", record.Vehicle.RegistrationNumber)
	require.NotNil(t, record.AddedByUser)
	assert.Equal(t, f.owner.ID, record.AddedByUser.ID)

	assert.Equal(t, []string{service.EventRequestCreated}, f.events.types())
	event := f.events.last()
	assert.Equal(t, record.ID.String(), event.EntityID)
	assert.Equal(t, string(entity.StatusPending), event.ToStatus)
}

func TestLifecycleService_Create_ByOwnerNIC(t *testing.T) {
	f := createAddedVehicleFixtures(t)

	record := f.createRequest(t, f.creator, f.sharedVehicle.ID, entity.PurposeRepairRequest)

	assert.Equal(t, f.creator.ID, record.AddedBy)
	assert.Equal(t, f.owner.ID, record.VehicleOwner)
	assert.Equal(t, f.creator.NIC, record.OwnerNIC)
}

func TestLifecycleService_Create_Errors(t *testing.T) {
	f := createAddedVehicleFixtures(t)
	ctx := context.Background()
	past := testNow.Add(-time.Hour)

	tests := []struct {
		name    string
		actor   *entity.Actor
		input   *usecase.CreateAddedVehicleInput
		wantErr error
	}{
		{
			name:    "missing vehicle id",
			actor:   f.owner,
			input:   &usecase.CreateAddedVehicleInput{},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown vehicle",
			actor:   f.owner,
			input:   &usecase.CreateAddedVehicleInput{VehicleID: uuid.New()},
			wantErr: domainerrors.ErrVehicleNotFound,
		},
		{
			name:    "not the owner",
			actor:   f.stranger,
			input:   &usecase.CreateAddedVehicleInput{VehicleID: f.vehicle.ID},
			wantErr: domainerrors.ErrPermissionDenied,
		},
		{
			name:    "admin is not an owner",
			actor:   f.admin,
			input:   &usecase.CreateAddedVehicleInput{VehicleID: f.vehicle.ID},
			wantErr: domainerrors.ErrPermissionDenied,
		},
		{
			name:    "unknown purpose",
			actor:   f.owner,
			input:   &usecase.CreateAddedVehicleInput{VehicleID: f.vehicle.ID, Purpose: "PARKING"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "inspection without address",
			actor:   f.owner,
			input:   &usecase.CreateAddedVehicleInput{VehicleID: f.vehicle.ID, Purpose: entity.PurposeInspection},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "scheduled in the past",
			actor:   f.owner,
			input:   &usecase.CreateAddedVehicleInput{VehicleID: f.vehicle.ID, ScheduledDate: &past},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.lifecycle.Create(ctx, tt.actor, tt.input, entity.RequestMetadata{})
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	assert.Empty(t, f.events.types())
}

func TestLifecycleService_Create_Duplicate(t *testing.T) {
	f := createAddedVehicleFixtures(t)
	ctx := context.Background()

	first := f.createRequest(t, f.owner, f.vehicle.ID, entity.PurposeServiceBooking)

	_, err := f.lifecycle.Create(ctx, f.owner, &usecase.CreateAddedVehicleInput{
		VehicleID: f.vehicle.ID,
		Purpose:   "service_booking",
	}, entity.RequestMetadata{})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateRequest))

	stored, err := f.lifecycle.Get(ctx, f.owner, first.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, stored.Status)
	assert.Equal(t, first.Version, stored.Version)

	// another purpose is allowed
	f.createRequest(t, f.owner, f.vehicle.ID, entity.PurposeInsuranceClaim)
}

func TestLifecycleService_Create_ConcurrentDuplicates(t *testing.T) {
	f := createAddedVehicleFixtures(t)
	ctx := context.Background()

	const callers = 16
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.lifecycle.Create(ctx, f.owner, &usecase.CreateAddedVehicleInput{
				VehicleID: f.vehicle.ID,
				Purpose:   entity.PurposeRental,
			}, entity.RequestMetadata{})
		}()
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++

			continue
		}
		assert.True(t, errors.Is(err, domainerrors.ErrDuplicateRequest), "got %v", err)
	}
	assert.Equal(t, 1, created)

	exists, err := f.store.Requests().ExistsOpen(ctx, f.vehicle.ID, f.owner.ID, entity.PurposeRental, nil)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLifecycleService_Get_Visibility(t *testing.T) {
	f := createAddedVehicleFixtures(t)
	ctx := context.Background()

	record := f.createRequest(t, f.creator, f.sharedVehicle.ID, entity.PurposeOther)

	for _, actor := range []*entity.Actor{f.creator, f.owner, f.admin} {
		got, err := f.lifecycle.Get(ctx, actor, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.ID, got.ID)
		require.NotNil(t, got.Vehicle)
		assert.Equal(t, f.sharedVehicle.ID, got.Vehicle.ID)
	}

	_, err := f.lifecycle.Get(ctx, f.stranger, record.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound), "invisible requests look missing")

	_, err = f.lifecycle.Get(ctx, f.admin, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))
}

func TestLifecycleService_Update(t *testing.T) {
	f := createAddedVehicleFixtures(t)
	ctx := context.Background()

	record := f.createRequest(t, f.owner, f.vehicle.ID, entity.PurposeServiceBooking)
	otherVehicle := uuid.New()

	updated, err := f.lifecycle.Update(ctx, f.owner, record.ID, &usecase.UpdateAddedVehicleInput{
		Status:    ptr(entity.RequestStatus("active")),
		Priority:  ptr(entity.PriorityHigh),
		Notes:     ptr("Bring service book"),
		VehicleID: &otherVehicle,
		AddedBy:   ptr(uuid.New()),
		OwnerNIC:  ptr("000000000V"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusActive, updated.Status)
	assert.Equal(t, entity.PriorityHigh, updated.Priority)
	assert.Equal(t, "Bring service book", updated.Notes)
	assert.Equal(t, f.vehicle.ID, updated.VehicleID, "immutable fields are ignored")
	assert.Equal(t, f.owner.ID, updated.AddedBy)
	assert.Equal(t, f.owner.NIC, updated.OwnerNIC)
	require.NotNil(t, updated.Tracking.UpdatedBy)
	assert.Equal(t, f.owner.ID, *updated.Tracking.UpdatedBy)
	assert.Equal(t, record.Version+1, updated.Version)

	assert.Equal(t, []string{service.EventRequestCreated, service.EventRequestStatusChanged}, f.events.types())
	assert.Equal(t, string(entity.StatusPending), f.events.last().FromStatus)
}

func TestLifecycleService_Update_NotesOnlyKeepsUpdatedBy(t *testing.T) {
	f := createAddedVehicleFixtures(t)
	ctx := context.Background()

	record := f.createRequest(t, f.owner, f.vehicle.ID, entity.PurposeServiceBooking)

	updated, err := f.lifecycle.Update(ctx, f.owner, record.ID, &usecase.UpdateAddedVehicleInput{Notes: ptr("n")})
	require.NoError(t, err)
	assert.Nil(t, updated.Tracking.UpdatedBy)
	assert.Equal(t, entity.StatusPending, updated.Status)
	assert.Equal(t, []string{service.EventRequestCreated}, f.events.types())
}

func TestLifecycleService_Update_Errors(t *testing.T) {
	f := createAddedVehicleFixtures(t)
	ctx := context.Background()

	shared := f.createRequest(t, f.creator, f.sharedVehicle.ID, entity.PurposeServiceBooking)
	own := f.createRequest(t, f.owner, f.vehicle.ID, entity.PurposeServiceBooking)
	f.createRequest(t, f.owner, f.vehicle.ID, entity.PurposeRental)

	_, err := f.lifecycle.Update(ctx, f.owner, shared.ID, &usecase.UpdateAddedVehicleInput{Notes: ptr("x")})
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied), "vehicle owner may not update")

	_, err = f.lifecycle.Update(ctx, f.stranger, own.ID, &usecase.UpdateAddedVehicleInput{Notes: ptr("x")})
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))

	_, err = f.lifecycle.Update(ctx, f.owner, own.ID, &usecase.UpdateAddedVehicleInput{Status: ptr(entity.StatusCompleted)})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))

	_, err = f.lifecycle.Update(ctx, f.owner, own.ID, &usecase.UpdateAddedVehicleInput{Status: ptr(entity.RequestStatus("ARCHIVED"))})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = f.lifecycle.Update(ctx, f.owner, own.ID, &usecase.UpdateAddedVehicleInput{Purpose: ptr(entity.PurposeRental)})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateRequest))

	_, err = f.lifecycle.Update(ctx, f.owner, own.ID, &usecase.UpdateAddedVehicleInput{Purpose: ptr(entity.PurposeInspection)})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "inspection needs an address")

	_, err = f.lifecycle.Update(ctx, f.owner, own.ID, &usecase.UpdateAddedVehicleInput{Status: ptr(entity.StatusActive)})
	require.NoError(t, err)
	_, err = f.lifecycle.Update(ctx, f.owner, own.ID, &usecase.UpdateAddedVehicleInput{Status: ptr(entity.StatusPending)})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestLifecycleService_Complete(t *testing.T) {
	f := createAddedVehicleFixtures(t)
	ctx := context.Background()

	record := f.createRequest(t, f.creator, f.sharedVehicle.ID, entity.PurposeServiceBooking)

	_, err := f.lifecycle.Complete(ctx, f.stranger, record.ID, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))

	completed, err := f.lifecycle.Complete(ctx, f.owner, record.ID, &usecase.CompleteAddedVehicleInput{Notes: ptr("Done, invoice sent")})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, completed.Status)
	assert.Equal(t, "Done, invoice sent", completed.Notes)
	require.NotNil(t, completed.Tracking.CompletedBy)
	assert.Equal(t, f.owner.ID, *completed.Tracking.CompletedBy)
	require.NotNil(t, completed.Tracking.CompletedAt)
	assert.Equal(t, testNow, *completed.Tracking.CompletedAt)

	_, err = f.lifecycle.Complete(ctx, f.creator, record.ID, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition), "double complete")

	assert.Equal(t, service.EventRequestCompleted, f.events.last().Type)
}

func TestLifecycleService_Complete_KeepsNotesWithoutBody(t *testing.T) {
	f := createAddedVehicleFixtures(t)
	ctx := context.Background()

	record, err := f.lifecycle.Create(ctx, f.owner, &usecase.CreateAddedVehicleInput{
		VehicleID: f.vehicle.ID,
		Notes:     "original",
	}, entity.RequestMetadata{})
	require.NoError(t, err)

	completed, err := f.lifecycle.Complete(ctx, f.owner, record.ID, &usecase.CompleteAddedVehicleInput{})
	require.NoError(t, err)
	assert.Equal(t, "original", completed.Notes)
}

func TestLifecycleService_OwnerCompletesThenCreatorDeletes(t *testing.T) {
	f := createAddedVehicleFixtures(t)
	ctx := context.Background()

	record := f.createRequest(t, f.creator, f.sharedVehicle.ID, entity.PurposeInspection)

	_, err := f.lifecycle.Complete(ctx, f.owner, record.ID, nil)
	require.NoError(t, err)

	_, err = f.lifecycle.Delete(ctx, f.owner, record.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))

	deleted, err := f.lifecycle.Delete(ctx, f.creator, record.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, deleted.Status)
	assert.False(t, deleted.IsActive)
	require.NotNil(t, deleted.Tracking.CompletedBy, "completion history is kept")
	assert.Equal(t, f.owner.ID, *deleted.Tracking.CompletedBy)

	_, err = f.lifecycle.Get(ctx, f.creator, record.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))

	_, err = f.lifecycle.Delete(ctx, f.creator, record.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound), "second delete")

	stored, err := f.store.Requests().FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, stored.Status)

	assert.Equal(t, []string{
		service.EventRequestCreated,
		service.EventRequestCompleted,
		service.EventRequestCancelled,
	}, f.events.types())
}

func TestLifecycleService_DeleteFreesDuplicateSlot(t *testing.T) {
	f := createAddedVehicleFixtures(t)
	ctx := context.Background()

	record := f.createRequest(t, f.owner, f.vehicle.ID, entity.PurposeRental)
	_, err := f.lifecycle.Delete(ctx, f.owner, record.ID)
	require.NoError(t, err)

	f.createRequest(t, f.owner, f.vehicle.ID, entity.PurposeRental)
}

func TestLifecycleService_GenerateCheckInQR(t *testing.T) {
	f := createAddedVehicleFixtures(t)
	ctx := context.Background()

	record := f.createRequest(t, f.owner, f.vehicle.ID, entity.PurposeServiceBooking)

	png, err := f.lifecycle.GenerateCheckInQR(ctx, f.owner, record.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	_, err = f.lifecycle.GenerateCheckInQR(ctx, f.stranger, record.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))
}

func TestLifecycleService_PublishFailureDoesNotFailWrite(t *testing.T) {
	store := memory.NewStore()
	owner := newUser("owner", "856789012V", entity.RoleUser)
	store.PutUser(owner)
	vehicle := &entity.VehicleSummary{ID: uuid.New(), OwnerID: owner.ID, OwnerNIC: owner.NIC}
	store.PutVehicle(vehicle)

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishRequestEvent(mock.Anything, mock.Anything).
		Return(errors.New("broker down")).
		Once()

	svc := NewLifecycleService(LifecycleServiceParams{
		Repo:      store.Requests(),
		TxManager: store,
		Directory: store.Directory(),
		Publisher: publisher,
		QRCode:    qrcode.NewQRCodeService(0, ""),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	record, err := svc.Create(context.Background(), entity.NewActor(owner), &usecase.CreateAddedVehicleInput{VehicleID: vehicle.ID}, entity.RequestMetadata{})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, record.Status)
}

// lifecycleWithRepo builds a lifecycle service over a mocked repository.
func TestLifecycleService_Create_ReadsVehicleOwnershipFresh(t *testing.T) {
	owner := &entity.Actor{ID: uuid.New(), NIC: "856789012V", Role: entity.RoleUser}
	vehicleID := uuid.New()

	directory := mockService.NewMockDirectoryService(t)
	directory.EXPECT().
		GetVehicleByID(mock.MatchedBy(service.IsFreshRead), vehicleID).
		Return(nil, service.ErrVehicleNotFound).Once()

	lifecycle := NewLifecycleService(LifecycleServiceParams{
		Repo:      mockRepo.NewMockAddedVehicleRepository(t),
		Directory: directory,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	_, err := lifecycle.Create(context.Background(), owner, &usecase.CreateAddedVehicleInput{
		VehicleID: vehicleID,
		Purpose:   entity.PurposeServiceBooking,
	}, entity.RequestMetadata{})
	assert.True(t, errors.Is(err, domainerrors.ErrVehicleNotFound))
}

func lifecycleWithRepo(t *testing.T, repo *mockRepo.MockAddedVehicleRepository, retries int) usecase.AddedVehicleLifecycleUsecase {
	t.Helper()

	directory := mockService.NewMockDirectoryService(t)
	directory.EXPECT().GetVehiclesByIDs(mock.Anything, mock.Anything).Return(map[uuid.UUID]*entity.VehicleSummary{}, nil).Maybe()
	directory.EXPECT().GetUsersByIDs(mock.Anything, mock.Anything).Return(map[uuid.UUID]*entity.UserSummary{}, nil).Maybe()

	cfg := newTestConfig()
	cfg.AddedVehicle.MutationRetries = retries

	return NewLifecycleService(LifecycleServiceParams{
		Repo:      repo,
		Directory: directory,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})
}

func storedRequest(owner *entity.Actor, version int64) *entity.AddedVehicleRequest {
	return &entity.AddedVehicleRequest{
		ID:           uuid.New(),
		VehicleID:    uuid.New(),
		AddedBy:      owner.ID,
		VehicleOwner: owner.ID,
		OwnerNIC:     owner.NIC,
		Purpose:      entity.PurposeServiceBooking,
		Status:       entity.StatusPending,
		Priority:     entity.PriorityMedium,
		ContactInfo:  entity.ContactInfo{PreferredContactMethod: entity.ContactPhone},
		Metadata:     entity.RequestMetadata{Source: entity.SourceWeb},
		IsActive:     true,
		Version:      version,
	}
}

func TestLifecycleService_Complete_RetriesOnVersionConflict(t *testing.T) {
	repo := mockRepo.NewMockAddedVehicleRepository(t)
	svc := lifecycleWithRepo(t, repo, 3)
	ctx := context.Background()
	actor := &entity.Actor{ID: uuid.New(), NIC: "856789012V"}

	first := storedRequest(actor, 1)
	second := first.Clone()
	second.Version = 2
	second.Notes = "changed concurrently"

	repo.EXPECT().FindByID(ctx, first.ID).Return(first, nil).Once()
	repo.EXPECT().UpdateByID(ctx, mock.AnythingOfType("*entity.AddedVehicleRequest"), int64(1)).
		Return(repository.ErrVersionConflict).Once()
	repo.EXPECT().FindByID(ctx, first.ID).Return(second, nil).Once()
	repo.EXPECT().UpdateByID(ctx, mock.MatchedBy(func(r *entity.AddedVehicleRequest) bool {
		return r.Status == entity.StatusCompleted && r.Notes == "changed concurrently"
	}), int64(2)).Return(nil).Once()

	completed, err := svc.Complete(ctx, actor, first.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, completed.Status)
}

func TestLifecycleService_Complete_ObservesConcurrentTransition(t *testing.T) {
	repo := mockRepo.NewMockAddedVehicleRepository(t)
	svc := lifecycleWithRepo(t, repo, 3)
	ctx := context.Background()
	actor := &entity.Actor{ID: uuid.New(), NIC: "856789012V"}

	first := storedRequest(actor, 1)
	done := first.Clone()
	done.Version = 2
	done.Status = entity.StatusCompleted

	repo.EXPECT().FindByID(ctx, first.ID).Return(first, nil).Once()
	repo.EXPECT().UpdateByID(ctx, mock.Anything, int64(1)).Return(repository.ErrVersionConflict).Once()
	repo.EXPECT().FindByID(ctx, first.ID).Return(done, nil).Once()

	_, err := svc.Complete(ctx, actor, first.ID, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestLifecycleService_Update_ConflictAfterRetries(t *testing.T) {
	repo := mockRepo.NewMockAddedVehicleRepository(t)
	svc := lifecycleWithRepo(t, repo, 2)
	ctx := context.Background()
	actor := &entity.Actor{ID: uuid.New()}

	req := storedRequest(actor, 4)
	repo.EXPECT().FindByID(ctx, req.ID).RunAndReturn(func(context.Context, uuid.UUID) (*entity.AddedVehicleRequest, error) {
		return req.Clone(), nil
	}).Times(3)
	repo.EXPECT().UpdateByID(ctx, mock.Anything, int64(4)).Return(repository.ErrVersionConflict).Times(3)

	_, err := svc.Update(ctx, actor, req.ID, &usecase.UpdateAddedVehicleInput{Notes: ptr("x")})
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
	assert.False(t, errors.Is(err, domainerrors.ErrDuplicateRequest))
}

func TestLifecycleService_RepositoryFailureIsInternal(t *testing.T) {
	repo := mockRepo.NewMockAddedVehicleRepository(t)
	svc := lifecycleWithRepo(t, repo, 1)
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().FindByID(ctx, id).Return(nil, errors.New("connection reset")).Once()

	_, err := svc.Get(ctx, &entity.Actor{ID: uuid.New()}, id)
	require.Error(t, err)

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr), "storage failures are not domain errors")
}
