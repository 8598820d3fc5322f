package impl

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"autoconnect/config"
	deliverycontext "autoconnect/internal/delivery/context"
	"autoconnect/internal/domain/entity"
	domainerrors "autoconnect/internal/domain/errors"
	"autoconnect/internal/domain/permission"
	"autoconnect/internal/domain/repository"
	"autoconnect/internal/domain/service"
	"autoconnect/internal/errors"
	"autoconnect/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultMutationRetries = 3

type lifecycleService struct {
	repo      repository.AddedVehicleRepository
	txManager repository.TransactionManager
	directory service.DirectoryService
	publisher service.EventPublisher
	qrcode    service.QRCodeService
	logger    *slog.Logger
	retries   int
	now       func() time.Time
}

// LifecycleServiceParams holds dependencies for the lifecycle service, injected by Fx.
type LifecycleServiceParams struct {
	fx.In

	Repo      repository.AddedVehicleRepository
	TxManager repository.TransactionManager
	Directory service.DirectoryService
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewLifecycleService creates the added-vehicle lifecycle use case
func NewLifecycleService(params LifecycleServiceParams) usecase.AddedVehicleLifecycleUsecase {
	retries := defaultMutationRetries
	if params.Config != nil && params.Config.AddedVehicle.MutationRetries > 0 {
		retries = params.Config.AddedVehicle.MutationRetries
	}

	return &lifecycleService{
		repo:      params.Repo,
		txManager: params.TxManager,
		directory: params.Directory,
		publisher: params.Publisher,
		qrcode:    params.QRCode,
		logger:    params.Logger,
		retries:   retries,
		now:       time.Now,
	}
}

func (s *lifecycleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Create validates input and stores a new PENDING request for a vehicle the actor owns
func (s *lifecycleService) Create(ctx context.Context, actor *entity.Actor, input *usecase.CreateAddedVehicleInput, metadata entity.RequestMetadata) (*entity.AddedVehicleRecord, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("body", "is required")
	}
	if input.VehicleID == uuid.Nil {
		return nil, domainerrors.NewValidationError("vehicleId", "is required")
	}

	now := s.now().UTC()
	req := newRequest(actor, input, metadata, now)
	if err := req.Validate(now, true); err != nil {
		return nil, err
	}

	// ownership decides CREATE, so a cached vehicle owner is not good enough
	vehicle, err := s.directory.GetVehicleByID(service.WithFreshRead(ctx), input.VehicleID)
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to get vehicle")
	}

	if err := permission.Authorize(actor, permission.ActionCreate, permission.ForVehicle(vehicle)); err != nil {
		return nil, err
	}

	req.VehicleOwner = vehicle.OwnerID
	req.OwnerNIC = entity.NormalizeNIC(vehicle.OwnerNIC)

	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.NewAddedVehicleRepository()

		exists, err := repo.ExistsOpen(ctx, req.VehicleID, req.AddedBy, req.Purpose, nil)
		if err != nil {
			return errors.Wrap(err, "failed to check for an open request")
		}
		if exists {
			return domainerrors.ErrDuplicateRequest
		}

		return repo.Create(ctx, req)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateActiveRequest) || errors.Is(err, domainerrors.ErrDuplicateRequest) {
			return nil, domainerrors.ErrDuplicateRequest
		}

		return nil, errors.Wrap(err, "failed to create added vehicle request")
	}

	s.log(ctx).Info("Added vehicle request created",
		slog.String("added_vehicle_id", req.ID.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.String("vehicle_id", req.VehicleID.String()),
		slog.String("purpose", string(req.Purpose)),
	)
	s.publish(ctx, service.EventRequestCreated, actor, req, "")

	return &entity.AddedVehicleRecord{
		AddedVehicleRequest: req,
		Vehicle:             vehicle,
		AddedByUser:         actorSummary(actor),
	}, nil
}

// Get returns a request the actor may view
func (s *lifecycleService) Get(ctx context.Context, actor *entity.Actor, id uuid.UUID) (*entity.AddedVehicleRecord, error) {
	req, err := s.loadVisible(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	records, err := joinProjections(ctx, s.directory, []*entity.AddedVehicleRequest{req})
	if err != nil {
		return nil, err
	}

	return records[0], nil
}

// Update applies a partial update
func (s *lifecycleService) Update(ctx context.Context, actor *entity.Actor, id uuid.UUID, input *usecase.UpdateAddedVehicleInput) (*entity.AddedVehicleRecord, error) {
	if input == nil {
		input = &usecase.UpdateAddedVehicleInput{}
	}

	updated, previous, err := s.mutate(ctx, actor, id, permission.ActionUpdate, func(req *entity.AddedVehicleRequest, now time.Time) error {
		return s.applyUpdate(ctx, actor, req, input, now)
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Added vehicle request updated",
		slog.String("added_vehicle_id", updated.ID.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.String("status", string(updated.Status)),
	)
	if updated.Status != previous.Status {
		s.publish(ctx, service.EventRequestStatusChanged, actor, updated, previous.Status)
	}

	return joinOne(ctx, s.directory, s.log(ctx), updated), nil
}

func (s *lifecycleService) applyUpdate(ctx context.Context, actor *entity.Actor, req *entity.AddedVehicleRequest, input *usecase.UpdateAddedVehicleInput, now time.Time) error {
	if req.Status.IsTerminal() {
		return domainerrors.ErrInvalidTransition.WithDetails("request is " + string(req.Status))
	}

	if input.Status != nil {
		target := entity.RequestStatus(entity.NormalizeEnum(string(*input.Status)))
		if target != req.Status {
			if !target.IsValid() {
				return domainerrors.NewValidationError("status", "has an unsupported value")
			}
			// COMPLETED is reached through complete and CANCELLED through delete
			if req.Status != entity.StatusPending || target != entity.StatusActive || !req.Status.CanTransitionTo(target) {
				return domainerrors.ErrInvalidTransition.WithDetails("cannot move from " + string(req.Status) + " to " + string(target) + " by update")
			}
			req.Status = target
			req.Tracking.UpdatedBy = &actor.ID
		}
	}

	previousPurpose := req.Purpose
	if input.Purpose != nil {
		req.Purpose = entity.Purpose(entity.NormalizeEnum(string(*input.Purpose)))
	}
	if input.Priority != nil {
		req.Priority = entity.Priority(entity.NormalizeEnum(string(*input.Priority)))
	}
	if input.Notes != nil {
		req.Notes = *input.Notes
	}
	scheduleChanged := false
	if input.ScheduledDate != nil {
		scheduleChanged = req.ScheduledDate == nil || !req.ScheduledDate.Equal(*input.ScheduledDate)
		scheduled := input.ScheduledDate.UTC()
		req.ScheduledDate = &scheduled
	}
	if input.ServiceDetails != nil {
		req.ServiceDetails = *input.ServiceDetails
	}
	if input.ContactInfo != nil {
		contact := *input.ContactInfo
		contact.PreferredContactMethod = entity.ContactMethod(entity.NormalizeEnum(string(contact.PreferredContactMethod)))
		if contact.PreferredContactMethod == "" {
			contact.PreferredContactMethod = entity.ContactPhone
		}
		req.ContactInfo = contact
	}
	if input.Location != nil {
		req.Location = *input.Location
	}

	if err := req.Validate(now, scheduleChanged); err != nil {
		return err
	}

	if req.Purpose != previousPurpose {
		exists, err := s.repo.ExistsOpen(ctx, req.VehicleID, req.AddedBy, req.Purpose, &req.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check for an open request")
		}
		if exists {
			return domainerrors.ErrDuplicateRequest
		}
	}

	return nil
}

// Complete moves a PENDING or ACTIVE request to COMPLETED
func (s *lifecycleService) Complete(ctx context.Context, actor *entity.Actor, id uuid.UUID, input *usecase.CompleteAddedVehicleInput) (*entity.AddedVehicleRecord, error) {
	completed, previous, err := s.mutate(ctx, actor, id, permission.ActionComplete, func(req *entity.AddedVehicleRequest, now time.Time) error {
		if !req.Status.CanTransitionTo(entity.StatusCompleted) {
			return domainerrors.ErrInvalidTransition.WithDetails("request is already " + string(req.Status))
		}
		if input != nil && input.Notes != nil {
			if utf8.RuneCountInString(*input.Notes) > entity.MaxNotesLength {
				return domainerrors.NewValidationError("notes", "must be at most 1000 characters")
			}
			req.Notes = *input.Notes
		}

		completedAt := now
		req.Status = entity.StatusCompleted
		req.Tracking.CompletedBy = &actor.ID
		req.Tracking.CompletedAt = &completedAt

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Added vehicle request completed",
		slog.String("added_vehicle_id", completed.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)
	s.publish(ctx, service.EventRequestCompleted, actor, completed, previous.Status)

	return joinOne(ctx, s.directory, s.log(ctx), completed), nil
}

// Delete soft-deletes a request, cancelling it. Completion history is kept.
func (s *lifecycleService) Delete(ctx context.Context, actor *entity.Actor, id uuid.UUID) (*entity.AddedVehicleRecord, error) {
	deleted, previous, err := s.mutate(ctx, actor, id, permission.ActionDelete, func(req *entity.AddedVehicleRequest, _ time.Time) error {
		if !req.Status.CanTransitionTo(entity.StatusCancelled) {
			return domainerrors.ErrInvalidTransition.WithDetails("request is already " + string(req.Status))
		}

		req.Status = entity.StatusCancelled
		req.IsActive = false
		req.Tracking.UpdatedBy = &actor.ID

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Added vehicle request deleted",
		slog.String("added_vehicle_id", deleted.ID.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.String("previous_status", string(previous.Status)),
	)
	s.publish(ctx, service.EventRequestCancelled, actor, deleted, previous.Status)

	return joinOne(ctx, s.directory, s.log(ctx), deleted), nil
}

// GenerateCheckInQR renders the check-in QR code of a request the actor may view
func (s *lifecycleService) GenerateCheckInQR(ctx context.Context, actor *entity.Actor, id uuid.UUID) ([]byte, error) {
	req, err := s.loadVisible(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateCheckInQR(req.ID, req.VehicleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate check-in QR code")
	}

	return png, nil
}

// loadVisible returns an active request the actor may view. Requests that are
// missing, soft-deleted or invisible to the actor are all reported as not found.
func (s *lifecycleService) loadVisible(ctx context.Context, actor *entity.Actor, id uuid.UUID) (*entity.AddedVehicleRequest, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddedVehicleRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find added vehicle request")
	}

	if !req.IsActive || !permission.CanPerform(actor, permission.ActionView, permission.ForRequest(req)) {
		return nil, domainerrors.ErrRequestNotFound
	}

	return req, nil
}

// mutate runs a read-check-write cycle under optimistic concurrency. On a version
// conflict the request is re-read and every check runs again, so a concurrent
// transition is observed rather than overwritten.
func (s *lifecycleService) mutate(
	ctx context.Context,
	actor *entity.Actor,
	id uuid.UUID,
	action permission.Action,
	apply func(req *entity.AddedVehicleRequest, now time.Time) error,
) (*entity.AddedVehicleRequest, *entity.AddedVehicleRequest, error) {
	for attempt := 0; ; attempt++ {
		current, err := s.loadVisible(ctx, actor, id)
		if err != nil {
			return nil, nil, err
		}

		if err := permission.Authorize(actor, action, permission.ForRequest(current)); err != nil {
			return nil, nil, err
		}

		next := current.Clone()
		now := s.now().UTC()
		if err := apply(next, now); err != nil {
			return nil, nil, err
		}
		next.Tracking.LastUpdated = now
		next.UpdatedAt = now

		err = s.repo.UpdateByID(ctx, next, current.Version)
		switch {
		case err == nil:
			return next, current, nil
		case errors.Is(err, repository.ErrVersionConflict) && attempt < s.retries:
			s.log(ctx).Debug("Version conflict, retrying",
				slog.String("added_vehicle_id", id.String()),
				slog.Int("attempt", attempt+1),
			)

			continue
		case errors.Is(err, repository.ErrVersionConflict):
			return nil, nil, domainerrors.ErrConflict.WithDetails("request was modified concurrently")
		case errors.Is(err, repository.ErrDuplicateActiveRequest):
			return nil, nil, domainerrors.ErrDuplicateRequest
		default:
			return nil, nil, errors.Wrap(err, "failed to update added vehicle request")
		}
	}
}

// publish sends a lifecycle event after the write has committed. Failures are logged only.
func (s *lifecycleService) publish(ctx context.Context, eventType string, actor *entity.Actor, req *entity.AddedVehicleRequest, from entity.RequestStatus) {
	if s.publisher == nil {
		return
	}

	event := &service.RequestEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Type:       eventType,
		EntityID:   req.ID.String(),
		VehicleID:  req.VehicleID.String(),
		ActorID:    actor.ID.String(),
		OwnerNIC:   req.OwnerNIC,
		Purpose:    string(req.Purpose),
		FromStatus: string(from),
		ToStatus:   string(req.Status),
		OccurredAt: req.Tracking.LastUpdated,
	}

	if err := s.publisher.PublishRequestEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish request event",
			slog.Any("error", err),
			slog.String("event_type", eventType),
			slog.String("added_vehicle_id", req.ID.String()),
		)
	}
}

// newRequest builds a PENDING request from create input with defaults applied.
// Caller-supplied status is ignored.
func newRequest(actor *entity.Actor, input *usecase.CreateAddedVehicleInput, metadata entity.RequestMetadata, now time.Time) *entity.AddedVehicleRequest {
	purpose := entity.Purpose(entity.NormalizeEnum(string(input.Purpose)))
	if purpose == "" {
		purpose = entity.PurposeServiceBooking
	}

	priority := entity.Priority(entity.NormalizeEnum(string(input.Priority)))
	if priority == "" {
		priority = entity.PriorityMedium
	}

	var scheduled *time.Time
	if input.ScheduledDate != nil {
		t := input.ScheduledDate.UTC()
		scheduled = &t
	}

	req := &entity.AddedVehicleRequest{
		ID:            uuid.New(),
		VehicleID:     input.VehicleID,
		AddedBy:       actor.ID,
		Purpose:       purpose,
		Status:        entity.StatusPending,
		Priority:      priority,
		Notes:         input.Notes,
		ScheduledDate: scheduled,
		ContactInfo:   defaultContact(actor, input.ContactInfo),
		Metadata:      metadata,
		Tracking: entity.Tracking{
			SubmittedAt: now,
			LastUpdated: now,
		},
		IsActive:  true,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.ServiceDetails != nil {
		req.ServiceDetails = *input.ServiceDetails
	}
	if input.Location != nil {
		req.Location = *input.Location
	}
	if req.Metadata.Source == "" {
		req.Metadata.Source = entity.SourceWeb
	}

	return req
}

// defaultContact fills missing phone and email from the actor's directory record.
// Directory values that would not pass validation are not copied.
func defaultContact(actor *entity.Actor, in *entity.ContactInfo) entity.ContactInfo {
	var contact entity.ContactInfo
	if in != nil {
		contact = *in
	}

	if contact.Phone == "" && entity.IsValidPhone(actor.Phone) {
		contact.Phone = actor.Phone
	}
	if contact.Email == "" && entity.IsValidEmail(actor.Email) {
		contact.Email = actor.Email
	}

	contact.PreferredContactMethod = entity.ContactMethod(entity.NormalizeEnum(string(contact.PreferredContactMethod)))
	if contact.PreferredContactMethod == "" {
		contact.PreferredContactMethod = entity.ContactPhone
	}

	return contact
}

func actorSummary(actor *entity.Actor) *entity.UserSummary {
	return &entity.UserSummary{
		ID:    actor.ID,
		Name:  actor.Name,
		Email: actor.Email,
		Phone: actor.Phone,
		NIC:   actor.NIC,
		Role:  actor.Role,
	}
}
