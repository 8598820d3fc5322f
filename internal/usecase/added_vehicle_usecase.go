package usecase

import (
	"context"
	"time"

	"autoconnect/internal/domain/entity"
	"autoconnect/internal/domain/query"

	"github.com/google/uuid"
)

// CreateAddedVehicleInput is the caller-supplied part of a new request.
// Nil sub-records fall back to defaults.
type CreateAddedVehicleInput struct {
	VehicleID      uuid.UUID              `json:"vehicleId" validate:"required"`
	Purpose        entity.Purpose         `json:"purpose"`
	Status         entity.RequestStatus   `json:"status"` // ignored, requests always start PENDING
	Priority       entity.Priority        `json:"priority"`
	Notes          string                 `json:"notes"`
	ScheduledDate  *time.Time             `json:"scheduledDate"`
	ServiceDetails *entity.ServiceDetails `json:"serviceDetails"`
	ContactInfo    *entity.ContactInfo    `json:"contactInfo"`
	Location       *entity.Location       `json:"location"`
}

// UpdateAddedVehicleInput is a partial update. Nil fields are left unchanged.
// Immutable fields are decoded so that clients sending them are not rejected,
// and are then ignored.
type UpdateAddedVehicleInput struct {
	Purpose        *entity.Purpose        `json:"purpose"`
	Status         *entity.RequestStatus  `json:"status"`
	Priority       *entity.Priority       `json:"priority"`
	Notes          *string                `json:"notes"`
	ScheduledDate  *time.Time             `json:"scheduledDate"`
	ServiceDetails *entity.ServiceDetails `json:"serviceDetails"`
	ContactInfo    *entity.ContactInfo    `json:"contactInfo"`
	Location       *entity.Location       `json:"location"`

	VehicleID    *uuid.UUID `json:"vehicleId"`
	AddedBy      *uuid.UUID `json:"addedBy"`
	VehicleOwner *uuid.UUID `json:"vehicleOwner"`
	CreatedBy    *uuid.UUID `json:"createdBy"`
	OwnerNIC     *string    `json:"ownerNIC"`
	IsActive     *bool      `json:"isActive"`
	Tracking     any        `json:"tracking"`
	Metadata     any        `json:"metadata"`
}

// CompleteAddedVehicleInput optionally replaces the notes on completion.
type CompleteAddedVehicleInput struct {
	Notes *string `json:"notes"`
}

// AddedVehicleLifecycleUsecase defines the single-record operations on added-vehicle requests
type AddedVehicleLifecycleUsecase interface {
	// Create validates input and stores a new PENDING request for a vehicle the actor owns
	Create(ctx context.Context, actor *entity.Actor, input *CreateAddedVehicleInput, metadata entity.RequestMetadata) (*entity.AddedVehicleRecord, error)

	// Get returns a request the actor may view
	Get(ctx context.Context, actor *entity.Actor, id uuid.UUID) (*entity.AddedVehicleRecord, error)

	// Update applies a partial update
	Update(ctx context.Context, actor *entity.Actor, id uuid.UUID, input *UpdateAddedVehicleInput) (*entity.AddedVehicleRecord, error)

	// Complete moves a PENDING or ACTIVE request to COMPLETED
	Complete(ctx context.Context, actor *entity.Actor, id uuid.UUID, input *CompleteAddedVehicleInput) (*entity.AddedVehicleRecord, error)

	// Delete soft-deletes a request, cancelling it
	Delete(ctx context.Context, actor *entity.Actor, id uuid.UUID) (*entity.AddedVehicleRecord, error)

	// GenerateCheckInQR renders the check-in QR code of a request the actor may view
	GenerateCheckInQR(ctx context.Context, actor *entity.Actor, id uuid.UUID) ([]byte, error)
}

// ListResult is one page of requests.
type ListResult struct {
	Items      []*entity.AddedVehicleRecord `json:"items"`
	Pagination query.Pagination             `json:"pagination"`
}

// ExportResult is a bounded, unpaginated result.
type ExportResult struct {
	Items      []*entity.AddedVehicleRecord `json:"items"`
	TotalCount int64                        `json:"totalCount"`
	Truncated  bool                         `json:"truncated"`
}

// AddedVehicleQueryUsecase defines list and export reads
type AddedVehicleQueryUsecase interface {
	// ListOwn lists the actor's own requests
	ListOwn(ctx context.Context, actor *entity.Actor, params query.ListParams) (*ListResult, error)

	// ListByOwner lists requests for vehicles of the owner identified by nic
	ListByOwner(ctx context.Context, actor *entity.Actor, nic string, params query.ListParams) (*ListResult, error)

	// Export returns the actor's requests matching params, capped at the export limit
	Export(ctx context.Context, actor *entity.Actor, params query.ListParams) (*ExportResult, error)
}

// PurposeCount is one row of the purpose breakdown.
type PurposeCount struct {
	Purpose entity.Purpose `json:"purpose"`
	Count   int64          `json:"count"`
}

// Statistics is a point-in-time summary of active requests in a scope.
type Statistics struct {
	Total     int64          `json:"total"`
	Active    int64          `json:"active"`
	Completed int64          `json:"completed"`
	Pending   int64          `json:"pending"`
	Cancelled int64          `json:"cancelled"`
	ThisMonth int64          `json:"thisMonth"`
	ByPurpose []PurposeCount `json:"byPurpose"`
}

// StatisticsParams selects the statistics scope.
type StatisticsParams struct {
	OwnerNIC string `query:"ownerNIC"`
}

// AddedVehicleStatisticsUsecase defines the statistics read
type AddedVehicleStatisticsUsecase interface {
	// GetStatistics summarizes the actor's requests, every request for admins,
	// or an owner's requests when OwnerNIC is set and permitted
	GetStatistics(ctx context.Context, actor *entity.Actor, params StatisticsParams) (*Statistics, error)
}

// ActorUsecase resolves the authenticated caller
type ActorUsecase interface {
	// ResolveActor loads the directory record of userID, failing with ErrUnauthorized when unknown
	ResolveActor(ctx context.Context, userID uuid.UUID) (*entity.Actor, error)
}
