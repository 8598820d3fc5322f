// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"autoconnect/internal/domain/entity"
	"autoconnect/internal/domain/query"
	"autoconnect/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for added-vehicle request persistence.
var (
	// ErrAddedVehicleRequestNotFound is returned when no request has the given id.
	ErrAddedVehicleRequestNotFound = errors.New("added vehicle request not found")
	// ErrDuplicateActiveRequest is returned when a write would leave two open, active
	// requests for the same vehicle, creator and purpose.
	ErrDuplicateActiveRequest = errors.New("active added vehicle request already exists")
	// ErrVersionConflict is returned when a conditional update finds the row at another version.
	ErrVersionConflict = errors.New("added vehicle request was modified concurrently")
)

// AddedVehicleRepository defines the persistence operations for added-vehicle requests.
// Find and Count accept the same Filter so a page and its total agree.
type AddedVehicleRepository interface {
	// Create persists a new request. It returns ErrDuplicateActiveRequest when the
	// open-request uniqueness rule is violated.
	Create(ctx context.Context, req *entity.AddedVehicleRequest) error

	// FindByID retrieves a request by id, soft-deleted ones included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AddedVehicleRequest, error)

	// ExistsOpen reports whether an active PENDING or ACTIVE request exists for the tuple,
	// ignoring excludeID when set.
	ExistsOpen(ctx context.Context, vehicleID, addedBy uuid.UUID, purpose entity.Purpose, excludeID *uuid.UUID) (bool, error)

	// Find returns one sorted page of requests matching filter.
	Find(ctx context.Context, filter query.Filter, sort query.Sort, page query.Page) ([]*entity.AddedVehicleRequest, error)

	// Count returns the number of requests matching filter.
	Count(ctx context.Context, filter query.Filter) (int64, error)

	// UpdateByID writes every mutable field of req if the stored row is still at
	// expectedVersion, and advances req.Version. It returns ErrVersionConflict otherwise.
	UpdateByID(ctx context.Context, req *entity.AddedVehicleRequest, expectedVersion int64) error

	// CountByStatus groups the requests matching filter by status.
	CountByStatus(ctx context.Context, filter query.Filter) (map[entity.RequestStatus]int64, error)

	// CountByPurpose groups the requests matching filter by purpose.
	CountByPurpose(ctx context.Context, filter query.Filter) (map[entity.Purpose]int64, error)
}
