package service

import (
	"context"

	"autoconnect/internal/domain/entity"
	"autoconnect/internal/errors"

	"github.com/google/uuid"
)

// Directory lookup errors.
var (
	// ErrVehicleNotFound is returned when the vehicle registry has no such vehicle.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrUserNotFound is returned when the user directory has no such user.
	ErrUserNotFound = errors.New("user not found")
)

// DirectoryService is the read-only view of the vehicle registry and the user directory.
type DirectoryService interface {
	// GetVehicleByID returns ErrVehicleNotFound when the vehicle does not exist.
	GetVehicleByID(ctx context.Context, id uuid.UUID) (*entity.VehicleSummary, error)

	// GetUserByID returns ErrUserNotFound when the user does not exist.
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.UserSummary, error)

	// GetVehiclesByIDs returns the vehicles found among ids, keyed by id. Missing ids are skipped.
	GetVehiclesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.VehicleSummary, error)

	// GetUsersByIDs returns the users found among ids, keyed by id. Missing ids are skipped.
	GetUsersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.UserSummary, error)
}

type freshReadKey struct{}

// WithFreshRead marks ctx so caching directory implementations read through to the
// source of record. Authorization lookups use it.
func WithFreshRead(ctx context.Context) context.Context {
	return context.WithValue(ctx, freshReadKey{}, true)
}

// IsFreshRead reports whether ctx was marked by WithFreshRead.
func IsFreshRead(ctx context.Context) bool {
	fresh, _ := ctx.Value(freshReadKey{}).(bool)

	return fresh
}
