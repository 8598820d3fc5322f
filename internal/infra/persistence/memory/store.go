// Package memory is an in-process implementation of the request store and the
// directory, used by the memory storage driver and in tests. It enforces the same
// open-request uniqueness and version checks as the PostgreSQL schema.
package memory

import (
	"context"
	"slices"
	"sync"

	"autoconnect/internal/domain/entity"
	"autoconnect/internal/domain/query"
	"autoconnect/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds requests, vehicles and users behind one lock.
type Store struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]*entity.AddedVehicleRequest
	vehicles map[uuid.UUID]*entity.VehicleSummary
	users    map[uuid.UUID]*entity.UserSummary

	// txMu serializes Execute callbacks
	txMu sync.Mutex
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		requests: make(map[uuid.UUID]*entity.AddedVehicleRequest),
		vehicles: make(map[uuid.UUID]*entity.VehicleSummary),
		users:    make(map[uuid.UUID]*entity.UserSummary),
	}
}

// PutVehicle adds or replaces a vehicle in the directory.
func (s *Store) PutVehicle(v *entity.VehicleSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *v
	c.OwnerNIC = entity.NormalizeNIC(c.OwnerNIC)
	s.vehicles[c.ID] = &c
}

// PutUser adds or replaces a user in the directory.
func (s *Store) PutUser(u *entity.UserSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *u
	c.NIC = entity.NormalizeNIC(c.NIC)
	c.Role = entity.ParseRole(string(c.Role))
	s.users[c.ID] = &c
}

// Requests returns the store as an AddedVehicleRepository.
func (s *Store) Requests() repository.AddedVehicleRepository {
	return (*requestRepository)(s)
}

// Execute runs fn while holding the transaction lock, so check-then-write sequences
// inside fn do not interleave with other Execute calls. Writes are not rolled back.
func (s *Store) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	return fn(s)
}

// NewAddedVehicleRepository implements repository.RepositoryFactory.
func (s *Store) NewAddedVehicleRepository() repository.AddedVehicleRepository {
	return s.Requests()
}

// matching returns copies of the requests matching filter. Callers hold s.mu.
func (s *Store) matching(filter query.Filter) []*entity.AddedVehicleRequest {
	out := make([]*entity.AddedVehicleRequest, 0)
	for _, r := range s.requests {
		if filter.Matches(r, s.vehicles[r.VehicleID]) {
			out = append(out, r.Clone())
		}
	}

	return out
}

func (s *Store) sorted(filter query.Filter, sort query.Sort) []*entity.AddedVehicleRequest {
	out := s.matching(filter)
	slices.SortFunc(out, sort.Compare)

	return out
}
