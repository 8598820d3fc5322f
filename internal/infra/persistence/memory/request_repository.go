package memory

import (
	"context"
	"time"

	"autoconnect/internal/domain/entity"
	"autoconnect/internal/domain/query"
	"autoconnect/internal/domain/repository"

	"github.com/google/uuid"
)

// requestRepository implements repository.AddedVehicleRepository over a Store.
type requestRepository Store

func (r *requestRepository) store() *Store {
	return (*Store)(r)
}

// Create stores a copy of req, rejecting a second open request for the same tuple.
func (r *requestRepository) Create(_ context.Context, req *entity.AddedVehicleRequest) error {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.IsOpen() && s.openExists(req.VehicleID, req.AddedBy, req.Purpose, &req.ID) {
		return repository.ErrDuplicateActiveRequest
	}

	now := time.Now().UTC()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	if req.UpdatedAt.IsZero() {
		req.UpdatedAt = req.CreatedAt
	}

	s.requests[req.ID] = req.Clone()

	return nil
}

// FindByID returns a copy of the request, soft-deleted ones included.
func (r *requestRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.AddedVehicleRequest, error) {
	s := r.store()
	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.requests[id]
	if !ok {
		return nil, repository.ErrAddedVehicleRequestNotFound
	}

	return req.Clone(), nil
}

// ExistsOpen reports whether an open request exists for the tuple.
func (r *requestRepository) ExistsOpen(_ context.Context, vehicleID, addedBy uuid.UUID, purpose entity.Purpose, excludeID *uuid.UUID) (bool, error) {
	s := r.store()
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.openExists(vehicleID, addedBy, purpose, excludeID), nil
}

// Find returns one sorted page of matching requests.
func (r *requestRepository) Find(_ context.Context, filter query.Filter, sort query.Sort, page query.Page) ([]*entity.AddedVehicleRequest, error) {
	s := r.store()
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.sorted(filter, sort)
	start := min(max(page.Offset(), 0), len(all))
	end := min(start+page.Size, len(all))

	return all[start:end], nil
}

// Count returns the number of matching requests.
func (r *requestRepository) Count(_ context.Context, filter query.Filter) (int64, error) {
	s := r.store()
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, req := range s.requests {
		if filter.Matches(req, s.vehicles[req.VehicleID]) {
			n++
		}
	}

	return n, nil
}

// UpdateByID replaces the stored request when it is still at expectedVersion.
func (r *requestRepository) UpdateByID(_ context.Context, req *entity.AddedVehicleRequest, expectedVersion int64) error {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.requests[req.ID]
	if !ok || current.Version != expectedVersion {
		return repository.ErrVersionConflict
	}
	if req.IsOpen() && s.openExists(req.VehicleID, req.AddedBy, req.Purpose, &req.ID) {
		return repository.ErrDuplicateActiveRequest
	}

	next := req.Clone()
	// identity and provenance never change after creation
	next.VehicleID = current.VehicleID
	next.AddedBy = current.AddedBy
	next.VehicleOwner = current.VehicleOwner
	next.OwnerNIC = current.OwnerNIC
	next.Metadata = current.Metadata
	next.Tracking.SubmittedAt = current.Tracking.SubmittedAt
	next.CreatedAt = current.CreatedAt
	next.Version = expectedVersion + 1

	s.requests[req.ID] = next
	req.Version = next.Version

	return nil
}

// CountByStatus groups matching requests by status.
func (r *requestRepository) CountByStatus(_ context.Context, filter query.Filter) (map[entity.RequestStatus]int64, error) {
	s := r.store()
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[entity.RequestStatus]int64)
	for _, req := range s.requests {
		if filter.Matches(req, s.vehicles[req.VehicleID]) {
			counts[req.Status]++
		}
	}

	return counts, nil
}

// CountByPurpose groups matching requests by purpose.
func (r *requestRepository) CountByPurpose(_ context.Context, filter query.Filter) (map[entity.Purpose]int64, error) {
	s := r.store()
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[entity.Purpose]int64)
	for _, req := range s.requests {
		if filter.Matches(req, s.vehicles[req.VehicleID]) {
			counts[req.Purpose]++
		}
	}

	return counts, nil
}

// openExists checks the uniqueness rule. Callers hold s.mu.
func (s *Store) openExists(vehicleID, addedBy uuid.UUID, purpose entity.Purpose, excludeID *uuid.UUID) bool {
	for id, req := range s.requests {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if req.IsOpen() && req.VehicleID == vehicleID && req.AddedBy == addedBy && req.Purpose == purpose {
			return true
		}
	}

	return false
}
