package memory

import (
	"context"

	"autoconnect/internal/domain/entity"
	"autoconnect/internal/domain/service"

	"github.com/google/uuid"
)

// directory implements service.DirectoryService over a Store.
type directory Store

// Directory returns the store as a DirectoryService.
func (s *Store) Directory() service.DirectoryService {
	return (*directory)(s)
}

func (d *directory) GetVehicleByID(_ context.Context, id uuid.UUID) (*entity.VehicleSummary, error) {
	s := (*Store)(d)
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vehicles[id]
	if !ok {
		return nil, service.ErrVehicleNotFound
	}
	c := *v

	return &c, nil
}

func (d *directory) GetUserByID(_ context.Context, id uuid.UUID) (*entity.UserSummary, error) {
	s := (*Store)(d)
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	c := *u

	return &c, nil
}

func (d *directory) GetVehiclesByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.VehicleSummary, error) {
	s := (*Store)(d)
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[uuid.UUID]*entity.VehicleSummary, len(ids))
	for _, id := range ids {
		if v, ok := s.vehicles[id]; ok {
			c := *v
			out[id] = &c
		}
	}

	return out, nil
}

func (d *directory) GetUsersByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.UserSummary, error) {
	s := (*Store)(d)
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[uuid.UUID]*entity.UserSummary, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			c := *u
			out[id] = &c
		}
	}

	return out, nil
}
