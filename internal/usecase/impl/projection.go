package impl

import (
	"context"
	"log/slog"

	"autoconnect/internal/domain/entity"
	"autoconnect/internal/domain/service"
	"autoconnect/internal/errors"

	"github.com/google/uuid"
)

// joinProjections attaches vehicle and creator summaries to requests using one
// batched directory lookup per kind. Requests whose vehicle or creator has left the
// directory are returned without that projection.
func joinProjections(ctx context.Context, directory service.DirectoryService, reqs []*entity.AddedVehicleRequest) ([]*entity.AddedVehicleRecord, error) {
	records := make([]*entity.AddedVehicleRecord, 0, len(reqs))
	if len(reqs) == 0 {
		return records, nil
	}

	vehicleIDs := make([]uuid.UUID, 0, len(reqs))
	userIDs := make([]uuid.UUID, 0, len(reqs))
	seenVehicles := make(map[uuid.UUID]struct{}, len(reqs))
	seenUsers := make(map[uuid.UUID]struct{}, len(reqs))
	for _, r := range reqs {
		if _, ok := seenVehicles[r.VehicleID]; !ok {
			seenVehicles[r.VehicleID] = struct{}{}
			vehicleIDs = append(vehicleIDs, r.VehicleID)
		}
		if _, ok := seenUsers[r.AddedBy]; !ok {
			seenUsers[r.AddedBy] = struct{}{}
			userIDs = append(userIDs, r.AddedBy)
		}
	}

	vehicles, err := directory.GetVehiclesByIDs(ctx, vehicleIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vehicle summaries")
	}

	users, err := directory.GetUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user summaries")
	}

	for _, r := range reqs {
		records = append(records, &entity.AddedVehicleRecord{
			AddedVehicleRequest: r,
			Vehicle:             vehicles[r.VehicleID],
			AddedByUser:         users[r.AddedBy],
		})
	}

	return records, nil
}

// joinOne is joinProjections for a single request.
func joinOne(ctx context.Context, directory service.DirectoryService, logger *slog.Logger, req *entity.AddedVehicleRequest) *entity.AddedVehicleRecord {
	records, err := joinProjections(ctx, directory, []*entity.AddedVehicleRequest{req})
	if err != nil {
		// the write already committed; return the bare record
		logger.Warn("Failed to join request projections", slog.Any("error", err), slog.String("added_vehicle_id", req.ID.String()))

		return &entity.AddedVehicleRecord{AddedVehicleRequest: req}
	}

	return records[0]
}
