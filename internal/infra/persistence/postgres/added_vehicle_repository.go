// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"autoconnect/internal/domain/entity"
	domainerrors "autoconnect/internal/domain/errors"
	"autoconnect/internal/domain/query"
	"autoconnect/internal/domain/repository"
	"autoconnect/internal/errors"
	"autoconnect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	requestsTable = "added_vehicle_requests"
	col           = requestsTable + "."
)

// priorityRank orders priorities by urgency rather than by name.
const priorityRank = "CASE " + col + "priority WHEN 'LOW' THEN 1 WHEN 'MEDIUM' THEN 2 WHEN 'HIGH' THEN 3 WHEN 'URGENT' THEN 4 ELSE 0 END"

var sortColumns = map[query.SortField]string{
	query.SortCreatedAt:     col + "created_at",
	query.SortUpdatedAt:     col + "updated_at",
	query.SortScheduledDate: col + "scheduled_date",
	query.SortPriority:      priorityRank,
	query.SortStatus:        col + "status",
	query.SortPurpose:       col + "purpose",
}

var searchEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// addedVehicleRepository implements the repository.AddedVehicleRepository interface.
type addedVehicleRepository struct {
	db *gorm.DB
}

// NewAddedVehicleRepository is the constructor for addedVehicleRepository.
func NewAddedVehicleRepository(db *gorm.DB) repository.AddedVehicleRepository {
	return &addedVehicleRepository{
		db: db,
	}
}

// Create persists a new request.
func (repo *addedVehicleRepository) Create(ctx context.Context, req *entity.AddedVehicleRequest) error {
	reqM := fromAddedVehicleDomain(req)

	if err := repo.db.WithContext(ctx).Create(reqM).Error; err != nil {
		if isActiveRequestViolation(err) {
			return repository.ErrDuplicateActiveRequest
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("request violates a storage constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create added vehicle request")
	}

	req.CreatedAt = reqM.CreatedAt
	req.UpdatedAt = reqM.UpdatedAt

	return nil
}

// FindByID retrieves a request by id from the primary, soft-deleted rows included.
func (repo *addedVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AddedVehicleRequest, error) {
	var reqM model.AddedVehicleRequestModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&reqM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddedVehicleRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find added vehicle request by ID")
	}

	return toAddedVehicleDomain(&reqM), nil
}

// ExistsOpen checks the primary for an active PENDING or ACTIVE request of the tuple.
func (repo *addedVehicleRepository) ExistsOpen(ctx context.Context, vehicleID, addedBy uuid.UUID, purpose entity.Purpose, excludeID *uuid.UUID) (bool, error) {
	tx := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.AddedVehicleRequestModel{}).
		Where("vehicle_id = ? AND added_by = ? AND purpose = ?", vehicleID, addedBy, string(purpose)).
		Where("is_active = ? AND status IN ?", true, []string{string(entity.StatusPending), string(entity.StatusActive)})
	if excludeID != nil {
		tx = tx.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := tx.Limit(1).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check open added vehicle requests")
	}

	return count > 0, nil
}

// Find returns one sorted page of requests matching filter.
func (repo *addedVehicleRepository) Find(ctx context.Context, filter query.Filter, sort query.Sort, page query.Page) ([]*entity.AddedVehicleRequest, error) {
	var reqModels []*model.AddedVehicleRequestModel

	direction := " ASC"
	if sort.Desc {
		direction = " DESC"
	}
	column, ok := sortColumns[sort.Field]
	if !ok {
		column = sortColumns[query.SortCreatedAt]
	}

	if err := repo.scoped(ctx, filter).
		Select(col + "*").
		Order(column + direction).
		Order(col + "id" + direction).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&reqModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find added vehicle requests")
	}

	reqs := make([]*entity.AddedVehicleRequest, 0, len(reqModels))
	for _, reqM := range reqModels {
		reqs = append(reqs, toAddedVehicleDomain(reqM))
	}

	return reqs, nil
}

// Count returns the number of requests matching filter.
func (repo *addedVehicleRepository) Count(ctx context.Context, filter query.Filter) (int64, error) {
	var count int64
	if err := repo.scoped(ctx, filter).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count added vehicle requests")
	}

	return count, nil
}

// UpdateByID writes the mutable fields of req when the row is still at expectedVersion.
func (repo *addedVehicleRepository) UpdateByID(ctx context.Context, req *entity.AddedVehicleRequest, expectedVersion int64) error {
	reqM := fromAddedVehicleDomain(req)
	nextVersion := expectedVersion + 1

	result := repo.db.WithContext(ctx).
		Model(&model.AddedVehicleRequestModel{}).
		Where("id = ? AND version = ?", req.ID, expectedVersion).
		Updates(map[string]any{
			"purpose":         reqM.Purpose,
			"status":          reqM.Status,
			"priority":        reqM.Priority,
			"notes":           reqM.Notes,
			"scheduled_date":  reqM.ScheduledDate,
			"service_details": reqM.ServiceDetails,
			"contact_info":    reqM.ContactInfo,
			"location":        reqM.Location,
			"last_updated":    reqM.LastUpdated,
			"updated_by":      reqM.UpdatedBy,
			"completed_by":    reqM.CompletedBy,
			"completed_at":    reqM.CompletedAt,
			"is_active":       reqM.IsActive,
			"version":         nextVersion,
			"updated_at":      reqM.UpdatedAt,
		})
	if err := result.Error; err != nil {
		if isActiveRequestViolation(err) {
			return repository.ErrDuplicateActiveRequest
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update added vehicle request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVersionConflict
	}

	req.Version = nextVersion

	return nil
}

type groupCount struct {
	Key   string
	Count int64
}

// CountByStatus groups the requests matching filter by status.
func (repo *addedVehicleRepository) CountByStatus(ctx context.Context, filter query.Filter) (map[entity.RequestStatus]int64, error) {
	rows, err := repo.groupBy(ctx, filter, col+"status")
	if err != nil {
		return nil, errors.Wrap(err, "failed to count added vehicle requests by status")
	}

	counts := make(map[entity.RequestStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.RequestStatus(row.Key)] = row.Count
	}

	return counts, nil
}

// CountByPurpose groups the requests matching filter by purpose.
func (repo *addedVehicleRepository) CountByPurpose(ctx context.Context, filter query.Filter) (map[entity.Purpose]int64, error) {
	rows, err := repo.groupBy(ctx, filter, col+"purpose")
	if err != nil {
		return nil, errors.Wrap(err, "failed to count added vehicle requests by purpose")
	}

	counts := make(map[entity.Purpose]int64, len(rows))
	for _, row := range rows {
		counts[entity.Purpose(row.Key)] = row.Count
	}

	return counts, nil
}

func (repo *addedVehicleRepository) groupBy(ctx context.Context, filter query.Filter, column string) ([]groupCount, error) {
	var rows []groupCount
	err := repo.scoped(ctx, filter).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error

	return rows, err
}

// scoped applies filter to a query over the requests table. The page, the count
// and the aggregates all start here.
func (repo *addedVehicleRepository) scoped(ctx context.Context, filter query.Filter) *gorm.DB {
	tx := repo.db.WithContext(ctx).Model(&model.AddedVehicleRequestModel{})

	if !filter.IncludeInactive {
		tx = tx.Where(col+"is_active = ?", true)
	}
	if filter.AddedBy != nil {
		tx = tx.Where(col+"added_by = ?", *filter.AddedBy)
	}
	if filter.OwnerNIC != "" {
		tx = tx.Where(col+"owner_nic = ?", filter.OwnerNIC)
	}
	if filter.VehicleID != nil {
		tx = tx.Where(col+"vehicle_id = ?", *filter.VehicleID)
	}
	if filter.Status != "" {
		tx = tx.Where(col+"status = ?", string(filter.Status))
	}
	if filter.Purpose != "" {
		tx = tx.Where(col+"purpose = ?", string(filter.Purpose))
	}
	if filter.CreatedFrom != nil {
		tx = tx.Where(col+"created_at >= ?", *filter.CreatedFrom)
	}
	if filter.Search != "" {
		pattern := "%" + searchEscaper.Replace(filter.Search) + "%"
		tx = tx.
			Joins("LEFT JOIN vehicles ON vehicles.id = "+col+"vehicle_id").
			Where(
				col+"notes ILIKE ? OR vehicles.registration_number ILIKE ? OR vehicles.make ILIKE ? OR vehicles.model ILIKE ?",
				pattern, pattern, pattern, pattern,
			)
	}

	return tx
}

func fromAddedVehicleDomain(req *entity.AddedVehicleRequest) *model.AddedVehicleRequestModel {
	return &model.AddedVehicleRequestModel{
		ID:             req.ID,
		VehicleID:      req.VehicleID,
		AddedBy:        req.AddedBy,
		VehicleOwner:   req.VehicleOwner,
		OwnerNIC:       req.OwnerNIC,
		Purpose:        string(req.Purpose),
		Status:         string(req.Status),
		Priority:       string(req.Priority),
		Notes:          req.Notes,
		ScheduledDate:  req.ScheduledDate,
		ServiceDetails: datatypes.NewJSONType(req.ServiceDetails),
		ContactInfo:    datatypes.NewJSONType(req.ContactInfo),
		Location:       datatypes.NewJSONType(req.Location),
		Metadata:       datatypes.NewJSONType(req.Metadata),
		SubmittedAt:    req.Tracking.SubmittedAt,
		LastUpdated:    req.Tracking.LastUpdated,
		UpdatedBy:      req.Tracking.UpdatedBy,
		CompletedBy:    req.Tracking.CompletedBy,
		CompletedAt:    req.Tracking.CompletedAt,
		IsActive:       req.IsActive,
		Version:        req.Version,
		CreatedAt:      req.CreatedAt,
		UpdatedAt:      req.UpdatedAt,
	}
}

func toAddedVehicleDomain(reqM *model.AddedVehicleRequestModel) *entity.AddedVehicleRequest {
	return &entity.AddedVehicleRequest{
		ID:             reqM.ID,
		VehicleID:      reqM.VehicleID,
		AddedBy:        reqM.AddedBy,
		VehicleOwner:   reqM.VehicleOwner,
		OwnerNIC:       reqM.OwnerNIC,
		Purpose:        entity.Purpose(reqM.Purpose),
		Status:         entity.RequestStatus(reqM.Status),
		Priority:       entity.Priority(reqM.Priority),
		Notes:          reqM.Notes,
		ScheduledDate:  reqM.ScheduledDate,
		ServiceDetails: reqM.ServiceDetails.Data(),
		ContactInfo:    reqM.ContactInfo.Data(),
		Location:       reqM.Location.Data(),
		Metadata:       reqM.Metadata.Data(),
		Tracking: entity.Tracking{
			SubmittedAt: reqM.SubmittedAt,
			LastUpdated: reqM.LastUpdated,
			UpdatedBy:   reqM.UpdatedBy,
			CompletedBy: reqM.CompletedBy,
			CompletedAt: reqM.CompletedAt,
		},
		IsActive:  reqM.IsActive,
		Version:   reqM.Version,
		CreatedAt: reqM.CreatedAt,
		UpdatedAt: reqM.UpdatedAt,
	}
}
