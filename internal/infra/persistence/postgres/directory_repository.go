package postgres

import (
	"context"

	"autoconnect/internal/domain/entity"
	"autoconnect/internal/domain/service"
	"autoconnect/internal/errors"
	"autoconnect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// directoryRepository reads the vehicle registry and the user directory tables.
type directoryRepository struct {
	db *gorm.DB
}

// NewDirectoryRepository is the constructor for directoryRepository.
func NewDirectoryRepository(db *gorm.DB) service.DirectoryService {
	return &directoryRepository{
		db: db,
	}
}

// GetVehicleByID retrieves a vehicle summary by id.
func (repo *directoryRepository) GetVehicleByID(ctx context.Context, id uuid.UUID) (*entity.VehicleSummary, error) {
	var vehicleM model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&vehicleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle by ID")
	}

	return toVehicleSummary(&vehicleM), nil
}

// GetUserByID retrieves a user summary by id.
func (repo *directoryRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.UserSummary, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserSummary(&userM), nil
}

// GetVehiclesByIDs retrieves the vehicles among ids that exist, keyed by id.
func (repo *directoryRepository) GetVehiclesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.VehicleSummary, error) {
	result := make(map[uuid.UUID]*entity.VehicleSummary, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var vehicleModels []*model.VehicleModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&vehicleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vehicles by IDs")
	}

	for _, vehicleM := range vehicleModels {
		result[vehicleM.ID] = toVehicleSummary(vehicleM)
	}

	return result, nil
}

// GetUsersByIDs retrieves the users among ids that exist, keyed by id.
func (repo *directoryRepository) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.UserSummary, error) {
	result := make(map[uuid.UUID]*entity.UserSummary, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by IDs")
	}

	for _, userM := range userModels {
		result[userM.ID] = toUserSummary(userM)
	}

	return result, nil
}

func toVehicleSummary(vehicleM *model.VehicleModel) *entity.VehicleSummary {
	return &entity.VehicleSummary{
		ID:                 vehicleM.ID,
		RegistrationNumber: vehicleM.RegistrationNumber,
		Make:               vehicleM.Make,
		Model:              vehicleM.Model,
		Year:               vehicleM.Year,
		Color:              vehicleM.Color,
		VerificationStatus: vehicleM.VerificationStatus,
		Mileage:            vehicleM.Mileage,
		OwnerID:            vehicleM.OwnerID,
		OwnerNIC:           entity.NormalizeNIC(vehicleM.OwnerNIC),
	}
}

func toUserSummary(userM *model.UserModel) *entity.UserSummary {
	return &entity.UserSummary{
		ID:    userM.ID,
		Name:  userM.Name,
		Email: userM.Email,
		Phone: userM.Phone,
		NIC:   entity.NormalizeNIC(userM.NICNumber),
		Role:  entity.ParseRole(userM.Role),
	}
}
