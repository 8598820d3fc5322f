package impl

import (
	"context"
	"log/slog"

	deliverycontext "autoconnect/internal/delivery/context"
	"autoconnect/internal/domain/entity"
	domainerrors "autoconnect/internal/domain/errors"
	"autoconnect/internal/domain/service"
	"autoconnect/internal/errors"
	"autoconnect/internal/usecase"

	"github.com/google/uuid"
)

type actorService struct {
	directory service.DirectoryService
	logger    *slog.Logger
}

// NewActorService creates the actor resolution use case. The directory record,
// not the token, is authoritative for role and NIC.
func NewActorService(directory service.DirectoryService, logger *slog.Logger) usecase.ActorUsecase {
	return &actorService{
		directory: directory,
		logger:    logger,
	}
}

// ResolveActor loads the directory record of userID
func (s *actorService) ResolveActor(ctx context.Context, userID uuid.UUID) (*entity.Actor, error) {
	user, err := s.directory.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Token subject not in user directory",
				slog.String("user_id", userID.String()),
			)

			return nil, domainerrors.ErrUnauthorized.WithDetails("unknown user")
		}

		return nil, errors.Wrap(err, "failed to resolve actor")
	}

	return entity.NewActor(user), nil
}
