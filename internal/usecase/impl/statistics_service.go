package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"autoconnect/internal/domain/entity"
	"autoconnect/internal/domain/permission"
	"autoconnect/internal/domain/query"
	"autoconnect/internal/domain/repository"
	"autoconnect/internal/errors"
	"autoconnect/internal/usecase"

	"go.uber.org/fx"
)

type statisticsService struct {
	repo   repository.AddedVehicleRepository
	logger *slog.Logger
	now    func() time.Time
}

// StatisticsServiceParams holds dependencies for the statistics service, injected by Fx.
type StatisticsServiceParams struct {
	fx.In

	Repo   repository.AddedVehicleRepository
	Logger *slog.Logger
}

// NewStatisticsService creates the added-vehicle statistics use case
func NewStatisticsService(params StatisticsServiceParams) usecase.AddedVehicleStatisticsUsecase {
	return &statisticsService{
		repo:   params.Repo,
		logger: params.Logger,
		now:    time.Now,
	}
}

// GetStatistics summarizes active requests in the actor's scope. Everything is
// computed at call time from the same filter.
func (s *statisticsService) GetStatistics(ctx context.Context, actor *entity.Actor, params usecase.StatisticsParams) (*usecase.Statistics, error) {
	scope, err := statisticsScope(actor, params)
	if err != nil {
		return nil, err
	}

	filter := query.ForScope(scope)

	byStatus, err := s.repo.CountByStatus(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count requests by status")
	}

	byPurpose, err := s.repo.CountByPurpose(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count requests by purpose")
	}

	monthStart := startOfMonth(s.now())
	monthFilter := filter
	monthFilter.CreatedFrom = &monthStart
	thisMonth, err := s.repo.Count(ctx, monthFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count requests this month")
	}

	stats := &usecase.Statistics{
		Active:    byStatus[entity.StatusActive],
		Completed: byStatus[entity.StatusCompleted],
		Pending:   byStatus[entity.StatusPending],
		Cancelled: byStatus[entity.StatusCancelled],
		ThisMonth: thisMonth,
		ByPurpose: sortPurposeCounts(byPurpose),
	}
	for _, n := range byStatus {
		stats.Total += n
	}

	return stats, nil
}

// statisticsScope picks the actor's own requests by default, every request for
// admins, or an owner's requests when an owner NIC is given and permitted.
func statisticsScope(actor *entity.Actor, params usecase.StatisticsParams) (query.Scope, error) {
	if nic := entity.NormalizeNIC(params.OwnerNIC); nic != "" {
		if err := permission.Authorize(actor, permission.ActionViewByOwner, permission.ForOwner(nic)); err != nil {
			return query.Scope{}, err
		}

		return query.OwnerScope(nic), nil
	}

	if actor.IsAdmin() {
		return query.AllScope(), nil
	}

	return query.SelfScope(actor.ID), nil
}

// startOfMonth is the first instant of t's calendar month in UTC.
func startOfMonth(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// sortPurposeCounts orders by count descending, then purpose name ascending.
func sortPurposeCounts(counts map[entity.Purpose]int64) []usecase.PurposeCount {
	out := make([]usecase.PurposeCount, 0, len(counts))
	for purpose, n := range counts {
		if n > 0 {
			out = append(out, usecase.PurposeCount{Purpose: purpose, Count: n})
		}
	}

	slices.SortFunc(out, func(a, b usecase.PurposeCount) int {
		if a.Count != b.Count {
			if a.Count > b.Count {
				return -1
			}

			return 1
		}

		return strings.Compare(string(a.Purpose), string(b.Purpose))
	})

	return out
}
