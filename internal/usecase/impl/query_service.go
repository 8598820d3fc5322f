package impl

import (
	"context"
	"log/slog"

	"autoconnect/config"
	deliverycontext "autoconnect/internal/delivery/context"
	"autoconnect/internal/domain/entity"
	"autoconnect/internal/domain/permission"
	"autoconnect/internal/domain/query"
	"autoconnect/internal/domain/repository"
	"autoconnect/internal/domain/service"
	"autoconnect/internal/errors"
	"autoconnect/internal/usecase"

	"go.uber.org/fx"
)

type queryService struct {
	repo      repository.AddedVehicleRepository
	directory service.DirectoryService
	limits    query.Limits
	logger    *slog.Logger
}

// QueryServiceParams holds dependencies for the query service, injected by Fx.
type QueryServiceParams struct {
	fx.In

	Repo      repository.AddedVehicleRepository
	Directory service.DirectoryService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewQueryService creates the added-vehicle list and export use case
func NewQueryService(params QueryServiceParams) usecase.AddedVehicleQueryUsecase {
	return &queryService{
		repo:      params.Repo,
		directory: params.Directory,
		limits:    limitsFromConfig(params.Config),
		logger:    params.Logger,
	}
}

func limitsFromConfig(cfg *config.Config) query.Limits {
	limits := query.DefaultLimits()
	if cfg == nil {
		return limits
	}

	if cfg.AddedVehicle.DefaultPageSize > 0 {
		limits.DefaultPageSize = cfg.AddedVehicle.DefaultPageSize
	}
	if cfg.AddedVehicle.MaxPageSize > 0 {
		limits.MaxPageSize = cfg.AddedVehicle.MaxPageSize
	}
	if cfg.AddedVehicle.ExportLimit > 0 {
		limits.ExportLimit = cfg.AddedVehicle.ExportLimit
	}

	return limits
}

func (s *queryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListOwn lists the actor's own requests
func (s *queryService) ListOwn(ctx context.Context, actor *entity.Actor, params query.ListParams) (*usecase.ListResult, error) {
	plan, err := query.Build(query.SelfScope(actor.ID), params, s.limits)
	if err != nil {
		return nil, err
	}

	return s.list(ctx, plan)
}

// ListByOwner lists requests for vehicles of the owner identified by nic
func (s *queryService) ListByOwner(ctx context.Context, actor *entity.Actor, nic string, params query.ListParams) (*usecase.ListResult, error) {
	nic = entity.NormalizeNIC(nic)
	if err := permission.Authorize(actor, permission.ActionViewByOwner, permission.ForOwner(nic)); err != nil {
		return nil, err
	}

	plan, err := query.Build(query.OwnerScope(nic), params, s.limits)
	if err != nil {
		return nil, err
	}

	return s.list(ctx, plan)
}

func (s *queryService) list(ctx context.Context, plan *query.Plan) (*usecase.ListResult, error) {
	total, err := s.repo.Count(ctx, plan.Filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count added vehicle requests")
	}

	reqs, err := s.repo.Find(ctx, plan.Filter, plan.Sort, plan.Page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find added vehicle requests")
	}

	items, err := joinProjections(ctx, s.directory, reqs)
	if err != nil {
		return nil, err
	}

	return &usecase.ListResult{
		Items:      items,
		Pagination: query.NewPagination(plan.Page, total),
	}, nil
}

// Export returns the actor's requests matching params, capped at the export limit
func (s *queryService) Export(ctx context.Context, actor *entity.Actor, params query.ListParams) (*usecase.ExportResult, error) {
	plan, err := query.BuildExport(query.SelfScope(actor.ID), params, s.limits)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx, plan.Filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count added vehicle requests")
	}

	reqs, err := s.repo.Find(ctx, plan.Filter, plan.Sort, plan.Page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find added vehicle requests")
	}

	items, err := joinProjections(ctx, s.directory, reqs)
	if err != nil {
		return nil, err
	}

	truncated := total > int64(len(items))
	if truncated {
		s.log(ctx).Info("Export truncated",
			slog.String("actor_id", actor.ID.String()),
			slog.Int64("total", total),
			slog.Int("limit", plan.Page.Size),
		)
	}

	return &usecase.ExportResult{
		Items:      items,
		TotalCount: total,
		Truncated:  truncated,
	}, nil
}
