package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"autoconnect/internal/delivery/http/middleware"
	"autoconnect/internal/delivery/http/response"
	"autoconnect/internal/domain/constants"
	"autoconnect/internal/domain/entity"
	domainerrors "autoconnect/internal/domain/errors"
	"autoconnect/internal/domain/query"
	"autoconnect/internal/domain/service"
	"autoconnect/internal/errors"
	"autoconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	headerTotalCount = "X-Total-Count"
	headerTruncated  = "X-Export-Truncated"
)

// AddedVehicleHandlerParams holds dependencies for AddedVehicleHandler, injected by Fx.
type AddedVehicleHandlerParams struct {
	fx.In

	LifecycleUC  usecase.AddedVehicleLifecycleUsecase
	QueryUC      usecase.AddedVehicleQueryUsecase
	StatisticsUC usecase.AddedVehicleStatisticsUsecase
	ExportWriter service.ExportWriter
	Logger       *slog.Logger
}

// AddedVehicleHandler serves the added-vehicle request routes
type AddedVehicleHandler struct {
	lifecycleUC  usecase.AddedVehicleLifecycleUsecase
	queryUC      usecase.AddedVehicleQueryUsecase
	statisticsUC usecase.AddedVehicleStatisticsUsecase
	exportWriter service.ExportWriter
	logger       *slog.Logger
	now          func() time.Time
}

// NewAddedVehicleHandler is the constructor for AddedVehicleHandler
func NewAddedVehicleHandler(params AddedVehicleHandlerParams) *AddedVehicleHandler {
	return &AddedVehicleHandler{
		lifecycleUC:  params.LifecycleUC,
		queryUC:      params.QueryUC,
		statisticsUC: params.StatisticsUC,
		exportWriter: params.ExportWriter,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// exportParams are the export query parameters
type exportParams struct {
	query.ListParams
	Format string `query:"format"`
}

// List handles listing the caller's own requests
func (h *AddedVehicleHandler) List(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var params query.ListParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "Invalid query parameters")
	}

	result, err := h.queryUC.ListOwn(c.Request().Context(), actor, params)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, result.Items, result.Pagination, "Added vehicles retrieved successfully")
}

// ListByOwner handles listing requests for an owner's vehicles
func (h *AddedVehicleHandler) ListByOwner(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var params query.ListParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "Invalid query parameters")
	}

	nic := strings.TrimSpace(c.Param("nicNumber"))
	if nic == "" {
		return response.HandleAppError(c, domainerrors.NewValidationError("nicNumber", "is required"))
	}

	result, err := h.queryUC.ListByOwner(c.Request().Context(), actor, nic, params)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, result.Items, result.Pagination, "Owner added vehicles retrieved successfully")
}

// Create handles creating a new request
func (h *AddedVehicleHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var input usecase.CreateAddedVehicleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid added vehicle input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.lifecycleUC.Create(c.Request().Context(), actor, &input, requestMetadata(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, record, "Vehicle added successfully")
}

// Get handles fetching a single request
func (h *AddedVehicleHandler) Get(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.lifecycleUC.Get(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "Added vehicle retrieved successfully")
}

// Update handles a partial update
func (h *AddedVehicleHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateAddedVehicleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid added vehicle update")
	}

	record, err := h.lifecycleUC.Update(c.Request().Context(), actor, id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "Added vehicle updated successfully")
}

// Complete handles completing a request
func (h *AddedVehicleHandler) Complete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.CompleteAddedVehicleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid completion input")
	}

	record, err := h.lifecycleUC.Complete(c.Request().Context(), actor, id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "Added vehicle marked as completed")
}

// Delete handles soft-deleting a request
func (h *AddedVehicleHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.lifecycleUC.Delete(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "Added vehicle removed successfully")
}

// Statistics handles the statistics summary
func (h *AddedVehicleHandler) Statistics(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var params usecase.StatisticsParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "Invalid query parameters")
	}

	stats, err := h.statisticsUC.GetStatistics(c.Request().Context(), actor, params)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}

// Export handles the bounded export, as JSON in the envelope or as a CSV or XLSX download
func (h *AddedVehicleHandler) Export(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var params exportParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "Invalid query parameters")
	}

	format := service.ExportFormat(strings.ToLower(strings.TrimSpace(params.Format)))
	if format == "" {
		format = service.ExportJSON
	}
	if !format.IsValid() {
		return response.HandleAppError(c, domainerrors.NewValidationError("format", "must be json, csv or xlsx"))
	}

	result, err := h.queryUC.Export(c.Request().Context(), actor, params.ListParams)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !format.IsFile() {
		return response.Success(c, http.StatusOK, result, "Added vehicles exported successfully")
	}

	filename := fmt.Sprintf("added-vehicles-%s.%s", h.now().UTC().Format("20060102-150405"), format)
	header := c.Response().Header()
	header.Set(echo.HeaderContentType, h.exportWriter.ContentType(format))
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	header.Set(headerTotalCount, strconv.FormatInt(result.TotalCount, 10))
	header.Set(headerTruncated, strconv.FormatBool(result.Truncated))
	c.Response().WriteHeader(http.StatusOK)

	if err := h.exportWriter.Write(c.Response(), format, result.Items); err != nil {
		// headers are already sent; the client sees a truncated body
		h.logger.ErrorContext(c.Request().Context(), "Failed to write export",
			slog.String("format", string(format)),
			slog.Any("error", err),
		)

		return nil
	}

	return nil
}

// CheckInQR handles rendering the check-in QR code of a request
func (h *AddedVehicleHandler) CheckInQR(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.lifecycleUC.GenerateCheckInQR(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.NewValidationError("id", "must be a valid UUID"))
	}

	return id, nil
}

// requestMetadata captures the provenance of a create call
func requestMetadata(c echo.Context) entity.RequestMetadata {
	req := c.Request()

	return entity.RequestMetadata{
		Source:    entity.ParseSourceChannel(req.Header.Get(constants.HeaderClientSource)),
		IPAddress: c.RealIP(),
		UserAgent: req.UserAgent(),
		SessionID: req.Header.Get(constants.HeaderSessionID),
	}
}
