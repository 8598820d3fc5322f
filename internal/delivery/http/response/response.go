package response

import (
	"net/http"

	deliverycontext "autoconnect/internal/delivery/context"
	domainerrors "autoconnect/internal/domain/errors"
	"autoconnect/internal/domain/query"
	"autoconnect/internal/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success    bool              `json:"success"`
	Code       int               `json:"code"`    // HTTP status code
	Message    string            `json:"message"` // User-friendly message
	Data       any               `json:"data,omitempty"`
	Pagination *query.Pagination `json:"pagination,omitempty"`
	Error      *ErrorInfo        `json:"error,omitempty"`
	RequestID  string            `json:"requestId,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string                    `json:"code"` // Stable error kind, e.g., "NOT_FOUND"
	Details string                    `json:"details,omitempty"`
	Fields  []domainerrors.FieldError `json:"fields,omitempty"` // Failed fields of a validation error
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success:   true,
		Code:      statusCode,
		Message:   message,
		Data:      data,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// List successful paginated response
func List(c echo.Context, data any, pagination query.Pagination, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(http.StatusOK, Response{
		Success:    true,
		Code:       http.StatusOK,
		Message:    message,
		Data:       data,
		Pagination: &pagination,
		RequestID:  deliverycontext.GetRequestID(c),
	})
}

// Error error response. Details are dropped for 5xx responses.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	return write(c, statusCode, errorCode, message, details, nil)
}

func write(c echo.Context, statusCode int, errorCode, message, details string, fields []domainerrors.FieldError) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if statusCode >= http.StatusInternalServerError {
		details = ""
		fields = nil
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
			Fields:  fields,
		},
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, domainerrors.CodeValidation, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, domainerrors.CodeInternal, domainerrors.ErrInternalError.Message(), "")
}

// HandleAppError writes domain errors as their HTTP equivalent. Any other error is
// returned so the echo error handler logs it and answers 500.
func HandleAppError(c echo.Context, err error) error {
	var verr *domainerrors.ValidationError
	if errors.As(err, &verr) {
		return write(c, verr.HTTPCode(), verr.ErrorCode(), verr.Message(), "", verr.Fields)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			return errors.WithStack(err)
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
