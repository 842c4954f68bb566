package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user record is missing.
	ErrUserNotFound = errors.New("user not found")
	// ErrProjectNotFound is returned when a project record is missing.
	ErrProjectNotFound = errors.New("project not found")
	// ErrProductNotFound is returned when a product record is missing.
	ErrProductNotFound = errors.New("product not found")
	// ErrEmailExists is returned when registering with an email already in use.
	ErrEmailExists = errors.New("email already exists")
	// ErrInvalidCredentials is returned when login verification fails.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotOwner is returned when an authenticated user touches a resource
	// owned by somebody else.
	ErrNotOwner = errors.New("not authorized to access this resource")
	// ErrProjectClosed is returned when mutating or re-reporting a closed project.
	ErrProjectClosed = errors.New("project is already closed")
	// ErrProductClosed is returned when mutating a closed product.
	ErrProductClosed = errors.New("product is already closed")
	// ErrProductLimit is returned when a project already holds its maximum
	// number of products.
	ErrProductLimit = errors.New("product limit for project has been reached")
	// ErrInvalidOrientation is returned when an orientation code is not one of
	// the 16 compass points.
	ErrInvalidOrientation = errors.New("invalid orientation")
	// ErrMissingFields is returned when required request fields are absent.
	ErrMissingFields = errors.New("please enter all required fields")
	// ErrNoOpenProducts is returned when a report is requested for a project
	// with nothing left to report on.
	ErrNoOpenProducts = errors.New("project has no open products to report on")
	// ErrWeatherUpstream is returned when the weather provider call fails.
	ErrWeatherUpstream = errors.New("weather provider request failed")
	// ErrMailUpstream is returned when the mail relay call fails.
	ErrMailUpstream = errors.New("mail delivery failed")
)

// ErrorResponse is the JSON body every failed request carries.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError pairs a domain error with the status it maps to.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse
// to an opaque 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrProjectNotFound):
		return NewHTTPError(http.StatusNotFound, ErrProjectNotFound.Error(), "PROJECT_NOT_FOUND")
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, ErrProductNotFound.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrEmailExists):
		return NewHTTPError(http.StatusBadRequest, ErrEmailExists.Error(), "EMAIL_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNotOwner):
		return NewHTTPError(http.StatusForbidden, ErrNotOwner.Error(), "FORBIDDEN")
	case errors.Is(err, ErrProjectClosed):
		return NewHTTPError(http.StatusConflict, ErrProjectClosed.Error(), "PROJECT_CLOSED")
	case errors.Is(err, ErrProductClosed):
		return NewHTTPError(http.StatusConflict, ErrProductClosed.Error(), "PRODUCT_CLOSED")
	case errors.Is(err, ErrProductLimit):
		return NewHTTPError(http.StatusBadRequest, ErrProductLimit.Error(), "PRODUCT_LIMIT_REACHED")
	case errors.Is(err, ErrInvalidOrientation):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidOrientation.Error(), "INVALID_ORIENTATION")
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, ErrMissingFields.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrNoOpenProducts):
		return NewHTTPError(http.StatusBadRequest, ErrNoOpenProducts.Error(), "NO_OPEN_PRODUCTS")
	case errors.Is(err, ErrWeatherUpstream):
		return NewHTTPError(http.StatusBadGateway, ErrWeatherUpstream.Error(), "WEATHER_UPSTREAM")
	case errors.Is(err, ErrMailUpstream):
		return NewHTTPError(http.StatusBadGateway, ErrMailUpstream.Error(), "MAIL_UPSTREAM")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
