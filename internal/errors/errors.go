package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrItemNotFound is returned when an item is not found.
	ErrItemNotFound = errors.New("item not found")
	// ErrSelfPurchase is returned when a user tries to purchase their own item.
	ErrSelfPurchase = errors.New("cannot purchase your own item")
	// ErrNotItemOwner is returned when a non-owner tries to delete an item.
	ErrNotItemOwner = errors.New("cannot delete another user's item")
	// ErrItemSoldOut is returned when purchasing an item that is already sold.
	ErrItemSoldOut = errors.New("item is already sold out")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials is returned for a bad username or password.
	// Missing user and wrong password share this value so responses cannot
	// be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("check username or password")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrItemNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ITEM_NOT_FOUND")
	case ErrSelfPurchase:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SELF_PURCHASE")
	case ErrNotItemOwner:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NOT_ITEM_OWNER")
	case ErrItemSoldOut:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ITEM_SOLD_OUT")
	case ErrUsernameTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
