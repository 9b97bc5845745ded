package apierrors

import (
	"errors"
	"net/http"
)

type Status struct {
	Code    int
	Message string
	Details string
}

// APIStatus is implemented by errors that know which http status they map to.
type APIStatus interface {
	error
	Status() Status
}

type statusError struct {
	status Status
}

func (s *statusError) Error() string {
	if s.status.Details != "" {
		return s.status.Message + ": " + s.status.Details
	}
	return s.status.Message
}

func (s *statusError) Status() Status {
	return s.status
}

func newStatusError(code int, message string, details string) error {
	return &statusError{
		status: Status{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

func NewBadRequest(details string) error {
	return newStatusError(http.StatusBadRequest, "request.parse.failed", details)
}

func NewUnprocessableEntity(details string) error {
	return newStatusError(http.StatusUnprocessableEntity, "request.data.invalid", details)
}

// AsAPIStatus returns nil if err does not carry an http status.
func AsAPIStatus(err error) APIStatus {
	var status APIStatus
	if errors.As(err, &status) {
		return status
	}
	return nil
}

func isStatus(err error, code int) bool {
	status := AsAPIStatus(err)
	return status != nil && status.Status().Code == code
}

func IsBadRequestError(err error) bool {
	return isStatus(err, http.StatusBadRequest)
}

func IsUnprocessableEntityError(err error) bool {
	return isStatus(err, http.StatusUnprocessableEntity)
}
