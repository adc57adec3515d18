package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrStockUnavailable   = errors.New("stock unavailable")
	ErrStatusConflict     = errors.New("status conflict")
	ErrNoServiceAvailable = errors.New("no carrier service available")
	ErrCarrierRejected    = errors.New("carrier rejected request")
)

// sanitize strips newlines from values that end up in error messages.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value lies outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// StockUnavailableError indicates that a product cannot cover the requested quantity.
type StockUnavailableError struct {
	ProductID string
	Requested int
	Available int
}

func NewStockUnavailableError(productID string, requested, available int) *StockUnavailableError {
	return &StockUnavailableError{ProductID: productID, Requested: requested, Available: available}
}

func (e *StockUnavailableError) Error() string {
	return fmt.Sprintf("%s: product %s has %d in stock, %d requested",
		ErrStockUnavailable, e.ProductID, e.Available, e.Requested)
}

func (e *StockUnavailableError) Unwrap() error {
	return ErrStockUnavailable
}

// StatusConflictError indicates that an operation is not permitted
// in the order's current lifecycle status.
type StatusConflictError struct {
	Operation string
	Status    string
}

func NewStatusConflictError(operation, status string) *StatusConflictError {
	return &StatusConflictError{Operation: operation, Status: status}
}

func (e *StatusConflictError) Error() string {
	return fmt.Sprintf("%s: %s is not allowed while order is %s", ErrStatusConflict, e.Operation, e.Status)
}

func (e *StatusConflictError) Unwrap() error {
	return ErrStatusConflict
}

// NoServiceAvailableError indicates that the carrier offers no delivery
// service on the requested route.
type NoServiceAvailableError struct {
	FromDistrict int
	ToDistrict   int
	ServiceID    int
}

func NewNoServiceAvailableError(fromDistrict, toDistrict, serviceID int) *NoServiceAvailableError {
	return &NoServiceAvailableError{FromDistrict: fromDistrict, ToDistrict: toDistrict, ServiceID: serviceID}
}

func (e *NoServiceAvailableError) Error() string {
	if e.ServiceID != 0 {
		return fmt.Sprintf("%s: service %d is not offered on route %d -> %d",
			ErrNoServiceAvailable, e.ServiceID, e.FromDistrict, e.ToDistrict)
	}
	return fmt.Sprintf("%s: route %d -> %d", ErrNoServiceAvailable, e.FromDistrict, e.ToDistrict)
}

func (e *NoServiceAvailableError) Unwrap() error {
	return ErrNoServiceAvailable
}

// CarrierRejectedError carries the upstream HTTP status and message of a
// failed carrier call. The gateway performs no retries; the error is
// surfaced to the calling workflow as-is.
type CarrierRejectedError struct {
	StatusCode int
	Message    string
	Cause      error
}

func NewCarrierRejectedError(statusCode int, message string) *CarrierRejectedError {
	return &CarrierRejectedError{StatusCode: statusCode, Message: message}
}

func NewCarrierRejectedErrorWithCause(statusCode int, message string, cause error) *CarrierRejectedError {
	return &CarrierRejectedError{StatusCode: statusCode, Message: message, Cause: cause}
}

func (e *CarrierRejectedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: status %d: %s (cause: %s)",
			ErrCarrierRejected, e.StatusCode, sanitize(e.Message), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: status %d: %s", ErrCarrierRejected, e.StatusCode, sanitize(e.Message))
}

func (e *CarrierRejectedError) Unwrap() error {
	return ErrCarrierRejected
}
