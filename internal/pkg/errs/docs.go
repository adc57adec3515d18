// Package errs provides standardized error types for the fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the order workflow:
//   - ValueIsRequiredError / ValueIsInvalidError: malformed or missing input
//   - ObjectNotFoundError: unknown order, product, customer or discount
//   - StockUnavailableError: insufficient product stock
//   - StatusConflictError: operation not permitted in the current order status
//   - NoServiceAvailableError: no carrier service on the requested route
//   - CarrierRejectedError: upstream carrier failure with HTTP status and message
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinel errors let callers classify failures with errors.Is without
// depending on concrete struct types, which keeps the HTTP status mapping
// in the inbound adapter a flat switch.
package errs
