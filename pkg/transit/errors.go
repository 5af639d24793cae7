package transit

import (
	"errors"
	"fmt"
)

// SoldOutError is returned when a purchase is attempted against a route with
// no seats remaining. Recoverable - the rider picks another route.
type SoldOutError struct {
	Route string
}

func (e SoldOutError) Error() string {
	return fmt.Sprintf("route %s is sold out", e.Route)
}

// RouteNotFoundError is returned for a route name absent from the catalog.
type RouteNotFoundError struct {
	Route string
}

func (e RouteNotFoundError) Error() string {
	return fmt.Sprintf("route %s not found", e.Route)
}

// ValidationError rejects malformed purchase input before any state changes.
type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// PersistenceError reports a failed durable write. The in-memory mutation it
// followed is kept; callers surface it as a warning, not a failure.
type PersistenceError struct {
	Target string
	Err    error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", e.Target, e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }

func IsSoldOut(err error) bool {
	var target SoldOutError
	return errors.As(err, &target)
}

func IsRouteNotFound(err error) bool {
	var target RouteNotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsPersistence(err error) bool {
	var target PersistenceError
	return errors.As(err, &target)
}
