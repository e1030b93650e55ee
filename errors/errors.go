package errors

import (
	goerrors "errors"
	"fmt"
)

var (
	ErrConfiguration = fmt.Errorf("configuration error")
	ErrConnection    = fmt.Errorf("connection error")
	ErrQuery         = fmt.Errorf("query error")
	ErrNotFound      = fmt.Errorf("item not found")
	ErrValidation    = fmt.Errorf("validation error")
	// ErrIntegrity flags a statement that touched more rows than the schema allows.
	ErrIntegrity   = fmt.Errorf("integrity violation")
	ErrServerFault = fmt.Errorf("server fault")
)

// ConfigurationError reports a missing or unusable environment setting.
type ConfigurationError struct {
	Variable string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrConfiguration, e.Variable, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// ConnectionError wraps a failure to open or reach the database.
type ConnectionError struct {
	Target string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrConnection, e.Target, e.Err)
}

func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError wraps a driver failure during statement execution.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: failed to %s: %v", ErrQuery, e.Op, e.Err)
}

func (e *QueryError) Is(target error) bool { return target == ErrQuery }

func (e *QueryError) Unwrap() error { return e.Err }

// NotFoundError is returned when a delete targets an id that does not exist.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item with id %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError is raised before any I/O when client input breaks a constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// IsClientError tells whether the caller, not the server, has to fix something.
func IsClientError(err error) bool {
	return goerrors.Is(err, ErrValidation) || goerrors.Is(err, ErrNotFound)
}
