package errors

import (
	goerrors "errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError converts a domain error into a gRPC status so clients can branch on the code.
// Errors that already carry a status are returned untouched.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	switch {
	case goerrors.As(err, &validationErr):
		return status.Error(codes.InvalidArgument, validationErr.Reason)
	case goerrors.As(err, &notFoundErr):
		return status.Error(codes.NotFound, notFoundErr.Error())
	case goerrors.Is(err, ErrConfiguration), goerrors.Is(err, ErrConnection):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// FromGRPCError is the client side of MapToGRPCError.
// The id is the one the caller asked for, it is attached to not-found errors.
func FromGRPCError(err error, id int64) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return &ConnectionError{Target: "grpc", Err: err}
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return &ValidationError{Field: "text", Reason: st.Message()}
	case codes.NotFound:
		return &NotFoundError{ID: id}
	case codes.Unavailable:
		return &ConnectionError{Target: "grpc", Err: goerrors.New(st.Message())}
	default:
		return fmt.Errorf("%w: %s", ErrServerFault, st.Message())
	}
}
