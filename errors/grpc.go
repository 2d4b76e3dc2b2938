package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError converts domain sentinels into transport codes.
// Anything unrecognized becomes Internal so callers never see raw
// storage errors.
func MapToGRPCError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStoryNotFound), errors.Is(err, ErrEpicNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidStory),
		errors.Is(err, ErrAttachmentRejected), errors.Is(err, ErrUnknownAgent):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidPassword):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
