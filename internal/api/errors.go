package api

import (
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/matheus3301/wave/internal/apperr"
)

// toStatus maps domain errors onto gRPC status codes.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	switch apperr.CodeOf(err) {
	case apperr.CodeInvalidArgument:
		return grpcstatus.Error(codes.InvalidArgument, err.Error())
	case apperr.CodeNotFound:
		return grpcstatus.Error(codes.NotFound, err.Error())
	default:
		return grpcstatus.Error(codes.Internal, err.Error())
	}
}
