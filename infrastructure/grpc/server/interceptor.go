package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatusInterceptor logs how each unary call ended: status code and duration.
// The request itself is logged upstream by the sdk logging interceptor.
func StatusInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		attrs := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
		switch code {
		case codes.OK:
			log.Debug("gRPC call", attrs...)
		case codes.InvalidArgument, codes.NotFound, codes.Canceled:
			log.Warn("gRPC call rejected", append(attrs, "error", err)...)
		default:
			log.Error("gRPC call failed", append(attrs, "error", err)...)
		}
		return resp, err
	}
}
