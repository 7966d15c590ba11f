package grpcerr

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"

	"github.com/jmgilman/go/kverrors"
)

// Convert returns the status error for the ExecuteError carried by err.
// Returns err unchanged if it carries none, including nil.
func Convert(err error) error {
	execErr, ok := kverrors.FromError(err)
	if !ok {
		return err
	}
	return kverrors.ToStatus(execErr).Err()
}

// UnaryServerInterceptor returns a unary interceptor translating execute
// errors returned by handlers.
func UnaryServerInterceptor(opts ...Option) grpc.UnaryServerInterceptor {
	o := newOptions(opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			return resp, o.translate(ctx, info.FullMethod, err)
		}
		return resp, nil
	}
}

// StreamServerInterceptor returns a stream interceptor translating execute
// errors returned by handlers.
func StreamServerInterceptor(opts ...Option) grpc.StreamServerInterceptor {
	o := newOptions(opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := handler(srv, ss); err != nil {
			return o.translate(ss.Context(), info.FullMethod, err)
		}
		return nil
	}
}

func (o *options) translate(ctx context.Context, method string, err error) error {
	execErr, ok := kverrors.FromError(err)
	if !ok {
		return err
	}

	st := kverrors.ToStatus(execErr)
	level := slog.LevelDebug
	if execErr.Kind().Family() == kverrors.FamilyInfrastructure {
		level = slog.LevelWarn
	}
	o.logger.LogAttrs(ctx, level, "command execution failed",
		slog.String("method", method),
		slog.Any("error", execErr),
		slog.String("code", st.Code().String()),
	)
	return st.Err()
}
