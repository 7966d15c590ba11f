// Package grpcerr applies execute error translation at the gRPC boundary.
//
// Handlers return ExecuteError values (directly or wrapped with %w). The
// interceptors in this package log the untranslated error, including payload
// that never reaches the client, and replace it with the etcd-compatible
// status produced by kverrors.ToStatus:
//
//	server := grpc.NewServer(
//	    grpc.ChainUnaryInterceptor(grpcerr.UnaryServerInterceptor(grpcerr.WithLogger(logger))),
//	    grpc.ChainStreamInterceptor(grpcerr.StreamServerInterceptor(grpcerr.WithLogger(logger))),
//	)
//
// Errors that carry no ExecuteError pass through unchanged.
package grpcerr
