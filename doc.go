// Package kverrors classifies failures of key-value store command execution
// and translates them into etcd-compatible gRPC statuses.
//
// Every failure met while executing a command (lease management,
// authentication, authorization, revisioned reads and writes) is reported as
// an ExecuteError. At the RPC boundary ToStatus converts it, once, into the
// (code, message) pair the client receives. etcd client libraries branch on
// those codes and match on message text, so the mapping reproduces etcd's
// statuses byte for byte.
//
// # Taxonomy
//
// Each kind has its own value type carrying only what its messages need:
//
//	kverrors.NewLeaseNotFound(42)          // "lease 42 not found"
//	kverrors.NewRevisionCompacted(5, 3)    // "required revision 5 has been compacted, compacted revision is 3"
//	kverrors.NewUserAlreadyHasRole("u", "r")
//
// Kinds are grouped into families (validation, key, lease, auth,
// infrastructure). The set may grow in later releases; code that switches
// on Kind should keep a default branch.
//
// InvalidRequest wraps a ValidationError produced by request validation.
// Its rendering and its status are taken from the nested error unchanged.
//
// # Translation
//
//	st := kverrors.ToStatus(kverrors.NewLeaseNotFound(42))
//	st.Code()    // codes.NotFound
//	st.Message() // "etcdserver: requested lease not found"
//
// Fixed messages carry CompatPrefix. Some kinds collapse onto the same
// status, and some drop their payload: TokenOldRevision and
// InvalidAuthToken both become "etcdserver: invalid auth token". The
// payload survives in Error and in the slog representation.
//
// # Serialization
//
// Envelope encodes an ExecuteError as JSON or YAML, independent of
// translation:
//
//	data, err := kverrors.Marshal(kverrors.NewLeaseExpired(7))
//	// {"kind":"LeaseExpired","payload":{"lease_id":7}}
//	execErr, err := kverrors.Unmarshal(data)
//
// # Logging
//
// Every ExecuteError implements slog.LogValuer, so
//
//	logger.Warn("command failed", "error", execErr)
//
// records the kind, family, message and payload fields. The package itself
// never logs.
package kverrors
