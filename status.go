package kverrors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CompatPrefix namespaces fixed wire messages the way etcd does. etcd clients
// match on "etcdserver: ..." strings to recognize errors, so the prefix and
// the fixed messages below must stay byte-stable.
const CompatPrefix = "etcdserver: "

// WireStatus is the (code, message) pair sent to a client.
// It is produced only by ToStatus.
type WireStatus struct {
	code    codes.Code
	message string
}

// Code returns the gRPC status code.
func (s WireStatus) Code() codes.Code {
	return s.code
}

// Message returns the status message.
func (s WireStatus) Message() string {
	return s.message
}

// GRPCStatus returns the gRPC representation of the status.
func (s WireStatus) GRPCStatus() *status.Status {
	return status.New(s.code, s.message)
}

// Err returns the status as an error suitable for returning from a gRPC handler.
// Returns nil for codes.OK.
func (s WireStatus) Err() error {
	return s.GRPCStatus().Err()
}

// String formats the status the same way grpc-go formats status errors.
func (s WireStatus) String() string {
	return fmt.Sprintf("rpc error: code = %s desc = %s", s.code, s.message)
}

// statusRule is the wire mapping of one kind. Rendered rules send the
// error's own debug rendering instead of a fixed message.
type statusRule struct {
	code     codes.Code
	message  string
	rendered bool
}

func fixed(code codes.Code, message string) statusRule {
	return statusRule{code: code, message: CompatPrefix + message}
}

func rendered(code codes.Code) statusRule {
	return statusRule{code: code, rendered: true}
}

// statusRules mirrors etcd's api/v3rpc/rpctypes error table. Several kinds
// collapse to one status; TokenOldRevision drops its revisions on purpose.
// InvalidRequest has no entry: it translates through its nested error.
var statusRules = map[Kind]statusRule{
	KindKeyNotFound:           fixed(codes.InvalidArgument, "key not found"),
	KindRevisionTooLarge:      fixed(codes.OutOfRange, "mvcc: required revision is a future revision"),
	KindRevisionCompacted:     fixed(codes.OutOfRange, "mvcc: required revision has been compacted"),
	KindLeaseNotFound:         fixed(codes.NotFound, "requested lease not found"),
	KindLeaseExpired:          rendered(codes.DeadlineExceeded),
	KindLeaseTTLTooLarge:      fixed(codes.OutOfRange, "too large lease TTL"),
	KindLeaseAlreadyExists:    fixed(codes.FailedPrecondition, "lease already exists"),
	KindAuthNotEnabled:        fixed(codes.FailedPrecondition, "authentication is not enabled"),
	KindAuthFailed:            fixed(codes.InvalidArgument, "authentication failed, invalid user ID or password"),
	KindUserNotFound:          fixed(codes.FailedPrecondition, "user name not found"),
	KindUserAlreadyExists:     fixed(codes.FailedPrecondition, "user name already exists"),
	KindUserAlreadyHasRole:    rendered(codes.FailedPrecondition),
	KindNoPasswordUser:        rendered(codes.FailedPrecondition),
	KindRoleNotFound:          fixed(codes.FailedPrecondition, "role name not found"),
	KindRoleAlreadyExists:     fixed(codes.FailedPrecondition, "role name already exists"),
	KindRoleNotGranted:        fixed(codes.FailedPrecondition, "role is not granted to the user"),
	KindRootRoleNotExist:      fixed(codes.FailedPrecondition, "root user does not have root role"),
	KindPermissionNotGranted:  fixed(codes.FailedPrecondition, "permission is not granted to the role"),
	KindPermissionNotGiven:    fixed(codes.InvalidArgument, "permission not given"),
	KindPermissionDenied:      fixed(codes.PermissionDenied, "permission denied"),
	KindInvalidAuthManagement: fixed(codes.InvalidArgument, "invalid auth management"),
	KindInvalidAuthToken:      fixed(codes.Unauthenticated, "invalid auth token"),
	KindTokenManagerNotInit:   rendered(codes.FailedPrecondition),
	KindTokenNotProvided:      rendered(codes.InvalidArgument),
	KindTokenOldRevision:      fixed(codes.Unauthenticated, "invalid auth token"),
	KindDBError:               rendered(codes.Internal),
}

// ToStatus translates an execution error into the status sent to the client.
//
// The translation is total and pure. InvalidRequest is delegated to its
// nested validation error. A kind without a mapping translates to
// codes.Unknown with the error's rendering. A nil error translates to
// codes.OK, whose Err is nil.
//
// Example:
//
//	if err := lessor.Revoke(id); err != nil {
//	    var execErr kverrors.ExecuteError
//	    if errors.As(err, &execErr) {
//	        return nil, kverrors.ToStatus(execErr).Err()
//	    }
//	    return nil, err
//	}
func ToStatus(err ExecuteError) WireStatus {
	err = normalize(err)
	if err == nil {
		return WireStatus{code: codes.OK}
	}

	if req, ok := asInvalidRequest(err); ok {
		return validationStatus(req.Cause)
	}

	rule, ok := statusRules[err.Kind()]
	if !ok {
		return WireStatus{code: codes.Unknown, message: err.Error()}
	}
	if rule.rendered {
		return WireStatus{code: rule.code, message: err.Error()}
	}
	return WireStatus{code: rule.code, message: rule.message}
}

// StatusRule describes how one kind is mapped onto the wire.
type StatusRule struct {
	Kind Kind
	Code codes.Code

	// Message is the fixed wire message. Empty when Rendered is set.
	Message string

	// Rendered reports that the wire message is the error's own rendering.
	Rendered bool
}

// StatusTable returns the mapping rules in kind declaration order.
// InvalidRequest is omitted because it is delegated to the nested error.
func StatusTable() []StatusRule {
	table := make([]StatusRule, 0, len(statusRules))
	for _, k := range allKinds {
		rule, ok := statusRules[k]
		if !ok {
			continue
		}
		table = append(table, StatusRule{
			Kind:     k,
			Code:     rule.code,
			Message:  rule.message,
			Rendered: rule.rendered,
		})
	}
	return table
}

// asInvalidRequest unwraps both value and pointer forms of InvalidRequest.
func asInvalidRequest(err ExecuteError) (InvalidRequest, bool) {
	e, ok := normalize(err).(InvalidRequest)
	return e, ok
}
