package kverrors

import (
	"fmt"

	platformerrors "github.com/jmgilman/go/errors"
)

// platformCodes maps kinds onto platform error codes for callers outside
// the RPC boundary.
var platformCodes = map[Kind]platformerrors.ErrorCode{
	KindInvalidRequest: platformerrors.CodeInvalidInput,

	KindKeyNotFound:       platformerrors.CodeNotFound,
	KindRevisionTooLarge:  platformerrors.CodeInvalidInput,
	KindRevisionCompacted: platformerrors.CodeInvalidInput,

	KindLeaseNotFound:      platformerrors.CodeNotFound,
	KindLeaseExpired:       platformerrors.CodeConflict,
	KindLeaseTTLTooLarge:   platformerrors.CodeInvalidInput,
	KindLeaseAlreadyExists: platformerrors.CodeAlreadyExists,

	KindAuthNotEnabled:        platformerrors.CodeConflict,
	KindAuthFailed:            platformerrors.CodeUnauthorized,
	KindUserNotFound:          platformerrors.CodeNotFound,
	KindUserAlreadyExists:     platformerrors.CodeAlreadyExists,
	KindUserAlreadyHasRole:    platformerrors.CodeAlreadyExists,
	KindNoPasswordUser:        platformerrors.CodeInvalidInput,
	KindRoleNotFound:          platformerrors.CodeNotFound,
	KindRoleAlreadyExists:     platformerrors.CodeAlreadyExists,
	KindRoleNotGranted:        platformerrors.CodeForbidden,
	KindRootRoleNotExist:      platformerrors.CodeForbidden,
	KindPermissionNotGranted:  platformerrors.CodeForbidden,
	KindPermissionNotGiven:    platformerrors.CodeInvalidInput,
	KindPermissionDenied:      platformerrors.CodeForbidden,
	KindInvalidAuthManagement: platformerrors.CodeInvalidInput,
	KindInvalidAuthToken:      platformerrors.CodeUnauthorized,
	KindTokenManagerNotInit:   platformerrors.CodeConflict,
	KindTokenNotProvided:      platformerrors.CodeUnauthorized,
	KindTokenOldRevision:      platformerrors.CodeUnauthorized,

	KindDBError: platformerrors.CodeDatabase,
}

// ToPlatformError converts err into a PlatformError for consumers that do
// not speak gRPC. The result wraps err, so FromError still finds it, and
// carries the kind and payload fields as context.
// Returns nil if err is nil.
func ToPlatformError(err ExecuteError) platformerrors.PlatformError {
	err = normalize(err)
	if err == nil {
		return nil
	}

	code, ok := platformCodes[err.Kind()]
	if !ok {
		code = platformerrors.CodeInternal
	}

	fields := err.Fields()
	ctx := make(map[string]interface{}, len(fields)+1)
	ctx["kind"] = string(err.Kind())
	for _, f := range fields {
		ctx[f.Name] = f.Value
	}

	message := fmt.Sprintf("%s command failed", err.Kind().Family())
	return platformerrors.WrapWithContext(err, code, message, ctx)
}
