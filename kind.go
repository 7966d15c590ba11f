package kverrors

// Kind names a variant of the execution error taxonomy.
// Kinds are string-based so they serialize naturally and read well in logs.
type Kind string

const (
	// Request validation.

	// KindInvalidRequest wraps an error produced by request validation.
	KindInvalidRequest Kind = "InvalidRequest"

	// Key and revision errors.

	// KindKeyNotFound indicates the requested key does not exist.
	KindKeyNotFound Kind = "KeyNotFound"

	// KindRevisionTooLarge indicates the requested revision is newer than the current revision.
	KindRevisionTooLarge Kind = "RevisionTooLarge"

	// KindRevisionCompacted indicates the requested revision has been compacted away.
	KindRevisionCompacted Kind = "RevisionCompacted"

	// Lease errors.

	// KindLeaseNotFound indicates the lease does not exist.
	KindLeaseNotFound Kind = "LeaseNotFound"

	// KindLeaseExpired indicates the lease has expired.
	KindLeaseExpired Kind = "LeaseExpired"

	// KindLeaseTTLTooLarge indicates the requested lease TTL exceeds the maximum.
	KindLeaseTTLTooLarge Kind = "LeaseTtlTooLarge"

	// KindLeaseAlreadyExists indicates a lease with the same ID already exists.
	KindLeaseAlreadyExists Kind = "LeaseAlreadyExists"

	// Auth errors.

	// KindAuthNotEnabled indicates authentication is disabled.
	KindAuthNotEnabled Kind = "AuthNotEnabled"

	// KindAuthFailed indicates the user name or password is invalid.
	KindAuthFailed Kind = "AuthFailed"

	// KindUserNotFound indicates the user does not exist.
	KindUserNotFound Kind = "UserNotFound"

	// KindUserAlreadyExists indicates the user already exists.
	KindUserAlreadyExists Kind = "UserAlreadyExists"

	// KindUserAlreadyHasRole indicates the role is already granted to the user.
	KindUserAlreadyHasRole Kind = "UserAlreadyHasRole"

	// KindNoPasswordUser indicates a password was given for a user created without one.
	KindNoPasswordUser Kind = "NoPasswordUser"

	// KindRoleNotFound indicates the role does not exist.
	KindRoleNotFound Kind = "RoleNotFound"

	// KindRoleAlreadyExists indicates the role already exists.
	KindRoleAlreadyExists Kind = "RoleAlreadyExists"

	// KindRoleNotGranted indicates the role is not granted to the user.
	KindRoleNotGranted Kind = "RoleNotGranted"

	// KindRootRoleNotExist indicates the root user lacks the root role.
	KindRootRoleNotExist Kind = "RootRoleNotExist"

	// KindPermissionNotGranted indicates the permission is not granted to the role.
	KindPermissionNotGranted Kind = "PermissionNotGranted"

	// KindPermissionNotGiven indicates no permission was supplied.
	KindPermissionNotGiven Kind = "PermissionNotGiven"

	// KindPermissionDenied indicates the caller is not allowed to perform the operation.
	KindPermissionDenied Kind = "PermissionDenied"

	// KindInvalidAuthManagement indicates an auth management request was invalid.
	KindInvalidAuthManagement Kind = "InvalidAuthManagement"

	// KindInvalidAuthToken indicates the auth token is invalid.
	KindInvalidAuthToken Kind = "InvalidAuthToken"

	// KindTokenManagerNotInit indicates the token manager is not initialized.
	KindTokenManagerNotInit Kind = "TokenManagerNotInit"

	// KindTokenNotProvided indicates the request carried no token.
	KindTokenNotProvided Kind = "TokenNotProvided"

	// KindTokenOldRevision indicates the token was issued at an older auth revision.
	KindTokenOldRevision Kind = "TokenOldRevision"

	// Infrastructure errors.

	// KindDBError indicates the storage engine failed.
	KindDBError Kind = "DbError"
)

// allKinds lists every kind in declaration order.
var allKinds = []Kind{
	KindInvalidRequest,
	KindKeyNotFound,
	KindRevisionTooLarge,
	KindRevisionCompacted,
	KindLeaseNotFound,
	KindLeaseExpired,
	KindLeaseTTLTooLarge,
	KindLeaseAlreadyExists,
	KindAuthNotEnabled,
	KindAuthFailed,
	KindUserNotFound,
	KindUserAlreadyExists,
	KindUserAlreadyHasRole,
	KindNoPasswordUser,
	KindRoleNotFound,
	KindRoleAlreadyExists,
	KindRoleNotGranted,
	KindRootRoleNotExist,
	KindPermissionNotGranted,
	KindPermissionNotGiven,
	KindPermissionDenied,
	KindInvalidAuthManagement,
	KindInvalidAuthToken,
	KindTokenManagerNotInit,
	KindTokenNotProvided,
	KindTokenOldRevision,
	KindDBError,
}

// Kinds returns every known kind in declaration order.
// New kinds may be added in later releases; callers matching on kinds must
// keep a fallback branch.
func Kinds() []Kind {
	kinds := make([]Kind, len(allKinds))
	copy(kinds, allKinds)
	return kinds
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}
