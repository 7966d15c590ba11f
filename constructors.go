package kverrors

// NewInvalidRequest wraps a validation error. Rendering and translation of
// the result are delegated to cause.
func NewInvalidRequest(cause ValidationError) InvalidRequest {
	return InvalidRequest{Cause: cause}
}

// NewKeyNotFound creates a KeyNotFound error.
func NewKeyNotFound() KeyNotFound { return KeyNotFound{} }

// NewRevisionTooLarge creates an error for a read at a revision above current.
//
// Example:
//
//	return kverrors.NewRevisionTooLarge(req.Revision, store.CurrentRevision())
func NewRevisionTooLarge(required, current int64) RevisionTooLarge {
	return RevisionTooLarge{Required: required, Current: current}
}

// NewRevisionCompacted creates an error for a read at a revision below the compaction point.
func NewRevisionCompacted(required, compacted int64) RevisionCompacted {
	return RevisionCompacted{Required: required, Compacted: compacted}
}

// NewLeaseNotFound creates a LeaseNotFound error for the lease id.
func NewLeaseNotFound(id int64) LeaseNotFound { return LeaseNotFound{LeaseID: id} }

// NewLeaseExpired creates a LeaseExpired error for the lease id.
func NewLeaseExpired(id int64) LeaseExpired { return LeaseExpired{LeaseID: id} }

// NewLeaseTTLTooLarge creates a LeaseTTLTooLarge error for the requested ttl.
func NewLeaseTTLTooLarge(ttl int64) LeaseTTLTooLarge { return LeaseTTLTooLarge{TTL: ttl} }

// NewLeaseAlreadyExists creates a LeaseAlreadyExists error for the lease id.
func NewLeaseAlreadyExists(id int64) LeaseAlreadyExists { return LeaseAlreadyExists{LeaseID: id} }

// NewAuthNotEnabled creates an AuthNotEnabled error.
func NewAuthNotEnabled() AuthNotEnabled { return AuthNotEnabled{} }

// NewAuthFailed creates an AuthFailed error.
func NewAuthFailed() AuthFailed { return AuthFailed{} }

// NewUserNotFound creates a UserNotFound error for the user name.
func NewUserNotFound(user string) UserNotFound { return UserNotFound{User: user} }

// NewUserAlreadyExists creates a UserAlreadyExists error for the user name.
func NewUserAlreadyExists(user string) UserAlreadyExists { return UserAlreadyExists{User: user} }

// NewUserAlreadyHasRole creates a UserAlreadyHasRole error.
func NewUserAlreadyHasRole(user, role string) UserAlreadyHasRole {
	return UserAlreadyHasRole{User: user, Role: role}
}

// NewNoPasswordUser creates a NoPasswordUser error.
func NewNoPasswordUser() NoPasswordUser { return NoPasswordUser{} }

// NewRoleNotFound creates a RoleNotFound error for the role name.
func NewRoleNotFound(role string) RoleNotFound { return RoleNotFound{Role: role} }

// NewRoleAlreadyExists creates a RoleAlreadyExists error for the role name.
func NewRoleAlreadyExists(role string) RoleAlreadyExists { return RoleAlreadyExists{Role: role} }

// NewRoleNotGranted creates a RoleNotGranted error for the role name.
func NewRoleNotGranted(role string) RoleNotGranted { return RoleNotGranted{Role: role} }

// NewRootRoleNotExist creates a RootRoleNotExist error.
func NewRootRoleNotExist() RootRoleNotExist { return RootRoleNotExist{} }

// NewPermissionNotGranted creates a PermissionNotGranted error.
func NewPermissionNotGranted() PermissionNotGranted { return PermissionNotGranted{} }

// NewPermissionNotGiven creates a PermissionNotGiven error.
func NewPermissionNotGiven() PermissionNotGiven { return PermissionNotGiven{} }

// NewPermissionDenied creates a PermissionDenied error.
func NewPermissionDenied() PermissionDenied { return PermissionDenied{} }

// NewInvalidAuthManagement creates an InvalidAuthManagement error.
func NewInvalidAuthManagement() InvalidAuthManagement { return InvalidAuthManagement{} }

// NewInvalidAuthToken creates an InvalidAuthToken error.
func NewInvalidAuthToken() InvalidAuthToken { return InvalidAuthToken{} }

// NewTokenManagerNotInit creates a TokenManagerNotInit error.
func NewTokenManagerNotInit() TokenManagerNotInit { return TokenManagerNotInit{} }

// NewTokenNotProvided creates a TokenNotProvided error.
func NewTokenNotProvided() TokenNotProvided { return TokenNotProvided{} }

// NewTokenOldRevision creates a TokenOldRevision error.
func NewTokenOldRevision(tokenRevision, currentRevision int64) TokenOldRevision {
	return TokenOldRevision{TokenRevision: tokenRevision, CurrentRevision: currentRevision}
}

// NewDBError creates a DBError carrying the storage engine's detail message.
//
// Example:
//
//	if err := backend.Put(key, value); err != nil {
//	    return kverrors.NewDBError(err.Error())
//	}
func NewDBError(detail string) DBError { return DBError{Detail: detail} }
