package kverrors

import "log/slog"

// InvalidRequest wraps an error raised by request validation.
// Rendering and status translation are delegated to Cause.
//
// InvalidRequest is not comparable with ==; use Equal or errors.Is.
type InvalidRequest struct {
	_ [0]func()

	Cause ValidationError `json:"-" yaml:"-"`
}

// Kind returns KindInvalidRequest.
func (InvalidRequest) Kind() Kind {
	return KindInvalidRequest
}

// Fields returns the rendering of the nested error, or nil without one.
func (e InvalidRequest) Fields() []Field {
	cause := e.cause()
	if cause == nil {
		return nil
	}
	return []Field{{Name: "cause", Value: cause.Error()}}
}

// Error returns the rendering of the nested error.
func (e InvalidRequest) Error() string {
	cause := e.cause()
	if cause == nil {
		return invalidRequestMessage
	}
	return cause.Error()
}

// Unwrap returns the nested validation error.
func (e InvalidRequest) Unwrap() error {
	cause := e.cause()
	if cause == nil {
		return nil
	}
	return cause
}

// Is reports whether target is an InvalidRequest equal to e.
func (e InvalidRequest) Is(target error) bool {
	t, ok := target.(ExecuteError)
	return ok && Equal(e, t)
}

// LogValue implements slog.LogValuer.
func (e InvalidRequest) LogValue() slog.Value {
	return logValue(e)
}

func (InvalidRequest) isExecuteError() {}

// cause returns Cause, or nil when Cause is nil or holds a nil pointer.
func (e InvalidRequest) cause() ValidationError {
	if isNilCause(e.Cause) {
		return nil
	}
	return e.Cause
}

// KeyNotFound indicates the requested key does not exist.
type KeyNotFound struct{}

// Kind returns KindKeyNotFound.
func (KeyNotFound) Kind() Kind {
	return KindKeyNotFound
}

// Fields returns nil; KeyNotFound carries no payload.
func (KeyNotFound) Fields() []Field {
	return nil
}

// Error returns the debug rendering.
func (e KeyNotFound) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e KeyNotFound) LogValue() slog.Value {
	return logValue(e)
}

func (KeyNotFound) isExecuteError() {}

// RevisionTooLarge indicates the requested revision is newer than the current one.
type RevisionTooLarge struct {
	Required int64 `json:"required" yaml:"required"`
	Current  int64 `json:"current" yaml:"current"`
}

// Kind returns KindRevisionTooLarge.
func (RevisionTooLarge) Kind() Kind {
	return KindRevisionTooLarge
}

// Fields returns required and current.
func (e RevisionTooLarge) Fields() []Field {
	return []Field{
		{Name: "required", Value: e.Required},
		{Name: "current", Value: e.Current},
	}
}

// Error returns the debug rendering.
func (e RevisionTooLarge) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e RevisionTooLarge) LogValue() slog.Value {
	return logValue(e)
}

func (RevisionTooLarge) isExecuteError() {}

// RevisionCompacted indicates the requested revision is older than the compaction point.
type RevisionCompacted struct {
	Required  int64 `json:"required" yaml:"required"`
	Compacted int64 `json:"compacted" yaml:"compacted"`
}

// Kind returns KindRevisionCompacted.
func (RevisionCompacted) Kind() Kind {
	return KindRevisionCompacted
}

// Fields returns required and compacted.
func (e RevisionCompacted) Fields() []Field {
	return []Field{
		{Name: "required", Value: e.Required},
		{Name: "compacted", Value: e.Compacted},
	}
}

// Error returns the debug rendering.
func (e RevisionCompacted) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e RevisionCompacted) LogValue() slog.Value {
	return logValue(e)
}

func (RevisionCompacted) isExecuteError() {}

// LeaseNotFound indicates the lease does not exist.
type LeaseNotFound struct {
	LeaseID int64 `json:"lease_id" yaml:"lease_id"`
}

// Kind returns KindLeaseNotFound.
func (LeaseNotFound) Kind() Kind {
	return KindLeaseNotFound
}

// Fields returns lease_id.
func (e LeaseNotFound) Fields() []Field {
	return []Field{
		{Name: "lease_id", Value: e.LeaseID},
	}
}

// Error returns the debug rendering.
func (e LeaseNotFound) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e LeaseNotFound) LogValue() slog.Value {
	return logValue(e)
}

func (LeaseNotFound) isExecuteError() {}

// LeaseExpired indicates the lease has expired.
type LeaseExpired struct {
	LeaseID int64 `json:"lease_id" yaml:"lease_id"`
}

// Kind returns KindLeaseExpired.
func (LeaseExpired) Kind() Kind {
	return KindLeaseExpired
}

// Fields returns lease_id.
func (e LeaseExpired) Fields() []Field {
	return []Field{
		{Name: "lease_id", Value: e.LeaseID},
	}
}

// Error returns the debug rendering.
func (e LeaseExpired) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e LeaseExpired) LogValue() slog.Value {
	return logValue(e)
}

func (LeaseExpired) isExecuteError() {}

// LeaseTTLTooLarge indicates the requested TTL exceeds the maximum lease TTL.
type LeaseTTLTooLarge struct {
	TTL int64 `json:"ttl" yaml:"ttl"`
}

// Kind returns KindLeaseTTLTooLarge.
func (LeaseTTLTooLarge) Kind() Kind {
	return KindLeaseTTLTooLarge
}

// Fields returns ttl.
func (e LeaseTTLTooLarge) Fields() []Field {
	return []Field{
		{Name: "ttl", Value: e.TTL},
	}
}

// Error returns the debug rendering.
func (e LeaseTTLTooLarge) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e LeaseTTLTooLarge) LogValue() slog.Value {
	return logValue(e)
}

func (LeaseTTLTooLarge) isExecuteError() {}

// LeaseAlreadyExists indicates a lease with the same ID is already granted.
type LeaseAlreadyExists struct {
	LeaseID int64 `json:"lease_id" yaml:"lease_id"`
}

// Kind returns KindLeaseAlreadyExists.
func (LeaseAlreadyExists) Kind() Kind {
	return KindLeaseAlreadyExists
}

// Fields returns lease_id.
func (e LeaseAlreadyExists) Fields() []Field {
	return []Field{
		{Name: "lease_id", Value: e.LeaseID},
	}
}

// Error returns the debug rendering.
func (e LeaseAlreadyExists) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e LeaseAlreadyExists) LogValue() slog.Value {
	return logValue(e)
}

func (LeaseAlreadyExists) isExecuteError() {}

// AuthNotEnabled indicates authentication is disabled.
type AuthNotEnabled struct{}

// Kind returns KindAuthNotEnabled.
func (AuthNotEnabled) Kind() Kind {
	return KindAuthNotEnabled
}

// Fields returns nil; AuthNotEnabled carries no payload.
func (AuthNotEnabled) Fields() []Field {
	return nil
}

// Error returns the debug rendering.
func (e AuthNotEnabled) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e AuthNotEnabled) LogValue() slog.Value {
	return logValue(e)
}

func (AuthNotEnabled) isExecuteError() {}

// AuthFailed indicates the user name or password is invalid.
type AuthFailed struct{}

// Kind returns KindAuthFailed.
func (AuthFailed) Kind() Kind {
	return KindAuthFailed
}

// Fields returns nil; AuthFailed carries no payload.
func (AuthFailed) Fields() []Field {
	return nil
}

// Error returns the debug rendering.
func (e AuthFailed) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e AuthFailed) LogValue() slog.Value {
	return logValue(e)
}

func (AuthFailed) isExecuteError() {}

// UserNotFound indicates the user does not exist.
type UserNotFound struct {
	User string `json:"user" yaml:"user"`
}

// Kind returns KindUserNotFound.
func (UserNotFound) Kind() Kind {
	return KindUserNotFound
}

// Fields returns user.
func (e UserNotFound) Fields() []Field {
	return []Field{
		{Name: "user", Value: e.User},
	}
}

// Error returns the debug rendering.
func (e UserNotFound) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e UserNotFound) LogValue() slog.Value {
	return logValue(e)
}

func (UserNotFound) isExecuteError() {}

// UserAlreadyExists indicates the user already exists.
type UserAlreadyExists struct {
	User string `json:"user" yaml:"user"`
}

// Kind returns KindUserAlreadyExists.
func (UserAlreadyExists) Kind() Kind {
	return KindUserAlreadyExists
}

// Fields returns user.
func (e UserAlreadyExists) Fields() []Field {
	return []Field{
		{Name: "user", Value: e.User},
	}
}

// Error returns the debug rendering.
func (e UserAlreadyExists) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e UserAlreadyExists) LogValue() slog.Value {
	return logValue(e)
}

func (UserAlreadyExists) isExecuteError() {}

// UserAlreadyHasRole indicates the role is already granted to the user.
type UserAlreadyHasRole struct {
	User string `json:"user" yaml:"user"`
	Role string `json:"role" yaml:"role"`
}

// Kind returns KindUserAlreadyHasRole.
func (UserAlreadyHasRole) Kind() Kind {
	return KindUserAlreadyHasRole
}

// Fields returns user and role.
func (e UserAlreadyHasRole) Fields() []Field {
	return []Field{
		{Name: "user", Value: e.User},
		{Name: "role", Value: e.Role},
	}
}

// Error returns the debug rendering.
func (e UserAlreadyHasRole) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e UserAlreadyHasRole) LogValue() slog.Value {
	return logValue(e)
}

func (UserAlreadyHasRole) isExecuteError() {}

// NoPasswordUser indicates a password was given for a user created without one.
type NoPasswordUser struct{}

// Kind returns KindNoPasswordUser.
func (NoPasswordUser) Kind() Kind {
	return KindNoPasswordUser
}

// Fields returns nil; NoPasswordUser carries no payload.
func (NoPasswordUser) Fields() []Field {
	return nil
}

// Error returns the debug rendering.
func (e NoPasswordUser) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e NoPasswordUser) LogValue() slog.Value {
	return logValue(e)
}

func (NoPasswordUser) isExecuteError() {}

// RoleNotFound indicates the role does not exist.
type RoleNotFound struct {
	Role string `json:"role" yaml:"role"`
}

// Kind returns KindRoleNotFound.
func (RoleNotFound) Kind() Kind {
	return KindRoleNotFound
}

// Fields returns role.
func (e RoleNotFound) Fields() []Field {
	return []Field{
		{Name: "role", Value: e.Role},
	}
}

// Error returns the debug rendering.
func (e RoleNotFound) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e RoleNotFound) LogValue() slog.Value {
	return logValue(e)
}

func (RoleNotFound) isExecuteError() {}

// RoleAlreadyExists indicates the role already exists.
type RoleAlreadyExists struct {
	Role string `json:"role" yaml:"role"`
}

// Kind returns KindRoleAlreadyExists.
func (RoleAlreadyExists) Kind() Kind {
	return KindRoleAlreadyExists
}

// Fields returns role.
func (e RoleAlreadyExists) Fields() []Field {
	return []Field{
		{Name: "role", Value: e.Role},
	}
}

// Error returns the debug rendering.
func (e RoleAlreadyExists) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e RoleAlreadyExists) LogValue() slog.Value {
	return logValue(e)
}

func (RoleAlreadyExists) isExecuteError() {}

// RoleNotGranted indicates the role is not granted to the user.
type RoleNotGranted struct {
	Role string `json:"role" yaml:"role"`
}

// Kind returns KindRoleNotGranted.
func (RoleNotGranted) Kind() Kind {
	return KindRoleNotGranted
}

// Fields returns role.
func (e RoleNotGranted) Fields() []Field {
	return []Field{
		{Name: "role", Value: e.Role},
	}
}

// Error returns the debug rendering.
func (e RoleNotGranted) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e RoleNotGranted) LogValue() slog.Value {
	return logValue(e)
}

func (RoleNotGranted) isExecuteError() {}

// RootRoleNotExist indicates the root user does not hold the root role.
type RootRoleNotExist struct{}

// Kind returns KindRootRoleNotExist.
func (RootRoleNotExist) Kind() Kind {
	return KindRootRoleNotExist
}

// Fields returns nil; RootRoleNotExist carries no payload.
func (RootRoleNotExist) Fields() []Field {
	return nil
}

// Error returns the debug rendering.
func (e RootRoleNotExist) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e RootRoleNotExist) LogValue() slog.Value {
	return logValue(e)
}

func (RootRoleNotExist) isExecuteError() {}

// PermissionNotGranted indicates the permission is not granted to the role.
type PermissionNotGranted struct{}

// Kind returns KindPermissionNotGranted.
func (PermissionNotGranted) Kind() Kind {
	return KindPermissionNotGranted
}

// Fields returns nil; PermissionNotGranted carries no payload.
func (PermissionNotGranted) Fields() []Field {
	return nil
}

// Error returns the debug rendering.
func (e PermissionNotGranted) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e PermissionNotGranted) LogValue() slog.Value {
	return logValue(e)
}

func (PermissionNotGranted) isExecuteError() {}

// PermissionNotGiven indicates the request carried no permission.
type PermissionNotGiven struct{}

// Kind returns KindPermissionNotGiven.
func (PermissionNotGiven) Kind() Kind {
	return KindPermissionNotGiven
}

// Fields returns nil; PermissionNotGiven carries no payload.
func (PermissionNotGiven) Fields() []Field {
	return nil
}

// Error returns the debug rendering.
func (e PermissionNotGiven) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e PermissionNotGiven) LogValue() slog.Value {
	return logValue(e)
}

func (PermissionNotGiven) isExecuteError() {}

// PermissionDenied indicates the caller may not perform the operation.
type PermissionDenied struct{}

// Kind returns KindPermissionDenied.
func (PermissionDenied) Kind() Kind {
	return KindPermissionDenied
}

// Fields returns nil; PermissionDenied carries no payload.
func (PermissionDenied) Fields() []Field {
	return nil
}

// Error returns the debug rendering.
func (e PermissionDenied) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e PermissionDenied) LogValue() slog.Value {
	return logValue(e)
}

func (PermissionDenied) isExecuteError() {}

// InvalidAuthManagement indicates an invalid auth management request.
type InvalidAuthManagement struct{}

// Kind returns KindInvalidAuthManagement.
func (InvalidAuthManagement) Kind() Kind {
	return KindInvalidAuthManagement
}

// Fields returns nil; InvalidAuthManagement carries no payload.
func (InvalidAuthManagement) Fields() []Field {
	return nil
}

// Error returns the debug rendering.
func (e InvalidAuthManagement) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e InvalidAuthManagement) LogValue() slog.Value {
	return logValue(e)
}

func (InvalidAuthManagement) isExecuteError() {}

// InvalidAuthToken indicates the auth token could not be verified.
type InvalidAuthToken struct{}

// Kind returns KindInvalidAuthToken.
func (InvalidAuthToken) Kind() Kind {
	return KindInvalidAuthToken
}

// Fields returns nil; InvalidAuthToken carries no payload.
func (InvalidAuthToken) Fields() []Field {
	return nil
}

// Error returns the debug rendering.
func (e InvalidAuthToken) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e InvalidAuthToken) LogValue() slog.Value {
	return logValue(e)
}

func (InvalidAuthToken) isExecuteError() {}

// TokenManagerNotInit indicates the token manager is not initialized.
type TokenManagerNotInit struct{}

// Kind returns KindTokenManagerNotInit.
func (TokenManagerNotInit) Kind() Kind {
	return KindTokenManagerNotInit
}

// Fields returns nil; TokenManagerNotInit carries no payload.
func (TokenManagerNotInit) Fields() []Field {
	return nil
}

// Error returns the debug rendering.
func (e TokenManagerNotInit) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e TokenManagerNotInit) LogValue() slog.Value {
	return logValue(e)
}

func (TokenManagerNotInit) isExecuteError() {}

// TokenNotProvided indicates the request carried no token.
type TokenNotProvided struct{}

// Kind returns KindTokenNotProvided.
func (TokenNotProvided) Kind() Kind {
	return KindTokenNotProvided
}

// Fields returns nil; TokenNotProvided carries no payload.
func (TokenNotProvided) Fields() []Field {
	return nil
}

// Error returns the debug rendering.
func (e TokenNotProvided) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e TokenNotProvided) LogValue() slog.Value {
	return logValue(e)
}

func (TokenNotProvided) isExecuteError() {}

// TokenOldRevision indicates the token was issued at an older auth revision.
// The revisions appear in Error and logs but never on the wire.
type TokenOldRevision struct {
	TokenRevision   int64 `json:"token_revision" yaml:"token_revision"`
	CurrentRevision int64 `json:"current_revision" yaml:"current_revision"`
}

// Kind returns KindTokenOldRevision.
func (TokenOldRevision) Kind() Kind {
	return KindTokenOldRevision
}

// Fields returns token_revision and current_revision.
func (e TokenOldRevision) Fields() []Field {
	return []Field{
		{Name: "token_revision", Value: e.TokenRevision},
		{Name: "current_revision", Value: e.CurrentRevision},
	}
}

// Error returns the debug rendering.
func (e TokenOldRevision) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e TokenOldRevision) LogValue() slog.Value {
	return logValue(e)
}

func (TokenOldRevision) isExecuteError() {}

// DBError indicates the storage engine failed. Detail is the engine's message.
type DBError struct {
	Detail string `json:"detail" yaml:"detail"`
}

// Kind returns KindDBError.
func (DBError) Kind() Kind {
	return KindDBError
}

// Fields returns detail.
func (e DBError) Fields() []Field {
	return []Field{
		{Name: "detail", Value: e.Detail},
	}
}

// Error returns the debug rendering.
func (e DBError) Error() string {
	return render(e)
}

// LogValue implements slog.LogValuer.
func (e DBError) LogValue() slog.Value {
	return logValue(e)
}

func (DBError) isExecuteError() {}
