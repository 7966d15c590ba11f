package kverrors

import "fmt"

// invalidRequestMessage renders an InvalidRequest without a nested error.
const invalidRequestMessage = "invalid request"

// templates holds the debug rendering of each kind. Verbs consume Fields in order.
// InvalidRequest has no entry: it renders through its nested error.
var templates = map[Kind]string{
	KindKeyNotFound:           "key not found",
	KindRevisionTooLarge:      "required revision %d is higher than current revision %d",
	KindRevisionCompacted:     "required revision %d has been compacted, compacted revision is %d",
	KindLeaseNotFound:         "lease %d not found",
	KindLeaseExpired:          "lease %d is expired",
	KindLeaseTTLTooLarge:      "lease ttl is too large: %d",
	KindLeaseAlreadyExists:    "lease %d already exists",
	KindAuthNotEnabled:        "auth is not enabled",
	KindAuthFailed:            "invalid username or password",
	KindUserNotFound:          "user %s not found",
	KindUserAlreadyExists:     "user %s already exists",
	KindUserAlreadyHasRole:    "user %s already has role %s",
	KindNoPasswordUser:        "password was given for no password user",
	KindRoleNotFound:          "role %s not found",
	KindRoleAlreadyExists:     "role %s already exists",
	KindRoleNotGranted:        "role %s is not granted to the user",
	KindRootRoleNotExist:      "root user does not have root role",
	KindPermissionNotGranted:  "permission not granted to the role",
	KindPermissionNotGiven:    "permission not given",
	KindPermissionDenied:      "permission denied",
	KindInvalidAuthManagement: "invalid auth management",
	KindInvalidAuthToken:      "invalid auth token",
	KindTokenManagerNotInit:   "token manager is not initialized",
	KindTokenNotProvided:      "token is not provided",
	KindTokenOldRevision:      "token's revision %d is older than current revision %d",
	KindDBError:               "db error: %s",
}

// render formats the debug message of e from its template and payload.
func render(e ExecuteError) string {
	tmpl, ok := templates[e.Kind()]
	if !ok {
		return string(e.Kind())
	}

	fields := e.Fields()
	if len(fields) == 0 {
		return tmpl
	}

	args := make([]any, len(fields))
	for i, f := range fields {
		args[i] = f.Value
	}
	return fmt.Sprintf(tmpl, args...)
}
