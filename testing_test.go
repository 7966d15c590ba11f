package kverrors

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fakeValidation stands in for a request validation error.
type fakeValidation struct {
	code    codes.Code
	message string
}

func (v fakeValidation) Error() string {
	return "validation: " + v.message
}

func (v fakeValidation) GRPCStatus() *status.Status {
	return status.New(v.code, v.message)
}

// ptrValidation is a validation error with pointer receivers.
type ptrValidation struct {
	message string
}

func (v *ptrValidation) Error() string {
	return "validation: " + v.message
}

func (v *ptrValidation) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, v.message)
}

// sliceValidation is a validation error whose dynamic type is not comparable.
type sliceValidation struct {
	messages []string
}

func (v sliceValidation) Error() string {
	return "validation: " + strings.Join(v.messages, "; ")
}

func (v sliceValidation) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, strings.Join(v.messages, "; "))
}

// samples returns one error per kind, in Kinds order.
func samples() []ExecuteError {
	return []ExecuteError{
		NewInvalidRequest(fakeValidation{code: codes.InvalidArgument, message: "etcdserver: key is not provided"}),
		NewKeyNotFound(),
		NewRevisionTooLarge(10, 5),
		NewRevisionCompacted(3, 5),
		NewLeaseNotFound(42),
		NewLeaseExpired(42),
		NewLeaseTTLTooLarge(9000000000),
		NewLeaseAlreadyExists(42),
		NewAuthNotEnabled(),
		NewAuthFailed(),
		NewUserNotFound("alice"),
		NewUserAlreadyExists("alice"),
		NewUserAlreadyHasRole("alice", "admin"),
		NewNoPasswordUser(),
		NewRoleNotFound("admin"),
		NewRoleAlreadyExists("admin"),
		NewRoleNotGranted("admin"),
		NewRootRoleNotExist(),
		NewPermissionNotGranted(),
		NewPermissionNotGiven(),
		NewPermissionDenied(),
		NewInvalidAuthManagement(),
		NewInvalidAuthToken(),
		NewTokenManagerNotInit(),
		NewTokenNotProvided(),
		NewTokenOldRevision(3, 7),
		NewDBError("disk full"),
	}
}
