package kverrors

import (
	"reflect"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ValidationError is an error raised by request validation before a command
// executes. It knows its own wire status; the method set matches what
// grpc-go's status.FromError looks for.
//
// A nil pointer held in the interface is treated like a missing cause.
type ValidationError interface {
	error
	GRPCStatus() *status.Status
}

// validationStatus returns the status of a nested validation error.
// A missing or OK status falls back to InvalidArgument, since an
// InvalidRequest is always a failure.
func validationStatus(v ValidationError) WireStatus {
	if isNilCause(v) {
		return WireStatus{code: codes.InvalidArgument, message: invalidRequestMessage}
	}

	s := v.GRPCStatus()
	if s == nil || s.Code() == codes.OK {
		return WireStatus{code: codes.InvalidArgument, message: v.Error()}
	}
	return WireStatus{code: s.Code(), message: s.Message()}
}

// frozenValidation is a validation error restored from its serialized form.
// It preserves the rendering and the wire status of the original.
type frozenValidation struct {
	code    codes.Code
	message string
	detail  string
}

// Error returns the original rendering.
func (v frozenValidation) Error() string {
	return v.detail
}

// GRPCStatus returns the original wire status.
func (v frozenValidation) GRPCStatus() *status.Status {
	return status.New(v.code, v.message)
}

// isNilCause reports whether v is nil or a typed nil pointer.
func isNilCause(v ValidationError) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
