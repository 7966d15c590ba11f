package kverrors

import (
	stderrors "errors"
)

// FromError finds the first ExecuteError in err's chain.
// A pointer variant is returned as its value form.
// Returns false if err is nil or carries no ExecuteError.
//
// Example:
//
//	if execErr, ok := kverrors.FromError(err); ok {
//	    return kverrors.ToStatus(execErr).Err()
//	}
func FromError(err error) (ExecuteError, bool) {
	if err == nil {
		return nil, false
	}

	var execErr ExecuteError
	if stderrors.As(err, &execErr) {
		return normalize(execErr), true
	}
	return nil, false
}

// IsKind reports whether err's chain carries an ExecuteError of the given kind.
func IsKind(err error, kind Kind) bool {
	execErr, ok := FromError(err)
	return ok && execErr.Kind() == kind
}

// Equal reports whether a and b are the same error.
// Pointer and value forms of a variant compare by value, and a nil pointer
// equals the zero value. InvalidRequest values are equal when their nested
// errors render and translate identically, so a decoded value equals its
// original.
func Equal(a, b ExecuteError) bool {
	a, b = normalize(a), normalize(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	reqA, okA := a.(InvalidRequest)
	reqB, okB := b.(InvalidRequest)
	if okA || okB {
		return okA && okB && reqA.Error() == reqB.Error() &&
			validationStatus(reqA.Cause) == validationStatus(reqB.Cause)
	}
	return a == b
}
