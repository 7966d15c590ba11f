package kverrors

import (
	"fmt"
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/require"
)

func TestToPlatformError(t *testing.T) {
	tests := []struct {
		err  ExecuteError
		code platformerrors.ErrorCode
	}{
		{err: NewKeyNotFound(), code: platformerrors.CodeNotFound},
		{err: NewLeaseNotFound(1), code: platformerrors.CodeNotFound},
		{err: NewUserAlreadyExists("alice"), code: platformerrors.CodeAlreadyExists},
		{err: NewRevisionCompacted(1, 2), code: platformerrors.CodeInvalidInput},
		{err: NewAuthFailed(), code: platformerrors.CodeUnauthorized},
		{err: NewTokenOldRevision(1, 2), code: platformerrors.CodeUnauthorized},
		{err: NewPermissionDenied(), code: platformerrors.CodeForbidden},
		{err: NewLeaseExpired(1), code: platformerrors.CodeConflict},
		{err: NewDBError("disk full"), code: platformerrors.CodeDatabase},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Kind()), func(t *testing.T) {
			perr := ToPlatformError(tt.err)
			require.NotNil(t, perr)
			require.Equal(t, tt.code, perr.Code())
		})
	}
}

func TestToPlatformError_Context(t *testing.T) {
	perr := ToPlatformError(NewUserAlreadyHasRole("alice", "admin"))

	ctx := perr.Context()
	require.Equal(t, "UserAlreadyHasRole", ctx["kind"])
	require.Equal(t, "alice", ctx["user"])
	require.Equal(t, "admin", ctx["role"])
	require.Equal(t, "auth command failed", perr.Message())
}

func TestToPlatformError_PreservesChain(t *testing.T) {
	perr := ToPlatformError(NewLeaseNotFound(3))

	wrapped := fmt.Errorf("handler: %w", perr)
	got, ok := FromError(wrapped)
	require.True(t, ok)
	require.Equal(t, NewLeaseNotFound(3), got)
	require.ErrorIs(t, wrapped, NewLeaseNotFound(3))
}

func TestToPlatformError_Nil(t *testing.T) {
	require.Nil(t, ToPlatformError(nil))
}

func TestEveryKindHasPlatformCode(t *testing.T) {
	for _, k := range Kinds() {
		_, ok := platformCodes[k]
		require.True(t, ok, "kind %s has no platform code", k)
	}
}
