package kverrors_test

import (
	"testing"

	"github.com/jmgilman/go/kverrors"
)

// BenchmarkToStatus_Fixed measures translation of a fixed-message kind.
func BenchmarkToStatus_Fixed(b *testing.B) {
	err := kverrors.NewLeaseNotFound(42)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = kverrors.ToStatus(err)
	}
}

// BenchmarkToStatus_Rendered measures translation of a kind whose message is its rendering.
func BenchmarkToStatus_Rendered(b *testing.B) {
	err := kverrors.NewDBError("disk full")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = kverrors.ToStatus(err)
	}
}

func BenchmarkError(b *testing.B) {
	err := kverrors.NewRevisionCompacted(5, 3)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = err.Error()
	}
}

func BenchmarkMarshal(b *testing.B) {
	err := kverrors.NewUserAlreadyHasRole("alice", "admin")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = kverrors.Marshal(err)
	}
}
