package kverrors_test

import (
	"errors"
	"fmt"

	"github.com/jmgilman/go/kverrors"
)

func ExampleToStatus() {
	st := kverrors.ToStatus(kverrors.NewLeaseNotFound(42))
	fmt.Println(st.Code(), st.Message())
	// Output: NotFound etcdserver: requested lease not found
}

func ExampleToStatus_rendered() {
	st := kverrors.ToStatus(kverrors.NewLeaseExpired(7))
	fmt.Println(st.Code(), st.Message())
	// Output: DeadlineExceeded lease 7 is expired
}

func ExampleToStatus_payloadDropped() {
	err := kverrors.NewTokenOldRevision(3, 7)
	fmt.Println(err)
	fmt.Println(kverrors.ToStatus(err).Message())
	// Output:
	// token's revision 3 is older than current revision 7
	// etcdserver: invalid auth token
}

func ExampleFromError() {
	err := fmt.Errorf("compact: %w", kverrors.NewRevisionCompacted(5, 3))

	if execErr, ok := kverrors.FromError(err); ok {
		fmt.Println(execErr.Kind(), execErr.Kind().Family())
		fmt.Println(kverrors.ToStatus(execErr).Err())
	}
	// Output:
	// RevisionCompacted key
	// rpc error: code = OutOfRange desc = etcdserver: mvcc: required revision has been compacted
}

func ExampleMarshal() {
	data, _ := kverrors.Marshal(kverrors.NewRevisionCompacted(5, 3))
	fmt.Println(string(data))

	decoded, _ := kverrors.Unmarshal(data)
	fmt.Println(decoded)
	// Output:
	// {"kind":"RevisionCompacted","payload":{"required":5,"compacted":3}}
	// required revision 5 has been compacted, compacted revision is 3
}

func Example_errorsIs() {
	err := fmt.Errorf("range: %w", kverrors.NewKeyNotFound())
	fmt.Println(errors.Is(err, kverrors.KeyNotFound{}))
	// Output: true
}
