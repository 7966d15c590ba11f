package kverrors

import (
	"encoding/json"
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshal_Structure(t *testing.T) {
	tests := []struct {
		err  ExecuteError
		want string
	}{
		{err: NewKeyNotFound(), want: `{"kind":"KeyNotFound"}`},
		{err: NewLeaseNotFound(42), want: `{"kind":"LeaseNotFound","payload":{"lease_id":42}}`},
		{err: NewRevisionCompacted(5, 3), want: `{"kind":"RevisionCompacted","payload":{"required":5,"compacted":3}}`},
		{err: NewUserAlreadyHasRole("alice", "admin"), want: `{"kind":"UserAlreadyHasRole","payload":{"user":"alice","role":"admin"}}`},
		{err: NewTokenOldRevision(3, 7), want: `{"kind":"TokenOldRevision","payload":{"token_revision":3,"current_revision":7}}`},
		{err: NewDBError("disk full"), want: `{"kind":"DbError","payload":{"detail":"disk full"}}`},
		{err: NewInvalidRequest(nil), want: `{"kind":"InvalidRequest"}`},
		{err: NewInvalidRequest((*ptrValidation)(nil)), want: `{"kind":"InvalidRequest"}`},
		{err: &LeaseNotFound{LeaseID: 42}, want: `{"kind":"LeaseNotFound","payload":{"lease_id":42}}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Kind()), func(t *testing.T) {
			data, err := Marshal(tt.err)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestMarshal_NilPointerVariant(t *testing.T) {
	var err *RevisionTooLarge
	data, mErr := Marshal(err)
	require.NoError(t, mErr)
	require.JSONEq(t, `{"kind":"RevisionTooLarge","payload":{"required":0,"current":0}}`, string(data))

	out, mErr := yaml.Marshal(Envelope{Err: (*KeyNotFound)(nil)})
	require.NoError(t, mErr)
	require.Equal(t, "kind: KeyNotFound\n", string(out))
}

func TestMarshal_InvalidRequestPayload(t *testing.T) {
	data, err := Marshal(samples()[0])
	require.NoError(t, err)
	require.JSONEq(t, `{
		"kind": "InvalidRequest",
		"payload": {
			"error": "validation: etcdserver: key is not provided",
			"code": 3,
			"message": "etcdserver: key is not provided"
		}
	}`, string(data))
}

func TestJSON_RoundTrip(t *testing.T) {
	for _, original := range samples() {
		t.Run(string(original.Kind()), func(t *testing.T) {
			data, err := Marshal(original)
			require.NoError(t, err)

			decoded, err := Unmarshal(data)
			require.NoError(t, err)

			require.True(t, Equal(original, decoded), "decoded %#v", decoded)
			require.Equal(t, original.Error(), decoded.Error())
			require.Equal(t, ToStatus(original), ToStatus(decoded))
		})
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	for _, original := range samples() {
		t.Run(string(original.Kind()), func(t *testing.T) {
			data, err := yaml.Marshal(Envelope{Err: original})
			require.NoError(t, err)

			var decoded Envelope
			require.NoError(t, yaml.Unmarshal(data, &decoded))

			require.True(t, Equal(original, decoded.Err), "decoded %#v", decoded.Err)
			require.Equal(t, ToStatus(original), ToStatus(decoded.Err))
		})
	}
}

func TestYAML_Structure(t *testing.T) {
	data, err := yaml.Marshal(Envelope{Err: NewLeaseExpired(7)})
	require.NoError(t, err)
	require.Equal(t, "kind: LeaseExpired\npayload:\n    lease_id: 7\n", string(data))
}

func TestEnvelope_InStruct(t *testing.T) {
	type record struct {
		Request string   `json:"request"`
		Error   Envelope `json:"error"`
	}

	in := record{Request: "LeaseRevoke", Error: Envelope{Err: NewLeaseNotFound(12)}}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"request":"LeaseRevoke","error":{"kind":"LeaseNotFound","payload":{"lease_id":12}}}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, NewLeaseNotFound(12), out.Error.Err)
}

func TestEnvelope_Nil(t *testing.T) {
	data, err := json.Marshal(Envelope{})
	require.NoError(t, err)
	require.Equal(t, "null", string(data))

	decoded, err := Unmarshal([]byte("null"))
	require.NoError(t, err)
	require.Nil(t, decoded)
}

func TestUnmarshal_UnknownKind(t *testing.T) {
	_, err := Unmarshal([]byte(`{"kind":"LeaseVanished","payload":{"lease_id":1}}`))
	require.Error(t, err)
	require.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))
	require.Contains(t, err.Error(), "LeaseVanished")
}

func TestUnmarshal_BadPayload(t *testing.T) {
	_, err := Unmarshal([]byte(`{"kind":"LeaseNotFound","payload":{"lease_id":"forty-two"}}`))
	require.Error(t, err)
	require.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))
}

func TestUnmarshal_Malformed(t *testing.T) {
	_, err := Unmarshal([]byte(`{"kind":`))
	require.Error(t, err)
	require.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))
}

func TestUnmarshal_MissingPayload(t *testing.T) {
	decoded, err := Unmarshal([]byte(`{"kind":"LeaseTtlTooLarge"}`))
	require.NoError(t, err)
	require.Equal(t, NewLeaseTTLTooLarge(0), decoded)
}

func TestDecoders_CoverEveryKind(t *testing.T) {
	for _, k := range Kinds() {
		_, ok := decoders[k]
		require.True(t, ok, "kind %s has no decoder", k)
	}
}
