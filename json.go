package kverrors

import (
	"encoding/json"

	platformerrors "github.com/jmgilman/go/errors"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"
)

// Envelope carries an ExecuteError through JSON or YAML.
//
// The encoded form names the kind and holds the payload fields:
//
//	{"kind":"LeaseNotFound","payload":{"lease_id":42}}
//
// An InvalidRequest payload holds the nested error's rendering and wire
// status, so a decoded value translates exactly like the original.
type Envelope struct {
	Err ExecuteError
}

type envelopeJSON struct {
	Kind    Kind            `json:"kind"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type envelopeYAML struct {
	Kind    Kind `yaml:"kind"`
	Payload any  `yaml:"payload,omitempty"`
}

// validationPayload is the serialized form of an InvalidRequest cause.
type validationPayload struct {
	Error   string `json:"error" yaml:"error"`
	Code    uint32 `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// decodeFunc decodes a payload into the value pointed to by v.
// Implementations must leave v untouched when no payload is present.
type decodeFunc func(v any) error

var decoders = map[Kind]func(decodeFunc) (ExecuteError, error){
	KindInvalidRequest:        decodeInvalidRequest,
	KindKeyNotFound:           decodeAs[KeyNotFound],
	KindRevisionTooLarge:      decodeAs[RevisionTooLarge],
	KindRevisionCompacted:     decodeAs[RevisionCompacted],
	KindLeaseNotFound:         decodeAs[LeaseNotFound],
	KindLeaseExpired:          decodeAs[LeaseExpired],
	KindLeaseTTLTooLarge:      decodeAs[LeaseTTLTooLarge],
	KindLeaseAlreadyExists:    decodeAs[LeaseAlreadyExists],
	KindAuthNotEnabled:        decodeAs[AuthNotEnabled],
	KindAuthFailed:            decodeAs[AuthFailed],
	KindUserNotFound:          decodeAs[UserNotFound],
	KindUserAlreadyExists:     decodeAs[UserAlreadyExists],
	KindUserAlreadyHasRole:    decodeAs[UserAlreadyHasRole],
	KindNoPasswordUser:        decodeAs[NoPasswordUser],
	KindRoleNotFound:          decodeAs[RoleNotFound],
	KindRoleAlreadyExists:     decodeAs[RoleAlreadyExists],
	KindRoleNotGranted:        decodeAs[RoleNotGranted],
	KindRootRoleNotExist:      decodeAs[RootRoleNotExist],
	KindPermissionNotGranted:  decodeAs[PermissionNotGranted],
	KindPermissionNotGiven:    decodeAs[PermissionNotGiven],
	KindPermissionDenied:      decodeAs[PermissionDenied],
	KindInvalidAuthManagement: decodeAs[InvalidAuthManagement],
	KindInvalidAuthToken:      decodeAs[InvalidAuthToken],
	KindTokenManagerNotInit:   decodeAs[TokenManagerNotInit],
	KindTokenNotProvided:      decodeAs[TokenNotProvided],
	KindTokenOldRevision:      decodeAs[TokenOldRevision],
	KindDBError:               decodeAs[DBError],
}

func decodeAs[T ExecuteError](decode decodeFunc) (ExecuteError, error) {
	var v T
	if err := decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeInvalidRequest(decode decodeFunc) (ExecuteError, error) {
	var p *validationPayload
	if err := decode(&p); err != nil {
		return nil, err
	}
	if p == nil {
		return InvalidRequest{}, nil
	}
	return InvalidRequest{Cause: frozenValidation{
		code:    codes.Code(p.Code),
		message: p.Message,
		detail:  p.Error,
	}}, nil
}

// payloadOf returns the value serialized as the envelope payload, or nil.
func payloadOf(err ExecuteError) any {
	if req, ok := asInvalidRequest(err); ok {
		cause := req.cause()
		if cause == nil {
			return nil
		}
		s := validationStatus(cause)
		return &validationPayload{
			Error:   cause.Error(),
			Code:    uint32(s.Code()),
			Message: s.Message(),
		}
	}
	if len(err.Fields()) == 0 {
		return nil
	}
	return err
}

func decodeKind(kind Kind, decode decodeFunc) (ExecuteError, error) {
	decoder, ok := decoders[kind]
	if !ok {
		return nil, platformerrors.Newf(platformerrors.CodeInvalidInput, "unknown execute error kind %q", kind)
	}

	e, err := decoder(decode)
	if err != nil {
		return nil, platformerrors.WrapWithContext(err, platformerrors.CodeInvalidInput,
			"failed to decode execute error payload", map[string]interface{}{"kind": string(kind)})
	}
	return e, nil
}

// MarshalJSON implements json.Marshaler.
func (e Envelope) MarshalJSON() ([]byte, error) {
	execErr := normalize(e.Err)
	if execErr == nil {
		return []byte("null"), nil
	}

	out := envelopeJSON{Kind: execErr.Kind()}
	if payload := payloadOf(execErr); payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to marshal execute error payload")
		}
		out.Payload = raw
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to marshal execute error")
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	var in *envelopeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "failed to unmarshal execute error")
	}
	if in == nil {
		e.Err = nil
		return nil
	}

	decoded, err := decodeKind(in.Kind, func(v any) error {
		if len(in.Payload) == 0 {
			return nil
		}
		return json.Unmarshal(in.Payload, v)
	})
	if err != nil {
		return err
	}
	e.Err = decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e Envelope) MarshalYAML() (interface{}, error) {
	execErr := normalize(e.Err)
	if execErr == nil {
		return nil, nil
	}
	return envelopeYAML{Kind: execErr.Kind(), Payload: payloadOf(execErr)}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Envelope) UnmarshalYAML(node *yaml.Node) error {
	var in struct {
		Kind    Kind      `yaml:"kind"`
		Payload yaml.Node `yaml:"payload"`
	}
	if err := node.Decode(&in); err != nil {
		return platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "failed to unmarshal execute error")
	}

	decoded, err := decodeKind(in.Kind, func(v any) error {
		if in.Payload.Kind == 0 {
			return nil
		}
		return in.Payload.Decode(v)
	})
	if err != nil {
		return err
	}
	e.Err = decoded
	return nil
}

// Marshal encodes err as JSON.
//
// Example:
//
//	data, _ := kverrors.Marshal(kverrors.NewLeaseNotFound(42))
//	// {"kind":"LeaseNotFound","payload":{"lease_id":42}}
func Marshal(err ExecuteError) ([]byte, error) {
	return Envelope{Err: err}.MarshalJSON()
}

// Unmarshal decodes an ExecuteError previously encoded with Marshal.
func Unmarshal(data []byte) (ExecuteError, error) {
	var env Envelope
	if err := env.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return env.Err, nil
}
