package kverrors

import "reflect"

// ExecuteError is a failure met while executing a key-value store command.
//
// The set of implementations is closed to this package: each kind has one
// value type (KeyNotFound, LeaseNotFound, ...) whose fields carry only the
// data needed to render messages. Values are immutable and safe to copy
// across goroutines. All variants except InvalidRequest are comparable with
// ==; use Equal or errors.Is to compare InvalidRequest values.
//
// Pointers to variants also satisfy ExecuteError. Every function in this
// package treats a pointer like the value it points to, and a nil pointer
// like the zero value.
//
// ExecuteError is the one currency exchanged between command execution and
// the RPC boundary, where ToStatus converts it into a WireStatus. Converting
// it to an untyped error en route loses the payload; wrap it with %w instead.
type ExecuteError interface {
	error

	// Kind returns the variant tag.
	Kind() Kind

	// Fields returns the payload as ordered name/value pairs.
	// Names match the serialized field names. Payload-less kinds return nil.
	Fields() []Field

	isExecuteError()
}

// Field is a single named payload value of an ExecuteError.
type Field struct {
	Name  string
	Value any
}

// normalize returns the value form of a pointer variant. A nil pointer
// yields the zero value.
func normalize(err ExecuteError) ExecuteError {
	if err == nil {
		return nil
	}
	v := reflect.ValueOf(err)
	if v.Kind() != reflect.Pointer {
		return err
	}
	if v.IsNil() {
		v = reflect.Zero(v.Type().Elem())
	} else {
		v = v.Elem()
	}
	if e, ok := v.Interface().(ExecuteError); ok {
		return e
	}
	return err
}
