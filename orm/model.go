package orm

import (
	"reflect"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bridge/errors"
)

// Model is implemented by any entity that can be stored using ModelBucket.
// Models are protobuf messages, so only fields with a protobuf tag are
// persisted.
type Model interface {
	proto.Message

	// Validate returns error if the model is not in a valid
	// state to save to the db (eg. field missing, out of range, ...)
	Validate() error
}

// newOf returns a pointer to a new zero value of the same type as proto.
func newOf(proto Model) Model {
	t := reflect.TypeOf(proto)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return reflect.New(t).Interface().(Model)
}

// sameType ensures a model can be loaded into given destination.
func sameType(proto, dest Model) error {
	want := reflect.TypeOf(proto)
	if want.Kind() != reflect.Ptr {
		want = reflect.PtrTo(want)
	}
	if got := reflect.TypeOf(dest); got != want {
		return errors.Wrapf(errors.ErrType, "%s cannot be represented as %T", want, dest)
	}
	return nil
}
