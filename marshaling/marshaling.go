// Package marshaling provides a uniform thread-safe interface to encoding formats such as JSON and
// MessagePack, following the JSON marshal/unmarshal function interface. All marshalers here are
// deterministic for maps (keys are sorted), so their output can be hashed into cache keys.
package marshaling

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

type Marshaler interface {
	Marshal(value any) ([]byte, error)
	Unmarshal(marshaled []byte, result any) error
}

// Codec names accepted by [Named].
const (
	NameJSON        = "json"
	NameMessagePack = "msgpack"
)

// Named looks up a marshaler by its codec name.
func Named(name string) (Marshaler, error) {
	switch name {
	default:
		return nil, errors.Errorf("unknown marshaling codec %s", name)
	case NameJSON:
		return JSON{}, nil
	case NameMessagePack:
		return MessagePack{}, nil
	}
}

// Json

// JSON marshals with encoding/json, which already sorts map keys.
type JSON struct{}

func (m JSON) Marshal(value any) ([]byte, error) {
	marshaled, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't json-encode value %#v", value)
	}
	return marshaled, nil
}

func (m JSON) Unmarshal(marshaled []byte, result any) error {
	if err := json.Unmarshal(marshaled, result); err != nil {
		return errors.Wrapf(err, "couldn't json-decode type %T from bytes %+v", result, marshaled)
	}
	return nil
}

// MessagePack

type MessagePack struct{}

func (m MessagePack) Marshal(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	enc.SetSortMapKeys(true)
	if err := enc.Encode(value); err != nil {
		return nil, errors.Wrapf(err, "couldn't msgpack-encode value %#v", value)
	}
	return buf.Bytes(), nil
}

func (m MessagePack) Unmarshal(marshaled []byte, result any) error {
	buf := bytes.NewBuffer(marshaled)
	dec := msgpack.NewDecoder(buf)
	dec.SetCustomStructTag("json")
	if err := dec.Decode(result); err != nil {
		return errors.Wrapf(err, "couldn't msgpack-decode type %T from bytes %+v", result, marshaled)
	}
	return nil
}
