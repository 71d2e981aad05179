package domain

import (
	"fmt"
	"reflect"
)

// Timestamp is the presentation time of a frame, in microseconds since the
// start of the stream. Output packets inherit the input frame's timestamp
// plus the offset the calculator declared at Open.
type Timestamp int64

// Packet is the unit of data exchanged on a port: an immutable value stamped
// with the timestamp it belongs to. The host owns packet lifetimes;
// calculators only read inputs and hand one new value per invocation back.
type Packet struct {
	value any
	at    Timestamp
}

// NewPacket wraps a value with its timestamp.
func NewPacket(value any, at Timestamp) Packet {
	return Packet{value: value, at: at}
}

// Timestamp returns the time the packet is stamped with.
func (p Packet) Timestamp() Timestamp {
	return p.at
}

// IsEmpty reports whether the packet carries no value, e.g. a side input the
// upstream never supplied. A nil pointer (or nil map/slice) wrapped in a
// non-nil interface still counts as empty: calculators must never receive a
// value they cannot dereference.
func (p Packet) IsEmpty() bool {
	if p.value == nil {
		return true
	}
	v := reflect.ValueOf(p.value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Value returns the raw payload. Prefer As for typed access.
func (p Packet) Value() any {
	return p.value
}

// As extracts the packet payload as type T. An empty packet or a payload of
// a different type is an invocation-level error, not a panic.
func As[T any](p Packet) (T, error) {
	var zero T
	if p.IsEmpty() {
		return zero, fmt.Errorf("%w: packet is empty", ErrInvalidArgument)
	}
	v, ok := p.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: packet holds %T, not %T", ErrInvalidArgument, p.value, zero)
	}
	return v, nil
}
