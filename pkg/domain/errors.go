package domain

import "errors"

// ErrConfiguration is returned when a calculator's declared ports violate its
// contract. The host must refuse to assemble the graph; nothing is invoked.
var ErrConfiguration = errors.New("invalid configuration")

// ErrInvalidArgument is returned when the data of a single invocation is
// unacceptable (wrong type, mismatched dimensions). It fails that invocation
// only; recovery policy belongs to the host.
var ErrInvalidArgument = errors.New("invalid argument")
