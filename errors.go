package dummyserial

import "github.com/pkg/errors"

var (
	// ErrPortNotOpen is returned by operations requiring an open port.
	ErrPortNotOpen = errors.New("port not open")
	// ErrPortAlreadyOpen is returned by Open on a port already open.
	ErrPortAlreadyOpen = errors.New("port already open")
	// ErrInvalidResponseType is returned by Read when the lookup answers
	// with something other than a string or []byte.
	ErrInvalidResponseType = errors.New("lookup response must be string or []byte")
)
