package slmp

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedDeviceKind is returned when a device address does not
	// start with a recognized kind letter.
	ErrUnsupportedDeviceKind = errors.New("unsupported device kind")

	// ErrInvalidAddress is returned when the numeric part of a device
	// address is malformed or out of the 24-bit wire range.
	ErrInvalidAddress = errors.New("invalid device address")

	// ErrValueTooLong is returned when an ASCII write payload exceeds the
	// two characters one word can carry.
	ErrValueTooLong = errors.New("value longer than 2 characters")

	// ErrShortResponse is returned when a response buffer is too small to
	// hold the fields it declares.
	ErrShortResponse = errors.New("response too short")
)

// ProtocolError reports a nonzero end code returned by the controller. The
// exchange itself succeeded at the transport level; the controller rejected
// the request.
type ProtocolError struct {
	Code    uint16
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("controller error 0x%04X: %s", e.Code, e.Message)
}
