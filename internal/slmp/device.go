package slmp

// Device addressing for the FX5 CPU family.

import (
	"fmt"
	"strconv"
)

// DeviceKind identifies the class of controller memory a device lives in.
type DeviceKind uint8

const (
	// BitDevice is an internal relay (letter M), one bit per point.
	BitDevice DeviceKind = iota
	// WordDevice is a data register (letter D), one 16-bit word per point.
	WordDevice
)

// MaxDeviceIndex is the largest device number the 3-byte wire field can carry.
const MaxDeviceIndex = 0xFFFFFF

// Code returns the device code byte used in request frames.
func (k DeviceKind) Code() byte {
	if k == BitDevice {
		return 0x90
	}
	return 0xA8
}

// String returns the kind letter.
func (k DeviceKind) String() string {
	if k == BitDevice {
		return "M"
	}
	return "D"
}

// Device is one addressable point of controller memory.
type Device struct {
	Kind  DeviceKind
	Index uint32
}

// String returns the textual address, e.g. "M1600" or "D500".
func (d Device) String() string {
	return d.Kind.String() + strconv.FormatUint(uint64(d.Index), 10)
}

// ParseDevice parses a textual device address: a kind letter (M or D)
// followed by a decimal non-negative device number.
func ParseDevice(addr string) (Device, error) {
	if addr == "" {
		return Device{}, fmt.Errorf("empty address: %w", ErrInvalidAddress)
	}

	var kind DeviceKind
	switch addr[0] {
	case 'M':
		kind = BitDevice
	case 'D':
		kind = WordDevice
	default:
		return Device{}, fmt.Errorf("%q: %w", addr, ErrUnsupportedDeviceKind)
	}

	index, err := strconv.ParseUint(addr[1:], 10, 32)
	if err != nil {
		return Device{}, fmt.Errorf("%q: %w", addr, ErrInvalidAddress)
	}
	if index > MaxDeviceIndex {
		return Device{}, fmt.Errorf("%q: device number exceeds 0x%06X: %w", addr, uint32(MaxDeviceIndex), ErrInvalidAddress)
	}

	return Device{Kind: kind, Index: uint32(index)}, nil
}
