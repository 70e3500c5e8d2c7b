package slmp

// SLMP 3E binary request framing, fixed for the FX5 CPU family: one device
// point per frame, binary data code, no serial number.

import "fmt"

// Request sub-header. Responses carry 0xD0 0x00 instead.
const (
	SubHeaderRequestLo  = 0x50
	SubHeaderResponseLo = 0xD0
	SubHeaderHi         = 0x00
)

// Routing bytes, all fixed for a directly connected FX5 CPU.
const (
	networkNumber    = 0x00
	stationNumber    = 0xFF
	unitIONumberLo   = 0xFF
	unitIONumberHi   = 0x03
	multidropStation = 0x00
)

// Command and subcommand codes.
const (
	CmdBatchRead  uint16 = 0x0401
	CmdBatchWrite uint16 = 0x1401

	SubBitUnits  uint16 = 0x0001
	SubWordUnits uint16 = 0x0000
)

// HeaderSize is the byte count before the declared body: sub-header,
// routing bytes, and the 2-byte length field itself.
const HeaderSize = 9

// Declared body lengths. The body starts at the reserved bytes and, for
// writes, ends with the payload.
const (
	bodyLenRead      = 0x000C
	bodyLenBitWrite  = 0x000D
	bodyLenWordWrite = 0x000E
)

// Payload byte for a bit write. Any other value reads back as false.
const BitOn = 0x10

// appendRequest builds the invariant portion shared by all four frame
// shapes: header, declared length, reserved bytes, command, subcommand,
// device number, device code, and the fixed point count of 1.
func appendRequest(bodyLen, cmd, sub uint16, d Device) []byte {
	buf := make([]byte, 0, HeaderSize+int(bodyLen))
	buf = append(buf,
		SubHeaderRequestLo, SubHeaderHi,
		networkNumber,
		stationNumber,
		unitIONumberLo, unitIONumberHi,
		multidropStation,
		byte(bodyLen), byte(bodyLen>>8),
		0x00, 0x00, // reserved (CPU timer)
		byte(cmd), byte(cmd>>8),
		byte(sub), byte(sub>>8),
		byte(d.Index), byte(d.Index>>8), byte(d.Index>>16),
		d.Kind.Code(),
		0x01, 0x00, // device points, fixed 1
	)
	return buf
}

func subcommandFor(k DeviceKind) uint16 {
	if k == BitDevice {
		return SubBitUnits
	}
	return SubWordUnits
}

func checkIndex(d Device) error {
	if d.Index > MaxDeviceIndex {
		return fmt.Errorf("device number %d exceeds 0x%06X: %w", d.Index, uint32(MaxDeviceIndex), ErrInvalidAddress)
	}
	return nil
}

// EncodeReadRequest builds a batch-read request for one device point.
func EncodeReadRequest(d Device) ([]byte, error) {
	if err := checkIndex(d); err != nil {
		return nil, err
	}
	return appendRequest(bodyLenRead, CmdBatchRead, subcommandFor(d.Kind), d), nil
}

// EncodeBitWriteRequest builds a batch-write request setting one bit device.
func EncodeBitWriteRequest(d Device, on bool) ([]byte, error) {
	if d.Kind != BitDevice {
		return nil, fmt.Errorf("bit write to %s device: %w", d.Kind, ErrUnsupportedDeviceKind)
	}
	if err := checkIndex(d); err != nil {
		return nil, err
	}
	buf := appendRequest(bodyLenBitWrite, CmdBatchWrite, SubBitUnits, d)
	if on {
		return append(buf, BitOn), nil
	}
	return append(buf, 0x00), nil
}

// EncodeWordWriteRequest builds a batch-write request setting one word
// device to the little-endian byte pair (lo, hi).
func EncodeWordWriteRequest(d Device, lo, hi byte) ([]byte, error) {
	if d.Kind != WordDevice {
		return nil, fmt.Errorf("word write to %s device: %w", d.Kind, ErrUnsupportedDeviceKind)
	}
	if err := checkIndex(d); err != nil {
		return nil, err
	}
	buf := appendRequest(bodyLenWordWrite, CmdBatchWrite, SubWordUnits, d)
	return append(buf, lo, hi), nil
}

// Request is a decoded request frame, as recovered from a capture.
type Request struct {
	Command    uint16
	Subcommand uint16
	Device     Device
	Points     uint16
	Payload    []byte
}

// DecodeRequest decodes a complete request frame. It is the inverse of the
// encoders above and is used by the capture decoder; the client never
// parses its own requests.
func DecodeRequest(data []byte) (Request, error) {
	// Header plus the fixed body fields up to the point count.
	const minRequest = HeaderSize + 12
	if len(data) < minRequest {
		return Request{}, fmt.Errorf("request: %d bytes (minimum %d): %w", len(data), minRequest, ErrShortResponse)
	}
	if data[0] != SubHeaderRequestLo || data[1] != SubHeaderHi {
		return Request{}, fmt.Errorf("request sub-header 0x%02X%02X: %w", data[0], data[1], ErrShortResponse)
	}

	bodyLen := int(DecodeUint16(data[7], data[8]))
	if HeaderSize+bodyLen > len(data) {
		return Request{}, fmt.Errorf("request declares %d body bytes, have %d: %w", bodyLen, len(data)-HeaderSize, ErrShortResponse)
	}

	var kind DeviceKind
	switch data[18] {
	case BitDevice.Code():
		kind = BitDevice
	case WordDevice.Code():
		kind = WordDevice
	default:
		return Request{}, fmt.Errorf("device code 0x%02X: %w", data[18], ErrUnsupportedDeviceKind)
	}

	req := Request{
		Command:    DecodeUint16(data[11], data[12]),
		Subcommand: DecodeUint16(data[13], data[14]),
		Device: Device{
			Kind:  kind,
			Index: uint32(data[15]) | uint32(data[16])<<8 | uint32(data[17])<<16,
		},
		Points: DecodeUint16(data[19], data[20]),
	}
	if payload := data[21 : HeaderSize+bodyLen]; len(payload) > 0 {
		req.Payload = append([]byte(nil), payload...)
	}
	return req, nil
}
