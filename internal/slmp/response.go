package slmp

import "fmt"

// MinResponseSize is the smallest valid response: 9-byte header plus the
// 2-byte end code.
const MinResponseSize = 11

// Response is a decoded response frame.
type Response struct {
	// EndCode is the controller status word. Zero means success.
	EndCode uint16
	// Payload is the data portion, excluding the end code. Empty for
	// writes and for error responses.
	Payload []byte
}

// Err returns nil for a zero end code, otherwise a *ProtocolError carrying
// the code and its catalogued description. An error is reported whenever
// the combined 16-bit end code is nonzero, even when one of its bytes
// happens to be zero.
func (r Response) Err() error {
	if r.EndCode == 0 {
		return nil
	}
	return &ProtocolError{Code: r.EndCode, Message: ErrorMessage(r.EndCode)}
}

// DecodeResponse validates a raw response buffer and extracts the end code
// and payload. The declared body length at bytes 7:9 covers the end code
// and the payload; a declared length of 2 or less yields an empty payload.
func DecodeResponse(data []byte) (Response, error) {
	if len(data) < MinResponseSize {
		return Response{}, fmt.Errorf("response: %d bytes (minimum %d): %w", len(data), MinResponseSize, ErrShortResponse)
	}

	resp := Response{EndCode: DecodeUint16(data[9], data[10])}

	length := int(DecodeInt16(data[7], data[8])) - 2 // exclude the end code
	if length <= 0 {
		return resp, nil
	}
	if MinResponseSize+length > len(data) {
		return Response{}, fmt.Errorf("response declares %d payload bytes, have %d: %w", length, len(data)-MinResponseSize, ErrShortResponse)
	}
	resp.Payload = append([]byte(nil), data[MinResponseSize:MinResponseSize+length]...)
	return resp, nil
}
