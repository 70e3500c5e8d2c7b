package slmp

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeReadRequestBit(t *testing.T) {
	// Bit read of M1600 (0x000640), the reference frame for this family.
	want := []byte{
		0x50, 0x00, 0x00, 0xFF, 0xFF, 0x03, 0x00,
		0x0C, 0x00, 0x00, 0x00,
		0x01, 0x04, 0x01, 0x00,
		0x40, 0x06, 0x00, 0x90, 0x01, 0x00,
	}
	got, err := EncodeReadRequest(Device{Kind: BitDevice, Index: 1600})
	if err != nil {
		t.Fatalf("EncodeReadRequest: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("frame = % X\nwant    % X", got, want)
	}
}

func TestEncodeReadRequestWord(t *testing.T) {
	want := []byte{
		0x50, 0x00, 0x00, 0xFF, 0xFF, 0x03, 0x00,
		0x0C, 0x00, 0x00, 0x00,
		0x01, 0x04, 0x00, 0x00,
		0xF4, 0x01, 0x00, 0xA8, 0x01, 0x00,
	}
	got, err := EncodeReadRequest(Device{Kind: WordDevice, Index: 500})
	if err != nil {
		t.Fatalf("EncodeReadRequest: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("frame = % X\nwant    % X", got, want)
	}
}

func TestEncodeBitWriteRequest(t *testing.T) {
	want := []byte{
		0x50, 0x00, 0x00, 0xFF, 0xFF, 0x03, 0x00,
		0x0D, 0x00, 0x00, 0x00,
		0x01, 0x14, 0x01, 0x00,
		0x40, 0x06, 0x00, 0x90, 0x01, 0x00,
		0x10,
	}
	got, err := EncodeBitWriteRequest(Device{Kind: BitDevice, Index: 1600}, true)
	if err != nil {
		t.Fatalf("EncodeBitWriteRequest: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("frame = % X\nwant    % X", got, want)
	}

	off, err := EncodeBitWriteRequest(Device{Kind: BitDevice, Index: 1600}, false)
	if err != nil {
		t.Fatalf("EncodeBitWriteRequest(off): %v", err)
	}
	if off[len(off)-1] != 0x00 {
		t.Errorf("off payload = 0x%02X, want 0x00", off[len(off)-1])
	}
}

func TestEncodeWordWriteRequest(t *testing.T) {
	want := []byte{
		0x50, 0x00, 0x00, 0xFF, 0xFF, 0x03, 0x00,
		0x0E, 0x00, 0x00, 0x00,
		0x01, 0x14, 0x00, 0x00,
		0xF4, 0x01, 0x00, 0xA8, 0x01, 0x00,
		0x1E, 0x00,
	}
	lo, hi := EncodeUint16(30)
	got, err := EncodeWordWriteRequest(Device{Kind: WordDevice, Index: 500}, lo, hi)
	if err != nil {
		t.Fatalf("EncodeWordWriteRequest: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("frame = % X\nwant    % X", got, want)
	}
}

func TestEncodeKindMismatch(t *testing.T) {
	if _, err := EncodeBitWriteRequest(Device{Kind: WordDevice, Index: 1}, true); !errors.Is(err, ErrUnsupportedDeviceKind) {
		t.Errorf("bit write to word device error = %v, want ErrUnsupportedDeviceKind", err)
	}
	if _, err := EncodeWordWriteRequest(Device{Kind: BitDevice, Index: 1}, 0, 0); !errors.Is(err, ErrUnsupportedDeviceKind) {
		t.Errorf("word write to bit device error = %v, want ErrUnsupportedDeviceKind", err)
	}
}

func TestEncodeIndexOutOfRange(t *testing.T) {
	d := Device{Kind: WordDevice, Index: MaxDeviceIndex + 1}
	if _, err := EncodeReadRequest(d); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("read error = %v, want ErrInvalidAddress", err)
	}
	if _, err := EncodeWordWriteRequest(d, 0, 0); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("write error = %v, want ErrInvalidAddress", err)
	}
}

func TestDecodeRequestRoundTrip(t *testing.T) {
	frames := []struct {
		name string
		data func() ([]byte, error)
		cmd  uint16
		sub  uint16
		dev  Device
		n    int // payload bytes
	}{
		{"bit read", func() ([]byte, error) { return EncodeReadRequest(Device{Kind: BitDevice, Index: 1600}) }, CmdBatchRead, SubBitUnits, Device{BitDevice, 1600}, 0},
		{"word read", func() ([]byte, error) { return EncodeReadRequest(Device{Kind: WordDevice, Index: 500}) }, CmdBatchRead, SubWordUnits, Device{WordDevice, 500}, 0},
		{"bit write", func() ([]byte, error) { return EncodeBitWriteRequest(Device{Kind: BitDevice, Index: 1600}, true) }, CmdBatchWrite, SubBitUnits, Device{BitDevice, 1600}, 1},
		{"word write", func() ([]byte, error) { return EncodeWordWriteRequest(Device{Kind: WordDevice, Index: 500}, 0x1E, 0x00) }, CmdBatchWrite, SubWordUnits, Device{WordDevice, 500}, 2},
	}
	for _, tc := range frames {
		data, err := tc.data()
		if err != nil {
			t.Fatalf("%s: encode: %v", tc.name, err)
		}
		req, err := DecodeRequest(data)
		if err != nil {
			t.Fatalf("%s: DecodeRequest: %v", tc.name, err)
		}
		if req.Command != tc.cmd {
			t.Errorf("%s: Command = 0x%04X, want 0x%04X", tc.name, req.Command, tc.cmd)
		}
		if req.Subcommand != tc.sub {
			t.Errorf("%s: Subcommand = 0x%04X, want 0x%04X", tc.name, req.Subcommand, tc.sub)
		}
		if req.Device != tc.dev {
			t.Errorf("%s: Device = %v, want %v", tc.name, req.Device, tc.dev)
		}
		if req.Points != 1 {
			t.Errorf("%s: Points = %d, want 1", tc.name, req.Points)
		}
		if len(req.Payload) != tc.n {
			t.Errorf("%s: payload = %d bytes, want %d", tc.name, len(req.Payload), tc.n)
		}
	}
}

func TestDecodeRequestRejectsBadSubHeader(t *testing.T) {
	data, err := EncodeReadRequest(Device{Kind: WordDevice, Index: 500})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	data[0] = 0xD0 // response sub-header
	if _, err := DecodeRequest(data); err == nil {
		t.Fatal("expected error for response sub-header")
	}
}

func TestDecodeRequestTooShort(t *testing.T) {
	if _, err := DecodeRequest([]byte{0x50, 0x00, 0x00}); err == nil {
		t.Fatal("expected error for short request")
	}
}
