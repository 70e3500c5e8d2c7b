package pcap

import (
	"strings"
	"testing"

	"github.com/freedomikeppp/mitsubishi-fx5/internal/slmp"
)

func respBytes(endCode uint16, payload []byte) []byte {
	bodyLen := 2 + len(payload)
	buf := []byte{
		0xD0, 0x00, 0x00, 0xFF, 0xFF, 0x03, 0x00,
		byte(bodyLen), byte(bodyLen >> 8),
		byte(endCode), byte(endCode >> 8),
	}
	return append(buf, payload...)
}

func TestScanStreamRequestAndResponse(t *testing.T) {
	req, err := slmp.EncodeReadRequest(slmp.Device{Kind: slmp.WordDevice, Index: 500})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	stream := append(append([]byte(nil), req...), respBytes(0, []byte{0x1E, 0x00})...)

	frames, rest := scanStream(stream, Frame{})
	if len(rest) != 0 {
		t.Errorf("leftover = % X, want none", rest)
	}
	if len(frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(frames))
	}

	if frames[0].Direction != DirectionRequest || frames[0].Request == nil {
		t.Errorf("frame 0 = %+v, want a decoded request", frames[0])
	}
	if got := frames[0].Request.Device.String(); got != "D500" {
		t.Errorf("request device = %s, want D500", got)
	}
	if !strings.Contains(frames[0].Description, "read D500") {
		t.Errorf("request description = %q", frames[0].Description)
	}

	if frames[1].Direction != DirectionResponse || frames[1].Response == nil {
		t.Errorf("frame 1 = %+v, want a decoded response", frames[1])
	}
	if !strings.Contains(frames[1].Description, "1E 00") {
		t.Errorf("response description = %q", frames[1].Description)
	}
}

func TestScanStreamSplitAcrossSegments(t *testing.T) {
	req, err := slmp.EncodeBitWriteRequest(slmp.Device{Kind: slmp.BitDevice, Index: 1600}, true)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// First segment ends mid-frame; the tail must wait.
	frames, rest := scanStream(req[:10], Frame{})
	if len(frames) != 0 {
		t.Fatalf("frames from partial segment = %d, want 0", len(frames))
	}
	if len(rest) != 10 {
		t.Fatalf("leftover = %d bytes, want 10", len(rest))
	}

	frames, rest = scanStream(append(rest, req[10:]...), Frame{})
	if len(frames) != 1 {
		t.Fatalf("frames = %d, want 1", len(frames))
	}
	if len(rest) != 0 {
		t.Errorf("leftover = % X, want none", rest)
	}
	if frames[0].Request == nil || frames[0].Request.Command != slmp.CmdBatchWrite {
		t.Errorf("frame = %+v, want a decoded write request", frames[0])
	}
}

func TestScanStreamResynchronizes(t *testing.T) {
	req, err := slmp.EncodeReadRequest(slmp.Device{Kind: slmp.BitDevice, Index: 1600})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// Garbage from a mid-stream capture start, then a clean frame.
	stream := append([]byte{0xDE, 0xAD, 0xBE, 0xEF}, req...)

	frames, rest := scanStream(stream, Frame{})
	if len(frames) != 1 {
		t.Fatalf("frames = %d, want 1", len(frames))
	}
	if len(rest) != 0 {
		t.Errorf("leftover = % X, want none", rest)
	}
	if got := frames[0].Request.Device.String(); got != "M1600" {
		t.Errorf("device = %s, want M1600", got)
	}
}

func TestDecodeFrameErrorResponse(t *testing.T) {
	f := decodeFrame(respBytes(0xC05C, nil), Frame{})
	if f.Response == nil {
		t.Fatal("Response = nil, want decoded")
	}
	if f.Response.EndCode != 0xC05C {
		t.Errorf("EndCode = 0x%04X, want 0xC05C", f.Response.EndCode)
	}
	if !strings.Contains(f.Description, "0xC05C") {
		t.Errorf("description = %q", f.Description)
	}
}

func TestHexDump(t *testing.T) {
	out := HexDump([]byte("AB\x00"), 16)
	if !strings.Contains(out, "41 42 00") {
		t.Errorf("hex dump = %q", out)
	}
	if !strings.Contains(out, "|AB.|") {
		t.Errorf("ASCII column = %q", out)
	}
}

func TestFormatFrameHexAnnotated(t *testing.T) {
	req, err := slmp.EncodeReadRequest(slmp.Device{Kind: slmp.WordDevice, Index: 500})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out := FormatFrameHex(req, true)
	if !strings.Contains(out, "SLMP header") || !strings.Contains(out, "Body:") {
		t.Errorf("annotated dump = %q", out)
	}

	plain := FormatFrameHex(req, false)
	if strings.Contains(plain, "SLMP header") {
		t.Errorf("plain dump is annotated: %q", plain)
	}
}
