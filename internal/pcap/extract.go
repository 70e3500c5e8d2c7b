package pcap

// Offline decoding of SLMP request/response traffic from capture files.

import (
	"fmt"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"

	"github.com/freedomikeppp/mitsubishi-fx5/internal/slmp"
)

// DefaultPort is the SLMP port assumed when none is given.
const DefaultPort = 2555

// Direction tells requests from responses, by destination port.
type Direction string

const (
	DirectionRequest  Direction = "request"
	DirectionResponse Direction = "response"
)

// Frame is one SLMP frame recovered from a capture.
type Frame struct {
	Timestamp   time.Time
	SrcIP       string
	DstIP       string
	SrcPort     uint16
	DstPort     uint16
	Direction   Direction
	Raw         []byte
	Request     *slmp.Request  // set for request frames that decoded cleanly
	Response    *slmp.Response // set for response frames
	Description string
}

// ExtractFromFile reads a capture file and returns the SLMP frames found on
// TCP streams touching port. TCP segments are reassembled per flow; bytes
// that never line up on a frame boundary are dropped one at a time until a
// sub-header matches.
func ExtractFromFile(path string, port uint16) ([]Frame, error) {
	handle, err := pcap.OpenOffline(path)
	if err != nil {
		return nil, fmt.Errorf("open pcap file: %w", err)
	}
	defer handle.Close()

	if port == 0 {
		port = DefaultPort
	}

	var frames []Frame
	streams := make(map[string][]byte)
	source := gopacket.NewPacketSource(handle, handle.LinkType())

	for packet := range source.Packets() {
		tcpLayer := packet.Layer(layers.LayerTypeTCP)
		if tcpLayer == nil {
			continue
		}
		tcp, _ := tcpLayer.(*layers.TCP)
		if uint16(tcp.SrcPort) != port && uint16(tcp.DstPort) != port {
			continue
		}
		if len(tcp.Payload) == 0 {
			continue
		}

		meta := frameMeta(packet, tcp, port)
		key := streamKey(packet, tcp)
		buf := append(streams[key], tcp.Payload...)
		parsed, remaining := scanStream(buf, meta)
		frames = append(frames, parsed...)
		streams[key] = remaining
	}

	return frames, nil
}

func streamKey(packet gopacket.Packet, tcp *layers.TCP) string {
	if net := packet.NetworkLayer(); net != nil {
		return net.NetworkFlow().String() + "|" + tcp.TransportFlow().String()
	}
	return tcp.TransportFlow().String()
}

func frameMeta(packet gopacket.Packet, tcp *layers.TCP, port uint16) Frame {
	meta := Frame{
		SrcPort:   uint16(tcp.SrcPort),
		DstPort:   uint16(tcp.DstPort),
		Direction: DirectionResponse,
	}
	if uint16(tcp.DstPort) == port {
		meta.Direction = DirectionRequest
	}
	if net := packet.NetworkLayer(); net != nil {
		flow := net.NetworkFlow()
		meta.SrcIP = flow.Src().String()
		meta.DstIP = flow.Dst().String()
	}
	if m := packet.Metadata(); m != nil {
		meta.Timestamp = m.Timestamp
	}
	return meta
}

// scanStream pulls complete SLMP frames off the front of buf. An incomplete
// tail is returned and waits for more segments; a byte that cannot start a
// frame is dropped so the scan can resynchronize mid-stream.
func scanStream(buf []byte, meta Frame) ([]Frame, []byte) {
	var frames []Frame
	for len(buf) > 0 {
		if !validSubHeader(buf[0], byteAt(buf, 1)) {
			buf = buf[1:]
			continue
		}
		if len(buf) < slmp.HeaderSize {
			break // wait for the rest of the header
		}
		total := slmp.HeaderSize + int(slmp.DecodeUint16(buf[7], buf[8]))
		if total > len(buf) {
			break // wait for the rest of the body
		}

		raw := append([]byte(nil), buf[:total]...)
		frames = append(frames, decodeFrame(raw, meta))
		buf = buf[total:]
	}
	return frames, buf
}

func byteAt(buf []byte, i int) byte {
	if i < len(buf) {
		return buf[i]
	}
	// Treat a missing second byte as matching; the length check above
	// defers the decision until the header is complete.
	return slmp.SubHeaderHi
}

func validSubHeader(lo, hi byte) bool {
	return (lo == slmp.SubHeaderRequestLo || lo == slmp.SubHeaderResponseLo) && hi == slmp.SubHeaderHi
}

func decodeFrame(raw []byte, meta Frame) Frame {
	f := meta
	f.Raw = raw

	if raw[0] == slmp.SubHeaderRequestLo {
		f.Direction = DirectionRequest
		req, err := slmp.DecodeRequest(raw)
		if err != nil {
			f.Description = fmt.Sprintf("undecodable request: %v", err)
			return f
		}
		f.Request = &req
		f.Description = describeRequest(req)
		return f
	}

	f.Direction = DirectionResponse
	resp, err := slmp.DecodeResponse(raw)
	if err != nil {
		f.Description = fmt.Sprintf("undecodable response: %v", err)
		return f
	}
	f.Response = &resp
	f.Description = describeResponse(resp)
	return f
}

func describeRequest(req slmp.Request) string {
	var op string
	switch req.Command {
	case slmp.CmdBatchRead:
		op = "read"
	case slmp.CmdBatchWrite:
		op = "write"
	default:
		op = fmt.Sprintf("command 0x%04X", req.Command)
	}
	s := fmt.Sprintf("%s %s", op, req.Device)
	if len(req.Payload) > 0 {
		s += fmt.Sprintf(" value % X", req.Payload)
	}
	return s
}

func describeResponse(resp slmp.Response) string {
	if resp.EndCode != 0 {
		return fmt.Sprintf("error 0x%04X: %s", resp.EndCode, slmp.ErrorMessage(resp.EndCode))
	}
	if len(resp.Payload) == 0 {
		return "ok"
	}
	return fmt.Sprintf("ok, data % X", resp.Payload)
}
