package pcap

// Hex dump rendering for captured frames.

import (
	"fmt"
	"strings"

	"github.com/freedomikeppp/mitsubishi-fx5/internal/slmp"
)

// HexDump renders data as offset/hex/ASCII rows.
func HexDump(data []byte, width int) string {
	if width <= 0 {
		width = 16
	}

	var sb strings.Builder
	for i := 0; i < len(data); i += width {
		sb.WriteString(fmt.Sprintf("%04x: ", i))

		for j := 0; j < width; j++ {
			if i+j < len(data) {
				sb.WriteString(fmt.Sprintf("%02x ", data[i+j]))
			} else {
				sb.WriteString("   ")
			}
		}

		sb.WriteString(" |")
		for j := 0; j < width && i+j < len(data); j++ {
			b := data[i+j]
			if b >= 32 && b < 127 {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}

// FormatFrameHex renders a frame, optionally splitting the SLMP header from
// the body.
func FormatFrameHex(data []byte, annotate bool) string {
	if !annotate || len(data) < slmp.HeaderSize {
		return HexDump(data, 16)
	}

	var sb strings.Builder
	sb.WriteString("SLMP header (9 bytes):\n")
	sb.WriteString(HexDump(data[:slmp.HeaderSize], 16))
	if len(data) > slmp.HeaderSize {
		sb.WriteString("\nBody:\n")
		sb.WriteString(HexDump(data[slmp.HeaderSize:], 16))
	}
	return sb.String()
}
