package fx5

// TCP transport to one controller endpoint. The controller accepts a single
// outstanding request per TCP peer, so the transport never pipelines; the
// Client serializes whole open+send+receive exchanges around it.

import (
	"fmt"
	"net"
	"time"
)

const (
	// exchangeTimeout bounds the connect, the write, and the read of one
	// exchange. The controller answers well inside this or not at all.
	exchangeTimeout = 2 * time.Second

	// recvBufferSize is the read buffer for one response. Single-point
	// responses never exceed this.
	recvBufferSize = 128
)

// Transport is one request/response channel to a controller. Implementations
// are not safe for concurrent use; callers own the serialization.
type Transport interface {
	// Open establishes the connection if it is not already open.
	Open() error
	// Send writes one complete request frame.
	Send(data []byte) error
	// Recv reads one response, returning whatever arrived in a single read.
	Recv() ([]byte, error)
	// Close tears the connection down. The next Open dials afresh.
	Close() error
	// IsOpen reports whether the connection is currently established.
	IsOpen() bool
}

// TCPTransport implements Transport over one lazily dialed TCP connection.
type TCPTransport struct {
	addr string
	conn net.Conn
}

var _ Transport = (*TCPTransport)(nil)

// NewTCPTransport creates a transport for addr ("ip:port"). No connection
// is made until the first Open.
func NewTCPTransport(addr string) *TCPTransport {
	return &TCPTransport{addr: addr}
}

// Open dials the controller if the connection is closed.
func (t *TCPTransport) Open() error {
	if t.conn != nil {
		return nil
	}
	conn, err := net.DialTimeout("tcp", t.addr, exchangeTimeout)
	if err != nil {
		return fmt.Errorf("dial %s: %w", t.addr, err)
	}
	t.conn = conn
	return nil
}

// Send writes the whole frame under a write deadline.
func (t *TCPTransport) Send(data []byte) error {
	if t.conn == nil {
		return fmt.Errorf("send on closed transport")
	}
	if err := t.conn.SetWriteDeadline(time.Now().Add(exchangeTimeout)); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	if _, err := t.conn.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Recv performs one read under a read deadline and returns the bytes
// received. Response validation is the caller's concern.
func (t *TCPTransport) Recv() ([]byte, error) {
	if t.conn == nil {
		return nil, fmt.Errorf("recv on closed transport")
	}
	if err := t.conn.SetReadDeadline(time.Now().Add(exchangeTimeout)); err != nil {
		return nil, fmt.Errorf("set read deadline: %w", err)
	}
	buf := make([]byte, recvBufferSize)
	n, err := t.conn.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return buf[:n], nil
}

// Close tears down the connection. Closing an already-closed transport is a
// no-op; errors from a broken socket are suppressed.
func (t *TCPTransport) Close() error {
	if t.conn == nil {
		return nil
	}
	_ = t.conn.Close()
	t.conn = nil
	return nil
}

// IsOpen reports whether the connection is established. It does not dial.
func (t *TCPTransport) IsOpen() bool {
	return t.conn != nil
}
