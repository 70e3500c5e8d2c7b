package fx5

// Client for one FX5 controller endpoint. All exchanges on a client are
// serialized by its mutex; the controller accepts only one outstanding
// request per TCP peer.

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/freedomikeppp/mitsubishi-fx5/internal/slmp"
)

// ConnectionError reports a transport-level failure: connect refused or
// timed out, a broken exchange, or a short response. The affected transport
// has already been closed; the next call reconnects.
type ConnectionError struct {
	Host string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.Host, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Value is the result of one read.
type Value struct {
	Device slmp.Device
	Bool   bool   // bit devices
	Int    int16  // word devices, numeric mode
	Text   string // word devices, ASCII mode
	ASCII  bool
}

// String renders the value for display.
func (v Value) String() string {
	switch {
	case v.Device.Kind == slmp.BitDevice:
		return strconv.FormatBool(v.Bool)
	case v.ASCII:
		return v.Text
	default:
		return strconv.FormatInt(int64(v.Int), 10)
	}
}

// Client reads and writes devices on one controller.
type Client struct {
	host string
	log  *zap.Logger

	mu sync.Mutex
	tr Transport
}

// NewClient creates a client for host ("ip:port"). The connection is dialed
// lazily on the first exchange. A nil logger disables logging.
func NewClient(host string, log *zap.Logger) (*Client, error) {
	if _, _, err := net.SplitHostPort(host); err != nil {
		return nil, fmt.Errorf("host %q: %w", host, err)
	}
	return NewClientWithTransport(host, NewTCPTransport(host), log), nil
}

// NewClientWithTransport creates a client over a caller-supplied transport.
func NewClientWithTransport(host string, tr Transport, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{host: host, tr: tr, log: log}
}

// Host returns the endpoint this client talks to.
func (c *Client) Host() string {
	return c.host
}

// String reports the endpoint and connection state, e.g.
// "192.168.1.10:2555 Open".
func (c *Client) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tr.IsOpen() {
		return c.host + " Open"
	}
	return c.host + " Close"
}

// exchange performs one serialized open+send+receive and decodes the
// response. Any transport failure closes the connection before the error
// propagates; a nonzero end code does not close it.
func (c *Client) exchange(frame []byte) (slmp.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	raw, err := c.roundTrip(frame)
	if err != nil {
		c.log.Warn("exchange failed, closing transport",
			zap.String("host", c.host), zap.Error(err))
		_ = c.tr.Close()
		return slmp.Response{}, &ConnectionError{Host: c.host, Err: err}
	}

	resp, err := slmp.DecodeResponse(raw)
	if err != nil {
		c.log.Warn("invalid response, closing transport",
			zap.String("host", c.host), zap.Error(err))
		_ = c.tr.Close()
		return slmp.Response{}, &ConnectionError{Host: c.host, Err: err}
	}

	c.log.Debug("exchange",
		zap.String("host", c.host),
		zap.Int("request_bytes", len(frame)),
		zap.Int("response_bytes", len(raw)),
		zap.Duration("rtt", time.Since(start)))

	if err := resp.Err(); err != nil {
		return slmp.Response{}, err
	}
	return resp, nil
}

func (c *Client) roundTrip(frame []byte) ([]byte, error) {
	if err := c.tr.Open(); err != nil {
		return nil, err
	}
	if err := c.tr.Send(frame); err != nil {
		return nil, err
	}
	return c.tr.Recv()
}

// Read reads one device. Bit devices yield a boolean, true iff the payload
// byte is 0x10. Word devices yield a signed 16-bit integer, or a 0-2
// character string when ascii is set.
func (c *Client) Read(addr string, ascii bool) (Value, error) {
	dev, err := slmp.ParseDevice(addr)
	if err != nil {
		return Value{}, err
	}

	frame, err := slmp.EncodeReadRequest(dev)
	if err != nil {
		return Value{}, err
	}
	resp, err := c.exchange(frame)
	if err != nil {
		return Value{}, err
	}

	v := Value{Device: dev, ASCII: ascii}
	switch dev.Kind {
	case slmp.BitDevice:
		if len(resp.Payload) < 1 {
			return Value{}, fmt.Errorf("read %s: empty payload: %w", dev, slmp.ErrShortResponse)
		}
		v.Bool = resp.Payload[0] == slmp.BitOn
	case slmp.WordDevice:
		if len(resp.Payload) < 2 {
			return Value{}, fmt.Errorf("read %s: payload %d bytes, want 2: %w", dev, len(resp.Payload), slmp.ErrShortResponse)
		}
		if ascii {
			v.Text = slmp.BytesToString(resp.Payload[0], resp.Payload[1])
		} else {
			v.Int = slmp.DecodeInt16(resp.Payload[0], resp.Payload[1])
		}
	}
	return v, nil
}

// Write writes one device. Bit devices take an integer value, nonzero
// meaning on. Word devices take an integer (encoded with 16-bit wrap) or,
// in ASCII mode, a string of at most two characters.
func (c *Client) Write(addr, value string, ascii bool) error {
	dev, err := slmp.ParseDevice(addr)
	if err != nil {
		return err
	}

	var frame []byte
	switch dev.Kind {
	case slmp.BitDevice:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("bit value %q: %w", value, err)
		}
		frame, err = slmp.EncodeBitWriteRequest(dev, n != 0)
		if err != nil {
			return err
		}
	case slmp.WordDevice:
		var lo, hi byte
		if ascii {
			lo, hi, err = slmp.StringToBytes(value)
			if err != nil {
				return err
			}
		} else {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return fmt.Errorf("word value %q: %w", value, err)
			}
			lo, hi = slmp.EncodeUint16(n)
		}
		frame, err = slmp.EncodeWordWriteRequest(dev, lo, hi)
		if err != nil {
			return err
		}
	}

	_, err = c.exchange(frame)
	return err
}

// Exec performs a batch of writes given as comma-separated "device=value"
// assignments, e.g. "D150=31,D200=5,M1501=1". Writes run left to right with
// the default numeric encoding; the first failure aborts the remainder and
// leaves earlier writes applied.
func (c *Client) Exec(cmd string) error {
	for _, assign := range strings.Split(cmd, ",") {
		addr, value, ok := strings.Cut(assign, "=")
		if !ok {
			return fmt.Errorf("assignment %q: missing '=': %w", assign, slmp.ErrInvalidAddress)
		}
		if err := c.Write(strings.TrimSpace(addr), value, false); err != nil {
			return fmt.Errorf("write %s: %w", strings.TrimSpace(addr), err)
		}
	}
	return nil
}

// Probe lazily connects if needed, swallowing any connect error, and
// reports whether the connection is open.
func (c *Client) Probe() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.tr.Open(); err != nil {
		c.log.Debug("probe failed", zap.String("host", c.host), zap.Error(err))
	}
	return c.tr.IsOpen()
}

// Close tears down the connection. Best effort; a later call reconnects.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.tr.Close()
}
