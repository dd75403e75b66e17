// Raw TCP client sockets
// Thin wrapper over the firmware's hal_socket calls
package core

import (
	"errors"

	"sparkhal/protocol"
)

// Local port and interface used by NewTCPClient and Dial
const (
	DefaultLocalPort = 1337
	DefaultInterface = 0
)

var (
	ErrSocketCreate  = errors.New("socket: create failed")
	ErrSocketConnect = errors.New("socket: connect failed")
	ErrSocketClosed  = errors.New("socket: closed")
	ErrSocketIO      = errors.New("socket: i/o error")
)

// TCPClient is a single outbound TCP connection
type TCPClient struct {
	driver SocketDriver
	handle SocketHandle
	closed bool
}

// NewTCPClient allocates a TCP socket on d bound to DefaultLocalPort
func NewTCPClient(d SocketDriver) (*TCPClient, error) {
	return NewTCPClientPort(d, DefaultLocalPort)
}

// NewTCPClientPort allocates a TCP socket on d bound to local port
func NewTCPClientPort(d SocketDriver, port uint16) (*TCPClient, error) {
	h := d.Create(protocol.AF_INET, protocol.SOCK_STREAM, protocol.IPPROTO_TCP, port, DefaultInterface)
	if h == SocketInvalid || !d.HandleValid(h) {
		return nil, ErrSocketCreate
	}
	return &TCPClient{driver: d, handle: h}, nil
}

// Dial opens a TCP connection with the global socket driver
func Dial(ip [4]byte, port uint16) (*TCPClient, error) {
	c, err := NewTCPClient(MustSocket())
	if err != nil {
		return nil, err
	}
	if err := c.Connect(ip, port); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// Handle returns the firmware socket handle
func (c *TCPClient) Handle() SocketHandle {
	return c.handle
}

// Connect connects to ip:port
func (c *TCPClient) Connect(ip [4]byte, port uint16) error {
	if c.closed {
		return ErrSocketClosed
	}
	addr := protocol.NewSockAddrIPv4(ip, port)
	if c.driver.Connect(c.handle, &addr) != 0 {
		return ErrSocketConnect
	}
	return nil
}

// Connected reports whether the firmware still considers the socket active
func (c *TCPClient) Connected() bool {
	return !c.closed && c.driver.ActiveStatus(c.handle) == SocketStatusActive
}

// Send queues data for transmission
func (c *TCPClient) Send(data []byte) (int, error) {
	if c.closed {
		return 0, ErrSocketClosed
	}
	if len(data) == 0 {
		return 0, nil
	}
	n := c.driver.Send(c.handle, data)
	if n < 0 {
		return 0, ErrSocketIO
	}
	return int(n), nil
}

// Write implements io.Writer on top of Send
func (c *TCPClient) Write(p []byte) (int, error) {
	return c.Send(p)
}

// Receive waits up to timeoutMS for data. Returns 0, nil when the timeout
// expires with nothing received.
func (c *TCPClient) Receive(buf []byte, timeoutMS uint32) (int, error) {
	if c.closed {
		return 0, ErrSocketClosed
	}
	n := c.driver.Receive(c.handle, buf, SystemTick(timeoutMS))
	if n < 0 {
		return 0, ErrSocketIO
	}
	return int(n), nil
}

// Close releases the socket. Closing twice is a no-op.
func (c *TCPClient) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.driver.Close(c.handle) != 0 {
		return ErrSocketIO
	}
	return nil
}
