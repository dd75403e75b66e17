// Network device adapter
// Lets TinyGo's net package dial through the firmware socket layer
package core

import (
	"io"
	"net/netip"
	"sync"
	"time"

	"tinygo.org/x/drivers/netdev"
)

// recvPollMS bounds each socket_receive call so deadlines are honoured
const recvPollMS = 100

// Local ports for netdev sockets come from the dynamic range, one per fd
const (
	localPortBase  = 49152
	localPortRange = 16384
)

func localPort(fd int) uint16 {
	return uint16(localPortBase + fd%localPortRange)
}

// Netdev implements netdev.Netdever for outbound IPv4 TCP
type Netdev struct {
	mu      sync.Mutex
	driver  SocketDriver
	sockets map[int]*TCPClient
	nextFd  int

	// now is the clock used for deadlines
	now func() time.Time
}

var _ netdev.Netdever = (*Netdev)(nil)

// NewNetdev creates a network device backed by d
func NewNetdev(d SocketDriver) *Netdev {
	return &Netdev{
		driver:  d,
		sockets: make(map[int]*TCPClient),
		nextFd:  1,
		now:     time.Now,
	}
}

// GetHostByName accepts dotted IPv4 literals only; the firmware resolver is
// not bound
func (n *Netdev) GetHostByName(name string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(name)
	if err != nil || !addr.Is4() {
		return netip.Addr{}, netdev.ErrHostUnknown
	}
	return addr, nil
}

// Addr is not available through the socket table
func (n *Netdev) Addr() (netip.Addr, error) {
	return netip.Addr{}, netdev.ErrNotSupported
}

// Socket allocates a firmware TCP socket and returns its descriptor
func (n *Netdev) Socket(domain int, stype int, protocol int) (int, error) {
	if domain != netdev.AF_INET {
		return -1, netdev.ErrFamilyNotSupported
	}
	if stype != netdev.SOCK_STREAM || (protocol != 0 && protocol != netdev.IPPROTO_TCP) {
		return -1, netdev.ErrProtocolNotSupported
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	fd := n.nextFd
	c, err := NewTCPClientPort(n.driver, localPort(fd))
	if err != nil {
		return -1, netdev.ErrNoMoreSockets
	}
	n.nextFd++
	n.sockets[fd] = c
	return fd, nil
}

func (n *Netdev) client(fd int) (*TCPClient, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	c, ok := n.sockets[fd]
	if !ok {
		return nil, netdev.ErrInvalidSocketFd
	}
	return c, nil
}

// Bind is not supported for client sockets
func (n *Netdev) Bind(sockfd int, ip netip.AddrPort) error {
	return netdev.ErrNotSupported
}

// Connect connects sockfd to ip, resolving host first when ip is unset
func (n *Netdev) Connect(sockfd int, host string, ip netip.AddrPort) error {
	c, err := n.client(sockfd)
	if err != nil {
		return err
	}

	addr := ip.Addr()
	if !addr.IsValid() && host != "" {
		if addr, err = n.GetHostByName(host); err != nil {
			return err
		}
	}
	if !addr.Is4() {
		return netdev.ErrFamilyNotSupported
	}

	return c.Connect(addr.As4(), ip.Port())
}

// Listen is not supported for client sockets
func (n *Netdev) Listen(sockfd int, backlog int) error {
	return netdev.ErrNotSupported
}

// Accept is not supported for client sockets
func (n *Netdev) Accept(sockfd int) (int, netip.AddrPort, error) {
	return -1, netip.AddrPort{}, netdev.ErrNotSupported
}

// Send writes buf; flags and deadline are ignored because socket_send
// never blocks
func (n *Netdev) Send(sockfd int, buf []byte, flags int, deadline time.Time) (int, error) {
	c, err := n.client(sockfd)
	if err != nil {
		return 0, err
	}
	return c.Send(buf)
}

// Recv waits for data until deadline (forever when deadline is zero).
// Returns io.EOF once the peer has closed and nothing is left to read.
func (n *Netdev) Recv(sockfd int, buf []byte, flags int, deadline time.Time) (int, error) {
	c, err := n.client(sockfd)
	if err != nil {
		return 0, err
	}

	for {
		timeout := uint32(recvPollMS)
		if !deadline.IsZero() {
			left := deadline.Sub(n.now())
			if left <= 0 {
				return 0, netdev.ErrTimeout
			}
			if left < recvPollMS*time.Millisecond {
				timeout = uint32(left / time.Millisecond)
			}
		}

		got, err := c.Receive(buf, timeout)
		if err != nil || got > 0 {
			return got, err
		}
		if !c.Connected() {
			return 0, io.EOF
		}
	}
}

// Close releases sockfd
func (n *Netdev) Close(sockfd int) error {
	n.mu.Lock()
	c, ok := n.sockets[sockfd]
	delete(n.sockets, sockfd)
	n.mu.Unlock()

	if !ok {
		return netdev.ErrInvalidSocketFd
	}
	if err := c.Close(); err != nil {
		return netdev.ErrClosingSocket
	}
	return nil
}

// SetSockOpt accepts SO_KEEPALIVE as a no-op; everything else is unsupported
func (n *Netdev) SetSockOpt(sockfd int, level int, opt int, value interface{}) error {
	if _, err := n.client(sockfd); err != nil {
		return err
	}
	if level == netdev.SOL_SOCKET && opt == netdev.SO_KEEPALIVE {
		return nil
	}
	return netdev.ErrNotSupported
}
