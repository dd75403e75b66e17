package protocol

// Address families understood by socket_create
const (
	AF_INET  = 2
	AF_INET6 = 23
)

// Socket types and protocols used for TCP clients
const (
	SOCK_STREAM = 1
	IPPROTO_TCP = 6
)

// SockAddrDataSize is the length of sockaddr_t.sa_data
const SockAddrDataSize = 14

// SockAddr mirrors the firmware's sockaddr_t layout
type SockAddr struct {
	Family uint16
	Data   [SockAddrDataSize]byte
}

// NewSockAddrIPv4 builds an AF_INET address.
// Layout: port big-endian in Data[0:2], IPv4 octets in Data[2:6].
func NewSockAddrIPv4(ip [4]byte, port uint16) SockAddr {
	addr := SockAddr{Family: AF_INET}
	addr.Data[0] = byte(port >> 8)
	addr.Data[1] = byte(port & 0xFF)
	copy(addr.Data[2:6], ip[:])
	return addr
}

// Port decodes the big-endian port
func (a *SockAddr) Port() uint16 {
	return uint16(a.Data[0])<<8 | uint16(a.Data[1])
}

// IPv4 returns the four address octets
func (a *SockAddr) IPv4() [4]byte {
	var ip [4]byte
	copy(ip[:], a.Data[2:6])
	return ip
}
