package core

import "sparkhal/protocol"

// SocketHandle is the firmware's sock_handle_t
type SocketHandle uint32

// SocketInvalid is returned by socket_create when no socket is available
const SocketInvalid SocketHandle = 0xFFFFFFFF

// socket_active_status values
const (
	SocketStatusInactive = 0
	SocketStatusActive   = 1
)

// SocketDriver is the hal_socket part of the firmware table
type SocketDriver interface {
	// Create opens a socket bound to the given local port on interface nif
	Create(family, sockType, proto uint8, port uint16, nif uint32) SocketHandle

	// HandleValid reports whether h refers to an allocated socket
	HandleValid(h SocketHandle) bool

	// Connect returns 0 on success
	Connect(h SocketHandle, addr *protocol.SockAddr) int32

	// Send returns the number of bytes queued or a negative error code
	Send(h SocketHandle, data []byte) int32

	// Receive waits up to timeout milliseconds; returns bytes read,
	// 0 when nothing arrived, or a negative error code
	Receive(h SocketHandle, buf []byte, timeout SystemTick) int32

	// Close returns 0 on success
	Close(h SocketHandle) int32

	// ActiveStatus returns SocketStatusActive while connected
	ActiveStatus(h SocketHandle) uint8
}

// Global singleton used by core code.
var socketDriver SocketDriver

// SetSocketDriver is called by target-specific code to register its driver.
func SetSocketDriver(d SocketDriver) {
	socketDriver = d
}

// MustSocket returns the configured driver or panics if missing.
func MustSocket() SocketDriver {
	if socketDriver == nil {
		panic("socket driver not configured")
	}
	return socketDriver
}
