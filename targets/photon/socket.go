//go:build tinygo && photon

package main

/*
#include "hal.h"
*/
import "C"

import (
	"unsafe"

	"sparkhal/core"
	"sparkhal/protocol"
)

// PhotonSocketDriver implements core.SocketDriver with hal_socket
type PhotonSocketDriver struct{}

// NewPhotonSocketDriver creates the socket driver
func NewPhotonSocketDriver() *PhotonSocketDriver {
	return &PhotonSocketDriver{}
}

func (d *PhotonSocketDriver) Create(family, sockType, proto uint8, port uint16, nif uint32) core.SocketHandle {
	return core.SocketHandle(C.socket_create(C.uint8_t(family), C.uint8_t(sockType), C.uint8_t(proto),
		C.uint16_t(port), C.network_interface_t(nif)))
}

func (d *PhotonSocketDriver) HandleValid(h core.SocketHandle) bool {
	return C.socket_handle_valid(C.sock_handle_t(h)) != 0
}

func (d *PhotonSocketDriver) Connect(h core.SocketHandle, addr *protocol.SockAddr) int32 {
	var sa C.sockaddr_t
	sa.sa_family = C.uint16_t(addr.Family)
	for i, b := range addr.Data {
		sa.sa_data[i] = C.uint8_t(b)
	}
	return int32(C.socket_connect(C.sock_handle_t(h), &sa, C.long(unsafe.Sizeof(sa))))
}

func (d *PhotonSocketDriver) Send(h core.SocketHandle, data []byte) int32 {
	if len(data) == 0 {
		return 0
	}
	return int32(C.socket_send(C.sock_handle_t(h), unsafe.Pointer(&data[0]), C.socklen_t(len(data))))
}

func (d *PhotonSocketDriver) Receive(h core.SocketHandle, buf []byte, timeout core.SystemTick) int32 {
	if len(buf) == 0 {
		return 0
	}
	return int32(C.socket_receive(C.sock_handle_t(h), unsafe.Pointer(&buf[0]), C.socklen_t(len(buf)),
		C.system_tick_t(timeout)))
}

func (d *PhotonSocketDriver) Close(h core.SocketHandle) int32 {
	return int32(C.socket_close(C.sock_handle_t(h)))
}

func (d *PhotonSocketDriver) ActiveStatus(h core.SocketHandle) uint8 {
	return uint8(C.socket_active_status(C.sock_handle_t(h)))
}
