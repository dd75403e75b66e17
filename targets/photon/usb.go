//go:build tinygo && photon

package main

/*
#include "hal.h"
*/
import "C"

// PhotonUSBSerialDriver implements core.USBSerialDriver with the old
// USB_USART_* API
type PhotonUSBSerialDriver struct{}

// NewPhotonUSBSerialDriver creates the USB serial driver
func NewPhotonUSBSerialDriver() *PhotonUSBSerialDriver {
	return &PhotonUSBSerialDriver{}
}

func (d *PhotonUSBSerialDriver) Init(baud uint32) {
	C.USB_USART_Init(C.uint32_t(baud))
}

func (d *PhotonUSBSerialDriver) SendByte(b byte) {
	C.USB_USART_Send_Data(C.uint8_t(b))
}

func (d *PhotonUSBSerialDriver) Available() int {
	return int(C.USB_USART_Available_Data())
}

func (d *PhotonUSBSerialDriver) ReceiveByte(peek bool) int32 {
	var p C.uint8_t
	if peek {
		p = 1
	}
	return int32(C.USB_USART_Receive_Data(p))
}

func (d *PhotonUSBSerialDriver) BaudRate() uint32 {
	return uint32(C.USB_USART_Baud_Rate())
}
