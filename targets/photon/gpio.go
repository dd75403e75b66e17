//go:build tinygo && photon

package main

/*
#include "hal.h"
*/
import "C"

import "sparkhal/core"

// Photon pin numbers (pin_t)
const (
	D0 core.GPIOPin = 0
	D1 core.GPIOPin = 1
	D2 core.GPIOPin = 2
	D3 core.GPIOPin = 3
	D4 core.GPIOPin = 4
	D5 core.GPIOPin = 5
	D6 core.GPIOPin = 6
	D7 core.GPIOPin = 7 // Blue user LED

	A0 core.GPIOPin = 10
	A1 core.GPIOPin = 11
	A2 core.GPIOPin = 12
	A3 core.GPIOPin = 13
	A4 core.GPIOPin = 14
	A5 core.GPIOPin = 15

	LED = D7
)

// PhotonGPIODriver implements core.GPIODriver with the hal_gpio calls
type PhotonGPIODriver struct{}

// NewPhotonGPIODriver creates the GPIO driver
func NewPhotonGPIODriver() *PhotonGPIODriver {
	return &PhotonGPIODriver{}
}

func (d *PhotonGPIODriver) SetMode(pin core.GPIOPin, mode core.PinMode) {
	C.HAL_Pin_Mode(C.pin_t(pin), C.uint32_t(mode))
}

func (d *PhotonGPIODriver) Write(pin core.GPIOPin, value bool) {
	var level C.uint8_t
	if value {
		level = 1
	}
	C.HAL_GPIO_Write(C.pin_t(pin), level)
}

func (d *PhotonGPIODriver) Read(pin core.GPIOPin) int32 {
	return int32(C.HAL_GPIO_Read(C.pin_t(pin)))
}
