//go:build tinygo && photon

package main

/*
#include "hal.h"
*/
import "C"

import (
	"unsafe"

	"sparkhal/core"
)

// PhotonTimerDriver implements core.TimerDriver
type PhotonTimerDriver struct{}

// NewPhotonTimerDriver creates the timer driver
func NewPhotonTimerDriver() *PhotonTimerDriver {
	return &PhotonTimerDriver{}
}

func (d *PhotonTimerDriver) Micros() core.SystemTick {
	return core.SystemTick(C.HAL_Timer_Get_Micro_Seconds())
}

func (d *PhotonTimerDriver) Millis() core.SystemTick {
	return core.SystemTick(C.HAL_Timer_Get_Milli_Seconds())
}

func (d *PhotonTimerDriver) DelayMilliseconds(ms uint32) {
	C.HAL_Delay_Milliseconds(C.uint32_t(ms))
}

func (d *PhotonTimerDriver) DelayMicroseconds(us uint32) {
	C.HAL_Delay_Microseconds(C.uint32_t(us))
}

func (d *PhotonTimerDriver) SystemDelay(ms uint32, forceNoBackground bool) {
	C.system_delay_ms(C.ulong(ms), C.bool(forceNoBackground))
}

// PhotonDeviceDriver implements core.DeviceDriver
type PhotonDeviceDriver struct{}

func (d *PhotonDeviceDriver) DeviceID(dst []byte) int {
	if len(dst) == 0 {
		return int(C.HAL_device_ID(nil, 0))
	}
	return int(C.HAL_device_ID((*C.uint8_t)(unsafe.Pointer(&dst[0])), C.uint(len(dst))))
}
