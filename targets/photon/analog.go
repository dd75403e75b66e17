//go:build tinygo && photon

package main

/*
#include "hal.h"
*/
import "C"

import "sparkhal/core"

// PhotonADCDriver implements core.ADCDriver
type PhotonADCDriver struct{}

func (d *PhotonADCDriver) SetSampleTime(t uint8) {
	C.HAL_ADC_Set_Sample_Time(C.uint8_t(t))
}

func (d *PhotonADCDriver) Read(pin core.GPIOPin) int32 {
	return int32(C.HAL_ADC_Read(C.uint16_t(pin)))
}

// PhotonPWMDriver implements core.PWMDriver
type PhotonPWMDriver struct{}

func (d *PhotonPWMDriver) Write(pin core.GPIOPin, value core.PWMValue) {
	C.HAL_PWM_Write(C.uint16_t(pin), C.uint8_t(value))
}

func (d *PhotonPWMDriver) WriteWithFrequency(pin core.GPIOPin, value core.PWMValue, freq uint16) {
	C.HAL_PWM_Write_With_Frequency(C.uint16_t(pin), C.uint8_t(value), C.uint16_t(freq))
}

func (d *PhotonPWMDriver) Frequency(pin core.GPIOPin) uint16 {
	return uint16(C.HAL_PWM_Get_Frequency(C.uint16_t(pin)))
}

func (d *PhotonPWMDriver) Value(pin core.GPIOPin) uint16 {
	return uint16(C.HAL_PWM_Get_AnalogValue(C.uint16_t(pin)))
}
