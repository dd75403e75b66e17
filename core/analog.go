// Analog input and PWM output
package core

import "errors"

// ErrADCRead is returned when the HAL reports a negative sample
var ErrADCRead = errors.New("adc read failed")

// AnalogRead samples pin. The pin is switched to analog input mode first.
func AnalogRead(pin GPIOPin) (ADCValue, error) {
	MustGPIO().SetMode(pin, PinAnalogInput)
	raw := MustADC().Read(pin)
	if raw < 0 {
		return 0, ErrADCRead
	}
	if raw > int32(ADCMax) {
		raw = int32(ADCMax)
	}
	return ADCValue(raw), nil
}

// AnalogWrite drives PWM on pin. Zero and full duty fall back to a plain
// digital level so the timer channel is released.
func AnalogWrite(pin GPIOPin, value PWMValue) {
	switch value {
	case 0:
		PinModeSet(pin, PinOutput)
		DigitalWrite(pin, false)
	case PWMMax:
		PinModeSet(pin, PinOutput)
		DigitalWrite(pin, true)
	default:
		MustPWM().Write(pin, value)
	}
}

// AnalogWriteFrequency drives PWM on pin at freq Hz
func AnalogWriteFrequency(pin GPIOPin, value PWMValue, freq uint16) {
	MustPWM().WriteWithFrequency(pin, value, freq)
}

// Millivolts converts a sample to millivolts on the 3.3V reference
func (v ADCValue) Millivolts() uint32 {
	return uint32(v) * 3300 / uint32(ADCMax)
}
