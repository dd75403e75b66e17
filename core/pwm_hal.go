package core

// PWMValue is an 8-bit duty cycle (0 to PWMMax)
type PWMValue uint8

// PWMMax is full-on duty
const PWMMax PWMValue = 255

// PWMDriver is the abstract PWM interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type PWMDriver interface {
	// Write starts PWM output on pin at the default frequency
	Write(pin GPIOPin, value PWMValue)

	// WriteWithFrequency starts PWM output at freq Hz
	WriteWithFrequency(pin GPIOPin, value PWMValue, freq uint16)

	// Frequency returns the current PWM frequency of pin in Hz
	Frequency(pin GPIOPin) uint16

	// Value returns the duty last written to pin
	Value(pin GPIOPin) uint16
}

// Global singleton used by core code.
var pwmDriver PWMDriver

// SetPWMDriver is called by target-specific code to register its driver.
func SetPWMDriver(d PWMDriver) {
	pwmDriver = d
}

// MustPWM returns the configured driver or panics if missing.
func MustPWM() PWMDriver {
	if pwmDriver == nil {
		panic("PWM driver not configured")
	}
	return pwmDriver
}
