package core

// GPIOPin identifies a hardware pin (pin_t)
type GPIOPin uint16

// PinMode mirrors the firmware's PinMode enumeration
type PinMode uint32

const (
	PinInput            PinMode = 0
	PinOutput           PinMode = 1
	PinInputPullUp      PinMode = 2
	PinInputPullDown    PinMode = 3
	PinAFOutputPushPull PinMode = 4
	PinAFOutputDrain    PinMode = 5
	PinAnalogInput      PinMode = 6
	PinAnalogOutput     PinMode = 7
	PinModeNone         PinMode = 255
)

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations forward to HAL_Pin_Mode/HAL_GPIO_*.
type GPIODriver interface {
	// SetMode configures the pin (pinMode)
	SetMode(pin GPIOPin, mode PinMode)

	// Write drives the pin high or low (digitalWrite)
	Write(pin GPIOPin, value bool)

	// Read returns the raw pin level (digitalRead)
	Read(pin GPIOPin) int32
}

// Global singleton used by core code.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}
