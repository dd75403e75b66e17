// GPIO (General Purpose Input/Output) support
// Wiring-style pin helpers on top of the GPIO driver
package core

// Logic levels returned by DigitalRead
const (
	Low  = 0
	High = 1
)

// Pin is a convenience handle for a single GPIO pin
type Pin struct {
	ID GPIOPin
}

// NewPin returns a handle for the given pin number
func NewPin(id GPIOPin) Pin {
	return Pin{ID: id}
}

// Configure sets the pin mode
func (p Pin) Configure(mode PinMode) {
	MustGPIO().SetMode(p.ID, mode)
}

// Set drives the pin to the given level
func (p Pin) Set(high bool) {
	MustGPIO().Write(p.ID, high)
}

// High drives the pin high
func (p Pin) High() {
	p.Set(true)
}

// Low drives the pin low
func (p Pin) Low() {
	p.Set(false)
}

// Get reads the pin; any non-zero level is high
func (p Pin) Get() bool {
	return MustGPIO().Read(p.ID) != Low
}

// PinModeSet configures pin (pinMode)
func PinModeSet(pin GPIOPin, mode PinMode) {
	MustGPIO().SetMode(pin, mode)
}

// DigitalWrite drives pin high or low (digitalWrite)
func DigitalWrite(pin GPIOPin, high bool) {
	MustGPIO().Write(pin, high)
}

// DigitalRead returns the pin level (digitalRead)
func DigitalRead(pin GPIOPin) int32 {
	return MustGPIO().Read(pin)
}
