package core

// ADCValue is a raw 12-bit sample (0..ADCMax)
type ADCValue uint16

// ADCMax is the largest value the Photon ADC returns
const ADCMax ADCValue = 4095

// ADCDriver is the abstract ADC interface that core code uses.
type ADCDriver interface {
	// SetSampleTime selects the ADC sample time register value
	SetSampleTime(t uint8)

	// Read performs a one-shot conversion on an analog-capable pin.
	// The pin must already be in PinAnalogInput mode.
	Read(pin GPIOPin) int32
}

// Global singleton used by core code.
var adcDriver ADCDriver

// SetADCDriver is called by target-specific code to register its driver.
func SetADCDriver(d ADCDriver) {
	adcDriver = d
}

// MustADC returns the configured driver or panics if missing.
func MustADC() ADCDriver {
	if adcDriver == nil {
		panic("ADC driver not configured")
	}
	return adcDriver
}
