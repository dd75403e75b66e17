package core

// DeviceIDLength is the size of the STM32 unique ID used as the device ID
const DeviceIDLength = 12

// DeviceDriver reads the device's unique identifier
type DeviceDriver interface {
	// DeviceID copies the raw ID into dst and returns the full ID length
	DeviceID(dst []byte) int
}

// Global singleton used by core code.
var deviceDriver DeviceDriver

// SetDeviceDriver is called by target-specific code to register its driver.
func SetDeviceDriver(d DeviceDriver) {
	deviceDriver = d
}

// MustDevice returns the configured driver or panics if missing.
func MustDevice() DeviceDriver {
	if deviceDriver == nil {
		panic("device driver not configured")
	}
	return deviceDriver
}

// DeviceID returns the device ID as lowercase hex (deviceID)
func DeviceID() string {
	var raw [DeviceIDLength]byte
	n := MustDevice().DeviceID(raw[:])
	if n > len(raw) {
		n = len(raw)
	}
	return hexString(raw[:n])
}
