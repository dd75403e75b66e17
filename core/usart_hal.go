package core

// USBSerialDriver is the USB CDC serial port of the system firmware (old
// USB_USART_* API)
type USBSerialDriver interface {
	// Init starts the port (Serial.begin)
	Init(baud uint32)

	// SendByte queues a single byte for the host
	SendByte(b byte)

	// Available returns the number of received bytes waiting
	Available() int

	// ReceiveByte pops (or peeks) one byte; -1 when nothing is waiting
	ReceiveByte(peek bool) int32

	// BaudRate returns the line coding requested by the host
	BaudRate() uint32
}

// Global singleton used by core code.
var usbSerialDriver USBSerialDriver

// SetUSBSerialDriver is called by target-specific code to register its driver.
func SetUSBSerialDriver(d USBSerialDriver) {
	usbSerialDriver = d
}

// MustUSBSerial returns the configured driver or panics if missing.
func MustUSBSerial() USBSerialDriver {
	if usbSerialDriver == nil {
		panic("USB serial driver not configured")
	}
	return usbSerialDriver
}
