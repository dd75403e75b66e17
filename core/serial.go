// USB serial console
// io.Reader/io.Writer view of the USB CDC port, usable wherever TinyGo
// drivers expect a UART
package core

import (
	"tinygo.org/x/drivers"
)

// DefaultBaud is the rate used by Serial.begin in most Particle examples
const DefaultBaud = 9600

// USBSerial wraps a USBSerialDriver
type USBSerial struct {
	driver USBSerialDriver
}

var _ drivers.UART = (*USBSerial)(nil)

// NewUSBSerial creates a serial console on top of d
func NewUSBSerial(d USBSerialDriver) *USBSerial {
	return &USBSerial{driver: d}
}

// Begin opens the port at the given baud rate
func (s *USBSerial) Begin(baud uint32) {
	s.driver.Init(baud)
}

// Write sends every byte of p to the host
func (s *USBSerial) Write(p []byte) (int, error) {
	for _, b := range p {
		s.driver.SendByte(b)
	}
	return len(p), nil
}

// WriteByte sends a single byte
func (s *USBSerial) WriteByte(b byte) error {
	s.driver.SendByte(b)
	return nil
}

// WriteString sends str without converting it to a byte slice
func (s *USBSerial) WriteString(str string) (int, error) {
	for i := 0; i < len(str); i++ {
		s.driver.SendByte(str[i])
	}
	return len(str), nil
}

// Println sends str followed by CRLF
func (s *USBSerial) Println(str string) {
	s.WriteString(str)
	s.WriteString("\r\n")
}

// Read copies already received bytes into p without blocking.
// Returns 0, nil when nothing is waiting.
func (s *USBSerial) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) && s.driver.Available() > 0 {
		c := s.driver.ReceiveByte(false)
		if c < 0 {
			break
		}
		p[n] = byte(c)
		n++
	}
	return n, nil
}

// Peek returns the next byte without consuming it
func (s *USBSerial) Peek() (byte, bool) {
	c := s.driver.ReceiveByte(true)
	if c < 0 {
		return 0, false
	}
	return byte(c), true
}

// Buffered returns the number of bytes waiting to be read
func (s *USBSerial) Buffered() int {
	return s.driver.Available()
}

// Baud returns the host's line coding
func (s *USBSerial) Baud() uint32 {
	return s.driver.BaudRate()
}

// DebugWriter returns a writer suitable for SetDebugWriter
func (s *USBSerial) DebugWriter() DebugWriter {
	return s.Println
}
