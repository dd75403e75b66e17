package protocol

import "errors"

const (
	MaxNameLength  = 12                // Longest cloud function/variable name
	NameBufferSize = MaxNameLength + 1 // Payload plus NUL terminator
)

// ErrNameTooLong is returned when a cloud name exceeds MaxNameLength bytes
var ErrNameTooLong = errors.New("cloud name longer than 12 bytes")

// NameBuffer is the fixed C string handed to spark_function/spark_variable.
// Unused trailing bytes are always zero, so the buffer is NUL terminated
// for every accepted name.
type NameBuffer [NameBufferSize]byte

// EncodeName validates name and copies it into a zero-padded NameBuffer.
// Names are never truncated.
func EncodeName(name string) (NameBuffer, error) {
	var buf NameBuffer
	if len(name) > MaxNameLength {
		return buf, ErrNameTooLong
	}
	copy(buf[:], name)
	return buf, nil
}

// Len returns the number of bytes before the terminator
func (b *NameBuffer) Len() int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return len(b)
}

// String decodes the buffer up to the first NUL
func (b *NameBuffer) String() string {
	return string(b[:b.Len()])
}
