package core

import (
	"unsafe"

	"sparkhal/protocol"
)

// CloudFunction is a cloud-callable function.
// The argument is the request string; the return value is reported back to
// the caller of the cloud function.
type CloudFunction func(arg string) int32

// CloudDriver is the cloud registration half of the system firmware table.
// Platform-specific implementations forward to spark_function/spark_variable.
type CloudDriver interface {
	// FunctionRegister exposes fn under name. Returns the firmware's result.
	FunctionRegister(name *protocol.NameBuffer, fn CloudFunction) bool

	// VariableRegister exposes the value at addr under name.
	// The firmware reads addr whenever the cloud polls the variable.
	VariableRegister(name *protocol.NameBuffer, addr unsafe.Pointer, typ protocol.DataType) bool
}

// Global singleton used by core code.
var cloudDriver CloudDriver

// SetCloudDriver is called by target-specific code to register its driver.
func SetCloudDriver(d CloudDriver) {
	cloudDriver = d
}

// MustCloud returns the configured driver or panics if missing.
func MustCloud() CloudDriver {
	if cloudDriver == nil {
		panic("cloud driver not configured")
	}
	return cloudDriver
}
