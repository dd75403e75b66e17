// Cloud functions and variables
// Exposes application callbacks and int32 values to the Particle cloud
package core

import (
	"errors"
	"unsafe"

	"sparkhal/protocol"
)

// Limits documented by the system firmware. They are enforced by the
// firmware only; exceeding them surfaces as ErrRegistrationFailed.
const (
	MaxFunctions = 15
	MaxVariables = 20
)

// ErrRegistrationFailed is returned when the firmware refuses a registration
// (capacity reached, duplicate name, or any other internal reason).
var ErrRegistrationFailed = errors.New("cloud registration failed")

// Cloud registers functions and variables through a CloudDriver
type Cloud struct {
	driver CloudDriver
}

// NewCloud creates a Cloud bound to the given driver
func NewCloud(d CloudDriver) *Cloud {
	return &Cloud{driver: d}
}

// RegisterFunction exposes fn as a cloud function called name.
//
// fn must be a top-level function: the firmware may invoke it at any time
// for the rest of the program, long after this call returns.
func (c *Cloud) RegisterFunction(name string, fn CloudFunction) error {
	buf, err := protocol.EncodeName(name)
	if err != nil {
		return err
	}
	if fn == nil {
		return ErrRegistrationFailed
	}

	if !c.driver.FunctionRegister(&buf, fn) {
		return ErrRegistrationFailed
	}
	return nil
}

// RegisterVariable exposes the int32 behind v as a cloud variable called name.
//
// Only the address is shared. The backing int32 must live for the rest of
// the program; updates made through a Cell are seen by the firmware the next
// time it polls.
func (c *Cloud) RegisterVariable(name string, v IntRef) error {
	buf, err := protocol.EncodeName(name)
	if err != nil {
		return err
	}
	if v == nil {
		return ErrRegistrationFailed
	}
	ptr := v.intPtr()
	if ptr == nil {
		return ErrRegistrationFailed
	}

	if !c.driver.VariableRegister(&buf, unsafe.Pointer(ptr), protocol.DataTypeInt) {
		return ErrRegistrationFailed
	}
	return nil
}

// RegisterFunction registers a cloud function with the global driver.
// This is similar to Particle.function in Wiring.
func RegisterFunction(name string, fn CloudFunction) error {
	return NewCloud(MustCloud()).RegisterFunction(name, fn)
}

// RegisterVariable registers a cloud variable with the global driver.
// This is similar to Particle.variable in Wiring.
func RegisterVariable(name string, v IntRef) error {
	return NewCloud(MustCloud()).RegisterVariable(name, v)
}
