//go:build tinygo && photon

package main

/*
#include "hal.h"
*/
import "C"

import (
	"unsafe"

	"sparkhal/core"
	"sparkhal/protocol"
)

// PhotonCloudDriver implements core.CloudDriver with spark_function and
// spark_variable
type PhotonCloudDriver struct {
	// Callbacks by trampoline slot
	functions [core.MaxFunctions]core.CloudFunction
	slotNames [core.MaxFunctions]protocol.NameBuffer
	nextSlot  int

	// Every name and variable address handed to the firmware stays
	// reachable from here for the life of the program
	names     []*protocol.NameBuffer
	variables []unsafe.Pointer
}

var photonCloud = &PhotonCloudDriver{}

// NewPhotonCloudDriver returns the process-wide cloud driver
func NewPhotonCloudDriver() *PhotonCloudDriver {
	return photonCloud
}

func (d *PhotonCloudDriver) keepName(name *protocol.NameBuffer) *C.char {
	kept := new(protocol.NameBuffer)
	*kept = *name
	d.names = append(d.names, kept)
	return (*C.char)(unsafe.Pointer(&kept[0]))
}

// slotFor returns the slot already bound to name, or the next free one.
// The bool is false when name is new.
func (d *PhotonCloudDriver) slotFor(name *protocol.NameBuffer) (int, bool) {
	for i := 0; i < d.nextSlot; i++ {
		if d.slotNames[i] == *name {
			return i, true
		}
	}
	return d.nextSlot, false
}

// FunctionRegister binds fn to a trampoline and registers it. A name that
// was registered before keeps its slot.
func (d *PhotonCloudDriver) FunctionRegister(name *protocol.NameBuffer, fn core.CloudFunction) bool {
	slot, existing := d.slotFor(name)
	if slot >= len(d.functions) {
		// Out of trampolines; reported like any firmware refusal
		return false
	}
	tramp := C.sparkhal_trampoline(C.uint8_t(slot))
	if tramp == nil {
		return false
	}

	prev := d.functions[slot]
	d.functions[slot] = fn
	if !bool(C.spark_function(d.keepName(name), tramp, nil)) {
		d.functions[slot] = prev
		return false
	}
	if !existing {
		d.slotNames[slot] = *name
		d.nextSlot++
	}
	return true
}

// VariableRegister passes the address straight through to spark_variable
func (d *PhotonCloudDriver) VariableRegister(name *protocol.NameBuffer, addr unsafe.Pointer, typ protocol.DataType) bool {
	d.variables = append(d.variables, addr)
	return bool(C.spark_variable(d.keepName(name), addr, C.uint8_t(typ), nil))
}

//export sparkhal_cloud_dispatch
func cloudDispatch(slot C.uint8_t, arg *C.particle_string) C.int {
	if int(slot) >= len(photonCloud.functions) {
		return -1
	}
	fn := photonCloud.functions[slot]
	if fn == nil {
		return -1
	}
	return C.int(fn(goString(arg)))
}

// goString copies a firmware String into Go memory
func goString(s *C.particle_string) string {
	if s == nil || s.buffer == nil || s.len == 0 {
		return ""
	}
	return C.GoStringN(s.buffer, C.int(s.len))
}
