package core

import (
	"testing"
	"unsafe"

	"sparkhal/protocol"
)

// mockCloudDriver records every registration it receives
type mockCloudDriver struct {
	result bool

	functionCalls int
	variableCalls int

	lastName protocol.NameBuffer
	lastFn   CloudFunction
	lastAddr unsafe.Pointer
	lastType protocol.DataType
}

func (m *mockCloudDriver) FunctionRegister(name *protocol.NameBuffer, fn CloudFunction) bool {
	m.functionCalls++
	m.lastName = *name
	m.lastFn = fn
	return m.result
}

func (m *mockCloudDriver) VariableRegister(name *protocol.NameBuffer, addr unsafe.Pointer, typ protocol.DataType) bool {
	m.variableCalls++
	m.lastName = *name
	m.lastAddr = addr
	m.lastType = typ
	return m.result
}

func tempF(arg string) int32 {
	return int32(len(arg))
}

var count int32 = 42

func TestRegisterFunction(t *testing.T) {
	mock := &mockCloudDriver{result: true}
	cloud := NewCloud(mock)

	if err := cloud.RegisterFunction("tempF", tempF); err != nil {
		t.Fatalf("RegisterFunction failed: %v", err)
	}

	if mock.functionCalls != 1 {
		t.Errorf("Expected 1 driver call, got %d", mock.functionCalls)
	}

	expected := protocol.NameBuffer{'t', 'e', 'm', 'p', 'F', 0, 0, 0, 0, 0, 0, 0, 0}
	if mock.lastName != expected {
		t.Errorf("Driver saw name %v, want %v", mock.lastName, expected)
	}

	if mock.lastFn == nil || mock.lastFn("abc") != 3 {
		t.Error("Driver did not receive the registered callback")
	}
}

func TestRegisterFunctionFailure(t *testing.T) {
	mock := &mockCloudDriver{result: false}
	cloud := NewCloud(mock)

	err := cloud.RegisterFunction("tempF", tempF)
	if err != ErrRegistrationFailed {
		t.Errorf("Expected ErrRegistrationFailed, got %v", err)
	}
	if mock.functionCalls != 1 {
		t.Errorf("Expected exactly 1 driver call, got %d", mock.functionCalls)
	}
}

func TestRegisterFunctionNameTooLong(t *testing.T) {
	mock := &mockCloudDriver{result: true}
	cloud := NewCloud(mock)

	err := cloud.RegisterFunction("this_name_too_long", tempF)
	if err != protocol.ErrNameTooLong {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}
	if mock.functionCalls != 0 {
		t.Errorf("Driver should not be called, got %d calls", mock.functionCalls)
	}
}

func TestRegisterFunctionNil(t *testing.T) {
	mock := &mockCloudDriver{result: true}

	if err := NewCloud(mock).RegisterFunction("nilfn", nil); err != ErrRegistrationFailed {
		t.Errorf("Expected ErrRegistrationFailed, got %v", err)
	}
	if mock.functionCalls != 0 {
		t.Errorf("Driver should not be called, got %d calls", mock.functionCalls)
	}
}

func TestRegisterVariableStatic(t *testing.T) {
	mock := &mockCloudDriver{result: false}
	cloud := NewCloud(mock)

	err := cloud.RegisterVariable("count", Static(&count))
	if err != ErrRegistrationFailed {
		t.Errorf("Expected ErrRegistrationFailed, got %v", err)
	}

	if mock.variableCalls != 1 {
		t.Fatalf("Expected 1 driver call, got %d", mock.variableCalls)
	}
	if mock.lastType != protocol.DataTypeInt || uint8(mock.lastType) != 2 {
		t.Errorf("Expected type tag 2, got %d", mock.lastType)
	}
	if mock.lastAddr != unsafe.Pointer(&count) {
		t.Errorf("Driver saw address %p, want %p", mock.lastAddr, &count)
	}
	if *(*int32)(mock.lastAddr) != 42 {
		t.Errorf("Value at registered address = %d, want 42", *(*int32)(mock.lastAddr))
	}
	if mock.lastName.String() != "count" {
		t.Errorf("Driver saw name %q", mock.lastName.String())
	}
}

func TestRegisterVariableCell(t *testing.T) {
	mock := &mockCloudDriver{result: true}
	cloud := NewCloud(mock)

	cell := NewCell(7)
	if err := cloud.RegisterVariable("level", cell); err != nil {
		t.Fatalf("RegisterVariable failed: %v", err)
	}

	// Updates through the cell must be visible at the registered address
	cell.Set(99)
	if got := *(*int32)(mock.lastAddr); got != 99 {
		t.Errorf("Registered address reads %d after Set(99)", got)
	}

	cell.Add(1)
	if got := *(*int32)(mock.lastAddr); got != 100 {
		t.Errorf("Registered address reads %d after Add(1)", got)
	}
}

func TestRegisterVariableNameTooLong(t *testing.T) {
	mock := &mockCloudDriver{result: true}
	cloud := NewCloud(mock)

	if err := cloud.RegisterVariable("variable_name_", Static(&count)); err != protocol.ErrNameTooLong {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}
	if mock.variableCalls != 0 {
		t.Errorf("Driver should not be called, got %d calls", mock.variableCalls)
	}
}

func TestRegisterVariableNilRef(t *testing.T) {
	mock := &mockCloudDriver{result: true}
	cloud := NewCloud(mock)

	var cell *Cell
	if err := cloud.RegisterVariable("nilcell", cell); err != ErrRegistrationFailed {
		t.Errorf("Expected ErrRegistrationFailed, got %v", err)
	}
	if err := cloud.RegisterVariable("nilstatic", Static(nil)); err != ErrRegistrationFailed {
		t.Errorf("Expected ErrRegistrationFailed, got %v", err)
	}
	if mock.variableCalls != 0 {
		t.Errorf("Driver should not be called, got %d calls", mock.variableCalls)
	}
}

func TestNoLocalCapacityLimit(t *testing.T) {
	mock := &mockCloudDriver{result: true}
	cloud := NewCloud(mock)

	// The firmware owns the limit; the bridge forwards every request
	for i := 0; i < MaxFunctions+5; i++ {
		if err := cloud.RegisterFunction("fn"+itoa(i), tempF); err != nil {
			t.Fatalf("Registration %d failed: %v", i, err)
		}
	}
	if mock.functionCalls != MaxFunctions+5 {
		t.Errorf("Expected %d driver calls, got %d", MaxFunctions+5, mock.functionCalls)
	}
}

func TestGlobalCloudDriver(t *testing.T) {
	old := cloudDriver
	defer func() { cloudDriver = old }()

	mock := &mockCloudDriver{result: true}
	SetCloudDriver(mock)

	if err := RegisterFunction("tempF", tempF); err != nil {
		t.Errorf("RegisterFunction failed: %v", err)
	}
	if err := RegisterVariable("count", Static(&count)); err != nil {
		t.Errorf("RegisterVariable failed: %v", err)
	}
	if mock.functionCalls != 1 || mock.variableCalls != 1 {
		t.Errorf("Unexpected call counts: %d functions, %d variables", mock.functionCalls, mock.variableCalls)
	}

	cloudDriver = nil
	defer func() {
		if recover() == nil {
			t.Error("MustCloud should panic without a driver")
		}
	}()
	MustCloud()
}
