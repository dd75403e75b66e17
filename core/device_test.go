package core

import "testing"

type mockDeviceDriver struct {
	id []byte
}

func (m *mockDeviceDriver) DeviceID(dst []byte) int {
	copy(dst, m.id)
	return len(m.id)
}

func TestDeviceID(t *testing.T) {
	old := deviceDriver
	defer func() { deviceDriver = old }()

	SetDeviceDriver(&mockDeviceDriver{id: []byte{
		0x3a, 0x00, 0x1f, 0x00, 0x0d, 0x47, 0x34, 0x32, 0x30, 0x37, 0x35, 0xff,
	}})

	if got := DeviceID(); got != "3a001f000d473432303735ff" {
		t.Errorf("DeviceID() = %q", got)
	}
}

func TestItoa(t *testing.T) {
	testCases := []struct {
		n        int
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{-15, "-15"},
		{1000000, "1000000"},
	}

	for _, tc := range testCases {
		if got := itoa(tc.n); got != tc.expected {
			t.Errorf("itoa(%d) = %q, want %q", tc.n, got, tc.expected)
		}
	}
}
