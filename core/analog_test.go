package core

import "testing"

type mockADCDriver struct {
	samples    map[GPIOPin]int32
	sampleTime uint8
}

func (m *mockADCDriver) SetSampleTime(t uint8)  { m.sampleTime = t }
func (m *mockADCDriver) Read(pin GPIOPin) int32 { return m.samples[pin] }

type mockPWMDriver struct {
	duty map[GPIOPin]PWMValue
	freq map[GPIOPin]uint16
}

func newMockPWMDriver() *mockPWMDriver {
	return &mockPWMDriver{duty: make(map[GPIOPin]PWMValue), freq: make(map[GPIOPin]uint16)}
}

func (m *mockPWMDriver) Write(pin GPIOPin, value PWMValue) {
	m.duty[pin] = value
	m.freq[pin] = 500
}

func (m *mockPWMDriver) WriteWithFrequency(pin GPIOPin, value PWMValue, freq uint16) {
	m.duty[pin] = value
	m.freq[pin] = freq
}

func (m *mockPWMDriver) Frequency(pin GPIOPin) uint16 { return m.freq[pin] }
func (m *mockPWMDriver) Value(pin GPIOPin) uint16     { return uint16(m.duty[pin]) }

func withAnalogDrivers(t *testing.T) (*MockGPIODriver, *mockADCDriver, *mockPWMDriver) {
	t.Helper()
	oldGPIO, oldADC, oldPWM := gpioDriver, adcDriver, pwmDriver
	t.Cleanup(func() {
		gpioDriver, adcDriver, pwmDriver = oldGPIO, oldADC, oldPWM
	})

	gpio := NewMockGPIODriver()
	adc := &mockADCDriver{samples: make(map[GPIOPin]int32)}
	pwm := newMockPWMDriver()
	SetGPIODriver(gpio)
	SetADCDriver(adc)
	SetPWMDriver(pwm)
	return gpio, adc, pwm
}

func TestAnalogRead(t *testing.T) {
	gpio, adc, _ := withAnalogDrivers(t)
	adc.samples[10] = 2048
	adc.samples[11] = 5000
	adc.samples[12] = -1

	v, err := AnalogRead(10)
	if err != nil {
		t.Fatal(err)
	}
	if v != 2048 {
		t.Errorf("AnalogRead = %d, want 2048", v)
	}
	if gpio.modes[10] != PinAnalogInput {
		t.Errorf("Pin mode = %d, want analog input", gpio.modes[10])
	}

	if v, _ := AnalogRead(11); v != ADCMax {
		t.Errorf("Out-of-range sample not clamped: %d", v)
	}
	if _, err := AnalogRead(12); err != ErrADCRead {
		t.Errorf("Negative sample = %v, want ErrADCRead", err)
	}
}

func TestAnalogWrite(t *testing.T) {
	gpio, _, pwm := withAnalogDrivers(t)

	AnalogWrite(0, 128)
	if pwm.duty[0] != 128 || pwm.Frequency(0) != 500 {
		t.Errorf("PWM duty=%d freq=%d", pwm.duty[0], pwm.Frequency(0))
	}

	AnalogWrite(1, 0)
	if _, used := pwm.duty[1]; used || gpio.pins[1] {
		t.Error("Zero duty should drive the pin low without PWM")
	}

	AnalogWrite(2, PWMMax)
	if _, used := pwm.duty[2]; used || !gpio.pins[2] {
		t.Error("Full duty should drive the pin high without PWM")
	}

	AnalogWriteFrequency(3, 64, 1000)
	if pwm.Value(3) != 64 || pwm.Frequency(3) != 1000 {
		t.Errorf("PWM with frequency: duty=%d freq=%d", pwm.Value(3), pwm.Frequency(3))
	}
}

func TestMillivolts(t *testing.T) {
	if ADCMax.Millivolts() != 3300 {
		t.Errorf("Full scale = %d mV", ADCMax.Millivolts())
	}
	if ADCValue(0).Millivolts() != 0 {
		t.Error("Zero sample should be 0 mV")
	}
}
