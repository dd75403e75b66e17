//go:build tinygo && photon

package main

import (
	"net"
	"strconv"

	"sparkhal/core"

	"tinygo.org/x/drivers/netdev"
)

var (
	// Cloud variables; both live for the whole program
	loopCount  = core.NewCell(0)
	lightLevel = core.NewCell(0)
	bootMicros int32

	usb *core.USBSerial
)

func main() {
	// Install drivers before anything touches the core helpers
	core.SetGPIODriver(NewPhotonGPIODriver())
	core.SetTimerDriver(NewPhotonTimerDriver())
	core.SetDeviceDriver(&PhotonDeviceDriver{})
	core.SetADCDriver(&PhotonADCDriver{})
	core.SetPWMDriver(&PhotonPWMDriver{})
	core.SetUSBSerialDriver(NewPhotonUSBSerialDriver())
	core.SetCloudDriver(NewPhotonCloudDriver())

	sockets := NewPhotonSocketDriver()
	core.SetSocketDriver(sockets)
	netdev.UseNetdev(core.NewNetdev(sockets))

	// USB console doubles as the debug log
	usb = core.NewUSBSerial(core.MustUSBSerial())
	usb.Begin(core.DefaultBaud)
	core.SetDebugWriter(usb.DebugWriter())
	core.SetDebugEnabled(true)

	bootMicros = int32(core.Micros())
	core.DebugPrintln("sparkhal device " + core.DeviceID())

	led := core.NewPin(LED)
	led.Configure(core.PinOutput)

	register("led", func() error { return core.RegisterFunction("led", ledCommand) })
	register("report", func() error { return core.RegisterFunction("report", reportCommand) })
	register("dim", func() error { return core.RegisterFunction("dim", dimCommand) })
	register("count", func() error { return core.RegisterVariable("count", loopCount) })
	register("light", func() error { return core.RegisterVariable("light", lightLevel) })
	register("bootMicros", func() error { return core.RegisterVariable("bootMicros", core.Static(&bootMicros)) })

	for {
		loopCount.Add(1)
		if v, err := core.AnalogRead(A0); err == nil {
			lightLevel.Set(int32(v))
		}
		core.Delay(1000)
	}
}

// register logs the outcome of a cloud registration
func register(name string, fn func() error) {
	if err := fn(); err != nil {
		core.DebugPrintln("cloud " + name + ": " + err.Error())
		return
	}
	core.DebugPrintln("cloud " + name + ": ok")
}

// ledCommand switches the user LED: "on", "off" or "toggle"
func ledCommand(arg string) int32 {
	led := core.NewPin(LED)
	switch arg {
	case "on":
		led.High()
	case "off":
		led.Low()
	case "toggle":
		led.Set(!led.Get())
	default:
		return -1
	}
	if led.Get() {
		return 1
	}
	return 0
}

// dimCommand sets PWM duty 0-255 on D0
func dimCommand(arg string) int32 {
	duty, err := strconv.Atoi(arg)
	if err != nil || duty < 0 || duty > int(core.PWMMax) {
		return -1
	}
	core.AnalogWrite(D0, core.PWMValue(duty))
	return int32(duty)
}

// reportCommand dials arg ("a.b.c.d:port") and sends a status line.
// Returns the number of bytes written or -1.
func reportCommand(arg string) int32 {
	conn, err := net.Dial("tcp", arg)
	if err != nil {
		core.DebugPrintln("report: " + err.Error())
		return -1
	}
	defer conn.Close()

	line := core.DeviceID() + " count=" + strconv.Itoa(int(loopCount.Get())) +
		" light=" + strconv.Itoa(int(lightLevel.Get())) + "\n"
	n, err := conn.Write([]byte(line))
	if err != nil {
		return -1
	}
	return int32(n)
}
