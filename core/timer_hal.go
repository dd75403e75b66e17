package core

// SystemTick is the firmware's system_tick_t
type SystemTick uint32

// TimerDriver covers the firmware's delay and clock entry points
type TimerDriver interface {
	// Micros returns HAL_Timer_Get_Micro_Seconds
	Micros() SystemTick

	// Millis returns HAL_Timer_Get_Milli_Seconds
	Millis() SystemTick

	// DelayMilliseconds blocks without running the system thread
	DelayMilliseconds(ms uint32)

	// DelayMicroseconds busy-waits for us microseconds
	DelayMicroseconds(us uint32)

	// SystemDelay is system_delay_ms. Unless forceNoBackground is set the
	// firmware keeps servicing the cloud connection while it waits.
	SystemDelay(ms uint32, forceNoBackground bool)
}

// Global singleton used by core code.
var timerDriver TimerDriver

// SetTimerDriver is called by target-specific code to register its driver.
func SetTimerDriver(d TimerDriver) {
	timerDriver = d
}

// MustTimer returns the configured driver or panics if missing.
func MustTimer() TimerDriver {
	if timerDriver == nil {
		panic("timer driver not configured")
	}
	return timerDriver
}
