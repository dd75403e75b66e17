package core

// Delay waits ms milliseconds while the system thread keeps the cloud
// connection alive (delay)
func Delay(ms uint32) {
	MustTimer().SystemDelay(ms, false)
}

// DelayNoBackground waits ms milliseconds without servicing the system thread
func DelayNoBackground(ms uint32) {
	MustTimer().DelayMilliseconds(ms)
}

// DelayMicroseconds busy-waits for us microseconds (delayMicroseconds)
func DelayMicroseconds(us uint32) {
	MustTimer().DelayMicroseconds(us)
}

// Micros returns microseconds since boot; wraps after ~71 minutes (micros)
func Micros() SystemTick {
	return MustTimer().Micros()
}

// Millis returns milliseconds since boot (millis)
func Millis() SystemTick {
	return MustTimer().Millis()
}

// Elapsed returns the ticks between start and now, correct across one wrap
func Elapsed(start, now SystemTick) SystemTick {
	return now - start
}
