//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"
)

// RP2040 timer peripheral memory map. The hardware timer is a 64-bit
// microsecond counter running at 1MHz.
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x08 // raw timer high word
	timerTIMERAWL = timerBase + 0x0C // raw timer low word
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// uptimeMicros reads the full 64-bit hardware timer.
// Must read high first, then low, then high again to detect rollover.
func uptimeMicros() uint64 {
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()

		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
		// Retry, rollover happened during the read.
	}
}

// millis returns the monotonic millisecond clock the animation core runs
// on.
func millis() int64 {
	return int64(uptimeMicros() / 1000)
}
