// Package serial abstracts the host-side serial link used to stream
// frames to an LED bridge.
package serial

import "io"

// Port represents a serial port. The abstraction keeps the frame
// streaming code independent of the concrete implementation so tests can
// substitute an in-memory port.
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data.
	Flush() error
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g. "/dev/ttyACM0", "COM3").
	Device string

	// Baud rate. USB CDC bridges ignore this.
	Baud int

	// Read timeout in milliseconds (0 = blocking).
	ReadTimeout int
}

// DefaultConfig returns the configuration for the stock LED bridge.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}
