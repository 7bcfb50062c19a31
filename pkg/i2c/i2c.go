// Package i2c provides the block-level I2C transport the sensor drivers
// talk through. A driver acquires one Transport per measurement cycle and
// releases it before returning, so trigger and read always travel on the
// same bus handle.
package i2c

// Transport is a scoped handle on an open I2C bus.
type Transport interface {
	// WriteBlock writes data to register reg of the device at addr.
	WriteBlock(addr, reg uint8, data []byte) error
	// ReadBlock fills buf from register reg of the device at addr.
	ReadBlock(addr, reg uint8, buf []byte) error
	// Close releases the bus handle.
	Close() error
}

// Factory yields a scoped Transport for the given bus number.
// Drivers default to Open; tests substitute a scripted transport.
type Factory func(bus int) (Transport, error)
