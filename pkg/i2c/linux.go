//go:build linux

package i2c

import (
	"github.com/go-daq/smbus"
)

type smbusTransport struct {
	conn *smbus.Conn
}

// Open returns a Transport backed by the kernel i2c-dev interface
// (/dev/i2c-<bus>).
func Open(bus int) (Transport, error) {
	conn, err := smbus.Open(bus, 0)
	if err != nil {
		return nil, err
	}
	return &smbusTransport{conn: conn}, nil
}

// WriteBlock writes data to register reg of the device at addr.
// Sensor commands here are a register byte plus a single argument byte;
// an SMBus block write would insert a count byte the sensors do not expect,
// so single-byte payloads go out as a plain register write.
func (t *smbusTransport) WriteBlock(addr, reg uint8, data []byte) error {
	if len(data) == 1 {
		return t.conn.WriteReg(addr, reg, data[0])
	}
	return t.conn.WriteBlockData(addr, reg, data)
}

func (t *smbusTransport) ReadBlock(addr, reg uint8, buf []byte) error {
	return t.conn.ReadBlockData(addr, reg, buf)
}

func (t *smbusTransport) Close() error {
	return t.conn.Close()
}
