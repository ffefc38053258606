package dummyserial

import (
	"io"

	"github.com/tarm/serial"
)

// A Port stands in wherever a tarm/serial port is held as an
// io.ReadWriteCloser.
var _ io.ReadWriteCloser = (*Port)(nil)

// OpenPort opens a dummy port from a tarm/serial Config. It mirrors
// serial.OpenPort, so code opening its port through a swappable function can
// be pointed at the dummy:
//
//	OpenPort = func(c *serial.Config) (io.ReadWriteCloser, error) {
//		return dummyserial.OpenPort(c)
//	}
func OpenPort(c *serial.Config) (*Port, error) {
	return Open(&Config{Name: c.Name, Baud: c.Baud, ReadTimeout: c.ReadTimeout})
}
