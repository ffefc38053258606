package dummyserial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.bug.st/serial"
)

func TestSerialPort(t *testing.T) {
	p, err := Open(&Config{Lookup: Responses{"*IDN?\n": "DUMMY,1.0\n"}.Lookup})
	assert.NoError(t, err)
	var port serial.Port = p

	assert.NoError(t, port.SetMode(&serial.Mode{BaudRate: 115200}))
	port.Write([]byte("*IDN?\n"))
	buf := make([]byte, 64)
	n, err := port.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, "DUMMY,1.0\n", string(buf[:n]))

	assert.NoError(t, port.Drain())
	assert.NoError(t, port.ResetInputBuffer())
	assert.NoError(t, port.ResetOutputBuffer())
	assert.NoError(t, port.Close())
}

func TestSetMode(t *testing.T) {
	port, _ := Open(&Config{Baud: 9600})
	assert.NoError(t, port.SetMode(&serial.Mode{BaudRate: 57600, DataBits: 8}))
	assert.Equal(t, 57600, port.Baud())
	assert.Equal(t, 8, port.Mode().DataBits)
	// zero baud leaves the rate alone
	assert.NoError(t, port.SetMode(&serial.Mode{}))
	assert.Equal(t, 57600, port.Baud())
}

func TestModemStatusBits(t *testing.T) {
	assert := assert.New(t)
	port, _ := Open(nil)
	bits, err := port.GetModemStatusBits()
	assert.NoError(err)
	assert.True(bits.CTS)
	assert.True(bits.DSR)
	assert.False(bits.RI)
	assert.False(bits.DCD)

	port.SetRTS(false)
	port.SetDTR(false)
	bits, _ = port.GetModemStatusBits()
	assert.False(bits.CTS)
	assert.False(bits.DSR)
}

func TestSettingsWhileClosed(t *testing.T) {
	port := NewPort(nil)
	assert.NoError(t, port.SetMode(&serial.Mode{BaudRate: 4800}))
	assert.NoError(t, port.SetReadTimeout(time.Second))
	assert.NoError(t, port.SetDTR(true))
	assert.NoError(t, port.Break(time.Millisecond))
}
