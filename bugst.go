package dummyserial

import (
	"time"

	"go.bug.st/serial"
)

// The dummy implements go.bug.st/serial's Port interface, so interface-typed
// clients take it unchanged. Mode and line settings are stored, never
// enforced, and may be changed in any state - only the data path demands an
// open port.
var _ serial.Port = (*Port)(nil)

// SetMode stores the mode, adopting its baud rate.
func (self *Port) SetMode(mode *serial.Mode) error {
	self.mode = *mode
	if mode.BaudRate != 0 {
		self.baud = mode.BaudRate
	}
	return nil
}

// Mode returns the last mode set.
func (self *Port) Mode() serial.Mode {
	return self.mode
}

// SetReadTimeout stores the timeout. Reads return immediately regardless.
func (self *Port) SetReadTimeout(t time.Duration) error {
	self.readTimeout = t
	return nil
}

// Drain returns immediately, writes land in the pending request as a whole.
func (self *Port) Drain() error {
	return nil
}

// Break does nothing.
func (self *Port) Break(d time.Duration) error {
	return nil
}

// SetDTR stores the DTR line state.
func (self *Port) SetDTR(dtr bool) error {
	self.dtr = dtr
	return nil
}

// SetRTS stores the RTS line state.
func (self *Port) SetRTS(rts bool) error {
	self.rts = rts
	return nil
}

// GetModemStatusBits reports the modem lines looped back: CTS follows RTS
// and DSR follows DTR. Both start raised.
func (self *Port) GetModemStatusBits() (*serial.ModemStatusBits, error) {
	return &serial.ModemStatusBits{CTS: self.rts, DSR: self.dtr}, nil
}
