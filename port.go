package dummyserial

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

// Config is the setup for a dummy port. Every field is optional, the zero
// value opens a port running on defaults.
type Config struct {
	Name        string        // port name, eg. /dev/ttyUSB0
	Baud        int           // defaults to DefaultBaudrate, stored but never enforced
	ReadTimeout time.Duration // defaults to DefaultTimeout, stored but never enforced
	Lookup      Lookup        // defaults to DefaultLookup
	WhenInvalid string        // defaults to DefaultResponse
}

// Port is a dummy serial connection. Writes store a pending request, reads
// resolve it through the lookup and return the response. A Port holds one
// conversation at a time and is not safe for concurrent use.
type Port struct {
	name        string
	baud        int
	readTimeout time.Duration
	lookup      Lookup
	whenInvalid string

	open     bool
	pending  []byte // last request written, not yet resolved
	response []byte // resolved response, not yet read
	mode     serial.Mode
	dtr      bool
	rts      bool
}

// NewPort returns a closed port set up from config. config may be nil for
// all defaults. Call Open before use.
func NewPort(config *Config) *Port {
	if config == nil {
		config = &Config{}
	}
	port := &Port{
		name:        config.Name,
		baud:        config.Baud,
		readTimeout: config.ReadTimeout,
		lookup:      config.Lookup,
		whenInvalid: config.WhenInvalid,
		// control lines raised from the start
		dtr: true,
		rts: true,
	}
	if port.baud == 0 {
		port.baud = DefaultBaudrate
	}
	if port.readTimeout == 0 {
		port.readTimeout = DefaultTimeout
	}
	if port.lookup == nil {
		port.lookup = DefaultLookup
	}
	if port.whenInvalid == "" {
		port.whenInvalid = DefaultResponse
	}
	return port
}

// Open returns an opened port set up from config.
func Open(config *Config) (*Port, error) {
	port := NewPort(config)
	if err := port.Open(); err != nil {
		return nil, err
	}
	return port, nil
}

// Open the port. Opening an open port fails with ErrPortAlreadyOpen.
func (self *Port) Open() error {
	Log.Debugf("opening port %s", self.name)
	if self.open {
		return ErrPortAlreadyOpen
	}
	self.open = true
	return nil
}

// Close the port. Closing a closed port fails with ErrPortNotOpen.
func (self *Port) Close() error {
	Log.Debugf("closing port %s", self.name)
	if !self.open {
		return ErrPortNotOpen
	}
	self.open = false
	return nil
}

// IsOpen reports whether the port is open.
func (self *Port) IsOpen() bool {
	return self.open
}

// Write stores b as the pending request, replacing any previous request and
// discarding any unread response. The request is not interpreted until the
// next Read. Writing to a closed port fails with ErrPortNotOpen.
func (self *Port) Write(b []byte) (int, error) {
	Log.Debugf("write (%d): %q", len(b), b)
	if !self.open {
		return 0, ErrPortNotOpen
	}
	self.pending = append([]byte(nil), b...)
	self.response = nil
	return len(b), nil
}

// Read fills b from the response. With nothing left over from a previous
// read, the pending request is resolved through the lookup first, consuming
// it. Before anything is written the request resolves as NoDataPresent.
// Responses longer than b are returned over successive reads. Read never
// blocks - a lookup answering with an empty response reads as (0, nil).
// Resolution consumes the request even when it fails, so a Read retried
// after ErrInvalidResponseType resolves the empty request. Reading a closed
// port fails with ErrPortNotOpen.
func (self *Port) Read(b []byte) (int, error) {
	if !self.open {
		return 0, ErrPortNotOpen
	}
	if len(b) == 0 {
		return 0, nil
	}
	if len(self.response) == 0 {
		response, err := self.resolve()
		if err != nil {
			return 0, err
		}
		self.response = response
	}
	n := copy(b, self.response)
	self.response = self.response[n:]
	Log.Debugf("read (%d): %q", n, b[:n])
	return n, nil
}

// resolve passes the pending request to the lookup, consuming it.
func (self *Port) resolve() ([]byte, error) {
	request := string(self.pending)
	self.pending = nil
	response := self.lookup(request, self.whenInvalid)
	switch response := response.(type) {
	case string:
		return []byte(response), nil
	case []byte:
		return response, nil
	}
	return nil, errors.Wrapf(ErrInvalidResponseType, "got %T", response)
}

// Flush discards the pending request and any unread response.
func (self *Port) Flush() error {
	Log.Debug("flushing port")
	if !self.open {
		return ErrPortNotOpen
	}
	self.pending = nil
	self.response = nil
	return nil
}

// ResetInputBuffer discards any unread response.
func (self *Port) ResetInputBuffer() error {
	if !self.open {
		return ErrPortNotOpen
	}
	self.response = nil
	return nil
}

// ResetOutputBuffer discards the pending request.
func (self *Port) ResetOutputBuffer() error {
	if !self.open {
		return ErrPortNotOpen
	}
	self.pending = nil
	return nil
}

// InWaiting returns the number of response bytes resolved but not yet read.
// Resolution happens at Read, so this is zero until a response outgrows its
// first read.
func (self *Port) InWaiting() int {
	return len(self.response)
}

// OutWaiting returns the number of request bytes written but not yet
// resolved.
func (self *Port) OutWaiting() int {
	return len(self.pending)
}

// SetLookup swaps the lookup answering requests. Takes effect from the next
// resolution.
func (self *Port) SetLookup(lookup Lookup) {
	if lookup == nil {
		lookup = DefaultLookup
	}
	self.lookup = lookup
}

// Name returns the port name.
func (self *Port) Name() string {
	return self.name
}

// Baud returns the recorded baud rate.
func (self *Port) Baud() int {
	return self.baud
}

func (self *Port) String() string {
	return fmt.Sprintf("Port<open=%t>(port=%s, baud=%d, timeout=%s, pending=%d, unread=%d)",
		self.open, self.name, self.baud, self.readTimeout, len(self.pending), len(self.response))
}
