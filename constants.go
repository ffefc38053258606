package dummyserial

import "time"

// Defaults filled in by NewPort when the Config leaves them unset.
const (
	DefaultBaudrate = 19200
	DefaultTimeout  = 2 * time.Second
)

const (
	// DefaultResponse marks a request the lookup could not answer.
	DefaultResponse = "NONE"
	// NoDataPresent is the pending request of a port nothing has been
	// written to.
	NoDataPresent = ""
)
