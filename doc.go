// Package dummyserial is a dummy serial port for testing purposes
//
// It stands in for the port objects real serial libraries hand out, without
// touching any hardware. Bytes written to the port select a response through
// a pluggable lookup function, and the next read returns that response.
//
// Features
//
// - Drop-in for tarm/serial ports (io.ReadWriteCloser, OpenPort)
//
// - Drop-in for go.bug.st/serial ports (implements the full Port interface)
//
// - Pluggable lookups: echo, response tables, ordered replay scripts
//
// - Response tables loadable from YAML fixtures
//
// - Stores port settings (name, baud rate, timeout) without enforcing them
//
// - Fails loudly on use of a closed port
//
// - Debug logging of every port operation
package dummyserial
