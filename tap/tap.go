// Package tap opens the virtual network interfaces arptap reads frames
// from.
package tap

import (
	"fmt"
	"io"
	"sync"

	"github.com/juju/errors"
)

// IFNAMSIZ is the platform limit on interface name length, including the
// terminating NUL.
const IFNAMSIZ = 16

var (
	// ErrNameTooLong is returned by Open when the interface name does not
	// fit in IFNAMSIZ.
	ErrNameTooLong = errors.New("interface name too long")

	// ErrUnavailable is the cause of errors returned by Open when the
	// underlying device cannot be opened.
	ErrUnavailable = errors.New("device unavailable")

	// ErrUnknownDriver is returned by Open for a Driver it does not
	// implement.
	ErrUnknownDriver = errors.New("unknown driver")
)

// A Driver selects the mechanism used to attach to an interface.
type Driver string

// Driver constants.
const (
	// DriverTAP creates or attaches to a TAP device.
	DriverTAP Driver = "tap"

	// DriverRaw binds a packet socket to an existing interface.
	DriverRaw Driver = "raw"
)

// Config describes the interface to open.
type Config struct {
	// Name is the interface name.  An empty name lets the kernel choose
	// one for DriverTAP.
	Name string

	// Driver selects how the interface is opened.  If empty, DriverTAP is
	// used.
	Driver Driver

	// Promiscuous enables promiscuous mode for DriverRaw so that frames
	// not addressed to the interface are also read.
	Promiscuous bool
}

// A Device is an opened virtual interface.  Each Read returns one frame and
// each Write sends one frame.
type Device struct {
	name   string
	driver Driver

	mu  sync.Mutex
	rwc io.ReadWriteCloser
}

// Open opens the interface described by cfg.
func Open(cfg Config) (*Device, error) {
	if len(cfg.Name) >= IFNAMSIZ {
		return nil, errors.Trace(ErrNameTooLong)
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverTAP
	}

	var (
		rwc  io.ReadWriteCloser
		name string
		err  error
	)

	switch cfg.Driver {
	case DriverTAP:
		rwc, name, err = openTAP(cfg)
	case DriverRaw:
		rwc, name, err = openRaw(cfg)
	default:
		return nil, errors.Annotatef(ErrUnknownDriver, "%q", cfg.Driver)
	}
	if err != nil {
		return nil, errors.Wrapf(err, ErrUnavailable, "open %s %q", cfg.Driver, cfg.Name)
	}

	return newDevice(name, cfg.Driver, rwc), nil
}

func newDevice(name string, d Driver, rwc io.ReadWriteCloser) *Device {
	return &Device{
		name:   name,
		driver: d,
		rwc:    rwc,
	}
}

// Name returns the name of the interface.
func (d *Device) Name() string {
	return d.name
}

// Read reads a single frame into b.
func (d *Device) Read(b []byte) (int, error) {
	return d.rwc.Read(b)
}

// Write writes the single frame b.  Concurrent writes are serialized.
func (d *Device) Write(b []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.rwc.Write(b)
}

// Close closes the device.  Pending reads return an error.
func (d *Device) Close() error {
	return d.rwc.Close()
}

func (d *Device) String() string {
	return fmt.Sprintf("%s(%s)", d.name, d.driver)
}
