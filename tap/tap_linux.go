//go:build linux
// +build linux

package tap

import (
	"io"

	"github.com/songgao/water"
)

// openTAP creates the TAP device cfg.Name, or attaches to it if it already
// exists.  Frames are read without the packet information prefix.
func openTAP(cfg Config) (io.ReadWriteCloser, string, error) {
	ifi, err := water.New(water.Config{
		DeviceType: water.TAP,
		PlatformSpecificParams: water.PlatformSpecificParams{
			Name: cfg.Name,
		},
	})
	if err != nil {
		return nil, "", err
	}

	return ifi, ifi.Name(), nil
}
