//go:build !linux
// +build !linux

package tap

import (
	"io"
	"runtime"

	"github.com/juju/errors"
)

func openTAP(cfg Config) (io.ReadWriteCloser, string, error) {
	return nil, "", errors.NotSupportedf("TAP devices on %s", runtime.GOOS)
}
