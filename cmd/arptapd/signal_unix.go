//go:build !windows
// +build !windows

package main

import (
	"os"
	"syscall"
)

// dumpSignals are the signals which log the resolution table without
// exiting.
var dumpSignals = []os.Signal{syscall.SIGUSR1}
