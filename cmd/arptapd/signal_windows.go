package main

import "os"

var dumpSignals []os.Signal
