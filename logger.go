package tgentities

import (
	"log"
	"os"
)

// Logger receives pipeline diagnostics. The converters themselves never log.
var Logger = log.New(os.Stderr, "[tgentities] ", log.LstdFlags)

// SetLogger replaces Logger.
func SetLogger(logger *log.Logger) {
	Logger = logger
}
