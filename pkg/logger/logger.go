package logger

import (
	"log"

	"go.uber.org/zap"
)

// Log is the global zap logger. Nil until Init is called, so callers on
// non-request paths should nil-check before use.
var Log *zap.Logger

// Init builds the global logger. Debug mode uses the human-readable
// development encoder, otherwise JSON production output.
func Init(debug bool) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Log = l
}

// Sync flushes buffered log entries. Safe to call on shutdown.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
