// Package logging wraps the standard library log package the same way
// standalone/app.go uses it throughout: plain log.Printf calls, no
// structured-logging library (none appears anywhere in the retrieved
// corpus). The only conventions added here are a "minarch: " prefix on
// errors swallowed inside a loop and a Fatalf that os.Exit(1)s instead of
// log.Fatal's stack-trace dump, matching app.go's own
// "Clean exit using os.Exit to avoid log.Fatal's stack trace" practice.
package logging

import (
	"log"
	"os"
)

// Warnf logs a non-fatal condition the frontend recovered from.
func Warnf(format string, args ...any) {
	log.Printf("minarch: warning: "+format, args...)
}

// Errorf logs an error that was swallowed inside the frame loop or menu
// and execution continues.
func Errorf(format string, args ...any) {
	log.Printf("minarch: "+format, args...)
}

// Fatalf logs a startup error that cannot be recovered from and exits
// with status 1.
func Fatalf(format string, args ...any) {
	log.Printf("minarch: fatal: "+format, args...)
	os.Exit(1)
}
