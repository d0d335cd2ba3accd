// Command floatradix converts decimal (or hex float) values to strings in
// another radix, per the ECMAScript Number::toString(radix) rules.
//
// Usage:
//
//	floatradix [flags] [value ...]
//
// Values are read from stdin, one per line, if none are given as arguments.
// Blank lines, and lines starting with "#", are skipped.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
