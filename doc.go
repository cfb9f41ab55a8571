// Package ushell implements an embedded-style interactive command
// shell over an arbitrary byte transport: a VT100 line editor with
// history and prefix autocompletion in front of a descriptor-driven,
// allocation-free command dispatcher.
//
// The package is transport-agnostic. Input arrives through a
// ByteSource (a non-blocking one-byte try-read); output leaves through
// a Writer. Hosted front-ends run it over a raw-mode terminal
// (cmd/ushell) or a serial port (cmd/ushell-serial); the same core is
// meant to sit behind a UART on constrained targets, which is why
// every container is fixed-capacity and the dispatch path performs no
// allocation.
//
// Command tables are generated ahead of build time by cmd/ushellgen
// from a compact descriptor grammar; see the usercode package for a
// complete worked example.
package ushell
