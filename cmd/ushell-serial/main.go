//go:build linux

// Command ushell-serial serves the interactive shell over a serial
// port, the hosted stand-in for the UART deployment: a terminal
// program on the other end of the line gets the prompt, line editing,
// and the demo command set.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	serial "github.com/daedaluz/goserial"
	ushell "github.com/phroun/ushell"
	"github.com/phroun/ushell/usercode"
)

var baudRates = map[int]serial.CFlag{
	1200:    serial.B1200,
	2400:    serial.B2400,
	4800:    serial.B4800,
	9600:    serial.B9600,
	19200:   serial.B19200,
	38400:   serial.B38400,
	57600:   serial.B57600,
	115200:  serial.B115200,
	230400:  serial.B230400,
	460800:  serial.B460800,
	921600:  serial.B921600,
	1000000: serial.B1000000,
}

func main() {
	var (
		portName = flag.String("port", "/dev/ttyUSB0", "serial device")
		baud     = flag.Int("baud", 115200, "baud rate")
		logLevel = flag.String("log-level", "info", "minimum log level")
		history  = flag.String("history", "", "history persistence file")
	)
	flag.Parse()

	speed, ok := baudRates[*baud]
	if !ok {
		fmt.Fprintf(os.Stderr, "ushell-serial: unsupported baud rate %d\n", *baud)
		os.Exit(1)
	}
	level, ok := ushell.ParseLogLevel(*logLevel)
	if !ok {
		fmt.Fprintf(os.Stderr, "ushell-serial: unknown log level %q\n", *logLevel)
		os.Exit(1)
	}

	port, err := serial.Open(*portName, serial.NewOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ushell-serial: open %s: %v\n", *portName, err)
		os.Exit(1)
	}
	defer port.Close()

	if err := configurePort(port, speed); err != nil {
		fmt.Fprintf(os.Stderr, "ushell-serial: configure %s: %v\n", *portName, err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-sigCh
		cancel()
	}()

	// The port is both halves of the transport: blocking writes with
	// a drain on flush, and a reader goroutine feeding the SPSC queue
	// that the shell polls.
	writer := ushell.NewCallbackWriter(
		func(b []byte) { _, _ = port.Write(b) },
		func() { _ = port.Drain() },
	)
	logger := ushell.NewLogger(writer, level, false)
	usercode.SetLogger(logger)

	shell := ushell.New(writer, ushell.Config{
		GetCommands:         usercode.GetCommands,
		GetDatatypes:        usercode.GetDatatypes,
		GetShortcuts:        usercode.GetShortcuts,
		IsShortcut:          usercode.IsSupportedShortcut,
		DispatchCommand:     usercode.Dispatch,
		DispatchShortcut:    usercode.DispatchShortcut,
		CandidatesForLetter: usercode.CandidatesForLetter,
		Prompt:              usercode.Prompt,
		InputMaxLen:         usercode.InputMaxLen,
		HistoryCapacity:     usercode.HistoryCapacity,
		MaxCandidates:       usercode.MaxCommandsPerLetter,
		FunctionNameLen:     usercode.MaxFunctionNameLen,
		ErrorBufferSize:     usercode.ErrorBufferSize,
		HistoryFile:         *history,
		Logger:              logger,
		YieldInterval:       200 * time.Microsecond,
	})

	src := ushell.NewReaderByteSource(port, 256)
	defer src.Close()

	shell.Run(ctx, src)
}

// configurePort puts the line into raw 8N1 mode at the given speed.
func configurePort(port *serial.Port, speed serial.CFlag) error {
	if err := port.MakeRaw(); err != nil {
		return err
	}
	attrs, err := port.GetAttr()
	if err != nil {
		return err
	}
	attrs.SetSpeed(speed)
	attrs.Cflag |= serial.CREAD | serial.CLOCAL
	return port.SetAttr(serial.TCSANOW, attrs)
}
