package ushell

import "io"

// ByteSource is the transport-agnostic input side of the shell: a
// non-blocking try-read of one byte. How the bytes get there (UART
// interrupt, serial port reader, pty, test script) is the caller's
// concern.
type ByteSource interface {
	TryReadByte() (byte, bool)
}

// ChannelByteSource bridges a single producer (an ISR drain, a reader
// goroutine) to the single-consumer shell loop through a bounded
// channel. Sends never block: when the queue is full the byte is
// dropped and Send reports it.
type ChannelByteSource struct {
	ch chan byte
}

// NewChannelByteSource creates a source with the given queue capacity.
func NewChannelByteSource(capacity int) *ChannelByteSource {
	if capacity < 1 {
		capacity = 1
	}
	return &ChannelByteSource{ch: make(chan byte, capacity)}
}

// Send enqueues one byte without blocking; false means the queue was
// full and the byte was dropped.
func (s *ChannelByteSource) Send(b byte) bool {
	select {
	case s.ch <- b:
		return true
	default:
		return false
	}
}

// TryReadByte pops one byte without blocking.
func (s *ChannelByteSource) TryReadByte() (byte, bool) {
	select {
	case b := <-s.ch:
		return b, true
	default:
		return 0, false
	}
}

// ReaderByteSource pumps an io.Reader into a ChannelByteSource from a
// background goroutine, turning a blocking stream (stdin, a serial
// port) into the shell's non-blocking contract.
type ReaderByteSource struct {
	*ChannelByteSource
	stop chan struct{}
}

// NewReaderByteSource starts the pump goroutine. Close stops it at the
// next read return.
func NewReaderByteSource(r io.Reader, capacity int) *ReaderByteSource {
	s := &ReaderByteSource{
		ChannelByteSource: NewChannelByteSource(capacity),
		stop:              make(chan struct{}),
	}
	go s.pump(r)
	return s
}

func (s *ReaderByteSource) pump(r io.Reader) {
	buf := make([]byte, 256)
	for {
		select {
		case <-s.stop:
			return
		default:
		}
		n, err := r.Read(buf)
		for i := 0; i < n; i++ {
			select {
			case s.ch <- buf[i]:
			case <-s.stop:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// Close signals the pump goroutine to stop.
func (s *ReaderByteSource) Close() {
	close(s.stop)
}

// ScriptByteSource replays a fixed byte string; it is the test-side
// source.
type ScriptByteSource struct {
	data []byte
	pos  int
}

// NewScriptByteSource creates a source yielding the bytes of data once.
func NewScriptByteSource(data string) *ScriptByteSource {
	return &ScriptByteSource{data: []byte(data)}
}

// TryReadByte yields the next scripted byte.
func (s *ScriptByteSource) TryReadByte() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	b := s.data[s.pos]
	s.pos++
	return b, true
}

// Exhausted reports whether the script has been fully consumed.
func (s *ScriptByteSource) Exhausted() bool {
	return s.pos >= len(s.data)
}
