package ushell

import "testing"

func checkBufferInvariant(t *testing.T, b *InputBuffer) {
	t.Helper()
	if b.Cursor() < 0 || b.Cursor() > b.Len() || b.Len() > b.Cap() {
		t.Fatalf("invariant violated: cursor=%d len=%d cap=%d", b.Cursor(), b.Len(), b.Cap())
	}
}

func TestInputBufferInsert(t *testing.T) {
	b := NewInputBuffer(4)
	for _, ch := range []byte("abcd") {
		if !b.Insert(ch) {
			t.Fatalf("insert %q failed unexpectedly", ch)
		}
	}
	if b.Insert('e') {
		t.Error("insert into full buffer should fail")
	}
	if got := b.String(); got != "abcd" {
		t.Errorf("got %q, want %q", got, "abcd")
	}
	checkBufferInvariant(t, b)
}

func TestInputBufferInsertMidLine(t *testing.T) {
	b := NewInputBuffer(8)
	b.Overwrite("acd")
	b.MoveHome()
	b.MoveRight()
	b.Insert('b')
	if got := b.String(); got != "abcd" {
		t.Errorf("got %q, want %q", got, "abcd")
	}
	if b.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", b.Cursor())
	}
}

func TestInputBufferBackspace(t *testing.T) {
	b := NewInputBuffer(8)
	if b.Backspace() {
		t.Error("backspace at column 0 should fail")
	}
	b.Overwrite("abc")
	if !b.Backspace() {
		t.Error("backspace should succeed")
	}
	if got := b.String(); got != "ab" {
		t.Errorf("got %q, want %q", got, "ab")
	}

	b.MoveHome()
	if b.Backspace() {
		t.Error("backspace at home should fail")
	}
	checkBufferInvariant(t, b)
}

func TestInputBufferDelete(t *testing.T) {
	b := NewInputBuffer(8)
	b.Overwrite("abc")
	if b.Delete() {
		t.Error("delete at end of line should fail")
	}
	b.MoveHome()
	if !b.Delete() {
		t.Error("delete should succeed")
	}
	if got := b.String(); got != "bc" {
		t.Errorf("got %q, want %q", got, "bc")
	}
}

func TestInputBufferCursorClamping(t *testing.T) {
	b := NewInputBuffer(8)
	b.Overwrite("ab")

	// MoveRight at end is a silent no-op.
	b.MoveRight()
	if b.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", b.Cursor())
	}
	b.MoveHome()
	b.MoveLeft()
	if b.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", b.Cursor())
	}
	checkBufferInvariant(t, b)
}

func TestInputBufferDeleteToStart(t *testing.T) {
	b := NewInputBuffer(16)
	b.Overwrite("hello world")
	b.MoveHome()
	for i := 0; i < 6; i++ {
		b.MoveRight()
	}
	b.DeleteToStart()
	if got := b.String(); got != "world" {
		t.Errorf("got %q, want %q", got, "world")
	}
	if b.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", b.Cursor())
	}

	// No-op when already at the start.
	b.DeleteToStart()
	if got := b.String(); got != "world" {
		t.Errorf("got %q after no-op, want %q", got, "world")
	}
}

func TestInputBufferDeleteToEnd(t *testing.T) {
	b := NewInputBuffer(16)
	b.Overwrite("hello world")
	b.MoveHome()
	for i := 0; i < 5; i++ {
		b.MoveRight()
	}
	b.DeleteToEnd()
	if got := b.String(); got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
	if b.Cursor() != 5 {
		t.Errorf("cursor = %d, want 5", b.Cursor())
	}
}

func TestInputBufferOverwriteTruncates(t *testing.T) {
	b := NewInputBuffer(4)
	b.Overwrite("overflowing")
	if got := b.String(); got != "over" {
		t.Errorf("got %q, want %q", got, "over")
	}
	if b.Cursor() != 4 {
		t.Errorf("cursor = %d, want 4", b.Cursor())
	}
	checkBufferInvariant(t, b)
}

func TestInputBufferClear(t *testing.T) {
	b := NewInputBuffer(8)
	b.Overwrite("abc")
	b.Clear()
	if !b.IsEmpty() || b.Cursor() != 0 {
		t.Errorf("clear left len=%d cursor=%d", b.Len(), b.Cursor())
	}
}

func TestInputBufferCopyInto(t *testing.T) {
	b := NewInputBuffer(8)
	b.Overwrite("abcdef")
	dst := make([]byte, 4)
	if n := b.CopyInto(dst); n != 4 || string(dst) != "abcd" {
		t.Errorf("CopyInto = %d %q", n, dst)
	}
}

// The invariant 0 <= cursor <= len <= cap must hold across arbitrary
// operation sequences.
func TestInputBufferInvariantUnderOps(t *testing.T) {
	b := NewInputBuffer(6)
	ops := []func(){
		func() { b.Insert('x') },
		func() { b.Backspace() },
		func() { b.Delete() },
		func() { b.MoveLeft() },
		func() { b.MoveRight() },
		func() { b.MoveHome() },
		func() { b.MoveEnd() },
		func() { b.DeleteToStart() },
		func() { b.DeleteToEnd() },
		func() { b.Overwrite("abc") },
		func() { b.Clear() },
	}
	// A deterministic pseudo-random walk over the op set.
	seed := uint32(12345)
	for i := 0; i < 5000; i++ {
		seed = seed*1664525 + 1013904223
		ops[int(seed>>16)%len(ops)]()
		checkBufferInvariant(t, b)
	}
}
