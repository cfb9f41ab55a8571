package ushell

// Writer is the byte sink shared by the renderer and the logger.
//
// Blocking writes are acceptable; a sink may buffer internally until
// Flush. The embedded deployment backs this with caller-supplied
// function pointers (CallbackWriter), the hosted one with buffered
// stdout (StdWriter).
type Writer interface {
	WriteString(s string)
	WriteBytes(b []byte)
	Flush()
}

// CallbackWriter adapts a pair of plain functions into a Writer. It is
// the embedded-side sink: the write function typically enqueues into a
// TX ring buffer and the flush function is often a no-op.
type CallbackWriter struct {
	write func([]byte)
	flush func()
}

// NewCallbackWriter builds a CallbackWriter. flush may be nil.
func NewCallbackWriter(write func([]byte), flush func()) *CallbackWriter {
	return &CallbackWriter{write: write, flush: flush}
}

func (w *CallbackWriter) WriteString(s string) { w.write([]byte(s)) }
func (w *CallbackWriter) WriteBytes(b []byte)  { w.write(b) }

func (w *CallbackWriter) Flush() {
	if w.flush != nil {
		w.flush()
	}
}

// Renderer redraws the prompt line on a VT100-compatible terminal.
// It is stateless with respect to the line: every Render is a full
// redraw of prompt plus content plus cursor placement.
type Renderer struct {
	w Writer
}

// NewRenderer creates a renderer over w.
func NewRenderer(w Writer) *Renderer {
	return &Renderer{w: w}
}

// Writer exposes the underlying sink for direct, unformatted output.
func (r *Renderer) Writer() Writer {
	return r.w
}

// Render clears the current line and redraws prompt and content,
// leaving the terminal cursor cursorPos characters into the content
// (clamped to the content length).
func (r *Renderer) Render(prompt, content string, cursorPos int) {
	if cursorPos > len(content) {
		cursorPos = len(content)
	}

	r.w.WriteString("\r\x1b[K")
	r.w.WriteString(prompt)
	r.w.WriteString(content)

	// CSI n G: move to absolute column (1-based).
	r.w.WriteString("\x1b[")
	writeNumber(r.w, len(prompt)+cursorPos+1)
	r.w.WriteString("G")

	r.w.Flush()
}

// Bell emits the terminal bell, used to signal rejected edits.
func (r *Renderer) Bell() {
	r.w.WriteBytes([]byte{0x07})
	r.w.Flush()
}

// BoundaryMarker flashes a red bar at the cursor to signal that the
// input buffer is full.
func (r *Renderer) BoundaryMarker() {
	r.w.WriteString("\x1b[31m|\x1b[0m\x1b[1D \x1b[1D")
	r.w.Flush()
}

// writeNumber writes a non-negative decimal without allocating.
func writeNumber(w Writer, n int) {
	var digits [20]byte
	if n <= 0 {
		w.WriteBytes([]byte{'0'})
		return
	}
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte(n%10) + '0'
		n /= 10
	}
	w.WriteBytes(digits[i:])
}
