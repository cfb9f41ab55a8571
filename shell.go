package ushell

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// DispatchFn executes one input line, writing a message into eb on
// failure. The generated dispatchers satisfy this signature.
type DispatchFn func(line string, eb *ErrBuf) bool

// Config is the application-supplied wiring for a Shell: the generated
// dispatcher surface, the prompt, and the sizing knobs. Populate it
// from the generated command/shortcut packages and hand it to New.
type Config struct {
	// GetCommands returns (name, descriptor) pairs, sorted by name.
	GetCommands func() [][2]string
	// GetDatatypes returns the human-readable descriptor legend.
	GetDatatypes func() string
	// GetShortcuts returns the human-readable shortcut list.
	GetShortcuts func() string
	// IsShortcut reports whether a line starts with a shortcut prefix.
	IsShortcut func(line string) bool
	// DispatchCommand executes a regular command line.
	DispatchCommand DispatchFn
	// DispatchShortcut executes a shortcut line.
	DispatchShortcut DispatchFn
	// CandidatesForLetter feeds the autocomplete bucket cache. When
	// nil, buckets are derived from GetCommands at construction.
	CandidatesForLetter CandidatesFn

	// Prompt is printed before each input line.
	Prompt string

	// InputMaxLen bounds the edit line (IML). Default 128.
	InputMaxLen int
	// HistoryCapacity is the history byte capacity (HTC). Default 256.
	HistoryCapacity int
	// MaxCandidates bounds the per-letter autocomplete cache (NAC).
	// Default 8.
	MaxCandidates int
	// FunctionNameLen bounds the autocomplete prefix (FNL). Default 32.
	FunctionNameLen int
	// ErrorBufferSize bounds dispatch error messages. Default 64.
	ErrorBufferSize int

	// HistoryFile enables history persistence when non-empty.
	HistoryFile string

	// Logger reports Success/Error after each executed line. When nil
	// a logger is created over the shell's writer at LevelInfo.
	Logger *Logger

	// PollThreshold is the number of consecutive empty reads before
	// Run yields. Default 100.
	PollThreshold int
	// YieldInterval is how long Run sleeps when idle. Default 50µs.
	YieldInterval time.Duration
}

func (c *Config) applyDefaults() {
	if c.Prompt == "" {
		c.Prompt = ">> "
	}
	if c.InputMaxLen <= 0 {
		c.InputMaxLen = 128
	}
	if c.HistoryCapacity <= 0 {
		c.HistoryCapacity = 256
	}
	if c.MaxCandidates <= 0 {
		c.MaxCandidates = 8
	}
	if c.FunctionNameLen <= 0 {
		c.FunctionNameLen = 32
	}
	if c.ErrorBufferSize <= 0 {
		c.ErrorBufferSize = 64
	}
	if c.PollThreshold <= 0 {
		c.PollThreshold = 100
	}
	if c.YieldInterval <= 0 {
		c.YieldInterval = 50 * time.Microsecond
	}
}

// Shell glues the decoder, editor, history, autocomplete, and
// dispatchers into the interactive loop. It is single-threaded and
// cooperative: feed it bytes through Step, or let Run poll a source.
type Shell struct {
	cfg      Config
	decoder  KeyDecoder
	buffer   *InputBuffer
	history  *History
	ac       *Autocomplete
	renderer *Renderer
	log      *Logger
	errBuf   *ErrBuf
	candFn   CandidatesFn
	misses   int
	stopped  bool
}

// New constructs a shell over the given sink and wiring, prints the
// startup banner and the first prompt.
func New(w Writer, cfg Config) *Shell {
	cfg.applyDefaults()

	var history *History
	if cfg.HistoryFile != "" {
		history = NewHistoryFile(cfg.HistoryCapacity, cfg.HistoryFile)
	} else {
		history = NewHistory(cfg.HistoryCapacity)
	}

	log := cfg.Logger
	if log == nil {
		log = NewLogger(w, LevelInfo, false)
	}

	s := &Shell{
		cfg:      cfg,
		buffer:   NewInputBuffer(cfg.InputMaxLen),
		history:  history,
		ac:       NewAutocomplete(cfg.MaxCandidates, cfg.FunctionNameLen),
		renderer: NewRenderer(w),
		log:      log,
		errBuf:   NewErrBuf(cfg.ErrorBufferSize),
	}

	s.candFn = cfg.CandidatesForLetter
	if s.candFn == nil && cfg.GetCommands != nil {
		s.candFn = bucketCandidates(cfg.GetCommands())
	}

	w.WriteString("Shell started (try ###)\r\n")
	w.WriteString(cfg.Prompt)
	w.Flush()
	return s
}

// bucketCandidates builds a first-letter bucket lookup from the
// command table, for applications that skip the generated bucket fn.
func bucketCandidates(commands [][2]string) CandidatesFn {
	buckets := make(map[byte][]string)
	for _, cmd := range commands {
		name := cmd[0]
		if name == "" {
			continue
		}
		buckets[name[0]] = append(buckets[name[0]], name)
	}
	return func(first byte) []string {
		return buckets[first]
	}
}

// History exposes the history store (used by hosted front-ends for
// shutdown-time persistence hooks and by tests).
func (s *Shell) History() *History {
	return s.history
}

// Stopped reports whether the shell has processed #q.
func (s *Shell) Stopped() bool {
	return s.stopped
}

// Step runs one cooperative iteration: try to read a byte, decode it,
// and apply the resulting key. Returns false once the shell has exited
// via #q; the caller should stop its loop.
func (s *Shell) Step(src ByteSource) bool {
	if s.stopped {
		return false
	}
	b, ok := src.TryReadByte()
	if !ok {
		s.misses++
		return true
	}
	s.misses = 0

	ev, ok := s.decoder.Feed(b)
	if !ok {
		return true
	}
	return s.handleKey(ev)
}

// Run drives Step until #q or context cancellation. After
// PollThreshold consecutive empty reads it sleeps for YieldInterval to
// yield the scheduler, mirroring the cooperative-task deployment.
func (s *Shell) Run(ctx context.Context, src ByteSource) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !s.Step(src) {
			return
		}
		if s.misses >= s.cfg.PollThreshold {
			s.misses = 0
			time.Sleep(s.cfg.YieldInterval)
		}
	}
}

func (s *Shell) handleKey(ev KeyEvent) bool {
	switch ev.Key {
	case KeyChar:
		s.handleChar(ev.Ch)
	case KeyBackspace:
		s.handleBackspace()
	case KeyEnter:
		return s.handleEnterKey()
	case KeyTab:
		s.handleTab(false)
	case KeyShiftTab:
		s.handleTab(true)
	case KeyArrowUp:
		s.handleHistoryNav(s.history.Prev)
	case KeyArrowDown:
		s.handleHistoryNav(s.history.Next)
	case KeyArrowLeft:
		s.buffer.MoveLeft()
		s.render()
	case KeyArrowRight:
		s.buffer.MoveRight()
		s.render()
	case KeyHome:
		s.buffer.MoveHome()
		s.render()
	case KeyEnd:
		s.buffer.MoveEnd()
		s.render()
	case KeyDelete:
		s.buffer.Delete()
		s.render()
	case KeyCtrlU:
		s.buffer.DeleteToStart()
		s.render()
	case KeyCtrlK:
		s.buffer.DeleteToEnd()
		s.render()
	case KeyCtrlD:
		if !s.buffer.IsEmpty() {
			s.buffer.Clear()
			s.render()
		}
	case KeyInsert, KeyPageUp, KeyPageDown:
		// Ignored.
	}
	return true
}

func (s *Shell) render() {
	s.renderer.Render(s.cfg.Prompt, s.buffer.String(), s.buffer.Cursor())
}

// autocompletePrefix is the first FunctionNameLen bytes of the line.
func (s *Shell) autocompletePrefix() string {
	line := s.buffer.String()
	if len(line) > s.cfg.FunctionNameLen {
		line = line[:s.cfg.FunctionNameLen]
	}
	return line
}

func (s *Shell) handleChar(ch byte) {
	if s.buffer.Insert(ch) {
		// Typing only refreshes the suggestion state; the buffer is
		// rewritten on Tab, never mid-word.
		s.ac.UpdateInput(s.autocompletePrefix(), s.candFn)
	} else {
		s.renderer.BoundaryMarker()
	}
	s.render()
}

func (s *Shell) handleBackspace() {
	if s.buffer.Backspace() {
		s.ac.UpdateInput(s.autocompletePrefix(), s.candFn)
	} else {
		s.renderer.Bell()
	}
	s.render()
}

func (s *Shell) handleTab(reverse bool) {
	// The first Tab accepts the pending suggestion (sole match or the
	// longest common prefix); further Tabs rotate through the matches.
	prefix := s.autocompletePrefix()
	suggestion := s.ac.CurrentInput()
	if suggestion == "" || suggestion == prefix {
		if reverse {
			s.ac.CycleBackward()
		} else {
			s.ac.CycleForward()
		}
		suggestion = s.ac.CurrentInput()
	}
	if suggestion == "" {
		s.render()
		return
	}

	full := s.buffer.String()
	rest := ""
	if len(full) > s.cfg.FunctionNameLen {
		rest = full[s.cfg.FunctionNameLen:]
	}
	s.buffer.Overwrite(suggestion + rest)
	s.render()
}

func (s *Shell) handleHistoryNav(nav func(func(byte) bool) bool) {
	s.buffer.Clear()
	if !nav(func(b byte) bool { return s.buffer.Insert(b) }) {
		s.renderer.Bell()
	}
	s.render()
}

// handleEnterKey commits the line and routes it: history, hashtag
// meta-commands, shortcut dispatch, or command dispatch.
func (s *Shell) handleEnterKey() bool {
	w := s.renderer.Writer()
	w.WriteString("\r\n")

	cmd := s.buffer.String()
	if cmd != "" && !strings.HasPrefix(cmd, "#") {
		s.history.Push(cmd)
	}
	s.buffer.Clear()
	s.ac.UpdateInput("", s.candFn)

	if cmd != "" {
		if stripped, isMeta := strings.CutPrefix(cmd, "#"); isMeta {
			cont, historyCmd := s.handleHashtag(stripped)
			if !cont {
				w.WriteString("Shell exited...\r\n")
				w.Flush()
				s.stopped = true
				return false
			}
			if historyCmd != "" {
				s.execute(historyCmd)
			}
		} else {
			s.execute(cmd)
		}
	}

	s.render()
	return true
}

// execute routes one committed line to the shortcut or command
// dispatcher and logs the outcome.
func (s *Shell) execute(line string) {
	var ok bool
	if s.cfg.IsShortcut != nil && s.cfg.IsShortcut(line) {
		ok = s.cfg.DispatchShortcut(line, s.errBuf)
	} else if s.cfg.DispatchCommand != nil {
		ok = s.cfg.DispatchCommand(line, s.errBuf)
	} else {
		return
	}

	if ok {
		s.log.Info("Success")
	} else {
		s.log.Error("Error: %s", s.errBuf.String())
	}
}

// handleHashtag processes the meta-commands:
//
//	#q  quit the shell
//	#   list commands
//	##  list commands, argument types, and shortcuts
//	#l  show history
//	#c  clear history
//	#N  load history entry N for execution
//
// It returns whether the shell should keep running and, for #N, the
// recalled command line.
func (s *Shell) handleHashtag(stripped string) (bool, string) {
	w := s.renderer.Writer()
	switch stripped {
	case "q":
		return false, ""
	case "":
		s.writeCommandTable(w)
	case "#":
		s.writeCommandTable(w)
		w.WriteString("\r\nArgument types:\r\n")
		if s.cfg.GetDatatypes != nil {
			w.WriteString(s.cfg.GetDatatypes())
		}
		w.WriteString("\r\n\r\nShortcuts:\r\n")
		if s.cfg.GetShortcuts != nil {
			w.WriteString(s.cfg.GetShortcuts())
		}
		w.WriteString("\r\n")
	case "l":
		s.history.Show(w)
		w.Flush()
	case "c":
		s.history.Clear()
		w.WriteString("History cleared.\r\n")
	default:
		if index, err := strconv.Atoi(stripped); err == nil && index >= 0 {
			s.buffer.Clear()
			if _, ok := s.history.ForEachByte(index, func(b byte) bool {
				return s.buffer.Insert(b)
			}); ok {
				cmd := s.buffer.String()
				w.WriteString("Executing: ")
				w.WriteString(cmd)
				w.WriteString("\r\n")
				s.buffer.Clear()
				return true, cmd
			}
			w.WriteString("Invalid history index.\r\n")
		} else {
			w.WriteString("Unknown hashtag command.\r\n")
		}
	}
	return true, ""
}

func (s *Shell) writeCommandTable(w Writer) {
	w.WriteString("Available commands:\r\n")
	if s.cfg.GetCommands == nil {
		return
	}
	for _, cmd := range s.cfg.GetCommands() {
		w.WriteString("  ")
		w.WriteString(cmd[0])
		w.WriteString(": ")
		w.WriteString(cmd[1])
		w.WriteString("\r\n")
	}
}
