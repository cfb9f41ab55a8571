// Command ushell runs the interactive shell on the local terminal with
// the demo command set. The terminal is switched into raw mode for the
// session and restored on exit.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	ushell "github.com/phroun/ushell"
	"github.com/phroun/ushell/usercode"
	"gopkg.in/yaml.v3"
)

var version = "dev" // set via -ldflags at build time

// cliConfig is loaded from ~/.ushell/config.yaml; flags override it.
type cliConfig struct {
	Prompt        string `yaml:"prompt"`
	LogLevel      string `yaml:"log_level"`
	ColorLine     bool   `yaml:"color_line"`
	HistoryFile   string `yaml:"history_file"`
	PollThreshold int    `yaml:"poll_threshold"`
	YieldMicros   int    `yaml:"yield_micros"`
}

func defaultConfig() cliConfig {
	return cliConfig{
		Prompt:   usercode.Prompt,
		LogLevel: "info",
	}
}

func configFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ushell", "config.yaml")
}

// loadConfig reads the YAML config, creating it with defaults on first
// run. Unreadable or invalid files fall back to the defaults.
func loadConfig(path string) cliConfig {
	cfg := defaultConfig()
	if path == "" {
		return cfg
	}

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		writeDefaultConfig(path, cfg)
		return cfg
	}
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "ushell: ignoring invalid config %s: %v\n", path, err)
		return defaultConfig()
	}
	if cfg.Prompt == "" {
		cfg.Prompt = usercode.Prompt
	}
	return cfg
}

func writeDefaultConfig(path string, cfg cliConfig) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}
	_ = os.WriteFile(path, content, 0644)
}

func main() {
	var (
		configPath  = flag.String("config", configFilePath(), "config file path")
		prompt      = flag.String("prompt", "", "prompt string (overrides config)")
		logLevel    = flag.String("log-level", "", "minimum log level: error|warn|info|debug|verbose|trace")
		historyFile = flag.String("history", "", "history persistence file (e.g. .hist)")
		noColor     = flag.Bool("no-color", false, "disable ANSI colours in log output")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("ushell %s\n", version)
		return
	}

	cfg := loadConfig(*configPath)
	if *prompt != "" {
		cfg.Prompt = *prompt
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *historyFile != "" {
		cfg.HistoryFile = *historyFile
	}

	level, ok := ushell.ParseLogLevel(cfg.LogLevel)
	if !ok {
		fmt.Fprintf(os.Stderr, "ushell: unknown log level %q\n", cfg.LogLevel)
		os.Exit(1)
	}

	if !ushell.IsTerminal() {
		fmt.Fprintln(os.Stderr, "ushell: stdin is not a terminal")
		os.Exit(1)
	}

	raw, err := ushell.EnterRawMode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ushell: raw mode: %v\n", err)
		os.Exit(1)
	}
	defer raw.Restore()

	// Restore the terminal even when killed mid-session.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-sigCh
		cancel()
	}()

	writer := ushell.NewStdWriter()
	logger := ushell.NewLogger(writer, level, cfg.ColorLine)
	logger.SetColorEnabled(!*noColor)
	usercode.SetLogger(logger)

	shell := ushell.New(writer, ushell.Config{
		GetCommands:         usercode.GetCommands,
		GetDatatypes:        usercode.GetDatatypes,
		GetShortcuts:        usercode.GetShortcuts,
		IsShortcut:          usercode.IsSupportedShortcut,
		DispatchCommand:     usercode.Dispatch,
		DispatchShortcut:    usercode.DispatchShortcut,
		CandidatesForLetter: usercode.CandidatesForLetter,
		Prompt:              cfg.Prompt,
		InputMaxLen:         usercode.InputMaxLen,
		HistoryCapacity:     usercode.HistoryCapacity,
		MaxCandidates:       usercode.MaxCommandsPerLetter,
		FunctionNameLen:     usercode.MaxFunctionNameLen,
		ErrorBufferSize:     usercode.ErrorBufferSize,
		HistoryFile:         cfg.HistoryFile,
		Logger:              logger,
		PollThreshold:       cfg.PollThreshold,
		YieldInterval:       time.Duration(cfg.YieldMicros) * time.Microsecond,
	})

	src := ushell.NewReaderByteSource(os.Stdin, 256)
	defer src.Close()

	shell.Run(ctx, src)
}
