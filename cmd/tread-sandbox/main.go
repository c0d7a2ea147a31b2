package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/tread/engine"
	"github.com/lixenwraith/tread/terminal"
)

const (
	logDir      = "logs"
	logFileName = "tread.log"
	maxLogSize  = 10 << 20
)

var (
	configFlag  = flag.String("config", "tread.toml", "Config file, missing file uses defaults")
	backendFlag = flag.String("backend", "", "Backend: native, tcell")
	fpsFlag     = flag.Int("fps", 0, "Target frames per second, 0 disables pacing")
	enable3D    = flag.Bool("3d", false, "Enable the 3D pipeline")
	debugFlag   = flag.Bool("debug", false, "Write logs to "+filepath.Join(logDir, logFileName))
)

func main() {
	// Panic recovery: the terminal is raw and hidden-cursor until reset
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTREAD CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Printf("sandbox: %v", err)
		fmt.Fprintf(os.Stderr, "tread-sandbox: %v\n", err)
		if engine.IsFatal(err) {
			os.Exit(3)
		}
		os.Exit(1)
	}
}

// loadConfig reads the config file, then applies only the flags set on the command line
func loadConfig() (engine.Config, error) {
	cfg, err := engine.LoadConfig(*configFlag)
	if err != nil {
		return cfg, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backendFlag
		case "fps":
			cfg.TargetFPS = *fpsFlag
		case "3d":
			cfg.Enable3D = *enable3D
		}
	})
	return cfg, cfg.Validate()
}

func run(cfg engine.Config) error {
	kind, err := terminal.ParseKind(cfg.Backend)
	if err != nil {
		return err
	}
	backend, err := terminal.Open(kind)
	if err != nil {
		return err
	}

	s, err := engine.Open(backend, cfg, 80, 24, "tread sandbox")
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Printf("sandbox: close: %v", err)
		}
	}()

	d := newDemo(s.ScreenWidth(), s.ScreenHeight(), cfg.Enable3D)
	for {
		if err := s.BeginFrame(); err != nil {
			return err
		}
		if s.ShouldClose() {
			return nil
		}
		d.handleKey(s.TakeKeyPressed())
		d.step()
		d.draw(s)
		if err := s.EndFrame(); err != nil {
			return err
		}
	}
}

// logStamp names rotated logs, replaced in tests
var logStamp = time.Now

func rotatedLogName(t time.Time) string {
	return fmt.Sprintf("tread-%s.log", t.Format("20060102-150405"))
}

// setupLogging discards log output unless debug is set, then appends to the log file,
// moving an oversized file aside with a timestamp first
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, rotatedLogName(logStamp()))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
