package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFile   = "bootmenu.log"
	defaultMaxSizeMB = 5
)

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	sink         *lumberjack.Logger
	logger       *log.Logger
	runID        = uuid.NewString()
)

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing; if that fails the
// path is kept and its writes are dropped.
func Configure(path string, maxSizeMB int) {
	mu.Lock()
	defer mu.Unlock()
	if sink != nil {
		_ = sink.Close()
	}
	logPath = defaultLogFile
	if strings.TrimSpace(path) != "" {
		logPath = path
		_ = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	if maxSizeMB <= 0 {
		maxSizeMB = defaultMaxSizeMB
	}
	sink = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSizeMB,
		MaxBackups: 2,
	}
	logger = log.New(quietWriter{sink}, "", log.LstdFlags)
}

// Path reports the file currently receiving log lines.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// RunID identifies this process in trace entries.
func RunID() string {
	return runID
}

// Close flushes and releases the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if sink == nil {
		return nil
	}
	err := sink.Close()
	sink = nil
	logger = nil
	return err
}

// Printf appends a single timestamped line.
func Printf(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	ensureLogger()
	logger.Printf(format, args...)
}

// Warn records a recovered failure.
func Warn(err error) {
	if err == nil {
		return
	}
	Printf("warning: %v", err)
}

// Error records a failure.
func Error(err error) {
	if err == nil {
		return
	}
	Printf("error: %v", err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !traceEnabled {
		return
	}
	ensureLogger()

	entry := struct {
		Time    time.Time   `json:"time"`
		Run     string      `json:"run"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Run:     runID,
		Event:   event,
		Payload: payload,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		logger.Printf("trace encoding failed for %s: %v", event, err)
		return
	}
	_, _ = logger.Writer().Write(append(data, '\n'))
}

func ensureLogger() {
	if logger != nil {
		return
	}
	sink = &lumberjack.Logger{Filename: logPath, MaxSize: defaultMaxSizeMB, MaxBackups: 2}
	logger = log.New(quietWriter{sink}, "", log.LstdFlags)
}

// quietWriter drops write errors so an unwritable log never reaches the
// terminal or the caller.
type quietWriter struct {
	w io.Writer
}

func (q quietWriter) Write(p []byte) (int, error) {
	_, _ = q.w.Write(p)
	return len(p), nil
}
