package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

const defaultLogFile = "focusnav.log"

var (
	mu           sync.Mutex
	logFilePath  = defaultLogFile
	traceEnabled bool
)

// Configure sets the destination file for subsequent log entries.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if path != "" {
		logFilePath = path
	}
}

// SetTraceEnabled toggles trace-level event logging at runtime.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	traceEnabled = enabled
}

// TraceEnabled reports whether trace logging is currently active.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

type entry struct {
	Timestamp string                 `json:"ts"`
	Level     string                 `json:"level"`
	Event     string                 `json:"event,omitempty"`
	Message   string                 `json:"message,omitempty"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
}

// Trace records a structured trace event when tracing is enabled.
func Trace(event string, payload map[string]interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !traceEnabled {
		return
	}
	writeLine(entry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Level:     "trace",
		Event:     event,
		Payload:   payload,
	})
}

// Warn records a warning regardless of the trace setting.
func Warn(msg string) {
	mu.Lock()
	defer mu.Unlock()
	writeLine(entry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Level:     "warn",
		Message:   msg,
	})
}

// Error records an error regardless of the trace setting.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	writeLine(entry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Level:     "error",
		Message:   err.Error(),
	})
}

func writeLine(e entry) {
	f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(e)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		return
	}
	f.Write(append(data, '\n'))
}
