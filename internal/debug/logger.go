package debug

import (
	"io"
	"log"
	"os"
)

type Logger struct {
	enabled bool
	out     *log.Logger
	file    *os.File
}

// NewLogger appends to the file at path when enabled. A disabled logger
// drops everything.
func NewLogger(enabled bool, path string) *Logger {
	l := &Logger{enabled: enabled}
	if !enabled {
		return l
	}

	if path == "" {
		path = "debug.log"
	}
	var w io.Writer = io.Discard
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		w = logFile
		l.file = logFile
	}
	l.out = log.New(w, "", log.LstdFlags)
	l.out.Printf("=== DEBUG MODE ENABLED ===")

	return l
}

// NewWriterLogger returns an enabled logger writing to w without timestamps.
func NewWriterLogger(w io.Writer) *Logger {
	return &Logger{enabled: true, out: log.New(w, "", 0)}
}

func (d *Logger) Printf(format string, args ...interface{}) {
	if d != nil && d.enabled {
		d.out.Printf(format, args...)
	}
}

func (d *Logger) Println(args ...interface{}) {
	if d != nil && d.enabled {
		d.out.Println(args...)
	}
}

func (d *Logger) IsEnabled() bool {
	return d != nil && d.enabled
}

func (d *Logger) Close() error {
	if d == nil || d.file == nil {
		return nil
	}
	return d.file.Close()
}
