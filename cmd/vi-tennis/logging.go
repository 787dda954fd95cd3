package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "vi-tennis.log"
	maxLogSize  = 10 * 1024 * 1024
)

// renameFile is swapped in tests to simulate a failed rotation
var renameFile = os.Rename

// setupLogging points the standard logger at dir/vi-tennis.log when debug is set
// Without debug all log output is discarded; the terminal is never written to
// An existing log above maxLogSize is renamed with a timestamp first, or truncated if the rename fails
func setupLogging(dir string, debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, logFileName)
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	var rotateErr error
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("vi-tennis-%s.log", time.Now().Format("20060102-150405")))
		if rotateErr = renameFile(path, rotated); rotateErr != nil {
			flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		}
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("logging started, pid %d", os.Getpid())
	if rotateErr != nil {
		log.Printf("log rotation failed, truncated %s: %v", path, rotateErr)
	}
	return f
}
